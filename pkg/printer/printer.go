package printer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cerocafe-backend/entity"
)

// Client sends orders to the kitchen print service. The service is a
// plain request/response box: any connection or non-2xx failure just
// means "could not print", never lost order data.
type Client struct {
	BaseURL string
	httpc   *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{BaseURL: baseURL, httpc: &http.Client{Timeout: timeout}}
}

func (c *Client) PrintOrder(ctx context.Context, o *entity.Order) error {
	body, err := json.Marshal(o)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/print", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("print order %s: %w", o.OrderNumber, err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("print order %s: printer returned %d", o.OrderNumber, res.StatusCode)
	}
	return nil
}
