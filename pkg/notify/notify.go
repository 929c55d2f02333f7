package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client pushes messages to the notification service. Sends are
// best-effort: callers log failures and move on, a missed push never
// rolls anything back.
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

type message struct {
	AccountID uint   `json:"accountId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}

func (c *Client) Send(ctx context.Context, accountID uint, title, body string) error {
	payload, err := json.Marshal(message{AccountID: accountID, Title: title, Body: body})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/send", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("send notification: service returned %d", res.StatusCode)
	}
	return nil
}
