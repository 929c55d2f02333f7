package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client talks to the Mercado Pago style checkout API: a preference is
// created with the order snapshot attached as metadata, the customer pays
// on the returned redirect URL, and the gateway reports back via webhook.
type Client struct {
	BaseURL     string
	AccessToken string
	httpc       *http.Client
}

func NewClient(baseURL, accessToken string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL:     baseURL,
		AccessToken: accessToken,
		httpc:       &http.Client{Timeout: timeout},
	}
}

// OrderMetadata is the order snapshot attached to a preference at checkout
// time and read back from the payment when the webhook fires.
type OrderMetadata struct {
	Items    []MetadataItem   `json:"items"`
	Customer MetadataCustomer `json:"customer"`
	Total    int64            `json:"total"`
}

type MetadataItem struct {
	DishID    uint   `json:"dishId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

type MetadataCustomer struct {
	AccountID *uint  `json:"accountId,omitempty"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
}

type Preference struct {
	ID                string `json:"id"`
	InitPoint         string `json:"init_point"`
	ExternalReference string `json:"external_reference"`
}

type PaymentInfo struct {
	ID       string         `json:"id"`
	Status   string         `json:"status"`
	Metadata *OrderMetadata `json:"metadata"`
}

const StatusApproved = "approved"

// CreatePreference registers a checkout with the gateway and returns the
// redirect URL the customer pays on.
func (c *Client) CreatePreference(ctx context.Context, meta *OrderMetadata) (*Preference, error) {
	payload := map[string]any{
		"external_reference": uuid.NewString(),
		"metadata":           meta,
		"items":              meta.Items,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/checkout/preferences", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("create preference: gateway returned %d", res.StatusCode)
	}

	var pref Preference
	if err := json.NewDecoder(res.Body).Decode(&pref); err != nil {
		return nil, fmt.Errorf("create preference: decode: %w", err)
	}
	return &pref, nil
}

// GetPayment fetches the full payment the webhook only names by id.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*PaymentInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/payments/"+paymentID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get payment %s: %w", paymentID, err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("get payment %s: gateway returned %d", paymentID, res.StatusCode)
	}

	var p PaymentInfo
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("get payment %s: decode: %w", paymentID, err)
	}
	return &p, nil
}
