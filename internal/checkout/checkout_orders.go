package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OrdersClient talks to the commerce backend's order endpoints.
type OrdersClient interface {
	PlaceOrder(ctx context.Context, req OrderRequest) (OrderResponse, error)
	GetOrder(ctx context.Context, orderID string) (json.RawMessage, error)
}

type ordersHTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewOrdersClient(baseURL string) OrdersClient {
	return &ordersHTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *ordersHTTPClient) PlaceOrder(ctx context.Context, order OrderRequest) (OrderResponse, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return OrderResponse{}, fmt.Errorf("encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return OrderResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return OrderResponse{}, fmt.Errorf("place order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return OrderResponse{}, fmt.Errorf("place order: backend returned %s", resp.Status)
	}

	var placed OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&placed); err != nil {
		return OrderResponse{}, fmt.Errorf("decode order response: %w", err)
	}
	return placed, nil
}

func (c *ordersHTTPClient) GetOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/orders/"+orderID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrOrderNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get order: backend returned %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read order response: %w", err)
	}

	// Some backends nest the record under an "order" key, unwrap when present.
	var wrapper struct {
		Order json.RawMessage `json:"order"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && len(wrapper.Order) > 0 {
		return wrapper.Order, nil
	}
	return json.RawMessage(raw), nil
}
