package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher loads the full product collection from the commerce backend. It is
// used once at startup and again whenever a resync is requested.
type Fetcher struct {
	baseURL string
	client  *http.Client
}

func NewFetcher(baseURL string) *Fetcher {
	return &Fetcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchProducts GETs the products collection. The backend returns either a
// bare array or an object with a products field, depending on its version.
func (f *Fetcher) FetchProducts(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/products", nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch products: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	var products []Product
	if err := json.Unmarshal(body, &products); err == nil {
		return products, nil
	}

	var wrapped struct {
		Products []Product `json:"products"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("fetch products: decode response: %w", err)
	}
	return wrapped.Products, nil
}
