package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/syodo-shop/storefront/internal/models"
)

const apiKeyHeader = "x-api-key"

// RemoteProductRepository fetches the catalog from the remote storefront API
type RemoteProductRepository struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRemoteProductRepository creates a repository reading from baseURL
func NewRemoteProductRepository(baseURL, apiKey string, timeout time.Duration) *RemoteProductRepository {
	return &RemoteProductRepository{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetAll downloads the full catalog snapshot
func (r *RemoteProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	apiURL, err := url.JoinPath(r.baseURL, "products")
	if err != nil {
		return nil, fmt.Errorf("join path: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.apiKey != "" {
		req.Header.Set(apiKeyHeader, r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return products, nil
}
