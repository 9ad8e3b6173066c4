package client

import (
	"context"
	"net/url"

	domain "github.com/donaldgifford/opty-search/pkg/types"
)

// NormalizeResponse is the answer of the normalize endpoint.
type NormalizeResponse struct {
	Query           string `json:"query"`
	NormalizedQuery string `json:"normalized_query"`
}

// Search runs a product search.
func (c *Client) Search(ctx context.Context, query string) (*domain.SearchResult, error) {
	var res domain.SearchResult
	if err := c.post(ctx, "/api/v1/search", map[string]string{"query": query}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SearchMercadoLivre runs a product search through the legacy GET route.
func (c *Client) SearchMercadoLivre(ctx context.Context, query string) ([]domain.Product, error) {
	var products []domain.Product
	path := "/api/v1/search/mercadolivre?" + url.Values{"query": {query}}.Encode()
	if err := c.get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Normalize returns the normalized search term for query.
func (c *Client) Normalize(ctx context.Context, query string) (*NormalizeResponse, error) {
	var res NormalizeResponse
	if err := c.post(ctx, "/api/v1/normalize", map[string]string{"query": query}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
