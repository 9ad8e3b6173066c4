package client

import "context"

// ServiceInfo is the build summary served at /info.
type ServiceInfo struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	Commit       string `json:"commit"`
	LLMBackend   string `json:"llm_backend"`
	CacheEnabled bool   `json:"cache_enabled"`
	ProbeEnabled bool   `json:"probe_enabled"`
	UsersEnabled bool   `json:"users_enabled"`
}

// Info returns the service build summary.
func (c *Client) Info(ctx context.Context) (*ServiceInfo, error) {
	var info ServiceInfo
	if err := c.get(ctx, "/info", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Ready returns nil when /readyz answers 200.
func (c *Client) Ready(ctx context.Context) error {
	return c.get(ctx, "/readyz", nil)
}
