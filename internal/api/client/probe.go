package client

import "context"

// ProbeResult is the answer of the layout probe endpoint.
type ProbeResult struct {
	LayoutOK bool   `json:"layout_ok"`
	Products int    `json:"products"`
	Error    string `json:"error,omitempty"`
}

// RunProbe triggers one layout probe on the server.
func (c *Client) RunProbe(ctx context.Context) (*ProbeResult, error) {
	var res ProbeResult
	if err := c.post(ctx, "/api/v1/probe", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
