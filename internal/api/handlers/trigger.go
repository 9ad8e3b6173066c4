package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/opty-search/internal/search"
)

// ProbeRunner runs a single layout probe.
type ProbeRunner interface {
	RunOnce(ctx context.Context) (int, error)
}

// ProbeHandler handles manual layout probe requests.
type ProbeHandler struct {
	probe ProbeRunner
}

// NewProbeHandler creates a new ProbeHandler.
func NewProbeHandler(p ProbeRunner) *ProbeHandler {
	return &ProbeHandler{probe: p}
}

// ProbeOutput is the response body for the probe endpoint.
type ProbeOutput struct {
	Body struct {
		LayoutOK bool   `json:"layout_ok"       doc:"Whether the results page still yields products"`
		Products int    `json:"products"        doc:"Products extracted by the probe"                 example:"48"`
		Error    string `json:"error,omitempty" doc:"Why the layout check failed"`
	}
}

// Run fetches and extracts the probe term once. A page that yields no
// products is a successful probe reporting layout_ok=false.
func (h *ProbeHandler) Run(ctx context.Context, _ *struct{}) (*ProbeOutput, error) {
	n, err := h.probe.RunOnce(ctx)

	resp := &ProbeOutput{}
	switch {
	case err == nil:
		resp.Body.LayoutOK = true
		resp.Body.Products = n
		return resp, nil
	case errors.Is(err, search.ErrLayoutChanged):
		resp.Body.Error = err.Error()
		return resp, nil
	}

	switch search.Classify(err) {
	case search.CategoryUpstreamUnavailable:
		return nil, huma.Error503ServiceUnavailable(msgUpstreamUnavailable)
	case search.CategoryUpstreamTimeout:
		return nil, huma.Error504GatewayTimeout(msgUpstreamTimeout)
	default:
		return nil, huma.Error500InternalServerError("layout probe failed")
	}
}

// RegisterProbeRoutes registers the probe trigger endpoint with the Huma API.
func RegisterProbeRoutes(api huma.API, h *ProbeHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "run-probe",
		Method:      http.MethodPost,
		Path:        "/api/v1/probe",
		Summary:     "Run the layout probe",
		Description: "Fetches the results page for the probe term and reports whether " +
			"the extractor still finds products on it.",
		Tags: []string{"probe"},
		Errors: []int{
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
			http.StatusInternalServerError,
		},
	}, h.Run)
}
