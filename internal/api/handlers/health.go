// Package handlers implements the HTTP handlers of the opty-search API.
package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger is a dependency whose reachability gates readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BuildInfo describes the running service for /info.
type BuildInfo struct {
	Name         string `json:"name"          example:"opty-search"`
	Version      string `json:"version"       example:"v0.3.0"`
	Commit       string `json:"commit"        example:"a1b2c3d"`
	LLMBackend   string `json:"llm_backend"   example:"openai"`
	CacheEnabled bool   `json:"cache_enabled"`
	ProbeEnabled bool   `json:"probe_enabled"`
	UsersEnabled bool   `json:"users_enabled"`
}

// HealthHandler provides health, readiness and info endpoints.
type HealthHandler struct {
	checks map[string]Pinger
	order  []string
	info   BuildInfo
}

// HealthOption configures the HealthHandler.
type HealthOption func(*HealthHandler)

// WithReadinessCheck adds a dependency that must answer Ping for /readyz
// to report ready.
func WithReadinessCheck(name string, p Pinger) HealthOption {
	return func(h *HealthHandler) {
		if _, ok := h.checks[name]; !ok {
			h.order = append(h.order, name)
		}
		h.checks[name] = p
	}
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(info BuildInfo, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{
		checks: make(map[string]Pinger),
		info:   info,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if every readiness check passes, 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	var failed []string
	for _, name := range h.order {
		if err := h.checks[name].Ping(c.Request().Context()); err != nil {
			failed = append(failed, name)
		}
	}

	if len(failed) > 0 {
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{
			Status: "unavailable",
			Failed: failed,
		})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}

// Info returns the build and feature summary of the service.
func (h *HealthHandler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, h.info)
}

// RegisterHealthRoutes mounts the operational endpoints on e.
func RegisterHealthRoutes(e *echo.Echo, h *HealthHandler) {
	e.GET("/healthz", h.Healthz)
	e.GET("/readyz", h.Readyz)
	e.GET("/info", h.Info)
}
