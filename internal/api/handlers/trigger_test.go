package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/opty-search/internal/api/handlers"
	"github.com/donaldgifford/opty-search/internal/search"
)

// stubProbe implements ProbeRunner for testing.
type stubProbe struct {
	n      int
	err    error
	called bool
}

func (s *stubProbe) RunOnce(_ context.Context) (int, error) {
	s.called = true
	return s.n, s.err
}

func TestProbeHandler_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		probe      *stubProbe
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "layout ok",
			probe:      &stubProbe{n: 48},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"layout_ok":true`, `"products":48`},
		},
		{
			name:       "layout changed",
			probe:      &stubProbe{err: fmt.Errorf("%w (containers=48)", search.ErrLayoutChanged)},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"layout_ok":false`, "containers=48"},
		},
		{
			name:       "catalog unavailable",
			probe:      &stubProbe{err: unavailableErr()},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   []string{"Erro ao acessar Mercado Livre"},
		},
		{
			name:       "catalog timeout",
			probe:      &stubProbe{err: timeoutErr()},
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "unexpected error",
			probe:      &stubProbe{err: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"layout probe failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterProbeRoutes(api, handlers.NewProbeHandler(tt.probe))

			resp := api.Post("/api/v1/probe")

			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.True(t, tt.probe.called)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
			assert.NotContains(t, resp.Body.String(), "boom")
		})
	}
}
