package catalog_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/opty-search/internal/catalog"
	"github.com/donaldgifford/opty-search/internal/metrics"
	"github.com/donaldgifford/opty-search/pkg/logger"
	domain "github.com/donaldgifford/opty-search/pkg/types"
)

func TestMercadoLivreFetcher_SearchURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		term domain.NormalizedQuery
		want string
	}{
		{term: "Fone de Ouvido", want: "https://lista.mercadolivre.com.br/Fone+de+Ouvido"},
		{term: "Tênis de Corrida", want: "https://lista.mercadolivre.com.br/T%C3%AAnis+de+Corrida"},
		{term: "Carregador 20W/USB-C", want: "https://lista.mercadolivre.com.br/Carregador+20W%2FUSB-C"},
	}

	f := catalog.NewMercadoLivreFetcher()
	for _, tt := range tests {
		t.Run(string(tt.term), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, f.SearchURL(tt.term))
		})
	}
}

func TestMercadoLivreFetcher_Fetch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		handler  http.HandlerFunc
		timeout  time.Duration
		wantBody string
		wantKind error
		wantCode int
	}{
		{
			name: "success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/Fone+de+Ouvido", r.RequestURI)
				assert.Equal(t, catalog.DefaultUserAgent, r.Header.Get("User-Agent"))
				_, _ = w.Write([]byte("<html>ok</html>"))
			},
			wantBody: "<html>ok</html>",
		},
		{
			name: "redirect followed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/final" {
					_, _ = w.Write([]byte("<html>moved</html>"))
					return
				}
				http.Redirect(w, r, "/final", http.StatusMovedPermanently)
			},
			wantBody: "<html>moved</html>",
		},
		{
			name: "server error is unavailable",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantKind: catalog.ErrUpstreamUnavailable,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "blocked is unavailable",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			wantKind: catalog.ErrUpstreamUnavailable,
			wantCode: http.StatusForbidden,
		},
		{
			name: "slow upstream times out",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-time.After(2 * time.Second):
				case <-r.Context().Done():
				}
				_, _ = w.Write([]byte("late"))
			},
			timeout:  50 * time.Millisecond,
			wantKind: catalog.ErrUpstreamTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			opts := []catalog.FetcherOption{
				catalog.WithBaseURL(srv.URL + "/"),
				catalog.WithHTTPClient(&http.Client{}),
			}
			if tt.timeout > 0 {
				opts = append(opts, catalog.WithTimeout(tt.timeout))
			}
			f := catalog.NewMercadoLivreFetcher(opts...)

			body, err := f.Fetch(context.Background(), "Fone de Ouvido")
			if tt.wantKind != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantKind)
				assert.Nil(t, body)

				var fe *catalog.FetchError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, tt.wantCode, fe.StatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestMercadoLivreFetcher_Fetch_ConnectionRefused(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL + "/"
	srv.Close()

	f := catalog.NewMercadoLivreFetcher(catalog.WithBaseURL(base))
	_, err := f.Fetch(context.Background(), "Cafeteira")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrUpstreamTimeout)
}

func TestMercadoLivreFetcher_Fetch_ContextDeadline(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	f := catalog.NewMercadoLivreFetcher(catalog.WithBaseURL(srv.URL + "/"))
	_, err := f.Fetch(ctx, "Esteira")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrUpstreamTimeout)
}

func TestMercadoLivreFetcher_Fetch_UnreachableIsTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		server func() *httptest.Server
	}{
		{
			name: "untrusted certificate",
			server: func() *httptest.Server {
				return httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					_, _ = w.Write([]byte("<html>ok</html>"))
				}))
			},
		},
		{
			name: "redirect loop",
			server: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					http.Redirect(w, r, r.URL.RequestURI(), http.StatusFound)
				}))
			},
		},
		{
			name: "connection lost while reading body",
			server: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					hj, ok := w.(http.Hijacker)
					if !ok {
						return
					}
					conn, buf, err := hj.Hijack()
					if err != nil {
						return
					}
					defer conn.Close()
					_, _ = buf.WriteString("HTTP/1.1 200 OK\r\nContent-Type: text/html\r\nContent-Length: 1000\r\n\r\n<html>partial")
					_ = buf.Flush()
				}))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := tt.server()
			defer srv.Close()

			f := catalog.NewMercadoLivreFetcher(catalog.WithBaseURL(srv.URL + "/"))
			_, err := f.Fetch(context.Background(), "Fone de Ouvido")
			require.Error(t, err)
			assert.ErrorIs(t, err, catalog.ErrUpstreamTimeout)
			assert.Equal(t, "upstream_timeout", catalog.KindLabel(err))
		})
	}
}

func TestMercadoLivreFetcher_Fetch_BodyLimit(t *testing.T) {
	t.Parallel()

	page := strings.Repeat("a", 64)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	t.Run("within limit", func(t *testing.T) {
		f := catalog.NewMercadoLivreFetcher(
			catalog.WithBaseURL(srv.URL+"/"),
			catalog.WithMaxBodyBytes(64),
		)
		before := testutil.ToFloat64(metrics.CatalogBodyTruncatedTotal)

		body, err := f.Fetch(context.Background(), "Mouse")
		require.NoError(t, err)
		assert.Equal(t, page, string(body))
		assert.InDelta(t, before, testutil.ToFloat64(metrics.CatalogBodyTruncatedTotal), 1e-9)
	})

	t.Run("over limit is cut and counted", func(t *testing.T) {
		f := catalog.NewMercadoLivreFetcher(
			catalog.WithBaseURL(srv.URL+"/"),
			catalog.WithMaxBodyBytes(16),
			catalog.WithFetcherLogger(logger.Discard()),
		)
		before := testutil.ToFloat64(metrics.CatalogBodyTruncatedTotal)

		body, err := f.Fetch(context.Background(), "Mouse")
		require.NoError(t, err)
		assert.Len(t, body, 16)
		assert.InDelta(t, before+1, testutil.ToFloat64(metrics.CatalogBodyTruncatedTotal), 1e-9)
	})
}

func TestMercadoLivreFetcher_Fetch_Internal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		term domain.NormalizedQuery
	}{
		{name: "malformed base url", base: "://no-scheme/", term: "Mouse"},
		{name: "unsupported scheme", base: "ftp://lista.mercadolivre.com.br/", term: "Mouse"},
		{name: "blank term", base: catalog.DefaultBaseURL, term: "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := catalog.NewMercadoLivreFetcher(catalog.WithBaseURL(tt.base))
			_, err := f.Fetch(context.Background(), tt.term)
			require.Error(t, err)
			assert.ErrorIs(t, err, catalog.ErrInternal)
			assert.False(t, errors.Is(err, catalog.ErrUpstreamTimeout))
		})
	}
}

func TestKindLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "upstream_unavailable", catalog.KindLabel(&catalog.FetchError{Kind: catalog.ErrUpstreamUnavailable}))
	assert.Equal(t, "upstream_timeout", catalog.KindLabel(&catalog.FetchError{Kind: catalog.ErrUpstreamTimeout}))
	assert.Equal(t, "internal", catalog.KindLabel(errors.New("other")))
}
