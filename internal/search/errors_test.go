package search_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/opty-search/internal/catalog"
	"github.com/donaldgifford/opty-search/internal/search"
	"github.com/donaldgifford/opty-search/pkg/normalize"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		want       search.Category
		wantStatus int
	}{
		{name: "nil", err: nil, want: search.CategoryOK, wantStatus: http.StatusOK},
		{name: "empty query", err: normalize.ErrEmptyQuery, want: search.CategoryInvalidQuery, wantStatus: http.StatusUnprocessableEntity},
		{
			name:       "normalization",
			err:        fmt.Errorf("%w: %w", search.ErrNormalization, errors.New("llm down")),
			want:       search.CategoryNormalization,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "upstream status",
			err:        fmt.Errorf("fetching: %w", &catalog.FetchError{Kind: catalog.ErrUpstreamUnavailable, StatusCode: 500}),
			want:       search.CategoryUpstreamUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "upstream timeout",
			err:        fmt.Errorf("fetching: %w", &catalog.FetchError{Kind: catalog.ErrUpstreamTimeout}),
			want:       search.CategoryUpstreamTimeout,
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "catalog internal",
			err:        &catalog.FetchError{Kind: catalog.ErrInternal},
			want:       search.CategoryInternal,
			wantStatus: http.StatusInternalServerError,
		},
		{name: "unknown", err: errors.New("boom"), want: search.CategoryInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := search.Classify(tt.err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantStatus, got.HTTPStatus())
		})
	}
}
