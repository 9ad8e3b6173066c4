package search

import (
	"errors"
	"net/http"

	"github.com/donaldgifford/opty-search/internal/catalog"
	"github.com/donaldgifford/opty-search/pkg/normalize"
)

// Pipeline failure sentinels. Fetch failures keep the catalog sentinels
// (catalog.ErrUpstreamUnavailable, catalog.ErrUpstreamTimeout).
var (
	ErrNormalization = errors.New("query normalization failed")
	ErrInternal      = errors.New("internal search error")
)

// Category is the boundary-facing classification of a pipeline error.
type Category string

// Error categories.
const (
	CategoryOK                  Category = "ok"
	CategoryInvalidQuery        Category = "invalid_query"
	CategoryNormalization       Category = "normalization_failed"
	CategoryUpstreamUnavailable Category = "upstream_unavailable"
	CategoryUpstreamTimeout     Category = "upstream_timeout"
	CategoryInternal            Category = "internal"
)

// Classify maps err to its Category. A nil error is CategoryOK.
func Classify(err error) Category {
	switch {
	case err == nil:
		return CategoryOK
	case errors.Is(err, normalize.ErrEmptyQuery):
		return CategoryInvalidQuery
	case errors.Is(err, ErrNormalization):
		return CategoryNormalization
	case errors.Is(err, catalog.ErrUpstreamUnavailable):
		return CategoryUpstreamUnavailable
	case errors.Is(err, catalog.ErrUpstreamTimeout):
		return CategoryUpstreamTimeout
	default:
		return CategoryInternal
	}
}

// HTTPStatus returns the status code reported for c.
func (c Category) HTTPStatus() int {
	switch c {
	case CategoryOK:
		return http.StatusOK
	case CategoryInvalidQuery:
		return http.StatusUnprocessableEntity
	case CategoryNormalization:
		return http.StatusBadGateway
	case CategoryUpstreamUnavailable:
		return http.StatusServiceUnavailable
	case CategoryUpstreamTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
