package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/opty-search/internal/catalog"
	"github.com/donaldgifford/opty-search/internal/search"
	domain "github.com/donaldgifford/opty-search/pkg/types"
)

// User-facing error messages. They never carry internal error detail.
const (
	msgUpstreamUnavailable = "Erro ao acessar Mercado Livre"
	msgUpstreamTimeout     = "Erro de conexão ou timeout ao acessar Mercado Livre."
	msgInternal            = "Erro interno ao processar dados de scraping."
	msgNormalization       = "Erro ao normalizar a consulta de busca."
	msgEmptyQuery          = "A consulta de busca não pode ser vazia."
)

// SearchHandler serves the product search endpoints.
type SearchHandler struct {
	searcher search.Searcher
	log      *slog.Logger
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(s search.Searcher, log *slog.Logger) *SearchHandler {
	if log == nil {
		log = slog.Default()
	}
	return &SearchHandler{searcher: s, log: log}
}

// SearchInput is the request body for the search endpoint.
type SearchInput struct {
	Body struct {
		Query string `json:"query" minLength:"1" maxLength:"500" doc:"Free-text search query" example:"fone bluetooth barato"`
	}
}

// SearchOutput is the response body for the search endpoint.
type SearchOutput struct {
	Body domain.SearchResult
}

// MercadoLivreInput is the query string of the legacy listing endpoint.
type MercadoLivreInput struct {
	Query string `query:"query" required:"true" minLength:"1" maxLength:"500" doc:"Free-text search query" example:"fone de ouvido"`
}

// MercadoLivreOutput is the bare product array of the legacy endpoint.
type MercadoLivreOutput struct {
	Body []domain.Product
}

// NormalizeInput is the request body for the normalize endpoint.
type NormalizeInput struct {
	Body struct {
		Query string `json:"query" minLength:"1" maxLength:"500" doc:"Free-text search query" example:"quero um fone bluetooth barato"`
	}
}

// NormalizeOutput is the response body for the normalize endpoint.
type NormalizeOutput struct {
	Body struct {
		Query           string `json:"query"            doc:"Query as submitted"`
		NormalizedQuery string `json:"normalized_query" doc:"Canonical search term" example:"fone bluetooth"`
	}
}

// Search runs the full pipeline and returns the result envelope.
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	res, err := h.searcher.Search(ctx, domain.SearchQuery(input.Body.Query))
	if err != nil {
		return nil, h.searchError(err)
	}
	return &SearchOutput{Body: *res}, nil
}

// MercadoLivre runs the pipeline and returns only the products.
func (h *SearchHandler) MercadoLivre(
	ctx context.Context,
	input *MercadoLivreInput,
) (*MercadoLivreOutput, error) {
	res, err := h.searcher.Search(ctx, domain.SearchQuery(input.Query))
	if err != nil {
		return nil, h.searchError(err)
	}

	products := res.Products
	if products == nil {
		products = []domain.Product{}
	}
	return &MercadoLivreOutput{Body: products}, nil
}

// Normalize returns the canonical search term for a query without fetching.
func (h *SearchHandler) Normalize(
	ctx context.Context,
	input *NormalizeInput,
) (*NormalizeOutput, error) {
	term, err := h.searcher.Normalize(ctx, domain.SearchQuery(input.Body.Query))
	if err != nil {
		return nil, h.searchError(err)
	}

	out := &NormalizeOutput{}
	out.Body.Query = input.Body.Query
	out.Body.NormalizedQuery = string(term)
	return out, nil
}

// searchError converts a pipeline error into a huma status error.
func (h *SearchHandler) searchError(err error) error {
	category := search.Classify(err)

	switch category {
	case search.CategoryInvalidQuery:
		return huma.Error422UnprocessableEntity(msgEmptyQuery)
	case search.CategoryNormalization:
		h.log.Warn("search normalization failed", "error", err)
		return huma.Error502BadGateway(msgNormalization)
	case search.CategoryUpstreamUnavailable:
		h.log.Warn("catalog unavailable", "error", err)
		msg := msgUpstreamUnavailable
		var fe *catalog.FetchError
		if errors.As(err, &fe) && fe.StatusCode != 0 {
			msg = fmt.Sprintf("%s: %d", msgUpstreamUnavailable, fe.StatusCode)
		}
		return huma.Error503ServiceUnavailable(msg)
	case search.CategoryUpstreamTimeout:
		h.log.Warn("catalog timeout", "error", err)
		return huma.Error504GatewayTimeout(msgUpstreamTimeout)
	default:
		h.log.Error("search failed", "error", err)
		return huma.Error500InternalServerError(msgInternal)
	}
}

// RegisterSearchRoutes registers search endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	searchErrors := []int{
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
	}

	huma.Register(api, huma.Operation{
		OperationID: "search-products",
		Method:      http.MethodPost,
		Path:        "/api/v1/search",
		Summary:     "Search products",
		Description: "Normalizes the query, fetches the Mercado Livre results page and returns the extracted products.",
		Tags:        []string{"search"},
		Errors:      searchErrors,
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "search-mercadolivre",
		Method:      http.MethodGet,
		Path:        "/api/v1/search/mercadolivre",
		Summary:     "Search Mercado Livre",
		Description: "Same pipeline as search-products, returning the bare product array.",
		Tags:        []string{"search"},
		Errors:      searchErrors,
	}, h.MercadoLivre)

	huma.Register(api, huma.Operation{
		OperationID: "normalize-query",
		Method:      http.MethodPost,
		Path:        "/api/v1/normalize",
		Summary:     "Normalize a query",
		Description: "Returns the canonical search term the language model produces for a query.",
		Tags:        []string{"search"},
		Errors:      []int{http.StatusBadGateway},
	}, h.Normalize)
}
