// Package search sequences query normalization, catalog fetching and
// listing extraction into one search operation.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/opty-search/internal/catalog"
	"github.com/donaldgifford/opty-search/internal/metrics"
	"github.com/donaldgifford/opty-search/pkg/normalize"
	domain "github.com/donaldgifford/opty-search/pkg/types"
)

const tracerName = "github.com/donaldgifford/opty-search/internal/search"

// Searcher runs searches for the API layer.
type Searcher interface {
	Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResult, error)
	Normalize(ctx context.Context, q domain.SearchQuery) (domain.NormalizedQuery, error)
}

var _ Searcher = (*Pipeline)(nil)

// Pipeline runs Normalize, Fetch and Extract for one query. It holds no
// per-request state and is safe for concurrent use.
type Pipeline struct {
	normalizer normalize.Normalizer
	fetcher    catalog.Fetcher
	extractor  *catalog.Extractor
	tracer     trace.Tracer
	log        *slog.Logger
}

// PipelineOption configures the Pipeline.
type PipelineOption func(*Pipeline)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.log = l
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) PipelineOption {
	return func(p *Pipeline) {
		p.tracer = t
	}
}

// NewPipeline creates a Pipeline with injected stages.
func NewPipeline(
	n normalize.Normalizer,
	f catalog.Fetcher,
	x *catalog.Extractor,
	opts ...PipelineOption,
) *Pipeline {
	p := &Pipeline{
		normalizer: n,
		fetcher:    f,
		extractor:  x,
		tracer:     otel.Tracer(tracerName),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Search normalizes q, fetches the results page for the normalized term and
// extracts its products. Errors are classified with Classify; a panic in any
// stage is reported as ErrInternal.
func (p *Pipeline) Search(ctx context.Context, q domain.SearchQuery) (res *domain.SearchResult, err error) {
	start := time.Now()
	ctx, span := p.tracer.Start(ctx, "search.Search")
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			p.log.Error("search pipeline panicked", "query", q, "panic", fmt.Sprint(r))
			res, err = nil, fmt.Errorf("%w: %v", ErrInternal, r)
		}

		cat := Classify(err)
		metrics.SearchRequestsTotal.WithLabelValues(string(cat)).Inc()
		metrics.SearchDuration.Observe(time.Since(start).Seconds())

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(cat))
			p.log.Warn("search failed",
				"query", q,
				"category", cat,
				"duration", time.Since(start),
				"error", err,
			)
		}
	}()

	term, err := p.Normalize(ctx, q)
	if err != nil {
		return nil, err
	}

	body, err := p.fetch(ctx, term)
	if err != nil {
		return nil, err
	}

	ext, err := p.extract(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	metrics.SearchProducts.Observe(float64(len(ext.Products)))
	span.SetAttributes(
		attribute.Int("search.products", len(ext.Products)),
		attribute.Int("search.skipped", ext.Skipped),
	)

	p.log.Info("search completed",
		"query", q,
		"term", term,
		"products", len(ext.Products),
		"containers", ext.Containers,
		"skipped", ext.Skipped,
		"duration", time.Since(start),
	)

	return &domain.SearchResult{
		Query:           q,
		NormalizedQuery: term,
		Products:        ext.Products,
		Total:           len(ext.Products),
		Skipped:         ext.Skipped,
	}, nil
}

// Normalize runs only the normalization stage. Failures other than an
// empty query are wrapped with ErrNormalization.
func (p *Pipeline) Normalize(ctx context.Context, q domain.SearchQuery) (domain.NormalizedQuery, error) {
	ctx, span := p.tracer.Start(ctx, "search.Normalize")
	defer span.End()

	start := time.Now()
	term, err := p.normalizer.Normalize(ctx, q)
	metrics.NormalizationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "normalization failed")
		if isEmptyQuery(err) {
			return "", err
		}
		metrics.NormalizationFailuresTotal.Inc()
		return "", fmt.Errorf("%w: %w", ErrNormalization, err)
	}

	span.SetAttributes(attribute.String("search.term", string(term)))
	return term, nil
}

func (p *Pipeline) fetch(ctx context.Context, term domain.NormalizedQuery) ([]byte, error) {
	ctx, span := p.tracer.Start(ctx, "search.Fetch")
	defer span.End()

	body, err := p.fetcher.Fetch(ctx, term)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, catalog.KindLabel(err))
		return nil, fmt.Errorf("fetching results for %q: %w", term, err)
	}
	span.SetAttributes(attribute.Int("catalog.bytes", len(body)))
	return body, nil
}

func (p *Pipeline) extract(ctx context.Context, body []byte) (*catalog.Extraction, error) {
	_, span := p.tracer.Start(ctx, "search.Extract")
	defer span.End()

	ext, err := p.extractor.Extract(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "extraction failed")
		return nil, err
	}
	span.SetAttributes(attribute.Int("catalog.containers", ext.Containers))
	return ext, nil
}

func isEmptyQuery(err error) bool {
	return Classify(err) == CategoryInvalidQuery
}
