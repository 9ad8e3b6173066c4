package normalize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domain "github.com/donaldgifford/opty-search/pkg/types"
)

// Normalization errors.
var (
	ErrEmptyQuery             = errors.New("search query is empty")
	ErrEmptyNormalization     = errors.New("model returned an empty normalization")
	ErrMalformedNormalization = errors.New("model returned a malformed normalization")
)

const (
	defaultTemperature = 0
	defaultMaxTokens   = 32
	defaultTimeout     = 30 * time.Second
)

// LLMNormalizer implements Normalizer with a single chat exchange.
type LLMNormalizer struct {
	backend     LLMBackend
	temperature float64
	maxTokens   int
	timeout     time.Duration
	log         *slog.Logger
}

// LLMNormalizerOption configures the LLMNormalizer.
type LLMNormalizerOption func(*LLMNormalizer)

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) LLMNormalizerOption {
	return func(n *LLMNormalizer) {
		n.temperature = t
	}
}

// WithMaxTokens caps the reply length.
func WithMaxTokens(limit int) LLMNormalizerOption {
	return func(n *LLMNormalizer) {
		if limit > 0 {
			n.maxTokens = limit
		}
	}
}

// WithTimeout bounds each backend call. Zero disables the bound.
func WithTimeout(d time.Duration) LLMNormalizerOption {
	return func(n *LLMNormalizer) {
		n.timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) LLMNormalizerOption {
	return func(n *LLMNormalizer) {
		n.log = l
	}
}

// NewLLMNormalizer creates a new LLMNormalizer.
func NewLLMNormalizer(backend LLMBackend, opts ...LLMNormalizerOption) *LLMNormalizer {
	n := &LLMNormalizer{
		backend:     backend,
		temperature: defaultTemperature,
		maxTokens:   defaultMaxTokens,
		timeout:     defaultTimeout,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Backend returns the name of the wrapped backend.
func (n *LLMNormalizer) Backend() string {
	return n.backend.Name()
}

// Normalize asks the model for the canonical search term of q. There is no
// retry and no fallback term: any failure is returned to the caller.
func (n *LLMNormalizer) Normalize(
	ctx context.Context,
	q domain.SearchQuery,
) (domain.NormalizedQuery, error) {
	query := strings.TrimSpace(string(q))
	if query == "" {
		return "", ErrEmptyQuery
	}

	msgs, err := BuildMessages(query)
	if err != nil {
		return "", err
	}

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	resp, err := n.backend.Generate(ctx, GenerateRequest{
		Messages:    msgs,
		Temperature: n.temperature,
		MaxTokens:   n.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("normalizing query with %s: %w", n.backend.Name(), err)
	}

	term, err := Sanitize(resp.Content)
	if err != nil {
		n.log.Warn("unusable normalization reply",
			"backend", n.backend.Name(),
			"reply", truncate(resp.Content, 200),
			"error", err,
		)
		return "", fmt.Errorf("normalizing query with %s: %w", n.backend.Name(), err)
	}

	n.log.Debug("query normalized",
		"query", query,
		"term", term,
		"model", resp.Model,
		"tokens", resp.Usage.TotalTokens,
	)

	return term, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
