package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/opty-search/internal/catalog"
	"github.com/donaldgifford/opty-search/internal/metrics"
	"github.com/donaldgifford/opty-search/internal/notify"
	domain "github.com/donaldgifford/opty-search/pkg/types"
)

// DefaultProbeTerm is a query that always has listings on Mercado Livre.
const DefaultProbeTerm = "fone de ouvido"

// ErrLayoutChanged is returned by a probe run that found no products.
var ErrLayoutChanged = errors.New("results page yielded no products")

type layoutState int

const (
	layoutUnknown layoutState = iota
	layoutOK
	layoutBroken
)

// Probe periodically runs a canary search without the language model and
// reports whether the results page layout still yields products.
type Probe struct {
	cron      *cron.Cron
	fetcher   catalog.Fetcher
	extractor *catalog.Extractor
	term      domain.NormalizedQuery
	timeout   time.Duration
	notifier  notify.Notifier
	log       *slog.Logger

	mu    sync.Mutex
	state layoutState
}

// ProbeOption configures a Probe.
type ProbeOption func(*Probe)

// WithNotifier sets the notifier told about layout changes and recoveries.
func WithNotifier(n notify.Notifier) ProbeOption {
	return func(p *Probe) {
		p.notifier = n
	}
}

// NewProbe creates a Probe that runs every interval.
func NewProbe(
	f catalog.Fetcher,
	x *catalog.Extractor,
	term domain.NormalizedQuery,
	interval time.Duration,
	log *slog.Logger,
	opts ...ProbeOption,
) (*Probe, error) {
	if term == "" {
		term = DefaultProbeTerm
	}

	p := &Probe{
		cron:      cron.New(),
		fetcher:   f,
		extractor: x,
		term:      term,
		timeout:   catalog.DefaultTimeout + 5*time.Second,
		notifier:  notify.NewNoOpNotifier(log),
		log:       log,
	}
	for _, opt := range opts {
		opt(p)
	}

	if _, err := p.cron.AddFunc("@every "+interval.String(), p.run); err != nil {
		return nil, fmt.Errorf("scheduling layout probe: %w", err)
	}

	return p, nil
}

// Start begins running scheduled probes.
func (p *Probe) Start() {
	p.log.Info("layout probe started", "term", p.term)
	p.cron.Start()
}

// Stop stops the scheduler; the returned context is done once a running
// probe has finished.
func (p *Probe) Stop() context.Context {
	p.log.Info("layout probe stopping")
	return p.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (p *Probe) Entries() []cron.Entry {
	return p.cron.Entries()
}

// RunOnce executes a single probe and updates the layout gauges. It returns
// the number of extracted products. The notifier is called when the layout
// breaks and again when it recovers; fetch failures change neither.
func (p *Probe) RunOnce(ctx context.Context) (int, error) {
	body, err := p.fetcher.Fetch(ctx, p.term)
	if err != nil {
		metrics.ProbeRunsTotal.WithLabelValues("fetch_error").Inc()
		return 0, fmt.Errorf("fetching probe page: %w", err)
	}

	ext, err := p.extractor.Extract(body)
	if err != nil {
		metrics.ProbeRunsTotal.WithLabelValues("parse_error").Inc()
		metrics.CatalogLayoutOK.Set(0)
		metrics.CatalogProbeProducts.Set(0)
		err = fmt.Errorf("parsing probe page: %w", err)
		p.transition(ctx, layoutBroken, &notify.LayoutEvent{Err: err.Error()})
		return 0, err
	}

	n := len(ext.Products)
	metrics.CatalogProbeProducts.Set(float64(n))
	if n == 0 {
		metrics.CatalogLayoutOK.Set(0)
		metrics.ProbeRunsTotal.WithLabelValues("empty").Inc()
		err = fmt.Errorf("%w (containers=%d)", ErrLayoutChanged, ext.Containers)
		p.transition(ctx, layoutBroken, &notify.LayoutEvent{
			Containers: ext.Containers,
			Err:        err.Error(),
		})
		return 0, err
	}

	metrics.CatalogLayoutOK.Set(1)
	metrics.ProbeRunsTotal.WithLabelValues("ok").Inc()
	p.transition(ctx, layoutOK, &notify.LayoutEvent{
		Products:   n,
		Containers: ext.Containers,
	})
	return n, nil
}

// transition records the new layout state and notifies on a break or on
// recovery from one.
func (p *Probe) transition(ctx context.Context, next layoutState, ev *notify.LayoutEvent) {
	p.mu.Lock()
	prev := p.state
	p.state = next
	p.mu.Unlock()

	switch {
	case next == layoutBroken && prev != layoutBroken:
	case next == layoutOK && prev == layoutBroken:
		ev.Recovered = true
	default:
		return
	}

	ev.Term = p.term
	ev.At = time.Now()
	if err := p.notifier.NotifyLayout(ctx, ev); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		p.log.Warn("layout notification failed",
			"term", p.term,
			"recovered", ev.Recovered,
			"error", err,
		)
	}
}

func (p *Probe) run() {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	n, err := p.RunOnce(ctx)
	if err != nil {
		// Fetch failures say nothing about the layout; leave the gauge alone.
		p.log.Warn("layout probe failed", "term", p.term, "error", err)
		return
	}
	p.log.Info("layout probe ok", "term", p.term, "products", n)
}
