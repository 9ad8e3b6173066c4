package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/opty-search/api/openapi"
	"github.com/donaldgifford/opty-search/internal/api/handlers"
	"github.com/donaldgifford/opty-search/internal/api/middleware"
	"github.com/donaldgifford/opty-search/internal/cache"
	"github.com/donaldgifford/opty-search/internal/catalog"
	"github.com/donaldgifford/opty-search/internal/config"
	"github.com/donaldgifford/opty-search/internal/notify"
	"github.com/donaldgifford/opty-search/internal/search"
	"github.com/donaldgifford/opty-search/internal/store"
	"github.com/donaldgifford/opty-search/pkg/normalize"
	domain "github.com/donaldgifford/opty-search/pkg/types"
)

// app holds the wired components of one server process.
type app struct {
	cfg       *config.Config
	log       *slog.Logger
	backend   normalize.LLMBackend
	fetcher   *catalog.MercadoLivreFetcher
	extractor *catalog.Extractor
	pipeline  *search.Pipeline
	redis     *cache.RedisStore
	users     store.UserStore
	probe     *search.Probe
	closers   []func()
}

// newBackend selects the LLM backend named in cfg.
func newBackend(cfg *config.LLMConfig) (normalize.LLMBackend, error) {
	switch cfg.Backend {
	case config.BackendOpenAI:
		opts := []normalize.OpenAIOption{normalize.WithOpenAIModel(cfg.OpenAI.Model)}
		if cfg.OpenAI.BaseURL != "" {
			opts = append(opts, normalize.WithOpenAIBaseURL(cfg.OpenAI.BaseURL))
		}
		return normalize.NewOpenAIBackend(cfg.OpenAI.APIKey, opts...), nil
	case config.BackendOpenAICompat:
		return normalize.NewOpenAICompatBackend(cfg.OpenAICompat.Endpoint, cfg.OpenAICompat.Model), nil
	case config.BackendOllama:
		return normalize.NewOllamaBackend(cfg.Ollama.Endpoint, cfg.Ollama.Model), nil
	case config.BackendAnthropic:
		var opts []normalize.AnthropicOption
		if cfg.Anthropic.Model != "" {
			opts = append(opts, normalize.WithAnthropicModel(cfg.Anthropic.Model))
		}
		return normalize.NewAnthropicBackend(opts...), nil
	default:
		return nil, fmt.Errorf("unknown llm backend %q", cfg.Backend)
	}
}

func newCatalog(cfg *config.Config, log *slog.Logger) (*catalog.MercadoLivreFetcher, *catalog.Extractor) {
	opts := []catalog.FetcherOption{
		catalog.WithBaseURL(cfg.Catalog.BaseURL),
		catalog.WithTimeout(cfg.Catalog.Timeout),
		catalog.WithFetcherLogger(log),
	}
	if cfg.Catalog.UserAgent != "" {
		opts = append(opts, catalog.WithUserAgent(cfg.Catalog.UserAgent))
	}
	return catalog.NewMercadoLivreFetcher(opts...), catalog.NewExtractor(catalog.WithExtractorLogger(log))
}

// newLLMNormalizer wraps backend with the configured generation settings.
func newLLMNormalizer(cfg *config.LLMConfig, backend normalize.LLMBackend, log *slog.Logger) *normalize.LLMNormalizer {
	return normalize.NewLLMNormalizer(backend,
		normalize.WithTemperature(cfg.Temperature),
		normalize.WithMaxTokens(cfg.MaxTokens),
		normalize.WithTimeout(cfg.Timeout),
		normalize.WithLogger(log),
	)
}

// newPipeline wires the catalog stages behind n. The fetcher and extractor
// are returned for the scheduled layout check.
func newPipeline(
	cfg *config.Config,
	log *slog.Logger,
	n normalize.Normalizer,
) (*search.Pipeline, *catalog.MercadoLivreFetcher, *catalog.Extractor) {
	f, x := newCatalog(cfg, log)
	return search.NewPipeline(n, f, x, search.WithLogger(log)), f, x
}

// newApp wires the search pipeline and the optional dependencies. Callers
// must call close when done.
func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}

	backend, err := newBackend(&cfg.LLM)
	if err != nil {
		return nil, err
	}
	a.backend = backend

	var n normalize.Normalizer = newLLMNormalizer(&cfg.LLM, backend, log)

	if cfg.Cache.Enabled {
		rs, err := cache.NewRedisStore(cache.RedisConfig{
			Addrs:    cfg.Cache.Addrs,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		a.redis = rs
		a.closers = append(a.closers, rs.Close)
		n = cache.NewCachedNormalizer(n, rs, cache.WithTTL(cfg.Cache.TTL), cache.WithLogger(log))
		log.Info("normalization cache enabled", "addrs", cfg.Cache.Addrs, "ttl", cfg.Cache.TTL)
	}

	a.pipeline, a.fetcher, a.extractor = newPipeline(cfg, log, n)

	if cfg.Database.Enabled() {
		s, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), store.WithPoolSize(cfg.Database.PoolSize))
		if err != nil {
			a.close()
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		a.closers = append(a.closers, s.Close)
		if err := s.Migrate(ctx); err != nil {
			a.close()
			return nil, fmt.Errorf("running migrations: %w", err)
		}
		a.users = s
	}

	if cfg.Probe.Enabled {
		p, err := search.NewProbe(a.fetcher, a.extractor,
			domain.NormalizedQuery(cfg.Probe.Term), cfg.Probe.Interval, log,
			search.WithNotifier(newNotifier(&cfg.Probe, log)))
		if err != nil {
			a.close()
			return nil, err
		}
		a.probe = p
	}

	return a, nil
}

// newNotifier returns a Discord notifier when a webhook is configured and a
// logging no-op otherwise.
func newNotifier(cfg *config.ProbeConfig, log *slog.Logger) notify.Notifier {
	if cfg.DiscordWebhookURL == "" {
		return notify.NewNoOpNotifier(log)
	}
	return notify.NewDiscordNotifier(cfg.DiscordWebhookURL)
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *app) buildInfo() handlers.BuildInfo {
	return handlers.BuildInfo{
		Name:         a.cfg.Tracing.ServiceName,
		Version:      Version,
		Commit:       Commit,
		LLMBackend:   a.backend.Name(),
		CacheEnabled: a.redis != nil,
		ProbeEnabled: a.probe != nil,
		UsersEnabled: a.users != nil,
	}
}

// newEcho builds the HTTP surface: middleware, health probes, metrics,
// huma operations and the OpenAPI document.
func newEcho(a *app) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(a.log))
	e.Use(middleware.RequestLog(a.log))
	e.Use(middleware.Metrics())

	var checks []handlers.HealthOption
	if a.users != nil {
		checks = append(checks, handlers.WithReadinessCheck("database", a.users))
	}
	if a.redis != nil {
		checks = append(checks, handlers.WithReadinessCheck("cache", a.redis))
	}
	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(a.buildInfo(), checks...))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Opty Search API", Version))
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(a.pipeline, a.log))
	if a.users != nil {
		handlers.RegisterUserRoutes(api, handlers.NewUsersHandler(a.users, a.log))
	}
	if a.probe != nil {
		handlers.RegisterProbeRoutes(api, handlers.NewProbeHandler(a.probe))
	}
	openapi.RegisterRoutes(e, api)

	return e
}
