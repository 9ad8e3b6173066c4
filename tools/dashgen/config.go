package main

import "errors"

// KnownMetrics is the set of metric names exported by opty-search plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"opty_http_request_duration_seconds": true,
	"opty_http_requests_total":           true,

	// Health metrics.
	"opty_healthz_up": true,
	"opty_readyz_up":  true,

	// Search pipeline metrics.
	"opty_search_requests_total":   true,
	"opty_search_duration_seconds": true,
	"opty_search_products":         true,

	// Normalization metrics.
	"opty_normalization_duration_seconds": true,
	"opty_normalization_failures_total":   true,
	"opty_normalization_cache_total":      true,

	// Catalog metrics.
	"opty_catalog_fetch_duration_seconds": true,
	"opty_catalog_fetch_errors_total":     true,
	"opty_catalog_body_truncated_total":   true,
	"opty_extraction_products_total":      true,
	"opty_extraction_skipped_total":       true,

	// Layout probe metrics.
	"opty_catalog_layout_ok":      true,
	"opty_catalog_probe_products": true,
	"opty_probe_runs_total":       true,

	// Notification metrics.
	"opty_notification_duration_seconds": true,
	"opty_notification_failures_total":   true,

	// Recording rules.
	"opty:http_requests:rate5m":            true,
	"opty:http_errors:rate5m":              true,
	"opty:search_requests:rate5m":          true,
	"opty:search_upstream_errors:rate5m":   true,
	"opty:normalization_failures:rate5m":   true,
	"opty:normalization_cache_hit:ratio1h": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
