package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// FetchDuration returns a timeseries panel showing Mercado Livre page
// fetch latency percentiles.
func FetchDuration() *timeseries.PanelBuilder {
	const h = "opty_catalog_fetch_duration_seconds"
	return timeseries.NewPanelBuilder().
		Title("Fetch Duration").
		Description("Mercado Livre results page fetch duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(Quantile(0.50, h), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, h), "p95", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// FetchErrors returns a timeseries panel showing failed fetches by kind.
func FetchErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Fetch Errors").
		Description("Failed Mercado Livre fetches per second by kind, plus truncated pages").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum by (kind) (rate(opty_catalog_fetch_errors_total[5m]))`,
			"{{kind}}", "A",
		)).
		WithTarget(PromQuery(`rate(opty_catalog_body_truncated_total[5m])`, "truncated", "B")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ExtractionYield returns a timeseries panel comparing extracted products
// with skipped listing containers.
func ExtractionYield() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Extraction Yield").
		Description("Products extracted and listing containers skipped per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`rate(opty_extraction_products_total[5m])`, "products", "A")).
		WithTarget(PromQuery(
			`sum by (reason) (rate(opty_extraction_skipped_total[5m]))`,
			"skipped {{reason}}", "B",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ProbeProducts returns a timeseries panel showing products found by the
// layout probe and failed layout notifications.
func ProbeProducts() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Layout Probe Products").
		Description("Products extracted by the last scheduled layout probe and layout notifications that failed to deliver").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`opty_catalog_probe_products`, "products", "A")).
		WithTarget(PromQuery(
			`increase(opty_notification_failures_total[1h])`,
			"notification failures", "B",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
