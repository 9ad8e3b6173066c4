package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SearchOutcomes returns a timeseries panel showing search runs per second
// stacked by outcome.
func SearchOutcomes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Searches by Outcome").
		Description("Search pipeline runs per second by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum by (outcome) (rate(opty_search_requests_total[5m]))`,
			"{{outcome}}", "A",
		)).
		Unit("reqps").
		FillOpacity(30).
		LineWidth(1).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SearchDuration returns a timeseries panel showing end-to-end search
// latency percentiles.
func SearchDuration() *timeseries.PanelBuilder {
	const h = "opty_search_duration_seconds"
	return timeseries.NewPanelBuilder().
		Title("Search Duration").
		Description("End-to-end search pipeline duration percentiles").
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
		Thresholds(ThresholdsGreenYellowRed(10, 30)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ProductsDistribution returns a bar gauge panel showing how many products
// successful searches returned over the last hour.
func ProductsDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Products per Search").
		Description("Distribution of products returned per successful search (1h)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			`sum(increase(opty_search_products_bucket{job="opty-search"}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
