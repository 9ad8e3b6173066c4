// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/opty-search/tools/dashgen/panels"
)

// BuildOverview constructs the Opty Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Opty Overview").
		Uid("opty-overview").
		Tags([]string{"opty", "opty-search"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.LayoutStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Search.
	b.WithRow(dashboard.NewRowBuilder("Search").
		WithPanel(panels.SearchOutcomes()).
		WithPanel(panels.SearchDuration()).
		WithPanel(panels.ProductsDistribution()))

	// Row 4: Normalization.
	b.WithRow(dashboard.NewRowBuilder("Normalization").
		WithPanel(panels.NormalizationDuration()).
		WithPanel(panels.NormalizationFailures()).
		WithPanel(panels.CacheHitRatio()))

	// Row 5: Catalog.
	b.WithRow(dashboard.NewRowBuilder("Catalog").
		WithPanel(panels.FetchDuration()).
		WithPanel(panels.FetchErrors()).
		WithPanel(panels.ExtractionYield()).
		WithPanel(panels.ProbeProducts()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
