package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/opty-search/tools/dashgen/rules"
)

var known = map[string]bool{
	"opty_http_requests_total":           true,
	"opty_http_request_duration_seconds": true,
	"opty:http_requests:rate5m":          true,
}

func TestExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		expr      string
		wantErr   bool
		wantWarns int
	}{
		{name: "counter rate", expr: `sum(rate(opty_http_requests_total[5m]))`},
		{name: "histogram bucket", expr: `histogram_quantile(0.95, sum(rate(opty_http_request_duration_seconds_bucket[5m])) by (le))`},
		{name: "recording rule", expr: `opty:http_requests:rate5m * 100`},
		{name: "function without selector", expr: `time()`},
		{name: "unknown metric", expr: `rate(opty_missing_total[5m])`, wantErr: true},
		{name: "parse error", expr: `sum(rate(opty_http_requests_total[5m])`, wantErr: true},
		{name: "nameless selector", expr: `{job="opty-search"}`, wantWarns: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Expr("test", tt.expr, known)
			assert.Equal(t, !tt.wantErr, res.Ok(), "errors: %v", res.Errors)
			assert.Len(t, res.Warnings, tt.wantWarns)
		})
	}
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	dash := map[string]any{
		"panels": []any{
			map[string]any{
				"type":  "row",
				"title": "HTTP",
				"panels": []any{
					map[string]any{
						"type":    "timeseries",
						"title":   "Request Rate",
						"targets": []any{map[string]any{"refId": "A", "expr": `opty:http_requests:rate5m`}},
					},
					map[string]any{
						"type":    "timeseries",
						"title":   "Broken",
						"targets": []any{map[string]any{"refId": "A", "expr": `opty_nope`}},
					},
					map[string]any{"type": "text", "title": "Notes"},
				},
			},
		},
	}

	res := Dashboard(dash, known)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], `panel "Broken" query A`)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], `"Notes"`)
	assert.Len(t, res.Errs(), 1)
}

func TestRules(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{
		Spec: rules.PrometheusRuleSpec{
			Groups: []rules.RuleGroup{{
				Name: "g",
				Rules: []rules.Rule{
					{Record: "opty:http_requests:rate5m", Expr: `sum(rate(opty_http_requests_total[5m]))`},
					{Record: "bad_name", Expr: `sum(rate(opty_http_requests_total[5m]))`},
					{Alert: "OptyDown", Expr: `absent(up{job="opty-search"})`},
					{Expr: `vector(1)`},
				},
			}},
		},
	}

	res := Rules(cr, map[string]bool{"opty_http_requests_total": true, "up": true})
	assert.Len(t, res.Errors, 2, "errors: %v", res.Errors)
}
