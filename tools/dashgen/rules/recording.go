package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "opty-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "opty-recording",
					Rules: []Rule{
						{
							Record: "opty:http_requests:rate5m",
							Expr:   `sum(rate(opty_http_requests_total[5m]))`,
						},
						{
							Record: "opty:http_errors:rate5m",
							Expr:   `sum(rate(opty_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "opty:search_requests:rate5m",
							Expr:   `sum(rate(opty_search_requests_total[5m]))`,
						},
						{
							Record: "opty:search_upstream_errors:rate5m",
							Expr:   `sum(rate(opty_search_requests_total{outcome=~"upstream_.*"}[5m]))`,
						},
						{
							Record: "opty:normalization_failures:rate5m",
							Expr:   `rate(opty_normalization_failures_total[5m])`,
						},
						{
							Record: "opty:normalization_cache_hit:ratio1h",
							Expr: `sum(increase(opty_normalization_cache_total{result="hit"}[1h]))` +
								` / sum(increase(opty_normalization_cache_total[1h]))`,
						},
					},
				},
			},
		},
	}
}
