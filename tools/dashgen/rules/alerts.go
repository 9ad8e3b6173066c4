package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// opty-search operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "opty-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "opty-alerts",
					Rules: []Rule{
						{
							Alert: "OptyDown",
							Expr:  `absent(up{job="opty-search"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Opty Search is down",
								"description": "The opty-search job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "OptyReadinessDown",
							Expr:  `opty_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Opty Search readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "OptyHighErrorRate",
							Expr:  `opty:http_errors:rate5m / opty:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Opty Search",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "OptyUpstreamErrors",
							Expr:  `opty:search_upstream_errors:rate5m / opty:search_requests:rate5m > 0.2`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Mercado Livre is failing searches",
								"description": "More than 20% of searches failed with upstream unavailable or timeout for 10 minutes.",
							},
						},
						{
							Alert: "OptyNormalizationFailures",
							Expr:  `opty:normalization_failures:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "LLM normalization failure rate is elevated",
								"description": "Normalization failures are occurring at more than 0.1/s for the last 5 minutes.",
							},
						},
						{
							Alert: "OptyCatalogLayoutChanged",
							Expr:  `opty_catalog_layout_ok == 0`,
							For:   "30m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Mercado Livre results page layout changed",
								"description": "The layout probe has extracted no products for 30 minutes; the extractor selectors need updating.",
							},
						},
					},
				},
			},
		},
	}
}
