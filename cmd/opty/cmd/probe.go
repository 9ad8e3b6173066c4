package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/opty-search/internal/search"
	domain "github.com/donaldgifford/opty-search/pkg/types"
)

func probeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check once that the results page layout still yields products",
		Long: "Fetches the results page for the configured probe term and extracts it " +
			"without calling the LLM. Exits non-zero when no product is found.",
		Args: cobra.NoArgs,
		RunE: runProbe,
	}
}

func runProbe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	f, x := newCatalog(cfg, log)
	p, err := search.NewProbe(f, x, domain.NormalizedQuery(cfg.Probe.Term), cfg.Probe.Interval, log,
		search.WithNotifier(newNotifier(&cfg.Probe, log)))
	if err != nil {
		return err
	}

	n, err := p.RunOnce(cmd.Context())
	if err != nil {
		return fmt.Errorf("layout probe: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "layout ok: %d products for %q\n", n, cfg.Probe.Term)
	return nil
}
