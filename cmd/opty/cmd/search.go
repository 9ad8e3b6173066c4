package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/opty-search/internal/config"
	"github.com/donaldgifford/opty-search/internal/search"
	domain "github.com/donaldgifford/opty-search/pkg/types"
)

func searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Run one search locally and print the result as JSON",
		Long: "Normalizes the query with the configured LLM backend, fetches the Mercado Livre " +
			"results page and prints the extracted products without starting the server.",
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}
}

func normalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [query]",
		Short: "Normalize a query with the configured LLM backend",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runNormalize,
	}
}

// localPipeline wires a pipeline without cache, database or probe.
func localPipeline(cfg *config.Config, log *slog.Logger) (*search.Pipeline, error) {
	backend, err := newBackend(&cfg.LLM)
	if err != nil {
		return nil, err
	}
	p, _, _ := newPipeline(cfg, log, newLLMNormalizer(&cfg.LLM, backend, log))
	return p, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := localPipeline(cfg, log)
	if err != nil {
		return err
	}

	res, err := p.Search(cmd.Context(), domain.SearchQuery(strings.Join(args, " ")))
	if err != nil {
		return fmt.Errorf("search failed (%s): %w", search.Classify(err), err)
	}

	return printJSON(cmd, res)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := localPipeline(cfg, log)
	if err != nil {
		return err
	}

	q := domain.SearchQuery(strings.Join(args, " "))
	term, err := p.Normalize(cmd.Context(), q)
	if err != nil {
		return err
	}

	return printJSON(cmd, map[string]string{
		"query":            string(q),
		"normalized_query": string(term),
	})
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
