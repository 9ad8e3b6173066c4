package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	var legacy bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search Mercado Livre through the API",
		Long: "Sends the query to the API server, which normalizes it with the\n" +
			"configured LLM backend and scrapes the Mercado Livre results page.",
		Example: `  optyctl search "quero um fone bluetooth barato"
  optyctl search fone de ouvido --legacy
  optyctl search "notebook i7" --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			c := newClient()

			if legacy {
				products, err := c.SearchMercadoLivre(cmd.Context(), query)
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(cmd.OutOrStdout(), products)
				}
				if len(products) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No products found.")
					return nil
				}
				return printProductsTable(cmd.OutOrStdout(), products)
			}

			res, err := c.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printSearchResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().BoolVar(&legacy, "legacy", false, "use the bare-array /search/mercadolivre endpoint")

	return cmd
}

func normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "normalize <query>",
		Short:   "Preview how the API normalizes a query",
		Example: `  optyctl normalize "preciso de um celular samsung bom e barato"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient().Normalize(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.NormalizedQuery)
			return nil
		},
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show server build and feature information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := newClient().Info(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), info)
			}
			return printServiceInfo(cmd.OutOrStdout(), info)
		},
	}
}

func probeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Run the Mercado Livre layout probe on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newClient().RunProbe(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printProbeResult(cmd.OutOrStdout(), res)
		},
	}
}
