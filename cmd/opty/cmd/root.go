// Package cmd implements the CLI commands for the opty-search server.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/opty-search/internal/config"
	"github.com/donaldgifford/opty-search/pkg/logger"
)

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "opty",
	Short: "Product search over Mercado Livre",
	Long: "An API service that normalizes free-text shopping queries with an LLM, " +
		"scrapes the Mercado Livre results page and returns structured product listings.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")

	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(searchCommand())
	rootCmd.AddCommand(normalizeCommand())
	rootCmd.AddCommand(probeCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the env file and config and builds the service logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log := logger.WithService(
		logger.New(cfg.Logging.Level, cfg.Logging.Format),
		cfg.Tracing.ServiceName,
		Version,
	)
	return cfg, log, nil
}
