package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"titulares/internal/app"
	"titulares/internal/config"
)

var version = "dev"

var (
	verbose    bool
	configPath string
	cfg        config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "titulares",
	Short:   "News headline scraping and analysis",
	Long:    "titulares scrapes a news listing page into a CSV and turns that CSV into charts and a PDF report.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Logging setup
		zerolog.TimeFieldFormat = time.RFC3339
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		switch {
		case verbose:
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		case cfg.Logging.Level == "debug":
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		case cfg.Logging.Level == "warn":
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		case cfg.Logging.Level == "error":
			zerolog.SetGlobalLevel(zerolog.ErrorLevel)
		default:
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")

	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetch the listing page and persist headline records to CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.New(cfg, os.Stdout).Scrape(context.Background())
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Generate charts and the PDF report from the persisted CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.New(cfg, os.Stdout).Analyze(context.Background())
	},
}
