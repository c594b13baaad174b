// Package cmd defines and implements the CLI commands for the scraper
// executable.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LaurenceW01/harris-county-fws-scraper/internal/config"
	"github.com/LaurenceW01/harris-county-fws-scraper/internal/fetcher"
	"github.com/LaurenceW01/harris-county-fws-scraper/internal/logging"
	"github.com/LaurenceW01/harris-county-fws-scraper/internal/rainfall"
)

var cfgFile string

// appKeyType is the key for storing the app in the command context.
type appKeyType string

const appKey appKeyType = "app"

// app bundles the wired service components commands operate on.
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	fetcher  *fetcher.Client
	pipeline *rainfall.Pipeline
}

// newApp is the application factory. It's a variable so tests can swap
// in a mock factory.
var newApp = func(cfg config.Config) (*app, error) {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	client, err := fetcher.New(fetcher.Config{
		BaseURL:   cfg.FWS.BaseURL,
		UserAgent: cfg.FWS.UserAgent,
		Span:      cfg.FWS.Span,
		Timeout:   cfg.FetchTimeout(),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("init fetcher: %w", err)
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		fetcher:  client,
		pipeline: rainfall.New(cfg.Location(), nil, logger),
	}, nil
}

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fws-scraper",
		Short: "Rainfall totals from the Harris County Flood Warning System.",
		Long: `fws-scraper fetches gauge-detail pages from the Harris County FWS
site, extracts daily rainfall readings from their markup, and reports the
total over the 7 complete days before today. Run it as a one-shot CLI or
as a small HTTP API for spreadsheet integrations.`,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			appInstance, err := newApp(cfg)
			if err != nil {
				return fmt.Errorf("initialize application services: %w", err)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},

		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a, ok := cmd.Context().Value(appKey).(*app); ok && a != nil {
				_ = a.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in defaults + FWS_* env)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newRainfallCmd())

	return cmd
}

func resolveApp(ctx context.Context) (*app, error) {
	a, ok := ctx.Value(appKey).(*app)
	if !ok || a == nil {
		return nil, errors.New("application services not initialized")
	}
	return a, nil
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
