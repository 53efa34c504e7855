// Package commands implements the arcadetracker CLI.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"arcadetracker/browser"
	"arcadetracker/config"
	"arcadetracker/fetcher"
	"arcadetracker/logging"
	"arcadetracker/scoring"
	"arcadetracker/scraper"
)

var (
	v      = config.NewViper()
	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "arcadetracker",
	Short:         "arcadetracker scores Google Cloud Skills Boost public profiles for The Arcade.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			v.SetConfigFile(path)
		}
		if err := config.ReadFile(v); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load(v)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Log.Level, cfg.Log.Development)
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default ./arcadetracker.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Bool("log-dev", false, "human-readable console logs")
	flags.Duration("timeout", 0, "overall fetch timeout (default 20s)")
	v.BindPFlag("log.level", flags.Lookup("log-level"))
	v.BindPFlag("log.development", flags.Lookup("log-dev"))
	v.BindPFlag("fetch.timeout", flags.Lookup("timeout"))
}

// ExecuteContext runs the CLI and exits non-zero on error.
func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newFetcher() *fetcher.Fetcher {
	return fetcher.New(fetcher.Options{
		Timeout:       cfg.Fetch.Timeout,
		MaxRedirects:  cfg.Fetch.MaxRedirects,
		MaxBodyBytes:  cfg.Fetch.MaxBodyBytes,
		UserAgent:     cfg.Fetch.UserAgent,
		ProfileMarker: cfg.Platform.ProfileMarker,
	}, logger.Named("fetcher"))
}

func newRenderer() *browser.Renderer {
	return browser.New(browser.Options{
		Timeout:       cfg.Render.Timeout,
		UserAgent:     cfg.Fetch.UserAgent,
		ProfileMarker: cfg.Platform.ProfileMarker,
	}, logger.Named("browser"))
}

// newService builds the scoring pipeline on top of the HTTP fetcher, or on
// headless Chrome when render is set.
func newService(render bool) *scraper.Service {
	var f scraper.Fetcher = newFetcher()
	if render {
		f = newRenderer()
	}
	return scraper.NewService(f, scoring.Season1(), cfg.Platform, logger.Named("scraper"))
}
