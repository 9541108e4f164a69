package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonetti/nocwatch/internal/catalog"
	"github.com/amonetti/nocwatch/internal/cli"
	"github.com/amonetti/nocwatch/internal/config"
	"github.com/amonetti/nocwatch/internal/fetcher"
	"github.com/amonetti/nocwatch/internal/models"
	"github.com/amonetti/nocwatch/internal/notifier"
	"github.com/amonetti/nocwatch/internal/repository/sqlite"
	"github.com/amonetti/nocwatch/internal/services/watcher"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

const banner = `
  _  _  ___   ___  __      ___ _____ ___ _  _
 | \| |/ _ \ / __| \ \    / /_\_   _/ __| || |
 | .' | (_) | (__   \ \/\/ / _ \| || (__| __ |
 |_|\_|\___/ \___|   \_/\_/_/ \_\_| \___|_||_|

 used gear monitor for newoldcamera.com
`

var (
	flagCategory string
	flagBrands   string
	flagInterval time.Duration
)

// main is the entry point of the application.
func main() {
	rootCmd := &cobra.Command{
		Use:           "nocwatch",
		Short:         "Watch NewOldCamera used-gear listings and alert on new arrivals",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVar(&flagCategory, "category", "", "category to track: camera or lens (interactive when omitted)")
	rootCmd.Flags().StringVar(&flagBrands, "brands", "", `comma separated brands to track, e.g. "Canon, Leica" (interactive when omitted)`)
	rootCmd.Flags().DurationVar(&flagInterval, "interval", 0, "pause between poll cycles (overrides NOC_INTERVAL)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	// Create a context that will be canceled when an interrupt signal is
	// received. This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env)

	fmt.Fprint(os.Stdout, banner+"\n")

	prompter := cli.NewPrompter(logger, os.Stdin, os.Stdout)

	// 1. Determine the category, from the flag or interactively.
	category, ok, err := selectCategory(prompter)
	if err != nil {
		return err
	}
	if !ok {
		logger.InfoContext(ctx, "Exiting, bye!")
		return nil
	}

	// 2. Fetch the official brand catalog. An empty catalog is a fatal
	// setup failure: there is nothing to track.
	catalogClient := catalog.NewClient(logger, cfg.BrandsURL)
	available, err := catalogClient.FetchBrands(ctx, category)
	if err != nil {
		return fmt.Errorf("could not retrieve brand list: %w", err)
	}
	if len(available) == 0 {
		return fmt.Errorf("brand catalog for %s is empty", category.Plural())
	}

	// 3. Determine the brands, from the flag or interactively.
	brands := selectBrands(logger, prompter, available)
	if brands == nil {
		logger.InfoContext(ctx, "Exiting, bye!")
		return nil
	}
	if len(brands) == 0 {
		return watcher.ErrNoBrands
	}

	logger.InfoContext(ctx, "Configuration locked", "category", category.String(), "brands", brands)

	// 4. Wire the collaborators. Missing or broken Telegram credentials
	// only disable delivery; the poll loop runs regardless.
	notif, err := notifier.New(logger, cfg.Tg.Token, cfg.Tg.ChatID)
	if err != nil {
		logger.Warn("Telegram initialization failed, notifications disabled", "error", err)
		notif = notifier.Disabled(logger)
	}

	var journal watcher.AlertJournal
	if cfg.StoragePath != "" {
		repo, repoErr := sqlite.NewRepository(ctx, logger, cfg.StoragePath)
		if repoErr != nil {
			logger.Warn("Failed to open alert journal, continuing without it", "error", repoErr)
		} else {
			defer repo.Close()
			journal = repo

			if recent, jErr := repo.RecentAlerts(ctx, 5); jErr == nil && len(recent) > 0 {
				logger.InfoContext(ctx, "Alert journal opened",
					"recent_alerts", len(recent), "last_model", recent[0].Model)
			}
		}
	}

	interval := cfg.Interval
	if cmd.Flags().Changed("interval") {
		interval = flagInterval
	}

	w := watcher.NewWatcher(
		logger,
		fetcher.NewFetcher(logger, cfg.APIURL),
		notif,
		journal,
		os.Stdout,
		category,
		brands,
		interval,
	)

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	if err = w.Run(ctx); err != nil {
		return fmt.Errorf("monitoring failed: %w", err)
	}

	logger.InfoContext(ctx, "Application stopped gracefully.")

	return nil
}

// selectCategory resolves the category from the --category flag, falling
// back to the interactive menu. ok is false when the operator exited.
func selectCategory(prompter *cli.Prompter) (models.Category, bool, error) {
	if flagCategory != "" {
		category, err := models.ParseCategory(flagCategory)
		if err != nil {
			return 0, false, err
		}
		return category, true, nil
	}

	category, ok := prompter.SelectCategory()
	return category, ok, nil
}

// selectBrands resolves the tracked brands from the --brands flag, falling
// back to the interactive list when the flag is absent or matched nothing.
// A nil result means the operator exited.
func selectBrands(logger *slog.Logger, prompter *cli.Prompter, available []string) []string {
	if flagBrands != "" {
		requested := strings.Split(flagBrands, ",")
		if matched := cli.MatchBrands(logger, requested, available); len(matched) > 0 {
			return matched
		}
		logger.Warn("No valid brands provided via flags, switching to interactive mode")
	}

	brands, ok := prompter.SelectBrands(available)
	if !ok {
		return nil
	}
	return brands
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
