// Command pitchers summarizes pitch types per pitcher for a single MLB game.
//
// Usage:
//
//	pitchers summarize --game-pk 813026
//	pitchers summarize --date 2026-08-28 --home dodgers --away padres
//	pitchers serve
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/StevenBlack/pitchers/internal/api"
	"github.com/StevenBlack/pitchers/internal/cache"
	"github.com/StevenBlack/pitchers/internal/config"
	"github.com/StevenBlack/pitchers/internal/mlb"
	"github.com/StevenBlack/pitchers/internal/pitch"
	"github.com/StevenBlack/pitchers/internal/render"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "pitchers",
		Short: "Per-pitcher pitch type summaries for MLB games",
	}

	root.AddCommand(summarizeCmd())
	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// summarize command
// --------------------------------------------------------------------------

func summarizeCmd() *cobra.Command {
	var (
		gamePk      int64
		date        string
		home        string
		away        string
		skipUnknown bool
	)
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Fetch one game's pitch events and print the per-pitcher summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config, client *mlb.Client) error {
				pk := gamePk
				if pk == 0 {
					if date == "" {
						return fmt.Errorf("--date is required when --game-pk is not supplied (format YYYY-MM-DD)")
					}
					var err error
					pk, err = client.FindGamePk(ctx, date, home, away)
					if err != nil {
						return err
					}
					logger.Info("Resolved game", "date", date, "game_pk", pk)
				}

				start := time.Now()
				feed, err := client.GameFeed(ctx, pk)
				if err != nil {
					return err
				}
				events := mlb.PitchEvents(feed)
				logger.Info("Fetched game feed",
					"game_pk", pk, "pitches", len(events),
					"duration", time.Since(start).Round(time.Millisecond))

				if skipUnknown {
					events = dropUnknownTypes(events)
				}

				report, err := pitch.Aggregate(events)
				if err != nil {
					var unknownErr *pitch.UnknownPitchTypeError
					if errors.As(err, &unknownErr) {
						return fmt.Errorf("%w (rerun with --skip-unknown to drop unmapped pitches)", err)
					}
					return err
				}

				return render.Write(os.Stdout, report)
			})
		},
	}
	cmd.Flags().Int64Var(&gamePk, "game-pk", 0, "Game primary key (gamePk) from the MLB API")
	cmd.Flags().StringVar(&date, "date", "", "Game date YYYY-MM-DD, used when --game-pk is not given")
	cmd.Flags().StringVar(&home, "home", "", "Home team name substring filter for the date lookup")
	cmd.Flags().StringVar(&away, "away", "", "Away team name substring filter for the date lookup")
	cmd.Flags().BoolVar(&skipUnknown, "skip-unknown", false, "Drop pitches whose type has no category mapping instead of failing")
	return cmd
}

// dropUnknownTypes filters out events the category table cannot place.
func dropUnknownTypes(events []pitch.Event) []pitch.Event {
	kept := events[:0]
	for _, ev := range events {
		if _, ok := pitch.CategoryOf(ev.PitchType); !ok {
			logger.Warn("Skipping unmapped pitch type", "pitch_type", ev.PitchType, "pitcher", ev.PitcherName)
			continue
		}
		kept = append(kept, ev)
	}
	return kept
}

// --------------------------------------------------------------------------
// serve command
// --------------------------------------------------------------------------

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API serving game pitch summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config, client *mlb.Client) error {
				appCache := cache.New(cfg.CacheEnabled)
				logger.Info("Cache initialized", "enabled", cfg.CacheEnabled, "ttl", cfg.CacheTTL)

				router := api.NewRouter(client, appCache, cfg)

				addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
				srv := &http.Server{
					Addr:         addr,
					Handler:      router,
					ReadTimeout:  10 * time.Second,
					WriteTimeout: 30 * time.Second,
					IdleTimeout:  60 * time.Second,
				}

				go func() {
					logger.Info("Starting Pitchers API",
						"addr", addr,
						"environment", cfg.Environment,
						"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
					if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						logger.Error("Server failed", "error", err)
						os.Exit(1)
					}
				}()

				<-ctx.Done()
				logger.Info("Shutting down...")

				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer shutdownCancel()

				if err := srv.Shutdown(shutdownCtx); err != nil {
					logger.Error("Shutdown error", "error", err)
				}
				logger.Info("Server stopped")
				return nil
			})
		},
	}
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// run handles config loading, client construction, and context cancellation.
func run(fn func(ctx context.Context, cfg *config.Config, client *mlb.Client) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	slog.SetDefault(logger)

	client := mlb.NewClient(cfg.MLBBaseURL, cfg.MLBRequestsPerMinute, logger)
	return fn(ctx, cfg, client)
}
