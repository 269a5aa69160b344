// Command ingest is the GTR data ingestion CLI.
//
// Usage:
//
//	gtr-ingest scrape rosters
//	gtr-ingest scrape details --offset 0
//	gtr-ingest scrape details --all
//	gtr-ingest scrape earnings --kind players
//	gtr-ingest scrape earnings --kind all
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/guesstherank/gtr-data/internal/config"
	"github.com/guesstherank/gtr-data/internal/db"
	"github.com/guesstherank/gtr-data/internal/docstore"
	"github.com/guesstherank/gtr-data/internal/model"
	"github.com/guesstherank/gtr-data/internal/provider/liquipedia"
	"github.com/guesstherank/gtr-data/internal/scrape"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "gtr-ingest",
		Short: "GTR data ingestion CLI",
	}

	root.AddCommand(scrapeCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// scrape command
// --------------------------------------------------------------------------

func scrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape Liquipedia and update the stored documents",
	}
	cmd.AddCommand(scrapeRostersCmd())
	cmd.AddCommand(scrapeDetailsCmd())
	cmd.AddCommand(scrapeEarningsCmd())
	return cmd
}

func scrapeRostersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rosters",
		Short: "Scrape all partner-team rosters and merge into the player snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScrape(func(ctx context.Context, cfg *config.Config, store *docstore.Store) error {
				client := liquipedia.NewClient(cfg.LiquipediaAPIURL, cfg.UserAgent, cfg.PlayerPageDelay, logger)

				start := time.Now()
				result := scrape.Rosters(ctx, client, logger)

				existing, err := store.GetPlayers(ctx)
				if err != nil {
					return fmt.Errorf("load players document: %w", err)
				}
				var prior []model.PlayerRecord
				if existing != nil {
					prior = existing.Players
				}

				merged := scrape.MergePlayers(result.Players, prior)
				if _, err := store.SetPlayers(ctx, merged); err != nil {
					return fmt.Errorf("save players document: %w", err)
				}

				logger.Info("Roster scrape finished",
					"players", len(merged),
					"duration", time.Since(start).Round(time.Second))
				for _, e := range result.Errors {
					logger.Error("scrape error", "error", e)
				}
				return nil
			})
		},
	}
}

func scrapeDetailsCmd() *cobra.Command {
	var offset int
	var all bool
	cmd := &cobra.Command{
		Use:   "details",
		Short: "Enrich stored players with profile-page role and transfer history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScrape(func(ctx context.Context, cfg *config.Config, store *docstore.Store) error {
				client := liquipedia.NewClient(cfg.LiquipediaAPIURL, cfg.UserAgent, cfg.PlayerPageDelay, logger)

				start := time.Now()
				totalUpdated := 0
				for {
					doc, err := store.GetPlayers(ctx)
					if err != nil {
						return fmt.Errorf("load players document: %w", err)
					}
					if doc == nil {
						return fmt.Errorf("no player data yet, run 'scrape rosters' first")
					}

					result := scrape.EnrichDetails(ctx, client, doc.Players, offset, cfg.DetailBatchSize, logger)
					if _, err := store.SetPlayers(ctx, result.Players); err != nil {
						return fmt.Errorf("save players document: %w", err)
					}
					totalUpdated += result.Updated
					for _, e := range result.Errors {
						logger.Error("scrape error", "error", e)
					}
					logger.Info("Details batch finished",
						"offset", offset, "updated", result.Updated, "remaining", result.Remaining)

					if !all || result.NextOffset == nil {
						break
					}
					offset = *result.NextOffset
				}

				logger.Info("Details scrape finished",
					"updated", totalUpdated,
					"duration", time.Since(start).Round(time.Second))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "Pagination offset into the stored player list")
	cmd.Flags().BoolVar(&all, "all", false, "Follow nextOffset until the whole list is enriched")
	return cmd
}

func scrapeEarningsCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "earnings",
		Short: "Scrape the prize-money leaderboards",
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind != scrape.EarningsPlayers && kind != scrape.EarningsTeams && kind != "all" {
				return fmt.Errorf("--kind must be players, teams, or all")
			}
			return runScrape(func(ctx context.Context, cfg *config.Config, store *docstore.Store) error {
				client := liquipedia.NewClient(cfg.LiquipediaAPIURL, cfg.UserAgent, cfg.StatsPageDelay, logger)

				start := time.Now()
				if kind == scrape.EarningsPlayers || kind == "all" {
					records, err := scrape.PlayerEarnings(ctx, client, logger)
					if err != nil {
						return err
					}
					if err := store.SetEarnings(ctx, config.PlayerEarningsDocKey, records); err != nil {
						return fmt.Errorf("save player earnings: %w", err)
					}
					logger.Info("Player earnings saved", "count", len(records))
				}
				if kind == scrape.EarningsTeams || kind == "all" {
					records, err := scrape.TeamEarnings(ctx, client, logger)
					if err != nil {
						return err
					}
					if err := store.SetEarnings(ctx, config.TeamEarningsDocKey, records); err != nil {
						return fmt.Errorf("save team earnings: %w", err)
					}
					logger.Info("Team earnings saved", "count", len(records))
				}

				logger.Info("Earnings scrape finished",
					"duration", time.Since(start).Round(time.Second))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "all", "Leaderboard to refresh (players, teams, all)")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runScrape handles config loading, DB connection, and context cancellation.
func runScrape(fn func(ctx context.Context, cfg *config.Config, store *docstore.Store) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, docstore.New(pool.Pool))
}
