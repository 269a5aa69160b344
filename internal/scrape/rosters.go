package scrape

import (
	"context"
	"log/slog"

	"github.com/guesstherank/gtr-data/internal/model"
	"github.com/guesstherank/gtr-data/internal/provider/liquipedia"
)

// Rosters scrapes every catalog team in every region, strictly sequentially,
// and returns the combined player list plus accumulated per-team errors.
// Sequential fetching is deliberate: the fetcher's throttle carries the
// source's hard rate contract and concurrency would defeat it.
func Rosters(ctx context.Context, fetcher PageFetcher, logger *slog.Logger) RosterResult {
	var result RosterResult

	for _, region := range liquipedia.Regions {
		for _, teamID := range liquipedia.VCTTeams[region] {
			logger.Info("scraping roster", "team", teamID, "region", region)

			players, err := scrapeTeam(ctx, fetcher, teamID, region)
			if err != nil {
				logger.Error("roster scrape failed", "team", teamID, "error", err)
				result.AddErrorf("%s: %v", teamID, err)
				continue
			}

			result.Players = append(result.Players, players...)
			logger.Info("roster done", "team", teamID, "players", len(players))
		}
	}

	return result
}

func scrapeTeam(ctx context.Context, fetcher PageFetcher, teamID, region string) ([]model.PlayerRecord, error) {
	html, err := fetcher.FetchPage(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return liquipedia.ParseRoster(html, liquipedia.DecodePageID(teamID), region)
}
