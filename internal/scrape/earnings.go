package scrape

import (
	"context"
	"log/slog"

	"github.com/guesstherank/gtr-data/internal/model"
	"github.com/guesstherank/gtr-data/internal/provider/liquipedia"
)

// Earnings kinds selectable on the refresh operation.
const (
	EarningsPlayers = "players"
	EarningsTeams   = "teams"
)

// PlayerEarnings fetches and parses the player earnings portal. Malformed
// rows are dropped during parsing; only the fetch itself can fail.
func PlayerEarnings(ctx context.Context, fetcher PageFetcher, logger *slog.Logger) ([]model.EarningsRecord, error) {
	logger.Info("fetching player earnings", "page", liquipedia.PlayerEarningsPage)
	html, err := fetcher.FetchPage(ctx, liquipedia.PlayerEarningsPage)
	if err != nil {
		return nil, err
	}

	records, err := liquipedia.ParsePlayerEarnings(html)
	if err != nil {
		return nil, err
	}
	logger.Info("player earnings parsed", "count", len(records))
	return records, nil
}

// TeamEarnings fetches and parses the organization winnings portal.
func TeamEarnings(ctx context.Context, fetcher PageFetcher, logger *slog.Logger) ([]model.EarningsRecord, error) {
	logger.Info("fetching team earnings", "page", liquipedia.TeamEarningsPage)
	html, err := fetcher.FetchPage(ctx, liquipedia.TeamEarningsPage)
	if err != nil {
		return nil, err
	}

	records, err := liquipedia.ParseTeamEarnings(html)
	if err != nil {
		return nil, err
	}
	logger.Info("team earnings parsed", "count", len(records))
	return records, nil
}
