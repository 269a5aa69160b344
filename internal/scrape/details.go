package scrape

import (
	"context"
	"log/slog"

	"github.com/guesstherank/gtr-data/internal/model"
	"github.com/guesstherank/gtr-data/internal/provider/liquipedia"
)

// EnrichDetails processes the window [offset, offset+batchSize) of the
// stored roster, fetching each player's profile page and applying the
// extracted role and transfer history onto the full list. Manually edited
// records are skipped without a fetch. Records outside the window are
// untouched.
//
// One page fetch per player at the throttle's mandated spacing exceeds a
// single invocation's time budget, so the backlog is drained across many
// calls: the caller loops with offset = NextOffset until it is nil.
func EnrichDetails(ctx context.Context, fetcher PageFetcher, players []model.PlayerRecord, offset, batchSize int, logger *slog.Logger) DetailResult {
	result := DetailResult{Players: append([]model.PlayerRecord(nil), players...)}

	if offset < 0 {
		offset = 0
	}
	start := offset
	if start > len(result.Players) {
		start = len(result.Players)
	}
	end := offset + batchSize
	if end > len(result.Players) {
		end = len(result.Players)
	}

	for _, p := range result.Players[start:end] {
		if p.ManuallyEdited {
			continue
		}

		logger.Info("fetching player details", "player", p.Name, "slug", p.Slug)
		html, err := fetcher.FetchPage(ctx, p.Slug)
		if err != nil {
			logger.Error("detail fetch failed", "player", p.Name, "error", err)
			result.AddErrorf("%s: %v", p.Name, err)
			continue
		}

		details, err := liquipedia.ParsePlayerDetails(html)
		if err != nil {
			result.AddErrorf("%s: %v", p.Name, err)
			continue
		}

		if idx := indexBySlug(result.Players, p.Slug); idx >= 0 {
			if details.Role != "" {
				result.Players[idx].Role = details.Role
			}
			if len(details.TransferHistory) > 0 {
				result.Players[idx].TransferHistory = details.TransferHistory
			}
			result.Updated++
		}
	}

	result.Remaining = len(players) - (offset + batchSize)
	if result.Remaining < 0 {
		result.Remaining = 0
	}
	if result.Remaining > 0 {
		next := offset + batchSize
		result.NextOffset = &next
	}

	return result
}

func indexBySlug(players []model.PlayerRecord, slug string) int {
	for i, p := range players {
		if p.Slug == slug {
			return i
		}
	}
	return -1
}
