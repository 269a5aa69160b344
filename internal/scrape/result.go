// Package scrape drives the Liquipedia scrape-merge pipeline: batch roster
// collection, asymmetric merging against the stored snapshot, and the
// paginated detail-enrichment pass.
package scrape

import (
	"context"
	"fmt"

	"github.com/guesstherank/gtr-data/internal/model"
)

// PageFetcher fetches one named page's rendered markup. Implemented by
// liquipedia.Client; tests substitute fakes.
type PageFetcher interface {
	FetchPage(ctx context.Context, page string) (string, error)
}

// RosterResult is the outcome of one full roster pass. Per-team failures are
// accumulated, not fatal: partial success is the normal outcome.
type RosterResult struct {
	Players []model.PlayerRecord
	Errors  []string
}

// AddErrorf records a formatted per-source error message.
func (r *RosterResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// DetailResult is the outcome of one detail-enrichment window. NextOffset is
// nil once the backlog is drained, signaling the driving loop to stop.
type DetailResult struct {
	Players    []model.PlayerRecord
	Updated    int
	Remaining  int
	NextOffset *int
	Errors     []string
}

// AddErrorf records a formatted per-player error message.
func (r *DetailResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}
