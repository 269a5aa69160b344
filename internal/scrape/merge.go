package scrape

import "github.com/guesstherank/gtr-data/internal/model"

// MergePlayers reconciles a freshly scraped list against the previously
// stored one. The output follows the new list's order and cardinality:
// records absent from the new scrape are dropped (full resync, not
// accumulation). It is deduplicated by slug, first occurrence winning.
//
// Per new record, matched by slug:
//   - no existing match: kept as-is;
//   - existing record manually edited: its role and transfer history are
//     kept verbatim, everything else comes from the new record; hand-edits
//     survive any number of automated resyncs;
//   - otherwise: existing role/transfer history win when non-empty, and the
//     manual-edit flag is propagated.
func MergePlayers(fresh, existing []model.PlayerRecord) []model.PlayerRecord {
	prior := make(map[string]model.PlayerRecord, len(existing))
	for _, p := range existing {
		if _, ok := prior[p.Slug]; !ok {
			prior[p.Slug] = p
		}
	}

	seen := make(map[string]bool, len(fresh))
	merged := make([]model.PlayerRecord, 0, len(fresh))

	for _, np := range fresh {
		if seen[np.Slug] {
			continue
		}
		seen[np.Slug] = true

		ex, ok := prior[np.Slug]
		if !ok {
			merged = append(merged, np)
			continue
		}

		rec := np
		if ex.ManuallyEdited {
			rec.Role = ex.Role
			rec.TransferHistory = ex.TransferHistory
		} else {
			if ex.Role != "" {
				rec.Role = ex.Role
			}
			if len(ex.TransferHistory) > 0 {
				rec.TransferHistory = ex.TransferHistory
			}
		}
		rec.ManuallyEdited = ex.ManuallyEdited
		merged = append(merged, rec)
	}

	return merged
}
