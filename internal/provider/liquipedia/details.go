package liquipedia

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/guesstherank/gtr-data/internal/model"
)

// Status annotations that mark a history row as something other than a
// regular competitive tenure. Rows carrying one of these are excluded.
var excludedTenureStatus = map[string]bool{
	"Loan":            true,
	"Inactive":        true,
	"Content Creator": true,
	"Streamer":        true,
}

var parenStripper = strings.NewReplacer("(", "", ")", "")

// ParsePlayerDetails extracts the role and transfer history from a player's
// profile page. Both default to empty when the infobox lacks them.
func ParsePlayerDetails(html string) (model.PlayerDetails, error) {
	details := model.PlayerDetails{TransferHistory: []model.TransferEntry{}}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return details, fmt.Errorf("parse profile page: %w", err)
	}

	// Role: the infobox is a flat list of label/value div pairs.
	doc.Find("div.fo-nttax-infobox > div").Each(func(_ int, div *goquery.Selection) {
		label := div.Find("div.infobox-description").First()
		if strings.TrimSpace(label.Text()) != "Role:" {
			return
		}
		if value := strings.TrimSpace(label.NextFiltered("div").Text()); value != "" {
			details.Role = value
		}
	})

	// Transfer history: the table under the "History" infobox header.
	header := doc.Find("div.infobox-header").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.Text()) == "History"
	})
	if header.Length() == 0 {
		return details, nil
	}

	historyTable := header.First().Parent().Next().Find("table")
	historyTable.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		// Left cell: "from — to" date range, em-dash separated. A single
		// date means the tenure is ongoing.
		dates := strings.Split(strings.TrimSpace(cells.Eq(0).Text()), "—")
		from := strings.TrimSpace(dates[0])
		var to *string
		if len(dates) > 1 {
			t := strings.TrimSpace(dates[1])
			to = &t
		}

		// Right cell: team link. The title attribute carries the canonical
		// team name; link text is the fallback.
		teamCell := cells.Eq(1)
		teamLink := teamCell.Find("a").First()
		team := teamLink.AttrOr("title", "")
		if team == "" {
			team = strings.TrimSpace(teamLink.Text())
		}
		if team == "" {
			return
		}

		// An italic annotation like "(Loan)" marks a non-competitive
		// tenure; skip the row entirely.
		status := teamCell.Find("span[style*='font-style:italic']").First()
		if status.Length() > 0 {
			tag := parenStripper.Replace(strings.TrimSpace(status.Text()))
			if excludedTenureStatus[tag] {
				return
			}
		}

		details.TransferHistory = append(details.TransferHistory, model.TransferEntry{
			Team: team,
			From: from,
			To:   to,
		})
	})

	return details, nil
}
