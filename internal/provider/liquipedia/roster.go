package liquipedia

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/guesstherank/gtr-data/internal/model"
)

// ParseRoster extracts the active roster from one team page. Role and
// transfer history are left empty here; the detail pass fills them in later.
//
// A table row qualifies as a player row only when it carries a recognizable
// player-profile link: non-empty link text of at least two characters, an
// href under the /valorant/ namespace, and a slug that is not a category or
// other non-player namespace page. Within one page, later duplicate slugs
// are discarded; first occurrence wins.
func ParseRoster(html, teamName, region string) ([]model.PlayerRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse roster page: %w", err)
	}

	team := NormalizeTeamName(teamName)
	seen := make(map[string]bool)
	var players []model.PlayerRecord

	doc.Find("table.roster-card, table.wikitable").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			link := row.Find("td .inline-player a, td.ID a, td a[href*='/valorant/']").First()
			if link.Length() == 0 {
				return
			}

			name := strings.TrimSpace(link.Text())
			if len(name) < 2 {
				return
			}

			href := link.AttrOr("href", "")
			slug := strings.Replace(href, "/valorant/", "", 1)
			if slug == "" {
				return
			}

			// Team pages link categories, tournaments, etc. in the same
			// tables; namespace-qualified slugs are never players.
			if strings.Contains(slug, ":") || strings.Contains(slug, "Category") {
				return
			}

			if seen[slug] {
				return
			}
			seen[slug] = true

			country := row.Find("span.flag img, .flag img").First().AttrOr("alt", "")
			isIGL := row.Find("i.fa-crown, .fa-crown").Length() > 0

			players = append(players, model.PlayerRecord{
				Slug:            slug,
				Name:            name,
				Country:         country,
				Team:            team,
				Region:          region,
				IsIGL:           isIGL,
				Role:            "",
				TransferHistory: []model.TransferEntry{},
				ManuallyEdited:  false,
			})
		})
	})

	return players, nil
}
