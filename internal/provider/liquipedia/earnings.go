package liquipedia

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/guesstherank/gtr-data/internal/model"
)

// Earnings tables are wiki-style: a header row followed by rank rows with at
// least seven columns, the name in the second and the cumulative earnings in
// the last. Rows that fail to yield a name and a positive integer are
// silently dropped, never stored as zero.

// ParsePlayerEarnings extracts the player earnings leaderboard.
func ParsePlayerEarnings(html string) ([]model.EarningsRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse earnings page: %w", err)
	}

	var records []model.EarningsRecord
	doc.Find("table.wikitable tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header
		}
		cells := row.Find("td")
		if cells.Length() < 7 {
			return
		}

		nameCell := cells.Eq(1)
		name := strings.TrimSpace(nameCell.Find(".name a").First().Text())
		country := nameCell.Find(".flag img").First().AttrOr("alt", "")

		earnings, ok := parseEarnings(cells.Eq(cells.Length() - 1).Text())
		if name == "" || !ok {
			return
		}

		records = append(records, model.EarningsRecord{
			Name:     name,
			Earnings: earnings,
			Country:  country,
			Type:     model.EarningsTypePlayer,
		})
	})

	return records, nil
}

// ParseTeamEarnings extracts the organization winnings leaderboard. Team
// cells lead with a logo-only link, so the name is the first link that
// actually carries text.
func ParseTeamEarnings(html string) ([]model.EarningsRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse earnings page: %w", err)
	}

	var records []model.EarningsRecord
	doc.Find("table.wikitable tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header
		}
		cells := row.Find("td")
		if cells.Length() < 7 {
			return
		}

		var name string
		cells.Eq(1).Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			if text := strings.TrimSpace(a.Text()); text != "" {
				name = text
				return false
			}
			return true
		})

		earnings, ok := parseEarnings(cells.Eq(cells.Length() - 1).Text())
		if name == "" || !ok {
			return
		}

		records = append(records, model.EarningsRecord{
			Name:     name,
			Earnings: earnings,
			Type:     model.EarningsTypeTeam,
		})
	})

	return records, nil
}

var currencyStripper = strings.NewReplacer("$", "", ",", "")

// parseEarnings strips currency formatting ("$1,234,567") and parses a
// positive integer. ok is false for zero, negative, or non-numeric text.
func parseEarnings(text string) (int, bool) {
	cleaned := currencyStripper.Replace(strings.TrimSpace(text))
	n, err := strconv.Atoi(cleaned)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
