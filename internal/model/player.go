// Package model defines the record types shared by the scrape pipeline,
// the document store, and the API layer.
package model

// TransferEntry is one tenure in a player's transfer history, chronological
// as scraped. To is nil while the tenure is ongoing.
type TransferEntry struct {
	Team string  `json:"team"`
	From string  `json:"from"`
	To   *string `json:"to"`
}

// PlayerRecord is one VCT player. Slug is the Liquipedia page identifier and
// the record's stable key; every other field is mutable across re-scrapes.
type PlayerRecord struct {
	Slug            string          `json:"slug"`
	Name            string          `json:"name"`
	Country         string          `json:"country"`
	Team            string          `json:"team"`
	Region          string          `json:"region"`
	IsIGL           bool            `json:"isIGL"`
	Role            string          `json:"role"`
	TransferHistory []TransferEntry `json:"transferHistory"`
	ManuallyEdited  bool            `json:"manuallyEdited"`
}

// PlayerDetails is the output of the profile-page extractor, applied onto an
// existing PlayerRecord during the detail-enrichment pass.
type PlayerDetails struct {
	Role            string          `json:"role"`
	TransferHistory []TransferEntry `json:"transferHistory"`
}
