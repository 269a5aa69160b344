package model

// Earnings record types, as stored in the earnings documents.
const (
	EarningsTypePlayer = "player"
	EarningsTypeTeam   = "team"
)

// EarningsRecord is one row of a Liquipedia earnings statistics page.
// Earnings is always a positive integer; rows that fail to parse a positive
// value are dropped before persistence, never stored as zero. There is no
// identity beyond Name; each refresh replaces the stored set wholesale.
type EarningsRecord struct {
	Name     string `json:"name"`
	Earnings int    `json:"earnings"`
	Country  string `json:"country,omitempty"`
	Type     string `json:"type"`
}
