package liquipedia

import (
	"net/url"
	"strings"
)

// Statistics portal pages consumed by the earnings extractors.
const (
	PlayerEarningsPage = "Portal:Statistics/Player_earnings"
	TeamEarningsPage   = "Portal:Statistics/Organization_Winnings"
)

// Regions lists the VCT partner regions in scrape order.
var Regions = []string{"Americas", "EMEA", "Pacific", "China"}

// VCTTeams maps each region to its team page identifiers, in scrape order.
// Identifiers are Liquipedia page names; a few carry percent-encoded
// diacritics and are decoded only for display.
var VCTTeams = map[string][]string{
	"Americas": {
		"Sentinels", "Cloud9", "100_Thieves", "NRG_Esports",
		"Evil_Geniuses", "LOUD", "FURIA_Esports", "MIBR",
		"Leviat%C3%A1n", "KR%C3%9C_Esports",
	},
	"EMEA": {
		"Fnatic", "Team_Liquid", "Team_Heretics", "Karmine_Corp",
		"Team_Vitality", "Natus_Vincere", "BBL_Esports",
		"Gentle_Mates", "FUT_Esports", "Giants_Gaming",
	},
	"Pacific": {
		"DRX", "T1", "Gen.G", "Paper_Rex",
		"Team_Secret", "Talon_Esports", "Global_Esports",
		"Rex_Regum_Qeon", "DetonatioN_FocusMe", "ZETA_DIVISION",
	},
	"China": {
		"EDward_Gaming", "Bilibili_Gaming", "FunPlus_Phoenix",
		"JDG_Gaming", "Nova_Esports", "All_Gamers",
		"Trace_Esports", "TYLOO", "Wolves_Esports",
		"Dragon_Ranger_Gaming",
	},
}

// DecodePageID percent-decodes a catalog page identifier for display
// ("Leviat%C3%A1n" → "Leviatán"). Falls back to the raw identifier when the
// encoding is malformed.
func DecodePageID(id string) string {
	decoded, err := url.QueryUnescape(id)
	if err != nil {
		return id
	}
	return decoded
}

// NormalizeTeamName turns a page identifier into a display name by replacing
// underscore separators with spaces.
func NormalizeTeamName(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
