package liquipedia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guesstherank/gtr-data/internal/model"
)

const playerEarningsHTML = `
<table class="wikitable">
  <tr><th>#</th><th>ID</th><th>1st</th><th>2nd</th><th>3rd</th><th>4th</th><th>Earnings</th></tr>
  <tr>
    <td>1</td>
    <td><span class="flag"><img alt="Russia"></span> <span class="name"><a href="/valorant/Chronicle">Chronicle</a></span></td>
    <td>10</td><td>4</td><td>2</td><td>1</td>
    <td>$512,345</td>
  </tr>
  <tr>
    <td>2</td>
    <td><span class="name"><a href="/valorant/Boaster">Boaster</a></span></td>
    <td>8</td><td>3</td><td>2</td><td>1</td>
    <td>$0</td>
  </tr>
  <tr>
    <td>3</td>
    <td><span class="name"><a href="/valorant/Derke">Derke</a></span></td>
    <td>8</td><td>3</td><td>2</td><td>1</td>
    <td>TBD</td>
  </tr>
  <tr>
    <td>4</td>
    <td><span class="name"><a href="/valorant/Leaf">leaf</a></span></td>
    <td>$99,000</td>
  </tr>
  <tr>
    <td>5</td>
    <td><span class="name"><a href="/valorant/Aspas">aspas</a></span></td>
    <td>12</td><td>5</td><td>1</td><td>0</td>
    <td>$1,103,500</td>
  </tr>
</table>`

func TestParsePlayerEarnings(t *testing.T) {
	records, err := ParsePlayerEarnings(playerEarningsHTML)
	require.NoError(t, err)
	require.Len(t, records, 2, "zero, non-numeric, and short rows are dropped")

	assert.Equal(t, model.EarningsRecord{
		Name:     "Chronicle",
		Earnings: 512345,
		Country:  "Russia",
		Type:     model.EarningsTypePlayer,
	}, records[0])

	assert.Equal(t, "aspas", records[1].Name)
	assert.Equal(t, 1103500, records[1].Earnings)
	assert.Empty(t, records[1].Country)
}

const teamEarningsHTML = `
<table class="wikitable">
  <tr><th>#</th><th>Team</th><th>1st</th><th>2nd</th><th>3rd</th><th>4th</th><th>Winnings</th></tr>
  <tr>
    <td>1</td>
    <td><a href="/valorant/Fnatic"><img src="/logo.png"></a> <a href="/valorant/Fnatic">Fnatic</a></td>
    <td>14</td><td>6</td><td>3</td><td>2</td>
    <td>$2,258,351</td>
  </tr>
  <tr>
    <td>2</td>
    <td><a href="/valorant/EDG"><img src="/logo.png"></a></td>
    <td>9</td><td>4</td><td>2</td><td>1</td>
    <td>$1,900,000</td>
  </tr>
</table>`

func TestParseTeamEarnings(t *testing.T) {
	records, err := ParseTeamEarnings(teamEarningsHTML)
	require.NoError(t, err)
	require.Len(t, records, 1, "logo-only cells yield no name and are dropped")

	assert.Equal(t, model.EarningsRecord{
		Name:     "Fnatic",
		Earnings: 2258351,
		Type:     model.EarningsTypeTeam,
	}, records[0])
}

func TestParseEarningsValue(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"$12,345", 12345, true},
		{" $1,103,500 ", 1103500, true},
		{"500", 500, true},
		{"$0", 0, false},
		{"-100", 0, false},
		{"TBD", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseEarnings(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseEarnings_NoTable(t *testing.T) {
	records, err := ParsePlayerEarnings("<p>maintenance</p>")
	require.NoError(t, err)
	assert.Empty(t, records)
}
