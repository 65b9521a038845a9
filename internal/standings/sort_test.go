package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/bestball/internal/models"
)

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input    string
		expected SortKey
	}{
		{"score", SortByScore},
		{"record", SortByRecord},
		{"rank", SortByRank},
		{"top6", SortByTopHalf},
		{" TOP6 ", SortByTopHalf},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, err := ParseSortKey(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, key)
			assert.Equal(t, tt.expected, mustParse(t, key.String()))
		})
	}
}

func mustParse(t *testing.T, s string) SortKey {
	t.Helper()
	key, err := ParseSortKey(s)
	require.NoError(t, err)
	return key
}

func TestParseSortKey_Unknown(t *testing.T) {
	_, err := ParseSortKey("points")
	assert.ErrorIs(t, err, models.ErrUnknownSortKey)

	assert.Equal(t,
		"Please enter either 'score', 'record', 'rank', or 'top6' for the sort option. points isn't recognized",
		UnknownSortKeyMessage("points"))
}

func owners(rows []Standing) []models.Owner {
	out := make([]models.Owner, len(rows))
	for i, r := range rows {
		out[i] = r.Owner
	}
	return out
}

func TestSort(t *testing.T) {
	rows := []Standing{
		{Owner: "A", Score: 1200.5, Record: models.Record{Wins: 10, Losses: 3}, TopHalf: 9, AverageRank: 2.5},
		{Owner: "B", Score: 900, Record: models.Record{Wins: 9, Losses: 4}, TopHalf: 4, AverageRank: 7.25},
		{Owner: "C", Score: 1100, Record: models.Record{Wins: 2, Losses: 11}, TopHalf: 7, AverageRank: 4},
		{Owner: "D", Score: 1000, Record: models.Record{Wins: 9, Losses: 3, Ties: 1}, TopHalf: 4, AverageRank: 5.5},
	}

	tests := []struct {
		key      SortKey
		expected []models.Owner
	}{
		{SortByScore, []models.Owner{"B", "D", "C", "A"}},
		// Numeric: 10 wins sorts after 9 and 2, fewer losses breaks the 9 win tie.
		{SortByRecord, []models.Owner{"C", "B", "D", "A"}},
		{SortByRank, []models.Owner{"B", "D", "C", "A"}},
		// B and D tie on 4 and keep their input order.
		{SortByTopHalf, []models.Owner{"B", "D", "C", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, owners(Sort(rows, tt.key)))
		})
	}

	assert.Equal(t, []models.Owner{"A", "B", "C", "D"}, owners(rows), "Sort must not reorder its input")
}

func TestSort_PanicsOnUnknownKey(t *testing.T) {
	assert.PanicsWithValue(t, "standings: no comparator for sort key SortKey(9)", func() {
		Sort([]Standing{{Owner: "A"}}, SortKey(9))
	})
}
