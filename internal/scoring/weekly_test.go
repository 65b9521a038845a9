package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/bestball/internal/models"
)

func TestWeeklyScores(t *testing.T) {
	points := map[string]models.PlayerPerformance{
		"rb1": {Points: 20, Position: models.PositionRB},
		"rb2": {Points: 15, Position: models.PositionRB},
		"rb3": {Points: 10, Position: models.PositionRB},
		"wr1": {Points: 18, Position: models.PositionWR},
		"wr2": {Points: 12, Position: models.PositionWR},
		"qb1": {Points: 25, Position: models.PositionQB},
		"te1": {Points: 8, Position: models.PositionTE},
		"te2": {Points: 5, Position: models.PositionTE},
		"qb2": {Points: 17, Position: models.PositionQB},
	}
	rosters := []models.OwnerRoster{
		{Owner: "alice", PlayerIDs: []string{"rb1", "rb2", "rb3", "wr1", "wr2", "qb1", "te1", "te2", "injured"}},
		{Owner: "bob", PlayerIDs: []string{"qb2"}},
		{Owner: "carol", PlayerIDs: nil},
	}

	scores := WeeklyScores(rosters, points, models.DefaultRosterCount())

	require.Len(t, scores, 3)
	assert.Equal(t, models.OwnerScore{Owner: "alice", Score: 113}, scores[0])
	assert.Equal(t, models.OwnerScore{Owner: "bob", Score: 17}, scores[1])
	assert.Equal(t, models.OwnerScore{Owner: "carol", Score: 0}, scores[2])
}

func TestWeeklyRecords(t *testing.T) {
	tests := []struct {
		name     string
		first    float64
		second   float64
		expected [2]models.Record
	}{
		{"first wins", 100, 90, [2]models.Record{{Wins: 1}, {Losses: 1}}},
		{"second wins", 90, 100, [2]models.Record{{Losses: 1}, {Wins: 1}}},
		{"tie", 100, 100, [2]models.Record{{Ties: 1}, {Ties: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := []models.OwnerScore{{Owner: "a", Score: tt.first}, {Owner: "b", Score: tt.second}}
			matchups := []models.MatchupPair{{ID: 1, First: "a", Second: "b"}}

			records, err := WeeklyRecords(matchups, scores)

			require.NoError(t, err)
			assert.Equal(t, tt.expected[0], records["a"])
			assert.Equal(t, tt.expected[1], records["b"])
		})
	}
}

func TestWeeklyRecords_Errors(t *testing.T) {
	scores := []models.OwnerScore{
		{Owner: "a", Score: 10},
		{Owner: "b", Score: 20},
		{Owner: "c", Score: 30},
		{Owner: "d", Score: 40},
	}

	tests := []struct {
		name     string
		matchups []models.MatchupPair
		scores   []models.OwnerScore
		err      error
	}{
		{
			name:     "owner without score",
			matchups: []models.MatchupPair{{ID: 1, First: "a", Second: "z"}},
			scores:   scores[:1],
			err:      models.ErrMissingScore,
		},
		{
			name: "owner in two matchups",
			matchups: []models.MatchupPair{
				{ID: 1, First: "a", Second: "b"},
				{ID: 2, First: "a", Second: "c"},
			},
			scores: scores[:3],
			err:    models.ErrMalformedMatchup,
		},
		{
			name:     "owner without matchup",
			matchups: []models.MatchupPair{{ID: 1, First: "a", Second: "b"}},
			scores:   scores,
			err:      models.ErrMalformedMatchup,
		},
		{
			name:     "owner paired with itself",
			matchups: []models.MatchupPair{{ID: 1, First: "a", Second: "a"}},
			scores:   scores[:1],
			err:      models.ErrMalformedMatchup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WeeklyRecords(tt.matchups, tt.scores)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
