package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omarshaarawi/bestball/internal/models"
)

func TestBestLineupScore(t *testing.T) {
	rc := models.DefaultRosterCount()

	tests := []struct {
		name     string
		points   PositionPoints
		rc       models.RosterCount
		expected float64
	}{
		{
			name: "flex takes leftover RB and TE",
			points: PositionPoints{
				RB: []float64{20, 15, 10},
				WR: []float64{18, 12},
				QB: []float64{25},
				TE: []float64{8, 5},
			},
			rc:       rc,
			expected: 113,
		},
		{
			name: "unsorted input is sorted before slotting",
			points: PositionPoints{
				RB: []float64{10, 20, 15},
				WR: []float64{12, 18},
				QB: []float64{25},
				TE: []float64{5, 8},
			},
			rc:       rc,
			expected: 113,
		},
		{
			name: "one RB for two RB slots",
			points: PositionPoints{
				RB: []float64{14},
				WR: []float64{10, 9},
				QB: []float64{20},
				TE: []float64{6},
			},
			rc:       rc,
			expected: 14 + 10 + 9 + 20 + 6,
		},
		{
			name: "backup QB never fills flex",
			points: PositionPoints{
				QB: []float64{30, 28},
				WR: []float64{4, 3, 2},
			},
			rc:       rc,
			expected: 30 + 4 + 3 + 2,
		},
		{
			name: "flex picks the best overflow across positions",
			points: PositionPoints{
				RB: []float64{10, 9, 1},
				WR: []float64{12, 11, 30},
				TE: []float64{7, 6},
			},
			rc:       rc,
			expected: 10 + 9 + 30 + 12 + 7 + 11 + 6,
		},
		{
			name:     "empty roster scores zero",
			points:   PositionPoints{},
			rc:       rc,
			expected: 0,
		},
		{
			name: "no flex slots",
			points: PositionPoints{
				RB: []float64{10, 9, 8},
			},
			rc:       models.RosterCount{RB: 1},
			expected: 10,
		},
		{
			name: "negative points still start when nobody else is available",
			points: PositionPoints{
				QB: []float64{-2},
			},
			rc:       rc,
			expected: -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, BestLineupScore(tt.points, tt.rc), 1e-9)
		})
	}
}

func TestBestLineupScore_Idempotent(t *testing.T) {
	points := PositionPoints{
		RB: []float64{3, 20, 15, 10},
		WR: []float64{12, 18},
		QB: []float64{25},
		TE: []float64{5, 8},
	}
	rc := models.DefaultRosterCount()

	first := BestLineupScore(points, rc)
	second := BestLineupScore(points, rc)

	assert.Equal(t, first, second)
	assert.Equal(t, []float64{3, 20, 15, 10}, points.RB, "input must not be reordered")
}

func TestPartition(t *testing.T) {
	points := map[string]models.PlayerPerformance{
		"rb1": {Points: 12.5, Position: models.PositionRB},
		"wr1": {Points: 8, Position: models.PositionWR},
		"qb1": {Points: 21.3, Position: models.PositionQB},
		"te1": {Points: 4.2, Position: models.PositionTE},
		"k1":  {Points: 9, Position: models.Position("K")},
	}

	p := Partition([]string{"rb1", "wr1", "qb1", "te1", "k1", "bye"}, points)

	assert.Equal(t, []float64{12.5}, p.RB)
	assert.Equal(t, []float64{8}, p.WR)
	assert.Equal(t, []float64{21.3}, p.QB)
	assert.Equal(t, []float64{4.2}, p.TE)
	assert.Equal(t, []string{"bye"}, p.Missing)
	assert.Equal(t, []string{"k1"}, p.Unsupported)
}

func TestPartition_MissingPlayersAreExcludedNotZeroed(t *testing.T) {
	points := map[string]models.PlayerPerformance{
		"rb1": {Points: 5, Position: models.PositionRB},
	}

	p := Partition([]string{"rb1", "rb2"}, points)

	assert.Equal(t, []float64{5}, p.RB, "a player without points must not add a zero candidate")
	assert.Equal(t, []string{"rb2"}, p.Missing)
}
