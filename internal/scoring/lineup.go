package scoring

import (
	"cmp"
	"slices"

	"github.com/omarshaarawi/bestball/internal/models"
)

// PositionPoints holds one owner's weekly point totals split by position.
// Missing lists roster players with no recorded points that week and
// Unsupported lists players whose position is not scored.
type PositionPoints struct {
	RB          []float64
	WR          []float64
	QB          []float64
	TE          []float64
	Missing     []string
	Unsupported []string
}

// Partition splits a roster into per-position point lists.
func Partition(playerIDs []string, points map[string]models.PlayerPerformance) PositionPoints {
	var p PositionPoints
	for _, id := range playerIDs {
		perf, ok := points[id]
		if !ok {
			p.Missing = append(p.Missing, id)
			continue
		}

		switch perf.Position {
		case models.PositionRB:
			p.RB = append(p.RB, perf.Points)
		case models.PositionWR:
			p.WR = append(p.WR, perf.Points)
		case models.PositionQB:
			p.QB = append(p.QB, perf.Points)
		case models.PositionTE:
			p.TE = append(p.TE, perf.Points)
		default:
			p.Unsupported = append(p.Unsupported, id)
		}
	}
	return p
}

// BestLineupScore returns the highest total a legal lineup could have scored.
// Each position contributes its top N players; the leftover RB, WR and TE
// values compete for the FLEX slots. QB never flexes. Positions short of
// players are left unfilled.
func BestLineupScore(p PositionPoints, rc models.RosterCount) float64 {
	rbStart, rbRest := split(p.RB, rc.RB)
	wrStart, wrRest := split(p.WR, rc.WR)
	teStart, teRest := split(p.TE, rc.TE)
	qbStart, _ := split(p.QB, rc.QB)

	flex := make([]float64, 0, len(rbRest)+len(wrRest)+len(teRest))
	flex = append(flex, rbRest...)
	flex = append(flex, wrRest...)
	flex = append(flex, teRest...)
	flexStart, _ := split(flex, rc.Flex)

	return sum(rbStart) + sum(wrStart) + sum(qbStart) + sum(teStart) + sum(flexStart)
}

// split sorts a copy of values descending and cuts it after n entries.
func split(values []float64, n int) ([]float64, []float64) {
	sorted := slices.Clone(values)
	slices.SortFunc(sorted, func(a, b float64) int { return cmp.Compare(b, a) })

	n = max(0, min(n, len(sorted)))
	return sorted[:n], sorted[n:]
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
