package standings

import (
	"cmp"
	"maps"
	"math"
	"slices"

	"github.com/omarshaarawi/bestball/internal/models"
)

// DefaultTopCutoff is the ascending index at which a week counts as a top
// performance. In a 12 team league that is the top six.
const DefaultTopCutoff = 6

// WeekResult is one week of optimized scores and matchup outcomes.
type WeekResult struct {
	Week    int
	Scores  []models.OwnerScore
	Records map[models.Owner]models.Record
}

// WeekLine is one owner's view of a folded week.
type WeekLine struct {
	Week   int
	Score  float64
	Result models.Record
	Rank   int
}

// SeasonState accumulates weekly results. Fold returns a new state and never
// modifies the receiver, so a state may be shared freely once built.
type SeasonState struct {
	topCutoff int
	owners    []models.Owner
	scores    map[models.Owner]float64
	records   map[models.Owner]models.Record
	ranks     map[models.Owner][]int
	topHalf   map[models.Owner]int
	history   map[models.Owner][]WeekLine
	weeks     []int
}

func NewSeasonState(topCutoff int) SeasonState {
	return SeasonState{
		topCutoff: topCutoff,
		scores:    make(map[models.Owner]float64),
		records:   make(map[models.Owner]models.Record),
		ranks:     make(map[models.Owner][]int),
		topHalf:   make(map[models.Owner]int),
		history:   make(map[models.Owner][]WeekLine),
	}
}

// Fold adds one week to the season. Weeks must be folded in increasing order
// because ranks are taken from the cumulative scores at that point.
func (s SeasonState) Fold(w WeekResult) SeasonState {
	next := s.clone()

	weekly := make(map[models.Owner]float64, len(w.Scores))
	for _, ws := range w.Scores {
		if _, ok := next.scores[ws.Owner]; !ok {
			next.owners = append(next.owners, ws.Owner)
		}
		next.scores[ws.Owner] += ws.Score
		next.records[ws.Owner] = next.records[ws.Owner].Add(w.Records[ws.Owner])
		weekly[ws.Owner] = ws.Score
	}

	// Stable on first-seen order: of two owners tied on cumulative score the
	// one seen first gets the lower index and so the worse rank.
	ascending := slices.Clone(next.owners)
	slices.SortStableFunc(ascending, func(a, b models.Owner) int {
		return cmp.Compare(next.scores[a], next.scores[b])
	})

	n := len(ascending)
	for i, owner := range ascending {
		rank := n - i
		next.ranks[owner] = append(next.ranks[owner], rank)
		if i >= next.topCutoff {
			next.topHalf[owner]++
		}
		if score, played := weekly[owner]; played {
			next.history[owner] = append(next.history[owner], WeekLine{
				Week:   w.Week,
				Score:  score,
				Result: w.Records[owner],
				Rank:   rank,
			})
		}
	}

	next.weeks = append(next.weeks, w.Week)
	return next
}

func (s SeasonState) clone() SeasonState {
	c := SeasonState{
		topCutoff: s.topCutoff,
		owners:    slices.Clone(s.owners),
		scores:    maps.Clone(s.scores),
		records:   maps.Clone(s.records),
		ranks:     make(map[models.Owner][]int, len(s.ranks)),
		topHalf:   maps.Clone(s.topHalf),
		history:   make(map[models.Owner][]WeekLine, len(s.history)),
		weeks:     slices.Clone(s.weeks),
	}
	for o, r := range s.ranks {
		c.ranks[o] = slices.Clone(r)
	}
	for o, h := range s.history {
		c.history[o] = slices.Clone(h)
	}
	if c.scores == nil {
		c.scores = make(map[models.Owner]float64)
		c.records = make(map[models.Owner]models.Record)
		c.topHalf = make(map[models.Owner]int)
	}
	return c
}

func (s SeasonState) Weeks() []int {
	return slices.Clone(s.weeks)
}

func (s SeasonState) Owners() []models.Owner {
	return slices.Clone(s.owners)
}

func (s SeasonState) Score(o models.Owner) float64 {
	return s.scores[o]
}

func (s SeasonState) Record(o models.Owner) models.Record {
	return s.records[o]
}

func (s SeasonState) Ranks(o models.Owner) []int {
	return slices.Clone(s.ranks[o])
}

func (s SeasonState) TopHalf(o models.Owner) int {
	return s.topHalf[o]
}

func (s SeasonState) History(o models.Owner) []WeekLine {
	return slices.Clone(s.history[o])
}

// Standing is one finalized report row.
type Standing struct {
	Owner       models.Owner
	Score       float64
	Record      models.Record
	TopHalf     int
	AverageRank float64
}

// Finalize reduces the season into report rows in first-seen owner order.
func (s SeasonState) Finalize() []Standing {
	rows := make([]Standing, 0, len(s.owners))
	for _, o := range s.owners {
		rows = append(rows, Standing{
			Owner:       o,
			Score:       s.scores[o],
			Record:      s.records[o],
			TopHalf:     s.topHalf[o],
			AverageRank: averageRank(s.ranks[o]),
		})
	}
	return rows
}

func averageRank(ranks []int) float64 {
	if len(ranks) == 0 {
		return 0
	}
	total := 0
	for _, r := range ranks {
		total += r
	}
	avg := float64(total) / float64(len(ranks))
	return math.Round(avg*100) / 100
}
