package standings

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/omarshaarawi/bestball/internal/models"
)

type SortKey int

const (
	SortByScore SortKey = iota
	SortByRecord
	SortByRank
	SortByTopHalf
)

var sortKeyNames = map[SortKey]string{
	SortByScore:   "score",
	SortByRecord:  "record",
	SortByRank:    "rank",
	SortByTopHalf: "top6",
}

func (k SortKey) String() string {
	if name, ok := sortKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

func ParseSortKey(s string) (SortKey, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range sortKeyNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, models.ErrUnknownSortKey)
}

// UnknownSortKeyMessage is shown instead of a report when the sort key is
// not recognized.
func UnknownSortKeyMessage(s string) string {
	return fmt.Sprintf("Please enter either 'score', 'record', 'rank', or 'top6' for the sort option. %s isn't recognized", s)
}

// Every ordering puts the strongest owner last, closest to the prompt.
var comparators = map[SortKey]func(a, b Standing) int{
	SortByScore: func(a, b Standing) int {
		return cmp.Compare(a.Score, b.Score)
	},
	SortByRecord: func(a, b Standing) int {
		if c := cmp.Compare(a.Record.Wins, b.Record.Wins); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Record.Losses, a.Record.Losses); c != 0 {
			return c
		}
		return cmp.Compare(a.Record.Ties, b.Record.Ties)
	},
	SortByRank: func(a, b Standing) int {
		return cmp.Compare(b.AverageRank, a.AverageRank)
	},
	SortByTopHalf: func(a, b Standing) int {
		return cmp.Compare(a.TopHalf, b.TopHalf)
	},
}

// Sort returns a sorted copy of rows. Equal rows keep their input order.
// Keys come from ParseSortKey; any other value panics.
func Sort(rows []Standing, key SortKey) []Standing {
	compare, ok := comparators[key]
	if !ok {
		panic(fmt.Sprintf("standings: no comparator for sort key %s", key))
	}
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, compare)
	return sorted
}
