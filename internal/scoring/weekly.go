package scoring

import (
	"fmt"
	"log/slog"

	"github.com/omarshaarawi/bestball/internal/models"
)

// WeeklyScores runs the lineup optimizer over every roster. The result keeps
// the roster order.
func WeeklyScores(rosters []models.OwnerRoster, points map[string]models.PlayerPerformance, rc models.RosterCount) []models.OwnerScore {
	scores := make([]models.OwnerScore, 0, len(rosters))
	for _, roster := range rosters {
		p := Partition(roster.PlayerIDs, points)
		if len(p.Missing) > 0 || len(p.Unsupported) > 0 {
			slog.Debug("Excluded roster players",
				"owner", roster.Owner,
				"missing", len(p.Missing),
				"unsupported", len(p.Unsupported))
		}
		scores = append(scores, models.OwnerScore{
			Owner: roster.Owner,
			Score: BestLineupScore(p, rc),
		})
	}
	return scores
}

// WeeklyRecords decides every matchup of the week. Each scored owner must
// appear in exactly one matchup.
func WeeklyRecords(matchups []models.MatchupPair, scores []models.OwnerScore) (map[models.Owner]models.Record, error) {
	byOwner := make(map[models.Owner]float64, len(scores))
	for _, s := range scores {
		byOwner[s.Owner] = s.Score
	}

	records := make(map[models.Owner]models.Record, len(scores))
	for _, m := range matchups {
		if m.First == m.Second {
			return nil, fmt.Errorf("matchup %d pairs %q with itself: %w", m.ID, m.First, models.ErrMalformedMatchup)
		}

		first, ok := byOwner[m.First]
		if !ok {
			return nil, fmt.Errorf("matchup %d owner %q: %w", m.ID, m.First, models.ErrMissingScore)
		}
		second, ok := byOwner[m.Second]
		if !ok {
			return nil, fmt.Errorf("matchup %d owner %q: %w", m.ID, m.Second, models.ErrMissingScore)
		}

		for _, o := range []models.Owner{m.First, m.Second} {
			if _, seen := records[o]; seen {
				return nil, fmt.Errorf("owner %q appears in more than one matchup: %w", o, models.ErrMalformedMatchup)
			}
		}

		switch {
		case first > second:
			records[m.First], records[m.Second] = models.Win, models.Loss
		case first < second:
			records[m.First], records[m.Second] = models.Loss, models.Win
		default:
			records[m.First], records[m.Second] = models.Tie, models.Tie
		}
	}

	for _, s := range scores {
		if _, ok := records[s.Owner]; !ok {
			return nil, fmt.Errorf("owner %q has no matchup: %w", s.Owner, models.ErrMalformedMatchup)
		}
	}

	return records, nil
}
