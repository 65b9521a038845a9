package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/omarshaarawi/bestball/internal/models"
	"github.com/omarshaarawi/bestball/internal/scoring"
	"github.com/omarshaarawi/bestball/internal/standings"
)

// Provider supplies league data for one season.
type Provider interface {
	ListOwners(ctx context.Context) ([]models.Owner, error)
	RosterForWeek(ctx context.Context, week int) ([]models.OwnerRoster, error)
	MatchupsForWeek(ctx context.Context, week int) ([]models.MatchupPair, error)
	PointsForWeek(ctx context.Context, week int) (map[string]models.PlayerPerformance, error)
	CurrentWeek(ctx context.Context) (models.NFLState, error)
	Season() string
	Refresh()
}

const noWeeksPlayed = "No weeks have been played yet."

type Options struct {
	RosterCount models.RosterCount
	TopCutoff   int
	EndWeek     int
}

type BestBallService struct {
	provider Provider
	opts     Options
}

func NewBestBallService(provider Provider, opts Options) *BestBallService {
	return &BestBallService{provider: provider, opts: opts}
}

// Week computes optimized scores and matchup results for a single week.
func (s *BestBallService) Week(ctx context.Context, week int) (standings.WeekResult, error) {
	rosters, err := s.provider.RosterForWeek(ctx, week)
	if err != nil {
		return standings.WeekResult{}, err
	}
	matchups, err := s.provider.MatchupsForWeek(ctx, week)
	if err != nil {
		return standings.WeekResult{}, err
	}
	points, err := s.provider.PointsForWeek(ctx, week)
	if err != nil {
		return standings.WeekResult{}, err
	}

	scores := scoring.WeeklyScores(rosters, points, s.opts.RosterCount)
	records, err := scoring.WeeklyRecords(matchups, scores)
	if err != nil {
		return standings.WeekResult{}, fmt.Errorf("week %d records: %w", week, err)
	}

	slog.Debug("Scored week", "week", week, "owners", len(scores), "matchups", len(matchups))
	return standings.WeekResult{Week: week, Scores: scores, Records: records}, nil
}

// Season folds the given weeks in order.
func (s *BestBallService) Season(ctx context.Context, weeks []int) (standings.SeasonState, error) {
	s.provider.Refresh()

	owners, err := s.provider.ListOwners(ctx)
	if err != nil {
		return standings.SeasonState{}, fmt.Errorf("error listing owners: %w", err)
	}
	slog.Info("Computing best ball standings", "season", s.provider.Season(), "owners", len(owners), "weeks", len(weeks))

	state := standings.NewSeasonState(s.opts.TopCutoff)
	for _, week := range weeks {
		result, err := s.Week(ctx, week)
		if err != nil {
			return standings.SeasonState{}, fmt.Errorf("error scoring week %d: %w", week, err)
		}
		state = state.Fold(result)
	}
	return state, nil
}

// WeekRange returns the weeks a report covers: just week when it is set,
// otherwise 1 through endWeek.
func WeekRange(week, endWeek int) []int {
	if week > 0 {
		return []int{week}
	}
	weeks := make([]int, 0, endWeek)
	for w := 1; w <= endWeek; w++ {
		weeks = append(weeks, w)
	}
	return weeks
}

// GetStandings renders standings for a single week, or for the season
// through EndWeek when week is zero.
func (s *BestBallService) GetStandings(ctx context.Context, week int, sortBy string) (string, error) {
	return s.getStandings(ctx, week, s.opts.EndWeek, sortBy)
}

// GetCurrentStandings renders season standings through the current NFL week.
func (s *BestBallService) GetCurrentStandings(ctx context.Context, sortBy string) (string, error) {
	if _, err := standings.ParseSortKey(sortBy); err != nil {
		return "", err
	}

	through, err := s.throughWeek(ctx)
	if err != nil {
		return "", err
	}
	if through < 1 {
		return noWeeksPlayed, nil
	}
	return s.getStandings(ctx, 0, through, sortBy)
}

func (s *BestBallService) getStandings(ctx context.Context, week, endWeek int, sortBy string) (string, error) {
	key, err := standings.ParseSortKey(sortBy)
	if err != nil {
		return "", err
	}

	weeks := WeekRange(week, endWeek)
	state, err := s.Season(ctx, weeks)
	if err != nil {
		return "", err
	}

	rows := standings.Sort(state.Finalize(), key)
	return FormatStandings(reportTitle(s.provider.Season(), weeks), rows, key), nil
}

func (s *BestBallService) throughWeek(ctx context.Context) (int, error) {
	state, err := s.provider.CurrentWeek(ctx)
	if err != nil {
		return 0, fmt.Errorf("error fetching current week: %w", err)
	}
	if state.Season != s.provider.Season() || state.SeasonType != "regular" {
		return s.opts.EndWeek, nil
	}
	return min(s.opts.EndWeek, state.Week), nil
}

// GetOwnerReport renders the weekly breakdown of the owner whose name is
// closest to name.
func (s *BestBallService) GetOwnerReport(ctx context.Context, week int, name string) (string, error) {
	return s.ownerReport(ctx, WeekRange(week, s.opts.EndWeek), name)
}

// GetCurrentOwnerReport renders an owner's breakdown through the current NFL
// week, covering the same weeks as GetCurrentStandings.
func (s *BestBallService) GetCurrentOwnerReport(ctx context.Context, name string) (string, error) {
	through, err := s.throughWeek(ctx)
	if err != nil {
		return "", err
	}
	if through < 1 {
		return noWeeksPlayed, nil
	}
	return s.ownerReport(ctx, WeekRange(0, through), name)
}

func (s *BestBallService) ownerReport(ctx context.Context, weeks []int, name string) (string, error) {
	state, err := s.Season(ctx, weeks)
	if err != nil {
		return "", err
	}

	owner, err := FindOwner(state.Owners(), name)
	if err != nil {
		return "", err
	}
	return FormatOwnerReport(owner, state), nil
}

func reportTitle(season string, weeks []int) string {
	switch {
	case len(weeks) == 0:
		return fmt.Sprintf("Best Ball Standings %s", season)
	case len(weeks) == 1:
		return fmt.Sprintf("Best Ball Standings %s, Week %d", season, weeks[0])
	default:
		return fmt.Sprintf("Best Ball Standings %s, Weeks %d-%d", season, weeks[0], weeks[len(weeks)-1])
	}
}
