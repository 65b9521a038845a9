package fantasy

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/omarshaarawi/bestball/internal/api/sleeper"
	"github.com/omarshaarawi/bestball/internal/models"
	"github.com/omarshaarawi/bestball/internal/repository/memory"
)

// API exposes one Sleeper league as owners, rosters, matchups and points.
type API struct {
	sleeperAPI *sleeper.API
	repo       *memory.Repository
	leagueID   string
	year       string
}

func NewAPI(sleeperAPI *sleeper.API, repo *memory.Repository, leagueID, year string) *API {
	return &API{sleeperAPI: sleeperAPI, repo: repo, leagueID: leagueID, year: year}
}

// Refresh forgets cached league data so the next report refetches it.
func (a *API) Refresh() {
	a.repo.Reset()
}

func (a *API) ListOwners(ctx context.Context) ([]models.Owner, error) {
	dir, err := a.ownerDirectory(ctx)
	if err != nil {
		return nil, err
	}
	return append([]models.Owner(nil), dir.Owners...), nil
}

func (a *API) ownerDirectory(ctx context.Context) (*models.OwnerDirectory, error) {
	if dir := a.repo.GetOwners(); dir != nil {
		return dir, nil
	}

	users, err := a.sleeperAPI.GetUsers(ctx, a.leagueID)
	if err != nil {
		return nil, err
	}
	rosters, err := a.sleeperAPI.GetRosters(ctx, a.leagueID)
	if err != nil {
		return nil, err
	}

	dir, err := buildOwnerDirectory(users, rosters)
	if err != nil {
		return nil, err
	}
	a.repo.SaveOwners(dir)
	return dir, nil
}

func buildOwnerDirectory(users []models.SleeperUser, rosters []models.SleeperRoster) (*models.OwnerDirectory, error) {
	names := make(map[string]models.Owner, len(users))
	for _, u := range users {
		names[u.UserID] = models.Owner(u.DisplayName)
	}

	dir := &models.OwnerDirectory{RosterOwners: make(map[int]models.Owner, len(rosters))}
	for _, r := range rosters {
		owner, ok := names[r.OwnerID]
		if !ok {
			return nil, fmt.Errorf("roster %d owner %q: %w", r.RosterID, r.OwnerID, models.ErrMissingOwner)
		}
		dir.RosterOwners[r.RosterID] = owner
		dir.Owners = append(dir.Owners, owner)
	}
	return dir, nil
}

func (a *API) matchupEntries(ctx context.Context, week int) ([]models.SleeperMatchupEntry, error) {
	if entries, ok := a.repo.GetMatchups(week); ok {
		return entries, nil
	}
	entries, err := a.sleeperAPI.GetMatchups(ctx, a.leagueID, week)
	if err != nil {
		return nil, err
	}
	a.repo.SaveMatchups(week, entries)
	return entries, nil
}

// RosterForWeek returns every owner's full roster for the week in the order
// the league lists them.
func (a *API) RosterForWeek(ctx context.Context, week int) ([]models.OwnerRoster, error) {
	dir, err := a.ownerDirectory(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := a.matchupEntries(ctx, week)
	if err != nil {
		return nil, err
	}

	rosters := make([]models.OwnerRoster, 0, len(entries))
	for _, e := range entries {
		owner, ok := dir.RosterOwners[e.RosterID]
		if !ok {
			return nil, fmt.Errorf("week %d roster %d: %w", week, e.RosterID, models.ErrMissingOwner)
		}
		rosters = append(rosters, models.OwnerRoster{Owner: owner, PlayerIDs: e.Players})
	}
	return rosters, nil
}

func (a *API) MatchupsForWeek(ctx context.Context, week int) ([]models.MatchupPair, error) {
	dir, err := a.ownerDirectory(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := a.matchupEntries(ctx, week)
	if err != nil {
		return nil, err
	}
	pairs, err := groupMatchups(dir, entries)
	if err != nil {
		return nil, fmt.Errorf("week %d: %w", week, err)
	}
	return pairs, nil
}

// groupMatchups pairs owners by matchup id. Entries without a matchup id are
// grouped together under id 0.
func groupMatchups(dir *models.OwnerDirectory, entries []models.SleeperMatchupEntry) ([]models.MatchupPair, error) {
	byID := make(map[int][]models.Owner)
	for _, e := range entries {
		owner, ok := dir.RosterOwners[e.RosterID]
		if !ok {
			return nil, fmt.Errorf("roster %d: %w", e.RosterID, models.ErrMissingOwner)
		}
		id := 0
		if e.MatchupID != nil {
			id = *e.MatchupID
		}
		byID[id] = append(byID[id], owner)
	}

	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	pairs := make([]models.MatchupPair, 0, len(ids))
	for _, id := range ids {
		owners := byID[id]
		if len(owners) != 2 {
			return nil, fmt.Errorf("matchup %d has %d owners: %w", id, len(owners), models.ErrMalformedMatchup)
		}
		pairs = append(pairs, models.MatchupPair{ID: id, First: owners[0], Second: owners[1]})
	}
	return pairs, nil
}

func (a *API) playerDirectory(ctx context.Context) (*models.PlayerDirectory, error) {
	if dir := a.repo.GetPlayers(); dir != nil {
		return dir, nil
	}

	players, err := a.sleeperAPI.GetPlayers(ctx)
	if err != nil {
		return nil, err
	}

	dir := &models.PlayerDirectory{
		Players:     make(map[string]models.PlayerInfo, len(players)),
		LastUpdated: time.Now(),
	}
	for id, p := range players {
		if len(p.FantasyPositions) == 0 {
			continue
		}
		pos, ok := models.ParsePosition(p.FantasyPositions[0])
		if !ok {
			continue
		}
		dir.Players[id] = models.PlayerInfo{Name: p.SearchFullName, Position: pos}
	}

	slog.Info("Loaded player directory", "players", len(dir.Players))
	a.repo.SavePlayers(dir)
	return dir, nil
}

// PointsForWeek returns half-PPR points for every scored-position player
// with a recorded total that week.
func (a *API) PointsForWeek(ctx context.Context, week int) (map[string]models.PlayerPerformance, error) {
	dir, err := a.playerDirectory(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := a.sleeperAPI.GetWeekStats(ctx, a.year, week)
	if err != nil {
		return nil, err
	}

	points := make(map[string]models.PlayerPerformance, len(stats))
	for id, line := range stats {
		info, ok := dir.Players[id]
		if !ok || line.PtsHalfPPR == nil {
			continue
		}
		points[id] = models.PlayerPerformance{Points: *line.PtsHalfPPR, Position: info.Position}
	}
	return points, nil
}

func (a *API) CurrentWeek(ctx context.Context) (models.NFLState, error) {
	state, err := a.sleeperAPI.GetNFLState(ctx)
	if err != nil {
		return models.NFLState{}, err
	}
	return models.NFLState{
		Season:      state.Season,
		SeasonType:  state.SeasonType,
		Week:        state.Week,
		DisplayWeek: state.DisplayWeek,
	}, nil
}

func (a *API) Season() string {
	return a.year
}
