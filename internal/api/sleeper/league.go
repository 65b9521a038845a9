package sleeper

import (
	"context"
	"fmt"

	"github.com/omarshaarawi/bestball/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) GetUsers(ctx context.Context, leagueID string) ([]models.SleeperUser, error) {
	var users []models.SleeperUser
	endpoint := fmt.Sprintf("/league/%s/users", leagueID)
	if err := a.client.Get(ctx, endpoint, &users); err != nil {
		return nil, fmt.Errorf("fetching league users: %w", err)
	}
	return users, nil
}

func (a *API) GetRosters(ctx context.Context, leagueID string) ([]models.SleeperRoster, error) {
	var rosters []models.SleeperRoster
	endpoint := fmt.Sprintf("/league/%s/rosters", leagueID)
	if err := a.client.Get(ctx, endpoint, &rosters); err != nil {
		return nil, fmt.Errorf("fetching league rosters: %w", err)
	}
	return rosters, nil
}

func (a *API) GetMatchups(ctx context.Context, leagueID string, week int) ([]models.SleeperMatchupEntry, error) {
	var entries []models.SleeperMatchupEntry
	endpoint := fmt.Sprintf("/league/%s/matchups/%d", leagueID, week)
	if err := a.client.Get(ctx, endpoint, &entries); err != nil {
		return nil, fmt.Errorf("fetching week %d matchups: %w", week, err)
	}
	return entries, nil
}

// GetPlayers downloads the full NFL player directory, keyed by player id.
func (a *API) GetPlayers(ctx context.Context) (map[string]models.SleeperPlayer, error) {
	var players map[string]models.SleeperPlayer
	if err := a.client.Get(ctx, "/players/nfl", &players); err != nil {
		return nil, fmt.Errorf("fetching player directory: %w", err)
	}
	return players, nil
}

func (a *API) GetWeekStats(ctx context.Context, year string, week int) (map[string]models.SleeperStatLine, error) {
	var stats map[string]models.SleeperStatLine
	endpoint := fmt.Sprintf("/stats/nfl/regular/%s/%d", year, week)
	if err := a.client.Get(ctx, endpoint, &stats); err != nil {
		return nil, fmt.Errorf("fetching week %d stats: %w", week, err)
	}
	return stats, nil
}

func (a *API) GetNFLState(ctx context.Context) (models.SleeperState, error) {
	var state models.SleeperState
	if err := a.client.Get(ctx, "/state/nfl", &state); err != nil {
		return models.SleeperState{}, fmt.Errorf("fetching nfl state: %w", err)
	}
	return state, nil
}
