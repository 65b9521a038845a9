package memory

import (
	"sync"
	"time"

	"github.com/omarshaarawi/bestball/internal/models"
)

// PlayerDirectoryTTL bounds how long a downloaded player directory is reused.
const PlayerDirectoryTTL = 24 * time.Hour

type Repository struct {
	owners   *models.OwnerDirectory
	players  *models.PlayerDirectory
	matchups map[int][]models.SleeperMatchupEntry
	mu       sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{matchups: make(map[int][]models.SleeperMatchupEntry)}
}

func (r *Repository) SaveOwners(owners *models.OwnerDirectory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners = owners
}

func (r *Repository) GetOwners() *models.OwnerDirectory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.owners
}

func (r *Repository) SavePlayers(players *models.PlayerDirectory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players = players
}

// GetPlayers returns the cached player directory, or nil once it is older
// than PlayerDirectoryTTL.
func (r *Repository) GetPlayers() *models.PlayerDirectory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.players == nil || time.Since(r.players.LastUpdated) > PlayerDirectoryTTL {
		return nil
	}
	return r.players
}

func (r *Repository) SaveMatchups(week int, entries []models.SleeperMatchupEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matchups[week] = entries
}

func (r *Repository) GetMatchups(week int) ([]models.SleeperMatchupEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries, ok := r.matchups[week]
	return entries, ok
}

// Reset drops everything but the player directory, which changes rarely.
func (r *Repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners = nil
	r.matchups = make(map[int][]models.SleeperMatchupEntry)
}
