package models

import (
	"fmt"
	"time"
)

// Owner is the display name of the manager of one fantasy roster.
type Owner string

type Position string

const (
	PositionRB Position = "RB"
	PositionWR Position = "WR"
	PositionQB Position = "QB"
	PositionTE Position = "TE"
)

// ParsePosition reports whether s is one of the four scored positions.
func ParsePosition(s string) (Position, bool) {
	switch p := Position(s); p {
	case PositionRB, PositionWR, PositionQB, PositionTE:
		return p, true
	default:
		return "", false
	}
}

type PlayerPerformance struct {
	Points   float64
	Position Position
}

// RosterCount is the number of required starters per position plus the
// number of FLEX slots, which any leftover RB, WR or TE may fill.
type RosterCount struct {
	RB   int
	WR   int
	QB   int
	TE   int
	Flex int
}

func DefaultRosterCount() RosterCount {
	return RosterCount{RB: 2, WR: 2, QB: 1, TE: 1, Flex: 2}
}

func (r RosterCount) Starters(p Position) int {
	switch p {
	case PositionRB:
		return r.RB
	case PositionWR:
		return r.WR
	case PositionQB:
		return r.QB
	case PositionTE:
		return r.TE
	default:
		return 0
	}
}

type OwnerRoster struct {
	Owner     Owner
	PlayerIDs []string
}

// MatchupPair is an unordered pairing of two owners for one week.
type MatchupPair struct {
	ID     int
	First  Owner
	Second Owner
}

type OwnerScore struct {
	Owner Owner
	Score float64
}

type Record struct {
	Wins   int
	Losses int
	Ties   int
}

var (
	Win  = Record{Wins: 1}
	Loss = Record{Losses: 1}
	Tie  = Record{Ties: 1}
)

func (r Record) Add(o Record) Record {
	return Record{
		Wins:   r.Wins + o.Wins,
		Losses: r.Losses + o.Losses,
		Ties:   r.Ties + o.Ties,
	}
}

func (r Record) String() string {
	return fmt.Sprintf("%d-%d-%d", r.Wins, r.Losses, r.Ties)
}

type PlayerInfo struct {
	Name     string
	Position Position
}

type PlayerDirectory struct {
	Players     map[string]PlayerInfo
	LastUpdated time.Time
}

type OwnerDirectory struct {
	Owners       []Owner
	RosterOwners map[int]Owner
}

type NFLState struct {
	Season      string
	SeasonType  string
	Week        int
	DisplayWeek int
}
