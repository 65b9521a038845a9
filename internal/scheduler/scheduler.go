package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/omarshaarawi/bestball/internal/standings"
)

// StandingsSource renders season standings through the current week.
type StandingsSource interface {
	GetCurrentStandings(ctx context.Context, sortBy string) (string, error)
}

type Scheduler struct {
	s           gocron.Scheduler
	source      StandingsSource
	sendMessage func(string) error
	schedule    string
	timeout     time.Duration
}

func NewScheduler(source StandingsSource, sendMessage func(string) error, schedule, location string) (*Scheduler, error) {
	loc, err := time.LoadLocation(location)
	if err != nil {
		slog.Error("Failed to load location, using UTC", "location", location, "error", err)
		loc = time.UTC
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(loc),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		source:      source,
		sendMessage: sendMessage,
		schedule:    schedule,
		timeout:     5 * time.Minute,
	}, nil
}

func (s *Scheduler) Start() error {
	// Weekly standings, by default Tuesday 7:30 once Monday night is final.
	_, err := s.s.NewJob(
		gocron.CronJob(s.schedule, false),
		gocron.NewTask(s.sendStandings),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create standings job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendStandings() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	report, err := s.source.GetCurrentStandings(ctx, standings.SortByScore.String())
	if err != nil {
		slog.Error("Failed to get standings", "error", err)
		return
	}
	if err := s.sendMessage(report); err != nil {
		slog.Error("Failed to send standings", "error", err)
	}
}
