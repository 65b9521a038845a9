package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
	"github.com/spf13/pflag"

	"github.com/omarshaarawi/bestball/internal/models"
)

type Config struct {
	League      League
	Lineup      Lineup
	Report      Report
	SleeperAPI  SleeperAPI
	TelegramBot TelegramBot
	Serve       Serve
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

type League struct {
	ID      string `envconfig:"LEAGUE_ID"`
	Year    string `envconfig:"YEAR"`
	Week    int    `envconfig:"WEEK"`
	EndWeek int    `envconfig:"END_WEEK" default:"13"`
}

type Lineup struct {
	RB   int `envconfig:"NUM_RB" default:"2"`
	WR   int `envconfig:"NUM_WR" default:"2"`
	QB   int `envconfig:"NUM_QB" default:"1"`
	TE   int `envconfig:"NUM_TE" default:"1"`
	Flex int `envconfig:"NUM_FLEX" default:"2"`
}

func (l Lineup) RosterCount() models.RosterCount {
	return models.RosterCount{RB: l.RB, WR: l.WR, QB: l.QB, TE: l.TE, Flex: l.Flex}
}

type Report struct {
	SortBy    string `envconfig:"SORT_BY" default:"score"`
	TopCutoff int    `envconfig:"TOP_CUTOFF" default:"6"`
	Owner     string `envconfig:"OWNER"`
	Publish   bool   `envconfig:"PUBLISH"`
}

type SleeperAPI struct {
	BaseURL           string        `envconfig:"SLEEPER_BASE_URL" default:"https://api.sleeper.app/v1"`
	Timeout           time.Duration `envconfig:"SLEEPER_TIMEOUT" default:"30s"`
	RequestsPerSecond float64       `envconfig:"SLEEPER_RPS" default:"10"`
	MaxRetries        int           `envconfig:"SLEEPER_MAX_RETRIES" default:"2"`
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

type Serve struct {
	Enabled    bool   `envconfig:"SERVE"`
	Schedule   string `envconfig:"SCHEDULE" default:"30 7 * * 2"`
	Location   string `envconfig:"SCHEDULE_LOCATION" default:"America/Chicago"`
	HealthAddr string `envconfig:"HEALTH_ADDR" default:":8080"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ParseFlags overrides the environment values with command line flags.
func (c *Config) ParseFlags(args []string) error {
	fs := pflag.NewFlagSet("bestball", pflag.ContinueOnError)

	fs.StringVarP(&c.League.ID, "league-id", "i", c.League.ID, "The ID of your Sleeper league")
	fs.StringVarP(&c.League.Year, "year", "y", c.League.Year, "Which year to work with (i.e. 2018)")
	fs.IntVarP(&c.League.Week, "week", "w", c.League.Week, "Which week to work with (i.e. 1), for full season leave blank")
	fs.IntVarP(&c.League.EndWeek, "end-week", "e", c.League.EndWeek, "Sum of all weeks till the end week")

	fs.IntVarP(&c.Lineup.RB, "num-rb", "b", c.Lineup.RB, "Number of starting running backs")
	fs.IntVarP(&c.Lineup.WR, "num-wr", "r", c.Lineup.WR, "Number of starting wide receivers")
	fs.IntVarP(&c.Lineup.QB, "num-qb", "q", c.Lineup.QB, "Number of starting quarterbacks")
	fs.IntVarP(&c.Lineup.TE, "num-te", "t", c.Lineup.TE, "Number of starting tight ends")
	fs.IntVarP(&c.Lineup.Flex, "num-flex", "f", c.Lineup.Flex, "Number of starting flex (WR/RB/TE)")

	fs.StringVarP(&c.Report.SortBy, "sort-by", "s", c.Report.SortBy, "Sort by score, record, rank, top6")
	fs.IntVar(&c.Report.TopCutoff, "top-cutoff", c.Report.TopCutoff, "Ascending index from which a week counts as a top performance")
	fs.StringVarP(&c.Report.Owner, "owner", "o", c.Report.Owner, "Show the weekly breakdown of the team closest to this name")
	fs.BoolVar(&c.Report.Publish, "publish", c.Report.Publish, "Send the report to the configured Telegram chat")

	fs.BoolVar(&c.Serve.Enabled, "serve", c.Serve.Enabled, "Run the Telegram bot and weekly scheduler")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")

	return fs.Parse(args)
}

func (c *Config) Validate() error {
	var errs []error

	if c.League.ID == "" {
		errs = append(errs, errors.New("league id is required"))
	}
	if c.League.Year == "" {
		errs = append(errs, errors.New("year is required"))
	}
	if c.League.EndWeek < 1 {
		errs = append(errs, fmt.Errorf("end week must be at least 1, got %d", c.League.EndWeek))
	}
	// A single week may fall after end week, e.g. a playoff week.
	if c.League.Week < 0 {
		errs = append(errs, fmt.Errorf("week must not be negative, got %d", c.League.Week))
	}

	counts := []struct {
		name string
		n    int
	}{
		{"rb", c.Lineup.RB}, {"wr", c.Lineup.WR}, {"qb", c.Lineup.QB}, {"te", c.Lineup.TE}, {"flex", c.Lineup.Flex},
	}
	for _, count := range counts {
		if count.n < 0 {
			errs = append(errs, fmt.Errorf("num %s must not be negative, got %d", count.name, count.n))
		}
	}
	if c.Report.TopCutoff < 0 {
		errs = append(errs, fmt.Errorf("top cutoff must not be negative, got %d", c.Report.TopCutoff))
	}

	if c.Report.Publish || c.Serve.Enabled {
		if c.TelegramBot.Token == "" || c.TelegramBot.ChatID == 0 {
			errs = append(errs, errors.New("TELEGRAM_TOKEN and CHAT_ID are required to publish or serve"))
		}
	}
	if c.Serve.Enabled {
		if _, err := cron.ParseStandard(c.Serve.Schedule); err != nil {
			errs = append(errs, fmt.Errorf("invalid schedule %q: %w", c.Serve.Schedule, err))
		}
	}

	return errors.Join(errs...)
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
