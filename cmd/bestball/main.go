package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/omarshaarawi/bestball/internal/api/fantasy"
	"github.com/omarshaarawi/bestball/internal/api/sleeper"
	"github.com/omarshaarawi/bestball/internal/bot"
	"github.com/omarshaarawi/bestball/internal/config"
	"github.com/omarshaarawi/bestball/internal/models"
	"github.com/omarshaarawi/bestball/internal/repository/memory"
	"github.com/omarshaarawi/bestball/internal/scheduler"
	"github.com/omarshaarawi/bestball/internal/service"
	"github.com/omarshaarawi/bestball/internal/standings"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}
	if err := cfg.ParseFlags(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger.With("run_id", uuid.NewString()))

	if err := cfg.Validate(); err != nil {
		return err
	}

	if _, err := standings.ParseSortKey(cfg.Report.SortBy); err != nil {
		fmt.Println(standings.UnknownSortKeyMessage(cfg.Report.SortBy))
		return nil
	}

	sleeperClient := sleeper.NewClient(cfg.SleeperAPI)
	sleeperAPI := sleeper.NewAPI(sleeperClient)
	repo := memory.NewRepository()
	fantasyAPI := fantasy.NewAPI(sleeperAPI, repo, cfg.League.ID, cfg.League.Year)

	bestBallService := service.NewBestBallService(fantasyAPI, service.Options{
		RosterCount: cfg.Lineup.RosterCount(),
		TopCutoff:   cfg.Report.TopCutoff,
		EndWeek:     cfg.League.EndWeek,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Serve.Enabled {
		return serve(ctx, cfg, bestBallService)
	}
	return report(ctx, cfg, bestBallService)
}

func report(ctx context.Context, cfg *config.Config, bestBallService *service.BestBallService) error {
	var (
		text string
		err  error
	)
	if cfg.Report.Owner != "" {
		text, err = bestBallService.GetOwnerReport(ctx, cfg.League.Week, cfg.Report.Owner)
		if errors.Is(err, models.ErrOwnerNotFound) {
			fmt.Printf("No team found matching '%s'.\n", cfg.Report.Owner)
			return nil
		}
	} else {
		text, err = bestBallService.GetStandings(ctx, cfg.League.Week, cfg.Report.SortBy)
	}
	if err != nil {
		return err
	}

	fmt.Print(text)

	if cfg.Report.Publish {
		telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, bestBallService)
		if err != nil {
			return err
		}
		return telegramBot.SendMessage(text)
	}
	return nil
}

func serve(ctx context.Context, cfg *config.Config, bestBallService *service.BestBallService) error {
	telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, bestBallService)
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(bestBallService, telegramBot.SendMessage, cfg.Serve.Schedule, cfg.Serve.Location)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/", healthCheckHandler)
	server := &http.Server{Addr: cfg.Serve.HealthAddr, Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()
	defer server.Shutdown(context.Background())

	go func() {
		if err := telegramBot.Start(ctx); err != nil {
			slog.Error("Error running telegram bot", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
