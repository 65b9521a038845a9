package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/omarshaarawi/bestball/internal/models"
	"github.com/omarshaarawi/bestball/internal/service"
	"github.com/omarshaarawi/bestball/internal/standings"
)

const helpText = "Available commands:\n" +
	"/standings [score|record|rank|top6] - Best ball standings through the current week\n" +
	"/week <n> [score|record|rank|top6] - Best ball results for one week\n" +
	"/team <team> - Weekly breakdown for a team"

type Handler struct {
	bestBallService *service.BestBallService
}

func NewHandler(bestBallService *service.BestBallService) *Handler {
	return &Handler{bestBallService: bestBallService}
}

// HandleCommand answers one bot command. Reports come back as one or more
// Markdown code blocks; everything else is a single plain text message.
func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) []tgbotapi.MessageConfig {
	chatID := update.Message.Chat.ID
	command := strings.ToLower(update.Message.Command())
	args := strings.Fields(update.Message.CommandArguments())

	var (
		report string
		err    error
		sortBy string
	)
	switch command {
	case "start":
		return plainReply(chatID, "Welcome to the best ball bot! Use /help to see available commands.")
	case "help":
		return plainReply(chatID, helpText)
	case "standings":
		sortBy = standings.SortByScore.String()
		if len(args) > 0 {
			sortBy = args[0]
		}
		report, err = h.bestBallService.GetCurrentStandings(ctx, sortBy)
		return reply(chatID, report, sortBy, err, "Error fetching standings")
	case "week":
		if len(args) == 0 {
			return plainReply(chatID, "Please provide a week. Usage: /week <n> [sort]")
		}
		week, convErr := strconv.Atoi(args[0])
		if convErr != nil || week < 1 {
			return plainReply(chatID, fmt.Sprintf("%q is not a week number.", args[0]))
		}
		sortBy = standings.SortByScore.String()
		if len(args) > 1 {
			sortBy = args[1]
		}
		report, err = h.bestBallService.GetStandings(ctx, week, sortBy)
		return reply(chatID, report, sortBy, err, "Error fetching week")
	case "team":
		if len(args) == 0 {
			return plainReply(chatID, "Please provide a team name. Usage: /team <team name>")
		}
		name := strings.Join(args, " ")
		report, err = h.bestBallService.GetCurrentOwnerReport(ctx, name)
		if errors.Is(err, models.ErrOwnerNotFound) {
			return plainReply(chatID, fmt.Sprintf("🔍 No team found matching '%s'.", name))
		}
		return reply(chatID, report, "", err, "Error getting team report")
	default:
		return plainReply(chatID, "Unknown command. Use /help to see available commands.")
	}
}

// Error text carries Sleeper field names and URLs with underscores, which
// Markdown would reject, so only reports are sent with a parse mode.
func reply(chatID int64, report, sortBy string, err error, failure string) []tgbotapi.MessageConfig {
	switch {
	case errors.Is(err, models.ErrUnknownSortKey):
		return plainReply(chatID, standings.UnknownSortKeyMessage(sortBy))
	case err != nil:
		return plainReply(chatID, fmt.Sprintf("%s: %v", failure, err))
	default:
		return reportMessages(chatID, report)
	}
}

func plainReply(chatID int64, text string) []tgbotapi.MessageConfig {
	return []tgbotapi.MessageConfig{tgbotapi.NewMessage(chatID, text)}
}
