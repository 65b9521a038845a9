package bot

import (
	"context"
	"errors"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/omarshaarawi/bestball/internal/service"
)

var errNoChat = errors.New("chat ID not set")

type TelegramBot struct {
	bot     *tgbotapi.BotAPI
	handler *Handler
	chatID  int64
}

func NewTelegramBot(token string, chatID int64, bestBallService *service.BestBallService) (*TelegramBot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &TelegramBot{
		bot:     bot,
		handler: NewHandler(bestBallService),
		chatID:  chatID,
	}, nil
}

// Start answers commands until ctx is done.
func (t *TelegramBot) Start(ctx context.Context) error {
	slog.Info("Listening for bot commands", "username", t.bot.Self.UserName)
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	defer t.bot.StopReceivingUpdates()

	for {
		select {
		case update := <-updates:
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			replies := t.handler.HandleCommand(ctx, update)
			if err := t.send(replies); err != nil {
				slog.Error("Error replying to command",
					"command", update.Message.Command(),
					"chat", update.Message.Chat.ID,
					"error", err)
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// SendMessage posts a report to the configured chat, split across as many
// messages as it needs.
func (t *TelegramBot) SendMessage(report string) error {
	if t.chatID == 0 {
		return errNoChat
	}
	return t.send(reportMessages(t.chatID, report))
}

// send stops at the first failure so a report never arrives with a gap.
func (t *TelegramBot) send(msgs []tgbotapi.MessageConfig) error {
	for i, msg := range msgs {
		if _, err := t.bot.Send(msg); err != nil {
			slog.Error("Error sending message", "part", i+1, "parts", len(msgs), "error", err)
			return err
		}
	}
	return nil
}
