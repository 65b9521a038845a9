package bot

import (
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram counts UTF-16 units; a byte limit is never more lenient.
const maxMessageLength = 4096

// reportMessages splits a report on line boundaries into Markdown code
// blocks that each fit in one message.
func reportMessages(chatID int64, report string) []tgbotapi.MessageConfig {
	chunks := splitLines(report, maxMessageLength-len(codeBlock("")))

	msgs := make([]tgbotapi.MessageConfig, 0, len(chunks))
	for _, chunk := range chunks {
		msg := tgbotapi.NewMessage(chatID, codeBlock(chunk))
		msg.ParseMode = tgbotapi.ModeMarkdown
		msgs = append(msgs, msg)
	}
	return msgs
}

// splitLines packs whole lines into chunks of at most limit bytes. A line
// longer than limit is cut at a rune boundary.
func splitLines(text string, limit int) []string {
	var (
		chunks  []string
		current strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		for len(line) > limit {
			cut := limit
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			flush()
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}
		if current.Len()+len(line) > limit {
			flush()
		}
		current.WriteString(line)
	}
	flush()

	if len(chunks) == 0 {
		chunks = []string{text}
	}
	return chunks
}

// codeBlock keeps the fixed-width table aligned in Telegram.
func codeBlock(text string) string {
	return "```\n" + strings.ReplaceAll(text, "`", "'") + "```"
}
