package bot

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unwrap(t *testing.T, msgs []tgbotapi.MessageConfig) string {
	t.Helper()
	var sb strings.Builder
	for _, msg := range msgs {
		require.LessOrEqual(t, len(msg.Text), maxMessageLength)
		require.True(t, strings.HasPrefix(msg.Text, "```\n"), msg.Text)
		require.True(t, strings.HasSuffix(msg.Text, "```"), msg.Text)
		assert.Equal(t, tgbotapi.ModeMarkdown, msg.ParseMode)
		sb.WriteString(strings.TrimSuffix(strings.TrimPrefix(msg.Text, "```\n"), "```"))
	}
	return sb.String()
}

func TestReportMessages_Short(t *testing.T) {
	msgs := reportMessages(42, "Best Ball Standings 2023, Week 1\n")

	require.Len(t, msgs, 1)
	assert.Equal(t, int64(42), msgs[0].ChatID)
	assert.Equal(t, "```\nBest Ball Standings 2023, Week 1\n```", msgs[0].Text)
}

func TestReportMessages_SplitsOnLines(t *testing.T) {
	var sb strings.Builder
	for week := 1; week <= 13; week++ {
		for team := 1; team <= 30; team++ {
			sb.WriteString(fmt.Sprintf("%-20d%-20s%-20.2f%d\n", week, fmt.Sprintf("team %02d", team), 100.25, team))
		}
	}
	report := sb.String()

	msgs := reportMessages(42, report)

	require.Greater(t, len(msgs), 1)
	assert.Equal(t, report, unwrap(t, msgs))
	for _, msg := range msgs {
		assert.True(t, strings.HasSuffix(msg.Text, "\n```"), "chunks end on a whole line")
	}
}

func TestReportMessages_LongLine(t *testing.T) {
	report := strings.Repeat("é", maxMessageLength)

	msgs := reportMessages(42, report)

	require.Len(t, msgs, 3)
	assert.Equal(t, report, unwrap(t, msgs))
	for _, msg := range msgs {
		assert.True(t, utf8.ValidString(msg.Text))
	}
}

func TestCodeBlock(t *testing.T) {
	assert.Equal(t, "```\nit's\n```", codeBlock("it`s\n"))
}
