package service

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/omarshaarawi/bestball/internal/models"
	"github.com/omarshaarawi/bestball/internal/standings"
)

const columnWidth = 20

type column struct {
	header string
	value  func(standings.Standing) string
}

var (
	teamColumn   = column{"Team", func(r standings.Standing) string { return string(r.Owner) }}
	scoreColumn  = column{"Score", func(r standings.Standing) string { return fmt.Sprintf("%.2f", r.Score) }}
	recordColumn = column{"Record(W-L-T)", func(r standings.Standing) string { return r.Record.String() }}
	topColumn    = column{"Top 6 Performances", func(r standings.Standing) string { return fmt.Sprintf("%d", r.TopHalf) }}
	rankColumn   = column{"Average Rank", func(r standings.Standing) string { return fmt.Sprintf("%.2f", r.AverageRank) }}
)

// The sort column always follows the team name.
var layouts = map[standings.SortKey][]column{
	standings.SortByScore:   {teamColumn, scoreColumn, recordColumn, topColumn, rankColumn},
	standings.SortByRecord:  {teamColumn, recordColumn, scoreColumn, topColumn, rankColumn},
	standings.SortByRank:    {teamColumn, rankColumn, scoreColumn, recordColumn, topColumn},
	standings.SortByTopHalf: {teamColumn, topColumn, scoreColumn, recordColumn, rankColumn},
}

// FormatStandings renders rows as a fixed-width text table.
func FormatStandings(title string, rows []standings.Standing, key standings.SortKey) string {
	columns, ok := layouts[key]
	if !ok {
		panic(fmt.Sprintf("service: no layout for sort key %s", key))
	}

	var sb strings.Builder
	sb.WriteString(title + "\n\n")

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.header
	}
	writeRow(&sb, headers)

	for _, r := range rows {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = c.value(r)
		}
		writeRow(&sb, cells)
	}

	return sb.String()
}

// FormatOwnerReport renders one owner's season week by week.
func FormatOwnerReport(owner models.Owner, state standings.SeasonState) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n", owner))
	sb.WriteString(fmt.Sprintf("Score: %.2f  Record: %s  Top 6: %d\n\n",
		state.Score(owner), state.Record(owner), state.TopHalf(owner)))

	writeRow(&sb, []string{"Week", "Score", "Result", "Season Rank"})
	for _, line := range state.History(owner) {
		writeRow(&sb, []string{
			fmt.Sprintf("%d", line.Week),
			fmt.Sprintf("%.2f", line.Score),
			resultLabel(line.Result),
			fmt.Sprintf("%d", line.Rank),
		})
	}
	return sb.String()
}

func resultLabel(r models.Record) string {
	switch {
	case r.Wins > 0:
		return "W"
	case r.Losses > 0:
		return "L"
	case r.Ties > 0:
		return "T"
	default:
		return "-"
	}
}

// writeRow pads by display width so names with wide runes stay aligned.
func writeRow(sb *strings.Builder, cells []string) {
	var line strings.Builder
	for _, cell := range cells {
		cell = runewidth.Truncate(cell, columnWidth-1, "…")
		line.WriteString(runewidth.FillRight(cell, columnWidth))
	}
	sb.WriteString(strings.TrimRight(line.String(), " "))
	sb.WriteString("\n")
}
