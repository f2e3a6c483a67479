package tui

import (
	"fmt"
	"time"

	"dsa-quiz-service/internal/app"
	"dsa-quiz-service/internal/domain"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

func leaderboardColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 16},
		{Title: "Score", Width: 6},
		{Title: "%", Width: 6},
		{Title: "Level", Width: 8},
		{Title: "When", Width: 16},
	}
}

func leaderboardRows(entries []domain.LeaderboardEntry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%.0f", e.Percentage),
			e.Difficulty,
			time.UnixMilli(e.Timestamp).Format("2006-01-02 15:04"),
		})
	}
	return rows
}

func newLeaderboardTable(entries []domain.LeaderboardEntry, noColor bool) table.Model {
	t := table.New(
		table.WithColumns(leaderboardColumns()),
		table.WithRows(leaderboardRows(entries)),
		table.WithFocused(false),
		table.WithHeight(app.MaxLeaderboardEntries+1),
	)
	styles := table.DefaultStyles()
	if !noColor {
		styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	}
	t.SetStyles(styles)
	return t
}

// RenderLeaderboard renders entries as a static table.
func RenderLeaderboard(entries []domain.LeaderboardEntry, noColor bool) string {
	if len(entries) == 0 {
		return "No scores recorded yet."
	}
	return newLeaderboardTable(entries, noColor).View()
}
