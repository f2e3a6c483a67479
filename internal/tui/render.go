package tui

import (
	"fmt"
	"strings"

	"dsa-quiz-service/internal/app"
	"dsa-quiz-service/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func renderHeader(s app.Session, noColor bool) string {
	line := "DSA Quiz | " + strings.ToUpper(string(s.Difficulty))
	if len(s.Questions) > 0 && s.Active() {
		line += fmt.Sprintf(" | Question %d/%d", s.Current+1, len(s.Questions))
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

func renderQuestion(s app.Session, noColor bool) string {
	q, ok := s.CurrentQuestion()
	if !ok {
		return ""
	}
	timerColor := lipgloss.Color("42")
	if s.Urgent() {
		timerColor = lipgloss.Color("196")
	}
	timer := stylize(fmt.Sprintf("Time left: %ds  Bonus: +%d", s.TimeLeft, app.TimeBonus(s.TimeLeft, s.Budget)), noColor, timerColor)

	lines := []string{timer, "", stylize("["+q.Category+"]", noColor, lipgloss.Color("242")), q.Prompt, ""}
	for i, option := range q.Options {
		marker := "  "
		if s.Answers[s.Current] == i {
			marker = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%d. %s", marker, i+1, option))
	}
	return strings.Join(lines, "\n")
}

func renderResults(s app.Session, noColor bool) string {
	pct := s.Percentage()
	grade := domain.GradeFor(pct)
	lines := []string{
		stylize(fmt.Sprintf("Score: %d/%d (%.0f%%)  Grade %s", s.Score, len(s.Questions), pct, grade.Letter), noColor, lipgloss.Color("42")),
		grade.Message,
		"",
	}
	for _, item := range app.Review(s.Answers, s.Questions) {
		mark := map[app.Outcome]string{
			app.OutcomeCorrect:    "ok",
			app.OutcomeIncorrect:  "x ",
			app.OutcomeUnanswered: "--",
		}[item.Outcome]
		lines = append(lines, fmt.Sprintf("%s %d. %s", mark, item.Position+1, item.Question.Prompt))
		if item.Outcome != app.OutcomeCorrect && item.Explanation != "" {
			lines = append(lines, stylize("     "+item.Explanation, noColor, lipgloss.Color("244")))
		}
	}
	return strings.Join(lines, "\n")
}

func renderFooter(s app.Session, player string, recorded, noColor bool) string {
	var keys string
	switch {
	case s.Active():
		keys = "1-4 answer | enter next | b back | s finish | q quit"
	case s.Completed() && !recorded && strings.TrimSpace(player) != "":
		keys = "s save as " + player + " | r play again | q quit"
	default:
		keys = "r play again | q quit"
	}
	return stylize(keys, noColor, lipgloss.Color("240"))
}

func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
