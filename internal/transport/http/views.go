package http

import (
	"dsa-quiz-service/internal/app"
	"dsa-quiz-service/internal/domain"
)

type questionView struct {
	ID       int      `json:"id"`
	Prompt   string   `json:"question"`
	Options  []string `json:"options"`
	Category string   `json:"category"`
}

// sessionView is what clients see of a session; the answer key stays server-side until completion.
type sessionView struct {
	SessionID  string        `json:"sessionId"`
	Status     app.Status    `json:"status"`
	Difficulty string        `json:"difficulty"`
	Position   int           `json:"position"`
	Total      int           `json:"total"`
	Question   *questionView `json:"question,omitempty"`
	Answers    []*int        `json:"answers"`
	TimeLeft   int           `json:"timeLeft"`
	Budget     int           `json:"budget"`
	Urgent     bool          `json:"urgent"`
	TimeBonus  int           `json:"timeBonus"`
	CanGoBack  bool          `json:"canGoBack"`
	Score      int           `json:"score"`
	Completed  bool          `json:"completed"`
}

type resultsView struct {
	Score      int              `json:"score"`
	Total      int              `json:"total"`
	Percentage float64          `json:"percentage"`
	Grade      domain.Grade     `json:"grade"`
	Review     []app.ReviewItem `json:"review"`
}

func viewSession(id string, s app.Session) sessionView {
	answers := make([]*int, len(s.Answers))
	for i, a := range s.Answers {
		if a != app.Unanswered {
			v := a
			answers[i] = &v
		}
	}
	view := sessionView{
		SessionID:  id,
		Status:     s.Status,
		Difficulty: string(s.Difficulty),
		Position:   s.Current,
		Total:      len(s.Questions),
		Answers:    answers,
		TimeLeft:   s.TimeLeft,
		Budget:     s.Budget,
		Urgent:     s.Urgent(),
		CanGoBack:  s.Active() && s.History.CanGoBack(),
		Score:      s.Score,
		Completed:  s.Completed(),
	}
	if q, ok := s.CurrentQuestion(); ok && s.Active() {
		view.Question = &questionView{ID: q.ID, Prompt: q.Prompt, Options: q.Options, Category: q.Category}
		view.TimeBonus = app.TimeBonus(s.TimeLeft, s.Budget)
	}
	return view
}

func viewResults(s app.Session) resultsView {
	pct := s.Percentage()
	return resultsView{
		Score:      s.Score,
		Total:      len(s.Questions),
		Percentage: pct,
		Grade:      domain.GradeFor(pct),
		Review:     app.Review(s.Answers, s.Questions),
	}
}
