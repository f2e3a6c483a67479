package app

import (
	"math/rand"
	"strings"
	"time"

	"dsa-quiz-service/internal/domain"
)

// DefaultQuestionTime is the per-question budget in ticks.
const DefaultQuestionTime = 30

// UrgentThreshold is the remaining time at or below which the timer is flagged urgent.
const UrgentThreshold = 10

// Status is the state of a session.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
)

// Session is one quiz attempt. It is a plain value: every transition returns an updated copy
// and leaves the receiver untouched. Transitions invoked from the wrong state are no-ops.
type Session struct {
	Status     Status            `json:"status"`
	Difficulty domain.Difficulty `json:"difficulty"`
	Questions  []domain.Question `json:"questions"`
	Current    int               `json:"current"`
	Answers    []int             `json:"answers"`
	TimeLeft   int               `json:"timeLeft"`
	Budget     int               `json:"budget"`
	Score      int               `json:"score"`
	History    History           `json:"history"`
}

// NewSession returns an idle session using budget ticks per question (DefaultQuestionTime if <= 0).
func NewSession(budget int) Session {
	if budget <= 0 {
		budget = DefaultQuestionTime
	}
	return Session{Status: StatusIdle, Budget: budget, TimeLeft: budget, Difficulty: domain.Easy}
}

// Active reports whether the session accepts answers and ticks.
func (s Session) Active() bool { return s.Status == StatusRunning }

// Completed reports whether the session reached its terminal state.
func (s Session) Completed() bool { return s.Status == StatusCompleted }

// CurrentQuestion returns the question at the current position.
func (s Session) CurrentQuestion() (domain.Question, bool) {
	if s.Current < 0 || s.Current >= len(s.Questions) {
		return domain.Question{}, false
	}
	return s.Questions[s.Current], true
}

// Start draws a fresh question set and begins running. It may be called from any state;
// the previous attempt and its history are discarded. An empty draw completes immediately.
func (s Session) Start(catalog []domain.Question, difficulty domain.Difficulty, count int, rnd *rand.Rand) Session {
	questions := SelectQuestions(catalog, difficulty, count, rnd)
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = Unanswered
	}
	next := Session{
		Status:     StatusRunning,
		Difficulty: difficulty,
		Questions:  questions,
		Answers:    answers,
		Budget:     s.budget(),
		TimeLeft:   s.budget(),
	}
	if len(questions) == 0 {
		next.Status = StatusCompleted
	}
	return next
}

// SelectAnswer records option for the current position and pushes the position onto history.
func (s Session) SelectAnswer(option int) Session {
	if !s.Active() {
		return s
	}
	q, ok := s.CurrentQuestion()
	if !ok || option < 0 || option >= len(q.Options) {
		return s
	}
	next := s.clone()
	next.Answers[next.Current] = option
	next.History.Push(next.Current)
	return next
}

// Advance moves to the next position, or completes the session from the last one.
func (s Session) Advance() Session {
	if !s.Active() {
		return s
	}
	next := s.clone()
	if next.Current < len(next.Questions)-1 {
		next.Current++
		next.TimeLeft = next.budget()
		return next
	}
	next.Score = Score(next.Answers, next.Questions)
	next.Status = StatusCompleted
	return next
}

// GoBack returns to the most recently pushed position.
func (s Session) GoBack() Session {
	if !s.Active() || !s.History.CanGoBack() {
		return s
	}
	next := s.clone()
	index, ok := next.History.Pop()
	if !ok || index < 0 || index >= len(next.Questions) {
		return next
	}
	next.Current = index
	next.TimeLeft = next.budget()
	return next
}

// Tick consumes one time unit; reaching zero behaves exactly like Advance.
func (s Session) Tick() Session {
	if !s.Active() {
		return s
	}
	next := s.clone()
	next.TimeLeft--
	if next.TimeLeft <= 0 {
		next.TimeLeft = 0
		return next.Advance()
	}
	return next
}

// Submit scores the session and completes it. When player is non-blank the result is
// recorded into board; recorded reports whether the returned board differs from board.
func (s Session) Submit(player string, now time.Time, board []domain.LeaderboardEntry) (next Session, updated []domain.LeaderboardEntry, recorded bool) {
	if s.Status != StatusRunning && s.Status != StatusCompleted {
		return s, board, false
	}
	next = s.clone()
	next.Score = Score(next.Answers, next.Questions)
	next.Status = StatusCompleted

	name := strings.TrimSpace(player)
	if name == "" {
		return next, board, false
	}
	entry := domain.LeaderboardEntry{
		Name:       name,
		Score:      next.Score,
		Percentage: Accuracy(next.Score, len(next.Questions)),
		Difficulty: string(next.Difficulty),
		Timestamp:  now.UnixMilli(),
	}
	return next, RecordEntry(entry, board), true
}

// Reset discards the attempt and its history.
func (s Session) Reset() Session {
	return NewSession(s.Budget)
}

// Percentage is the accuracy of the computed score.
func (s Session) Percentage() float64 {
	return Accuracy(s.Score, len(s.Questions))
}

// Urgent reports whether the running timer is at or below UrgentThreshold.
func (s Session) Urgent() bool {
	return s.Active() && s.TimeLeft <= UrgentThreshold
}

func (s Session) budget() int {
	if s.Budget <= 0 {
		return DefaultQuestionTime
	}
	return s.Budget
}

func (s Session) clone() Session {
	next := s
	if s.Answers != nil {
		next.Answers = make([]int, len(s.Answers))
		copy(next.Answers, s.Answers)
	}
	next.History = s.History.clone()
	return next
}
