package domain

import (
	"fmt"
	"strings"
)

// Difficulty is the tier attached to both questions and sessions.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the tiers in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty accepts a tier name case-insensitively.
func ParseDifficulty(raw string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(raw))); d {
	case Easy, Medium, Hard:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, raw)
}

// Valid reports whether d is one of the three tiers.
func (d Difficulty) Valid() bool {
	return d == Easy || d == Medium || d == Hard
}

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Question models an immutable catalog entry with exactly one correct option.
type Question struct {
	ID          int        `json:"id" yaml:"id"`
	Prompt      string     `json:"question" yaml:"question"`
	Options     []string   `json:"options" yaml:"options"`
	Correct     int        `json:"correct" yaml:"correct"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	Category    string     `json:"category" yaml:"category"`
	Explanation string     `json:"explanation" yaml:"explanation"`
}

// LeaderboardEntry is a persisted summary of one submitted session.
type LeaderboardEntry struct {
	Name       string  `json:"name"`
	Score      int     `json:"score"`
	Percentage float64 `json:"percentage"`
	Difficulty string  `json:"difficulty"`
	Timestamp  int64   `json:"timestamp"` // epoch milliseconds
}

// Grade is the letter band shown with results.
type Grade struct {
	Letter  string `json:"letter"`
	Message string `json:"message"`
}

// GradeFor maps an accuracy percentage onto a letter band.
func GradeFor(percentage float64) Grade {
	switch {
	case percentage >= 90:
		return Grade{Letter: "A+", Message: "EXCEPTIONAL PERFORMANCE"}
	case percentage >= 80:
		return Grade{Letter: "A", Message: "EXCELLENT EXECUTION"}
	case percentage >= 70:
		return Grade{Letter: "B", Message: "SOLID PERFORMANCE"}
	case percentage >= 60:
		return Grade{Letter: "C", Message: "ADEQUATE RESULTS"}
	default:
		return Grade{Letter: "D", Message: "REQUIRES IMPROVEMENT"}
	}
}
