package app

import (
	"math"

	"dsa-quiz-service/internal/domain"
)

// Unanswered marks an answer slot with no selected option.
const Unanswered = -1

// Score counts answers equal to their question's correct option.
// Slots beyond either slice are ignored, so the result never exceeds len(questions).
func Score(answers []int, questions []domain.Question) int {
	correct := 0
	for i, answer := range answers {
		if i >= len(questions) {
			break
		}
		if answer != Unanswered && answer == questions[i].Correct {
			correct++
		}
	}
	return correct
}

// Accuracy returns score as a percentage of total; 0 when total is 0.
func Accuracy(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) / float64(total) * 100
}

// TimeBonus awards up to 10 points for answering quickly. It is informational only.
func TimeBonus(timeLeft, maxTime int) int {
	if maxTime <= 0 || timeLeft <= 0 {
		return 0
	}
	return int(math.Floor(float64(timeLeft) / float64(maxTime) * 10))
}

// Outcome classifies one reviewed question.
type Outcome string

const (
	OutcomeCorrect    Outcome = "correct"
	OutcomeIncorrect  Outcome = "incorrect"
	OutcomeUnanswered Outcome = "unanswered"
)

// ReviewItem is one row of a finished session's review.
type ReviewItem struct {
	Position    int             `json:"position"`
	Question    domain.Question `json:"question"`
	Selected    int             `json:"selected"`
	Outcome     Outcome         `json:"outcome"`
	Explanation string          `json:"explanation"`
}

// Review pairs every question with the submitted answer.
func Review(answers []int, questions []domain.Question) []ReviewItem {
	items := make([]ReviewItem, 0, len(questions))
	for i, q := range questions {
		selected := Unanswered
		if i < len(answers) {
			selected = answers[i]
		}
		outcome := OutcomeIncorrect
		switch {
		case selected == Unanswered:
			outcome = OutcomeUnanswered
		case selected == q.Correct:
			outcome = OutcomeCorrect
		}
		items = append(items, ReviewItem{
			Position:    i,
			Question:    q,
			Selected:    selected,
			Outcome:     outcome,
			Explanation: q.Explanation,
		})
	}
	return items
}
