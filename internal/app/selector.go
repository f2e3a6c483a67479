package app

import (
	"math/rand"
	"sort"

	"dsa-quiz-service/internal/domain"
)

// SelectQuestions draws up to count distinct questions of the given tier in uniformly random order.
// It never pads: fewer matching questions than requested returns all of them.
func SelectQuestions(catalog []domain.Question, difficulty domain.Difficulty, count int, rnd *rand.Rand) []domain.Question {
	filtered := make([]domain.Question, 0, len(catalog))
	for _, q := range catalog {
		if q.Difficulty == difficulty {
			filtered = append(filtered, q)
		}
	}
	shuffle(filtered, rnd)
	if count < 0 {
		count = 0
	}
	if count > len(filtered) {
		count = len(filtered)
	}
	return filtered[:count:count]
}

// shuffle is Fisher-Yates: i runs from the last index down to 1, swapping with j in [0, i].
func shuffle(qs []domain.Question, rnd *rand.Rand) {
	for i := len(qs) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		qs[i], qs[j] = qs[j], qs[i]
	}
}

// FindQuestion binary-searches a copy of the catalog ordered by id.
func FindQuestion(catalog []domain.Question, id int) (domain.Question, error) {
	sorted := make([]domain.Question, len(catalog))
	copy(sorted, catalog)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case sorted[mid].ID == id:
			return sorted[mid], nil
		case sorted[mid].ID < id:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return domain.Question{}, domain.ErrQuestionNotFound
}
