package app

import "dsa-quiz-service/internal/domain"

const maxAdviceDepth = 3

// SuggestDifficulty maps rolling accuracy onto a suggested next tier.
// Nothing in the session flow calls it; difficulty stays fixed once a session starts.
func SuggestDifficulty(correct, total int) domain.Difficulty {
	if total == 0 {
		return domain.Easy
	}
	return adviseRecursive(float64(correct)/float64(total), 0)
}

// adviseRecursive re-evaluates damped (high) or amplified (low) accuracy on nested calls
// and falls back to medium once depth exceeds maxAdviceDepth.
func adviseRecursive(accuracy float64, depth int) domain.Difficulty {
	if depth > maxAdviceDepth {
		return domain.Medium
	}
	switch {
	case accuracy >= 0.8:
		if depth == 0 {
			return domain.Hard
		}
		return adviseRecursive(accuracy*0.9, depth+1)
	case accuracy >= 0.6:
		return domain.Medium
	default:
		if depth == 0 {
			return domain.Easy
		}
		return adviseRecursive(accuracy*1.1, depth+1)
	}
}
