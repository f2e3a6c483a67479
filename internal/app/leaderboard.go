package app

import "dsa-quiz-service/internal/domain"

// MaxLeaderboardEntries caps the persisted leaderboard.
const MaxLeaderboardEntries = 10

// RecordEntry appends entry, orders by score then accuracy (both descending) and keeps the top entries.
// existing is not modified.
func RecordEntry(entry domain.LeaderboardEntry, existing []domain.LeaderboardEntry) []domain.LeaderboardEntry {
	all := make([]domain.LeaderboardEntry, 0, len(existing)+1)
	all = append(all, existing...)
	all = append(all, entry)
	sorted := mergeSort(all)
	if len(sorted) > MaxLeaderboardEntries {
		sorted = sorted[:MaxLeaderboardEntries]
	}
	return sorted
}

// SortLeaderboard returns a stably ordered copy of entries.
func SortLeaderboard(entries []domain.LeaderboardEntry) []domain.LeaderboardEntry {
	cp := make([]domain.LeaderboardEntry, len(entries))
	copy(cp, entries)
	return mergeSort(cp)
}

func mergeSort(entries []domain.LeaderboardEntry) []domain.LeaderboardEntry {
	if len(entries) <= 1 {
		return entries
	}
	mid := len(entries) / 2
	left := mergeSort(entries[:mid:mid])
	right := mergeSort(entries[mid:])
	return merge(left, right)
}

func merge(left, right []domain.LeaderboardEntry) []domain.LeaderboardEntry {
	out := make([]domain.LeaderboardEntry, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		// ties keep the left element first
		if !ranksAbove(right[j], left[i]) {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	return append(out, right[j:]...)
}

func ranksAbove(a, b domain.LeaderboardEntry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Percentage > b.Percentage
}
