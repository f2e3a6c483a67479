package memory

import (
	"context"
	"sync"

	"dsa-quiz-service/internal/domain"
)

// LeaderboardStore keeps the leaderboard in process memory only.
type LeaderboardStore struct {
	mu      sync.RWMutex
	entries []domain.LeaderboardEntry
}

func NewLeaderboardStore(seed ...domain.LeaderboardEntry) *LeaderboardStore {
	return &LeaderboardStore{entries: append([]domain.LeaderboardEntry(nil), seed...)}
}

func (s *LeaderboardStore) Load(_ context.Context) ([]domain.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LeaderboardEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *LeaderboardStore) Save(_ context.Context, entries []domain.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries[:0:0], entries...)
	return nil
}
