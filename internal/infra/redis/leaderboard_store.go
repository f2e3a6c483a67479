package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dsa-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DefaultLeaderboardKey is where the leaderboard blob lives when no key is configured.
const DefaultLeaderboardKey = "quiz-leaderboard"

// LeaderboardStore keeps the leaderboard as one JSON value: SET {key} <json array>.
// Writes are whole-value replacements (last write wins).
type LeaderboardStore struct {
	client *redis.Client
	key    string
	logger zerolog.Logger
}

func NewLeaderboardStore(client *redis.Client, key string, logger zerolog.Logger) *LeaderboardStore {
	if key == "" {
		key = DefaultLeaderboardKey
	}
	return &LeaderboardStore{
		client: client,
		key:    key,
		logger: logger.With().Str("component", "redis-leaderboard").Str("key", key).Logger(),
	}
}

func (s *LeaderboardStore) Load(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.LeaderboardEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn().Err(err).Msg("ignoring malformed leaderboard blob")
		return []domain.LeaderboardEntry{}, nil
	}
	return entries, nil
}

func (s *LeaderboardStore) Save(ctx context.Context, entries []domain.LeaderboardEntry) error {
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal leaderboard: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	return nil
}
