package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dsa-quiz-service/internal/domain"
	"github.com/rs/zerolog"
)

// LeaderboardStore keeps the leaderboard blob in a local JSON file.
type LeaderboardStore struct {
	path   string
	logger zerolog.Logger
}

func NewLeaderboardStore(path string, logger zerolog.Logger) *LeaderboardStore {
	return &LeaderboardStore{
		path:   path,
		logger: logger.With().Str("component", "file-leaderboard").Str("path", path).Logger(),
	}
}

// DefaultPath returns ~/.dsa-quiz/quiz-leaderboard.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".dsa-quiz", "quiz-leaderboard.json"), nil
}

// Load returns an empty board for a missing or malformed file.
func (s *LeaderboardStore) Load(_ context.Context) ([]domain.LeaderboardEntry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.LeaderboardEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn().Err(err).Msg("ignoring malformed leaderboard file")
		return []domain.LeaderboardEntry{}, nil
	}
	return entries, nil
}

// Save rewrites the whole file via a temp file and rename.
func (s *LeaderboardStore) Save(_ context.Context, entries []domain.LeaderboardEntry) error {
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal leaderboard: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create leaderboard dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".leaderboard-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write leaderboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close leaderboard: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace leaderboard: %w", err)
	}
	return nil
}
