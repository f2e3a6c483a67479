package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dsa-quiz-service/internal/domain"
	"github.com/rs/zerolog"
	"github.com/uptrace/bun"
)

const defaultLeaderboardKey = "quiz-leaderboard"

type leaderboardBlob struct {
	bun.BaseModel `bun:"table:leaderboard_blobs"`

	Key       string          `bun:"key,pk"`
	Data      json.RawMessage `bun:"data,type:jsonb,notnull"`
	UpdatedAt time.Time       `bun:"updated_at,notnull"`
}

// LeaderboardStore keeps the leaderboard blob in one row of leaderboard_blobs.
type LeaderboardStore struct {
	db     *bun.DB
	key    string
	logger zerolog.Logger
}

func NewLeaderboardStore(db *bun.DB, key string, logger zerolog.Logger) *LeaderboardStore {
	if key == "" {
		key = defaultLeaderboardKey
	}
	return &LeaderboardStore{
		db:     db,
		key:    key,
		logger: logger.With().Str("component", "pg-leaderboard").Str("key", key).Logger(),
	}
}

func (s *LeaderboardStore) Load(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	var row leaderboardBlob
	err := s.db.NewSelect().Model(&row).Where("key = ?", s.key).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return []domain.LeaderboardEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal(row.Data, &entries); err != nil {
		s.logger.Warn().Err(err).Msg("ignoring malformed leaderboard row")
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
	row := &leaderboardBlob{Key: s.key, Data: data, UpdatedAt: time.Now().UTC()}
	_, err = s.db.NewInsert().
		Model(row).
		On("CONFLICT (key) DO UPDATE").
		Set("data = EXCLUDED.data").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	return nil
}
