package app

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"dsa-quiz-service/internal/domain"
	"dsa-quiz-service/internal/metrics"
	"github.com/rs/zerolog"
)

// QuestionRepository exposes the static question catalog.
type QuestionRepository interface {
	AllQuestions(ctx context.Context) ([]domain.Question, error)
}

// LeaderboardStore persists the whole leaderboard as one blob.
// Load returns an empty slice, not an error, when nothing usable is stored.
type LeaderboardStore interface {
	Load(ctx context.Context) ([]domain.LeaderboardEntry, error)
	Save(ctx context.Context, entries []domain.LeaderboardEntry) error
}

// Options tunes a QuizService.
type Options struct {
	QuestionTime int
	DefaultCount int
	Logger       *zerolog.Logger
	Metrics      *metrics.Collector
	Now          func() time.Time
	Rand         *rand.Rand
}

// QuizService binds sessions to the catalog and the persisted leaderboard.
// Sessions are values owned by callers; the service only holds shared state.
type QuizService struct {
	questions QuestionRepository
	board     LeaderboardStore
	logger    zerolog.Logger
	metrics   *metrics.Collector
	now       func() time.Time
	budget    int
	defCount  int

	rndMu sync.Mutex
	rnd   *rand.Rand

	// mu serializes the leaderboard read-modify-write; the store assumes a single writer.
	mu          sync.Mutex
	leaderboard []domain.LeaderboardEntry
}

func NewQuizService(questions QuestionRepository, board LeaderboardStore, opts Options) *QuizService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	budget := opts.QuestionTime
	if budget <= 0 {
		budget = DefaultQuestionTime
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	defCount := opts.DefaultCount
	if defCount <= 0 {
		defCount = 10
	}
	return &QuizService{
		questions: questions,
		board:     board,
		logger:    logger.With().Str("component", "quiz").Logger(),
		metrics:   opts.Metrics,
		now:       now,
		budget:    budget,
		defCount:  defCount,
		rnd:       rnd,
	}
}

// LoadLeaderboard reads the persisted board once at startup. Failures leave an empty board.
func (s *QuizService) LoadLeaderboard(ctx context.Context) {
	entries, err := s.board.Load(ctx)
	if err != nil {
		s.metrics.StoreError("load")
		s.logger.Warn().Err(err).Msg("leaderboard unavailable, starting empty")
		entries = nil
	}
	s.mu.Lock()
	s.leaderboard = SortLeaderboard(entries)
	if len(s.leaderboard) > MaxLeaderboardEntries {
		s.leaderboard = s.leaderboard[:MaxLeaderboardEntries]
	}
	s.mu.Unlock()
	s.logger.Debug().Int("entries", len(entries)).Msg("leaderboard loaded")
}

// NewSession returns an idle session with the configured per-question budget.
func (s *QuizService) NewSession() Session {
	return NewSession(s.budget)
}

// Start begins a new attempt on sess. A count <= 0 uses the configured default.
func (s *QuizService) Start(ctx context.Context, sess Session, difficulty domain.Difficulty, count int) (Session, error) {
	if !difficulty.Valid() {
		return sess, fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, difficulty)
	}
	catalog, err := s.questions.AllQuestions(ctx)
	if err != nil {
		return sess, fmt.Errorf("load catalog: %w", err)
	}
	if count <= 0 {
		count = s.defCount
	}
	if sess.Budget <= 0 {
		sess.Budget = s.budget
	}

	s.rndMu.Lock()
	next := sess.Start(catalog, difficulty, count, s.rnd)
	s.rndMu.Unlock()

	s.metrics.Started(string(difficulty))
	if next.Completed() {
		s.metrics.Completed(string(difficulty))
	}
	s.logger.Debug().Str("difficulty", string(difficulty)).Int("questions", len(next.Questions)).Msg("session started")
	return next, nil
}

// Observe reports a caller-side transition so completion is counted once.
func (s *QuizService) Observe(before, after Session) {
	if !before.Completed() && after.Completed() {
		s.metrics.Completed(string(after.Difficulty))
	}
}

// Submit scores sess and records it on the leaderboard when player is non-blank.
// The returned session is completed even when persisting fails.
func (s *QuizService) Submit(ctx context.Context, sess Session, player string) (Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, updated, recorded := sess.Submit(player, s.now(), s.leaderboard)
	s.Observe(sess, next)
	if !recorded {
		return next, false, nil
	}
	if err := s.board.Save(ctx, updated); err != nil {
		s.metrics.StoreError("save")
		return next, false, fmt.Errorf("save leaderboard: %w", err)
	}
	s.leaderboard = updated
	s.metrics.Recorded()
	s.logger.Info().Str("player", player).Int("score", next.Score).Str("difficulty", string(next.Difficulty)).Msg("leaderboard entry recorded")
	return next, true, nil
}

// Leaderboard returns a copy of the current ordered board.
func (s *QuizService) Leaderboard() []domain.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.LeaderboardEntry, len(s.leaderboard))
	copy(out, s.leaderboard)
	return out
}

// Question looks up a catalog entry by id.
func (s *QuizService) Question(ctx context.Context, id int) (domain.Question, error) {
	catalog, err := s.questions.AllQuestions(ctx)
	if err != nil {
		return domain.Question{}, fmt.Errorf("load catalog: %w", err)
	}
	return FindQuestion(catalog, id)
}
