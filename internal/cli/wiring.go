package cli

import (
	"context"
	"fmt"
	"time"

	"dsa-quiz-service/internal/app"
	"dsa-quiz-service/internal/config"
	"dsa-quiz-service/internal/infra/file"
	"dsa-quiz-service/internal/infra/memory"
	pginfra "dsa-quiz-service/internal/infra/postgres"
	redisinfra "dsa-quiz-service/internal/infra/redis"
	"dsa-quiz-service/internal/logging"
	"dsa-quiz-service/internal/metrics"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const appName = "dsa-quiz"

// runtime is everything a command needs to drive quiz sessions.
type runtime struct {
	cfg      config.Config
	logger   zerolog.Logger
	registry *prometheus.Registry
	service  *app.QuizService
	closers  []func()
}

func (r *runtime) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

type runtimeOptions struct {
	// quiet silences logging, for commands that own the terminal.
	quiet bool
}

func buildRuntime(ctx context.Context, cfg config.Config, opts runtimeOptions) (*runtime, error) {
	logger := logging.New(appName, cfg.Log.Env, cfg.Log.Level)
	if opts.quiet {
		logger = zerolog.Nop()
	}
	rt := &runtime{cfg: cfg, logger: logger, registry: prometheus.NewRegistry()}

	// every command that reads or writes Postgres brings the schema up first
	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg, cfg.Quiz.CatalogPath == "", logger); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rt.closers = append(rt.closers, func() { redisClient.Close() })
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" && cfg.Quiz.CatalogPath == "" {
		var err error
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			rt.Close()
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		rt.closers = append(rt.closers, pool.Close)
	}

	var loader memory.CatalogLoader = memory.NewStaticCatalogLoader(memory.BuiltinCatalog())
	switch {
	case cfg.Quiz.CatalogPath != "":
		loader = file.NewCatalogLoader(cfg.Quiz.CatalogPath)
	case pool != nil:
		loader = pginfra.NewCatalogLoader(pool)
	}

	var questions app.QuestionRepository
	if redisClient != nil {
		ttl := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)
		questions = redisinfra.NewQuestionRepository(redisClient, loader, ttl, logger)
	} else {
		questions = memory.NewQuestionRepository(loader)
	}

	board, closeBoard, err := buildLeaderboardStore(cfg, redisClient, logger)
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.closers = append(rt.closers, closeBoard)

	rt.service = app.NewQuizService(questions, board, app.Options{
		QuestionTime: cfg.Quiz.QuestionSeconds,
		DefaultCount: cfg.Quiz.DefaultCount,
		Logger:       &logger,
		Metrics:      metrics.New(rt.registry),
	})
	rt.service.LoadLeaderboard(ctx)
	return rt, nil
}

func buildLeaderboardStore(cfg config.Config, redisClient *redis.Client, logger zerolog.Logger) (app.LeaderboardStore, func(), error) {
	noop := func() {}
	switch cfg.Leaderboard.Backend {
	case config.BackendMemory:
		return memory.NewLeaderboardStore(), noop, nil
	case config.BackendRedis:
		return redisinfra.NewLeaderboardStore(redisClient, cfg.Leaderboard.Key, logger), noop, nil
	case config.BackendPostgres:
		db := pginfra.OpenBun(cfg.Postgres.URL)
		return pginfra.NewLeaderboardStore(db, cfg.Leaderboard.Key, logger), func() { db.Close() }, nil
	default:
		path := cfg.Leaderboard.Path
		if path == "" {
			var err error
			if path, err = file.DefaultPath(); err != nil {
				return nil, nil, err
			}
		}
		return file.NewLeaderboardStore(path, logger), noop, nil
	}
}
