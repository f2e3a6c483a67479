package integration

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"dsa-quiz-service/internal/app"
	"dsa-quiz-service/internal/domain"
	"dsa-quiz-service/internal/infra/memory"
	pginfra "dsa-quiz-service/internal/infra/postgres"
	pgmigrations "dsa-quiz-service/internal/infra/postgres/migrations"
	infraredis "dsa-quiz-service/internal/infra/redis"
	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun/migrate"
)

func TestQuizEndToEndOnPostgresAndRedis(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()
	migrateAndSeed(t, ctx, pgURL, pool)

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	defer redisClient.Close()

	db := pginfra.OpenBun(pgURL)
	defer db.Close()

	questions := infraredis.NewQuestionRepository(redisClient, pginfra.NewCatalogLoader(pool), 5*time.Minute, zerolog.Nop())
	board := pginfra.NewLeaderboardStore(db, "", zerolog.Nop())
	service := newService(ctx, questions, board)

	sess, err := service.Start(ctx, service.NewSession(), domain.Medium, 3)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(sess.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(sess.Questions))
	}
	sess = answerAll(sess)
	if !sess.Completed() || sess.Score != 3 {
		t.Fatalf("expected completed perfect session, got status=%s score=%d", sess.Status, sess.Score)
	}

	if _, recorded, err := service.Submit(ctx, sess, "Alice"); err != nil || !recorded {
		t.Fatalf("submit: recorded=%v err=%v", recorded, err)
	}

	// a fresh process reads the board and the cached catalog back
	reloaded := newService(ctx, infraredis.NewQuestionRepository(redisClient, failingLoader{}, 5*time.Minute, zerolog.Nop()), board)
	entries := reloaded.Leaderboard()
	if len(entries) != 1 || entries[0].Name != "Alice" || entries[0].Percentage != 100 || entries[0].Difficulty != "medium" {
		t.Fatalf("unexpected leaderboard %+v", entries)
	}
	if _, err := reloaded.Question(ctx, sess.Questions[0].ID); err != nil {
		t.Fatalf("catalog not served from redis: %v", err)
	}
}

func TestRedisLeaderboardKeepsTopTen(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()
	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	defer redisClient.Close()

	questions := memory.NewQuestionRepository(memory.NewStaticCatalogLoader(memory.BuiltinCatalog()))
	board := infraredis.NewLeaderboardStore(redisClient, infraredis.DefaultLeaderboardKey, zerolog.Nop())
	service := newService(ctx, questions, board)

	for i := 0; i < 12; i++ {
		sess, err := service.Start(ctx, service.NewSession(), domain.Easy, 2)
		if err != nil {
			t.Fatalf("start: %v", err)
		}
		if i%2 == 0 {
			sess = answerAll(sess)
		}
		if _, _, err := service.Submit(ctx, sess, fmt.Sprintf("player-%d", i)); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	stored, err := board.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(stored) != app.MaxLeaderboardEntries {
		t.Fatalf("expected %d entries, got %d", app.MaxLeaderboardEntries, len(stored))
	}
	if stored[0].Name != "player-0" || stored[0].Score != 2 {
		t.Fatalf("expected earliest perfect score first, got %+v", stored[0])
	}
}

func newService(ctx context.Context, questions app.QuestionRepository, board app.LeaderboardStore) *app.QuizService {
	service := app.NewQuizService(questions, board, app.Options{Rand: rand.New(rand.NewSource(1))})
	service.LoadLeaderboard(ctx)
	return service
}

func answerAll(sess app.Session) app.Session {
	for sess.Active() {
		q, _ := sess.CurrentQuestion()
		sess = sess.SelectAnswer(q.Correct).Advance()
	}
	return sess
}

type failingLoader struct{}

func (failingLoader) LoadCatalog(context.Context) ([]domain.Question, error) {
	return nil, fmt.Errorf("catalog loader should not be called")
}

func migrateAndSeed(t *testing.T, ctx context.Context, dsn string, pool *pgxpool.Pool) {
	t.Helper()
	db := pginfra.OpenBun(dsn)
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := pginfra.SeedCatalog(ctx, pool, memory.BuiltinCatalog()); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "quiz", "POSTGRES_PASSWORD": "quizpass", "POSTGRES_DB": "quizdb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://quiz:quizpass@%s:%s/quizdb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
