package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Quiz.QuestionSeconds)
	assert.Equal(t, 10, cfg.Quiz.DefaultCount)
	assert.Equal(t, BackendFile, cfg.Leaderboard.Backend)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `server:
  port: "9000"
quiz:
  question_seconds: 20
leaderboard:
  backend: memory
redis:
  addr: localhost:6379
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	t.Setenv("QUIZ_DEFAULT_COUNT", "7")
	t.Setenv("LEADERBOARD_BACKEND", "redis")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 20, cfg.Quiz.QuestionSeconds)
	assert.Equal(t, 7, cfg.Quiz.DefaultCount)
	assert.Equal(t, BackendRedis, cfg.Leaderboard.Backend)
	assert.Equal(t, "1s", cfg.Quiz.TickInterval)
}

func TestValidateBackendRequirements(t *testing.T) {
	cfg := Default()
	cfg.Leaderboard.Backend = BackendPostgres
	assert.Error(t, cfg.Validate())
	cfg.Postgres.URL = "postgres://localhost/quiz"
	assert.NoError(t, cfg.Validate())

	cfg.Leaderboard.Backend = "sqlite"
	assert.Error(t, cfg.Validate())
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [oops"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestTTLDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, TTLDuration("", 5*time.Second))
	assert.Equal(t, time.Minute, TTLDuration("1m", 5*time.Second))
	assert.Equal(t, 5*time.Second, TTLDuration("soon", 5*time.Second))
}
