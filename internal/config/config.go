package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

// Leaderboard backends.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	Server      Server      `yaml:"server"`
	Redis       Redis       `yaml:"redis"`
	Postgres    Postgres    `yaml:"postgres"`
	Quiz        Quiz        `yaml:"quiz"`
	Leaderboard Leaderboard `yaml:"leaderboard"`
	Log         Log         `yaml:"log"`
}

type Server struct {
	Port           string   `yaml:"port" env:"PORT"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
	TTL      string `yaml:"ttl" env:"REDIS_TTL"`
}

type Postgres struct {
	URL string `yaml:"url" env:"POSTGRES_URL"`
}

type Quiz struct {
	QuestionSeconds int    `yaml:"question_seconds" env:"QUIZ_QUESTION_SECONDS"`
	DefaultCount    int    `yaml:"default_count" env:"QUIZ_DEFAULT_COUNT"`
	TickInterval    string `yaml:"tick_interval" env:"QUIZ_TICK_INTERVAL"`
	CatalogPath     string `yaml:"catalog_path" env:"QUIZ_CATALOG_PATH"`
}

type Leaderboard struct {
	Backend string `yaml:"backend" env:"LEADERBOARD_BACKEND"`
	Path    string `yaml:"path" env:"LEADERBOARD_PATH"`
	Key     string `yaml:"key" env:"LEADERBOARD_KEY"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
	Env   string `yaml:"env" env:"APP_ENV"`
}

// Default returns the configuration used when no file or variable overrides a field.
func Default() Config {
	return Config{
		Server: Server{Port: "8080", AllowedOrigins: []string{"http://localhost:5173", "http://localhost:3000"}},
		Redis:  Redis{TTL: "10m"},
		Quiz: Quiz{
			QuestionSeconds: 30,
			DefaultCount:    10,
			TickInterval:    "1s",
		},
		Leaderboard: Leaderboard{Backend: BackendFile, Key: "quiz-leaderboard"},
		Log:         Log{Level: "info", Env: "development"},
	}
}

// Load reads YAML config from path on top of Default, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings no component can run with.
func (c Config) Validate() error {
	switch c.Leaderboard.Backend {
	case BackendFile, BackendMemory:
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("leaderboard backend %q requires redis.addr", c.Leaderboard.Backend)
		}
	case BackendPostgres:
		if c.Postgres.URL == "" {
			return fmt.Errorf("leaderboard backend %q requires postgres.url", c.Leaderboard.Backend)
		}
	default:
		return fmt.Errorf("unknown leaderboard backend %q", c.Leaderboard.Backend)
	}
	if c.Quiz.QuestionSeconds < 0 {
		return fmt.Errorf("quiz.question_seconds must not be negative")
	}
	return nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
