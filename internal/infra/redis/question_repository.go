package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"dsa-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// CatalogLoader fetches the question catalog from a backing store (e.g., Postgres).
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) ([]domain.Question, error)
}

// QuestionRepository shares the catalog across instances through Redis and keeps it in
// process once loaded. The catalog is stored as: SET {key} <json array of questions>
type QuestionRepository struct {
	client *redis.Client
	loader CatalogLoader
	key    string
	ttl    time.Duration
	logger zerolog.Logger
	sf     singleflight.Group
	rnd    *rand.Rand

	mu      sync.RWMutex
	catalog []domain.Question
}

func NewQuestionRepository(client *redis.Client, loader CatalogLoader, ttl time.Duration, logger zerolog.Logger) *QuestionRepository {
	return &QuestionRepository{
		client: client,
		loader: loader,
		key:    "quiz:catalog",
		ttl:    ttl,
		logger: logger.With().Str("component", "redis-catalog").Logger(),
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *QuestionRepository) AllQuestions(ctx context.Context) ([]domain.Question, error) {
	r.mu.RLock()
	if r.catalog != nil {
		catalog := r.catalog
		r.mu.RUnlock()
		return catalog, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do(r.key, func() (interface{}, error) {
		if catalog, ok := r.cached(ctx); ok {
			r.remember(catalog)
			return catalog, nil
		}

		catalog, err := r.loader.LoadCatalog(ctx)
		if err != nil {
			return nil, err
		}
		if err := domain.ValidateCatalog(catalog); err != nil {
			return nil, err
		}

		data, err := json.Marshal(catalog)
		if err == nil {
			if err := r.client.Set(ctx, r.key, data, r.ttlWithJitter()).Err(); err != nil {
				r.logger.Warn().Err(err).Msg("failed to cache catalog")
			}
		}
		r.remember(catalog)
		return catalog, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (r *QuestionRepository) cached(ctx context.Context) ([]domain.Question, bool) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn().Err(err).Msg("catalog cache read failed")
		}
		return nil, false
	}
	var catalog []domain.Question
	if err := json.Unmarshal(data, &catalog); err != nil {
		r.logger.Warn().Err(err).Msg("discarding malformed cached catalog")
		return nil, false
	}
	if domain.ValidateCatalog(catalog) != nil {
		return nil, false
	}
	return catalog, true
}

func (r *QuestionRepository) remember(catalog []domain.Question) {
	r.mu.Lock()
	r.catalog = catalog
	r.mu.Unlock()
}

func (r *QuestionRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
