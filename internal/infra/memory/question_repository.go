package memory

import (
	"context"
	"sync"

	"dsa-quiz-service/internal/domain"
	"golang.org/x/sync/singleflight"
)

// CatalogLoader fetches the question catalog from a backing source (built-in, file, Postgres).
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) ([]domain.Question, error)
}

// QuestionRepository loads the catalog once and serves it for the process lifetime.
// Failed loads are not cached.
type QuestionRepository struct {
	loader CatalogLoader
	sf     singleflight.Group

	mu      sync.RWMutex
	catalog []domain.Question
	loaded  bool
}

func NewQuestionRepository(loader CatalogLoader) *QuestionRepository {
	return &QuestionRepository{loader: loader}
}

func (r *QuestionRepository) AllQuestions(ctx context.Context) ([]domain.Question, error) {
	r.mu.RLock()
	if r.loaded {
		catalog := r.catalog
		r.mu.RUnlock()
		return catalog, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("catalog", func() (interface{}, error) {
		r.mu.RLock()
		if r.loaded {
			catalog := r.catalog
			r.mu.RUnlock()
			return catalog, nil
		}
		r.mu.RUnlock()

		catalog, err := r.loader.LoadCatalog(ctx)
		if err != nil {
			return nil, err
		}
		if err := domain.ValidateCatalog(catalog); err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.catalog = catalog
		r.loaded = true
		r.mu.Unlock()
		return catalog, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

// StaticCatalogLoader serves a fixed slice (the built-in catalog, tests, demos).
type StaticCatalogLoader struct {
	questions []domain.Question
}

func NewStaticCatalogLoader(questions []domain.Question) *StaticCatalogLoader {
	return &StaticCatalogLoader{questions: questions}
}

func (l *StaticCatalogLoader) LoadCatalog(_ context.Context) ([]domain.Question, error) {
	out := make([]domain.Question, len(l.questions))
	copy(out, l.questions)
	return out, nil
}
