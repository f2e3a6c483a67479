package memory

import (
	"context"
	"errors"
	"testing"

	"dsa-quiz-service/internal/domain"
)

func TestQuestionRepositoryLoadsOnce(t *testing.T) {
	loader := &countingLoader{CatalogLoader: NewStaticCatalogLoader(BuiltinCatalog())}
	repo := NewQuestionRepository(loader)

	qs, err := repo.AllQuestions(context.Background())
	if err != nil {
		t.Fatalf("all questions: %v", err)
	}
	if len(qs) != 15 {
		t.Fatalf("expected 15 questions, got %d", len(qs))
	}
	if _, err := repo.AllQuestions(context.Background()); err != nil {
		t.Fatalf("all questions 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}
}

func TestQuestionRepositoryRejectsInvalidCatalog(t *testing.T) {
	bad := []domain.Question{{ID: 1, Options: []string{"a"}, Difficulty: domain.Easy}}
	repo := NewQuestionRepository(NewStaticCatalogLoader(bad))
	if _, err := repo.AllQuestions(context.Background()); !errors.Is(err, domain.ErrInvalidCatalog) {
		t.Fatalf("expected invalid catalog, got %v", err)
	}
}

func TestQuestionRepositoryRetriesAfterFailure(t *testing.T) {
	loader := &flakyLoader{fail: true}
	repo := NewQuestionRepository(loader)
	if _, err := repo.AllQuestions(context.Background()); err == nil {
		t.Fatalf("expected first load to fail")
	}
	loader.fail = false
	if _, err := repo.AllQuestions(context.Background()); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
}

func TestBuiltinCatalogIsValid(t *testing.T) {
	catalog := BuiltinCatalog()
	if err := domain.ValidateCatalog(catalog); err != nil {
		t.Fatalf("builtin catalog invalid: %v", err)
	}
	counts := map[domain.Difficulty]int{}
	for _, q := range catalog {
		counts[q.Difficulty]++
	}
	for _, d := range domain.Difficulties {
		if counts[d] != 5 {
			t.Fatalf("expected 5 %s questions, got %d", d, counts[d])
		}
	}
}

func TestLeaderboardStoreRoundTrip(t *testing.T) {
	store := NewLeaderboardStore()
	entries, err := store.Load(context.Background())
	if err != nil || len(entries) != 0 {
		t.Fatalf("expected empty store, got %v %v", entries, err)
	}
	want := []domain.LeaderboardEntry{{Name: "Ada", Score: 3, Percentage: 60, Difficulty: "easy", Timestamp: 1}}
	if err := store.Save(context.Background(), want); err != nil {
		t.Fatalf("save: %v", err)
	}
	want[0].Name = "mutated"
	got, _ := store.Load(context.Background())
	if len(got) != 1 || got[0].Name != "Ada" {
		t.Fatalf("expected stored copy, got %+v", got)
	}
}

type countingLoader struct {
	CatalogLoader
	calls int
}

func (l *countingLoader) LoadCatalog(ctx context.Context) ([]domain.Question, error) {
	l.calls++
	return l.CatalogLoader.LoadCatalog(ctx)
}

type flakyLoader struct {
	fail bool
}

func (l *flakyLoader) LoadCatalog(_ context.Context) ([]domain.Question, error) {
	if l.fail {
		return nil, errors.New("backing store down")
	}
	return BuiltinCatalog(), nil
}
