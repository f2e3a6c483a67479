package app_test

import (
	"math/rand"
	"testing"

	"dsa-quiz-service/internal/app"
	"dsa-quiz-service/internal/domain"
	"dsa-quiz-service/internal/infra/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectQuestionsRespectsTierCountAndUniqueness(t *testing.T) {
	catalog := memory.BuiltinCatalog()
	rnd := rand.New(rand.NewSource(7))
	for _, d := range domain.Difficulties {
		for count := 0; count <= 8; count++ {
			got := app.SelectQuestions(catalog, d, count, rnd)
			assert.LessOrEqual(t, len(got), count)
			seen := map[int]bool{}
			for _, q := range got {
				assert.Equal(t, d, q.Difficulty)
				assert.False(t, seen[q.ID], "duplicate id %d", q.ID)
				seen[q.ID] = true
			}
		}
	}
}

func TestSelectQuestionsReturnsAllWhenShort(t *testing.T) {
	got := app.SelectQuestions(memory.BuiltinCatalog(), domain.Hard, 50, rand.New(rand.NewSource(1)))
	assert.Len(t, got, 5)
}

func TestSelectQuestionsEmptyPool(t *testing.T) {
	catalog := []domain.Question{{ID: 1, Difficulty: domain.Easy, Options: []string{"a", "b", "c", "d"}}}
	got := app.SelectQuestions(catalog, domain.Hard, 5, rand.New(rand.NewSource(1)))
	assert.Empty(t, got)
	assert.Empty(t, app.SelectQuestions(catalog, domain.Easy, -3, rand.New(rand.NewSource(1))))
}

func TestSelectQuestionsDoesNotMutateCatalog(t *testing.T) {
	catalog := memory.BuiltinCatalog()
	before := make([]int, len(catalog))
	for i, q := range catalog {
		before[i] = q.ID
	}
	app.SelectQuestions(catalog, domain.Easy, 5, rand.New(rand.NewSource(3)))
	for i, q := range catalog {
		require.Equal(t, before[i], q.ID)
	}
}

func TestShuffleReachesEveryOrdering(t *testing.T) {
	catalog := []domain.Question{
		{ID: 1, Difficulty: domain.Easy},
		{ID: 2, Difficulty: domain.Easy},
		{ID: 3, Difficulty: domain.Easy},
	}
	rnd := rand.New(rand.NewSource(42))
	orders := map[[3]int]int{}
	for i := 0; i < 3000; i++ {
		got := app.SelectQuestions(catalog, domain.Easy, 3, rnd)
		orders[[3]int{got[0].ID, got[1].ID, got[2].ID}]++
	}
	require.Len(t, orders, 6)
	for order, n := range orders {
		assert.InDelta(t, 500, n, 150, "ordering %v", order)
	}
}

func TestFindQuestion(t *testing.T) {
	catalog := memory.BuiltinCatalog()
	rand.New(rand.NewSource(5)).Shuffle(len(catalog), func(i, j int) { catalog[i], catalog[j] = catalog[j], catalog[i] })

	q, err := app.FindQuestion(catalog, 12)
	require.NoError(t, err)
	assert.Equal(t, "Dynamic Programming", q.Category)

	_, err = app.FindQuestion(catalog, 99)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
	_, err = app.FindQuestion(nil, 1)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}
