package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"dsa-quiz-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// CatalogLoader reads the question catalog from the questions table.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) LoadCatalog(ctx context.Context) ([]domain.Question, error) {
	rows, err := l.pool.Query(ctx, `SELECT id, prompt, options, correct, difficulty, category, explanation FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var (
			q          domain.Question
			rawOptions []byte
			difficulty string
		)
		if err := rows.Scan(&q.ID, &q.Prompt, &rawOptions, &q.Correct, &difficulty, &q.Category, &q.Explanation); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if err := json.Unmarshal(rawOptions, &q.Options); err != nil {
			return nil, fmt.Errorf("unmarshal options of question %d: %w", q.ID, err)
		}
		q.Difficulty = domain.Difficulty(difficulty)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}

// SeedCatalog upserts questions; used by the migrate command to install the built-in catalog.
func SeedCatalog(ctx context.Context, pool *pgxpool.Pool, questions []domain.Question) error {
	for _, q := range questions {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("marshal options of question %d: %w", q.ID, err)
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO questions (id, prompt, options, correct, difficulty, category, explanation)
			VALUES ($1, $2, $3::jsonb, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				prompt = EXCLUDED.prompt,
				options = EXCLUDED.options,
				correct = EXCLUDED.correct,
				difficulty = EXCLUDED.difficulty,
				category = EXCLUDED.category,
				explanation = EXCLUDED.explanation`,
			q.ID, q.Prompt, string(options), q.Correct, string(q.Difficulty), q.Category, q.Explanation)
		if err != nil {
			return fmt.Errorf("seed question %d: %w", q.ID, err)
		}
	}
	return nil
}
