package domain

import "fmt"

// ValidateCatalog checks every question invariant and id uniqueness.
func ValidateCatalog(questions []Question) error {
	if len(questions) == 0 {
		return ErrCatalogEmpty
	}
	seen := make(map[int]struct{}, len(questions))
	for _, q := range questions {
		if q.ID <= 0 {
			return fmt.Errorf("%w: question id %d is not positive", ErrInvalidCatalog, q.ID)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("%w: duplicate question id %d", ErrInvalidCatalog, q.ID)
		}
		seen[q.ID] = struct{}{}
		if len(q.Options) != OptionCount {
			return fmt.Errorf("%w: question %d has %d options, want %d", ErrInvalidCatalog, q.ID, len(q.Options), OptionCount)
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return fmt.Errorf("%w: question %d correct index %d out of range", ErrInvalidCatalog, q.ID, q.Correct)
		}
		if !q.Difficulty.Valid() {
			return fmt.Errorf("%w: question %d has difficulty %q", ErrInvalidCatalog, q.ID, q.Difficulty)
		}
	}
	return nil
}
