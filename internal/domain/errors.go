package domain

import "errors"

var (
	// ErrQuestionNotFound is returned when a question id is not in the catalog.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrInvalidDifficulty indicates an unknown tier name.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	// ErrInvalidCatalog indicates a loaded catalog violates question invariants.
	ErrInvalidCatalog = errors.New("invalid question catalog")
	// ErrCatalogEmpty indicates a loader produced no questions at all.
	ErrCatalogEmpty = errors.New("question catalog is empty")
)
