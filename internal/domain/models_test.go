package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty(" Hard ")
	require.NoError(t, err)
	assert.Equal(t, Hard, d)

	_, err = ParseDifficulty("expert")
	assert.True(t, errors.Is(err, ErrInvalidDifficulty))
}

func TestGradeBands(t *testing.T) {
	cases := map[float64]string{100: "A+", 90: "A+", 85: "A", 70: "B", 60: "C", 59.9: "D", 0: "D"}
	for pct, letter := range cases {
		assert.Equal(t, letter, GradeFor(pct).Letter, "percentage %v", pct)
	}
}

func TestValidateCatalog(t *testing.T) {
	good := Question{ID: 1, Prompt: "p", Options: []string{"a", "b", "c", "d"}, Correct: 3, Difficulty: Easy}
	require.NoError(t, ValidateCatalog([]Question{good}))

	assert.ErrorIs(t, ValidateCatalog(nil), ErrCatalogEmpty)

	dup := good
	assert.ErrorIs(t, ValidateCatalog([]Question{good, dup}), ErrInvalidCatalog)

	badIndex := good
	badIndex.Correct = 4
	assert.ErrorIs(t, ValidateCatalog([]Question{badIndex}), ErrInvalidCatalog)

	short := good
	short.Options = []string{"a", "b"}
	assert.ErrorIs(t, ValidateCatalog([]Question{short}), ErrInvalidCatalog)

	tier := good
	tier.Difficulty = "expert"
	assert.ErrorIs(t, ValidateCatalog([]Question{tier}), ErrInvalidCatalog)
}
