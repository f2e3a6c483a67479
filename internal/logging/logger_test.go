package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "quiz", "production", "debug")
	ctx := IntoContext(context.Background(), logger)

	fromCtx := FromContext(ctx)
	fromCtx.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "app=quiz")
}

func TestFromContextWithoutLogger(t *testing.T) {
	logger := FromContext(context.Background())
	logger.Info().Msg("dropped")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "quiz", "production", "warn")
	logger.Info().Msg("quiet")
	assert.Empty(t, buf.String())
	logger.Warn().Msg("loud")
	assert.Contains(t, buf.String(), "loud")
}
