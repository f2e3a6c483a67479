package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestAdviseCommand(t *testing.T) {
	out, err := runCLI(t, "advise", "--correct", "9", "--total", "10")
	require.NoError(t, err)
	assert.Equal(t, "accuracy 90% -> hard\n", out)

	_, err = runCLI(t, "advise", "--correct", "3", "--total", "2")
	assert.Error(t, err)
}

func TestLeaderboardCommandEmpty(t *testing.T) {
	cfg := writeConfig(t, "leaderboard:\n  backend: memory\n")
	out, err := runCLI(t, "--config", cfg, "leaderboard")
	require.NoError(t, err)
	assert.Contains(t, out, "No scores recorded yet.")
}

func TestLeaderboardCommandReadsFileBackend(t *testing.T) {
	dir := t.TempDir()
	board := filepath.Join(dir, "board.json")
	require.NoError(t, os.WriteFile(board, []byte(`[
		{"name":"Ann","score":3,"percentage":60,"difficulty":"easy","timestamp":1},
		{"name":"Ben","score":5,"percentage":100,"difficulty":"hard","timestamp":2}
	]`), 0o644))
	cfg := writeConfig(t, "leaderboard:\n  backend: file\n  path: "+board+"\n")

	out, err := runCLI(t, "--config", cfg, "leaderboard", "--json")
	require.NoError(t, err)
	assert.Less(t, bytes.Index([]byte(out), []byte("Ben")), bytes.Index([]byte(out), []byte("Ann")), "sorted by score")
}

func TestPlayRejectsUnknownDifficulty(t *testing.T) {
	_, err := runCLI(t, "play", "--difficulty", "extreme")
	assert.ErrorContains(t, err, "invalid difficulty")
}
