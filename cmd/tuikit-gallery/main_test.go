package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/tuikit/internal/config"
)

func TestParseFlags(t *testing.T) {
	opts, _, err := parseFlags([]string{"--story", "table/loading", "--source", "sqlite", "--data", "u.db", "--log-output", "x.log"})
	require.NoError(t, err)
	require.Equal(t, "table/loading", opts.story)

	cfg := config.Config{Data: config.DataConfig{Source: config.SourceBuiltin}}
	applyFlags(&cfg, opts)
	require.Equal(t, config.SourceSQLite, cfg.Data.Source)
	require.Equal(t, "u.db", cfg.Data.Path)
	require.Equal(t, "table/loading", cfg.UI.Story)
	require.Equal(t, "x.log", cfg.Log.Path)

	_, _, err = parseFlags([]string{"extra"})
	require.ErrorContains(t, err, "unexpected argument")

	_, _, err = parseFlags([]string{"--nope"})
	require.Error(t, err)
}

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"--list"}, &out))
	ids := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, "overview/index", ids[0])
	require.Contains(t, ids, "input/withclear")
	require.Contains(t, ids, "table/customrender")
}

func TestRunRejectsUnknownStory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TUIKIT_CONFIG", "")
	err := run([]string{"--story", "table/sortble"}, &bytes.Buffer{})
	require.ErrorContains(t, err, "did you mean")
}

func TestOpenLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gallery.log")
	logger, closeLog, err := openLogger(config.LogConfig{Path: path, Level: "info"})
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("story opened", "story", "table/default")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	require.Equal(t, "story opened", rec["msg"])
	require.Equal(t, "table/default", rec["story"])
}
