package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/proyek-akademik/internal/domain/project"
)

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	require.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	require.Equal(t, slog.LevelError, parseLogLevel("ERROR"))
	require.Equal(t, slog.LevelInfo, parseLogLevel("verbose"))
	require.Equal(t, slog.LevelInfo, parseLogLevel(""))
}

func TestCappedLogKeepsTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "proyek.log")
	w, err := openCappedLog(path)
	require.NoError(t, err)
	defer w.Close()

	chunk := []byte(strings.Repeat("a", 1024*1024-1) + "\n")
	for i := 0; i < 7; i++ {
		_, err := w.Write(chunk)
		require.NoError(t, err)
	}
	_, err = w.Write([]byte("last line\n"))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.LessOrEqual(t, info.Size(), int64(maxLogSizeBytes))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(data), "last line\n"))
}

func TestCappedLogAppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proyek.log")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))

	w, err := openCappedLog(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("new\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "old\nnew\n", string(data))
}

func TestEnsureDBDir(t *testing.T) {
	require.NoError(t, ensureDBDir(":memory:"))

	path := filepath.Join(t.TempDir(), "nested", "proyek.db")
	require.NoError(t, ensureDBDir(path))
	_, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
}

func TestHealthHandler(t *testing.T) {
	store := project.NewStore(project.Config{})
	store.StartCooldown()

	rec := httptest.NewRecorder()
	healthHandler(store).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "ok", body["status"])
	require.Equal(t, false, body["has_project"])
	require.Equal(t, true, body["cooldown"])
}
