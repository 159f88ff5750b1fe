package download_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpggio/proyek-akademik/internal/download"
	"github.com/stretchr/testify/require"
)

func TestDir_Download(t *testing.T) {
	root := filepath.Join(t.TempDir(), "exports")
	dir, err := download.NewDir(root)
	require.NoError(t, err)

	path, err := dir.Download(context.Background(), "proyek-akademik-a.json", []byte(`{"title":"A"}`))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "proyek-akademik-a.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, `{"title":"A"}`, string(data))

	// Same name replaces the previous export
	_, err = dir.Download(context.Background(), "proyek-akademik-a.json", []byte(`{"title":"B"}`))
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, `{"title":"B"}`, string(data))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
}

func TestDir_RejectsPaths(t *testing.T) {
	dir, err := download.NewDir(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../escape.json", "nested/file.json", ".."} {
		_, err := dir.Download(context.Background(), name, []byte("x"))
		require.Error(t, err, name)
	}
}

func TestDir_CanceledContext(t *testing.T) {
	dir, err := download.NewDir(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dir.Download(ctx, "a.json", []byte("x"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewDir_RequiresRoot(t *testing.T) {
	_, err := download.NewDir(" ")
	require.Error(t, err)
}
