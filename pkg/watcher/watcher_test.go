package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "points.xyz")
	other := filepath.Join(dir, "other.xyz")
	require.NoError(t, os.WriteFile(watched, []byte("0 0\n"), 0o644))

	w, err := New(20*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(watched))

	changed := make(chan string, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, func(path string) { changed <- path }) }()

	require.NoError(t, os.WriteFile(other, []byte("1 1\n"), 0o644))
	require.NoError(t, os.WriteFile(watched, []byte("1 1\n"), 0o644))

	select {
	case path := <-changed:
		abs, err := filepath.Abs(watched)
		require.NoError(t, err)
		assert.Equal(t, abs, path)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestWatcherAddMissingDirectory(t *testing.T) {
	w, err := New(DefaultDebounce, nil)
	require.NoError(t, err)
	defer w.Close()

	err = w.Add(filepath.Join(t.TempDir(), "missing", "points.xyz"))
	require.Error(t, err)
}
