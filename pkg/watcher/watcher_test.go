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
	dashboard := filepath.Join(dir, "masonry.yml")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(dashboard, []byte("title: one\n"), 0644))

	changes := make(chan string, 8)
	w, err := New([]string{dashboard}, 10*time.Millisecond, func(path string) {
		changes <- path
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0644))
	require.NoError(t, os.WriteFile(dashboard, []byte("title: two\n"), 0644))

	select {
	case path := <-changes:
		assert.Equal(t, dashboard, path)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherDebounces(t *testing.T) {
	dir := t.TempDir()
	dashboard := filepath.Join(dir, "masonry.yml")
	require.NoError(t, os.WriteFile(dashboard, []byte("title: one\n"), 0644))

	calls := 0
	w, err := New([]string{dashboard}, time.Hour, func(string) { calls++ })
	require.NoError(t, err)
	defer w.Close()

	w.handleChange(dashboard)
	w.handleChange(dashboard)
	assert.Equal(t, 1, calls)
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "nope", "masonry.yml")}, 0, nil)
	assert.Error(t, err)
}
