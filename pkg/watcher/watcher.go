// Package watcher reports changes to dashboard and state files on disk.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/grovetools/masonry/logging"
	"github.com/sirupsen/logrus"
)

const defaultDebounce = 100 * time.Millisecond

// FileWatcher watches a set of files and calls onChange with the path of the
// file that changed. Parent directories are watched so editors that replace
// files on save are still noticed.
type FileWatcher struct {
	watcher    *fsnotify.Watcher
	debounce   time.Duration
	lastChange map[string]time.Time
	mu         sync.Mutex
	logger     *logrus.Entry
	onChange   func(path string)
	// files maps every watched path, including resolved symlink targets, to
	// the path the caller asked for.
	files map[string]string
}

// New creates a watcher for files. A non-positive debounce selects 100ms.
func New(files []string, debounce time.Duration, onChange func(path string)) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger("watcher")
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &FileWatcher{
		watcher:    watcher,
		debounce:   debounce,
		lastChange: make(map[string]time.Time),
		logger:     logger,
		onChange:   onChange,
		files:      make(map[string]string),
	}

	watchedDirs := make(map[string]bool)
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			watcher.Close()
			return nil, err
		}
		w.files[abs] = file

		dirs := []string{filepath.Dir(abs)}

		// fsnotify does not follow symlinks; watch the target's directory too.
		if info, err := os.Lstat(abs); err == nil && info.Mode()&os.ModeSymlink != 0 {
			target, err := filepath.EvalSymlinks(abs)
			if err != nil {
				logger.WithError(err).Warnf("Failed to resolve symlink %s", abs)
			} else {
				w.files[target] = file
				dirs = append(dirs, filepath.Dir(target))
			}
		}

		for _, dir := range dirs {
			if watchedDirs[dir] {
				continue
			}
			if err := watcher.Add(dir); err != nil {
				watcher.Close()
				return nil, err
			}
			watchedDirs[dir] = true
			logger.Debugf("Watching directory: %s", dir)
		}
	}

	return w, nil
}

// Start delivers changes until ctx is cancelled or the watcher is closed.
func (w *FileWatcher) Start(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if file, ok := w.files[filepath.Clean(event.Name)]; ok {
				w.handleChange(file)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)
		case <-ctx.Done():
			w.watcher.Close()
			return
		}
	}
}

// handleChange reports a change unless the same file changed within the
// debounce window.
func (w *FileWatcher) handleChange(file string) {
	w.mu.Lock()
	elapsed := time.Since(w.lastChange[file])
	if elapsed < w.debounce {
		w.mu.Unlock()
		w.logger.Debugf("Debounced: %s (only %v since last change)", filepath.Base(file), elapsed)
		return
	}
	w.lastChange[file] = time.Now()
	w.mu.Unlock()

	w.logger.Infof("File changed: %s", filepath.Base(file))
	if w.onChange != nil {
		w.onChange(file)
	}
}

// Close stops the watcher and releases resources.
func (w *FileWatcher) Close() error {
	return w.watcher.Close()
}
