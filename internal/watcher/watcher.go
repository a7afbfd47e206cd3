// Package watcher observes the MCP config file and reports real
// content changes. Editors tend to emit bursts of events (truncate,
// write, rename-over), so events are time-debounced and then gated on a
// SHA-256 content hash: a write that leaves the bytes unchanged never
// reaches the callback.
package watcher

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Saml1211/mcp-config-watcher/internal/logger"
)

// Watcher watches a single config file.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(path string)
	sink     logger.Sink

	fsw *fsnotify.Watcher

	mu       sync.Mutex
	lastHash [sha256.Size]byte
	hasHash  bool
	timer    *time.Timer
}

// New creates a watcher for path. onChange runs on the watcher's
// goroutine after each debounced, content-changing write.
func New(path string, debounce time.Duration, onChange func(path string), sink logger.Sink) *Watcher {
	if sink == nil {
		sink = logger.NewSink("watcher")
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		onChange: onChange,
		sink:     sink,
	}
}

// Start begins watching until ctx is cancelled. The parent directory is
// watched rather than the file itself, because editors typically
// replace the file and would otherwise detach the watch.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	w.fsw = fsw

	// Prime the hash so the first event comparison is meaningful.
	if h, err := hashFile(w.path); err == nil {
		w.mu.Lock()
		w.lastHash = h
		w.hasHash = true
		w.mu.Unlock()
	}

	w.sink.Infof("watching %s", w.path)
	go w.loop(ctx)
	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.fsw.Close()
	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.timer != nil {
				w.timer.Stop()
			}
			w.mu.Unlock()
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.bump()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sink.Warnf("watch error: %v", err)
		}
	}
}

// bump (re)arms the debounce timer, coalescing event bursts into one
// check.
func (w *Watcher) bump() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

// fire compares the file's content hash against the last seen one and
// invokes the callback only on a real change.
func (w *Watcher) fire() {
	h, err := hashFile(w.path)
	if err != nil {
		w.sink.Debugf("failed to hash %s: %v", w.path, err)
		return
	}

	w.mu.Lock()
	if w.hasHash && h == w.lastHash {
		w.mu.Unlock()
		w.sink.Debugf("event coalesced: content of %s unchanged", w.path)
		return
	}
	w.lastHash = h
	w.hasHash = true
	w.mu.Unlock()

	w.sink.Infof("config change detected: %s", w.path)
	w.onChange(w.path)
}

func hashFile(path string) ([sha256.Size]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return [sha256.Size]byte{}, err
	}
	return sha256.Sum256(data), nil
}
