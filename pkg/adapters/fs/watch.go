package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/mdyhakash/quick-drop/pkg/core"
)

// Watch emits a signal whenever the collection file changes on disk,
// typically because another process wrote it. The pattern is a glob
// matched against file names inside the data directory; empty matches
// the backend's own collection file only.
//
// The returned channel closes when ctx is done.
func (b *Backend) Watch(ctx context.Context, pattern string) (<-chan core.ChangeSignal, error) {
	if pattern == "" {
		pattern = b.config.FileName
	}

	signals := make(chan core.ChangeSignal, 8)
	w := newWatcher(b, pattern, signals)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	b.watcher = w
	return signals, nil
}

type watcher struct {
	*worker.BaseWorker
	backend   *Backend
	pattern   string
	signals   chan<- core.ChangeSignal
	fsw       *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

func newWatcher(backend *Backend, pattern string, signals chan<- core.ChangeSignal) *watcher {
	return &watcher{
		BaseWorker: worker.NewBaseWorker("fs-watcher"),
		backend:    backend,
		pattern:    pattern,
		signals:    signals,
	}
}

func (w *watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := fsw.Add(w.backend.Path); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("failed to watch data directory: %w", err)
	}

	w.fsw = fsw
	w.debouncer = newDebouncer(50 * time.Millisecond)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

func (w *watcher) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// shouldIgnore filters out our own temp files and anything outside the
// watched pattern.
func (w *watcher) shouldIgnore(event fsnotify.Event) bool {
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, TempFilePrefix) {
		return true
	}
	match, err := doublestar.Match(w.pattern, base)
	if err != nil || !match {
		return true
	}
	// Chmod alone carries no content change.
	return event.Op == fsnotify.Chmod
}

// sendSignal enqueues a signal via the debouncer, protecting against
// channel closure during shutdown.
func (w *watcher) sendSignal(ctx context.Context, name string) {
	w.debouncer.add(name, func() {
		defer func() {
			// Recover from panic if channel was closed (worker stopping)
			_ = recover()
		}()
		select {
		case w.signals <- core.ChangeSignal{Name: name}:
		case <-ctx.Done():
		}
	})
}

func (w *watcher) run(ctx context.Context) error {
	defer close(w.signals)
	defer w.fsw.Close()

	err := w.loop(ctx)

	// Shutdown debouncer before the channel closes so no in-flight
	// timer fires into a closed channel.
	w.debouncer.stopAndWait(5 * time.Second)

	return err
}

func (w *watcher) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if w.shouldIgnore(event) {
				continue
			}
			if w.backend.config.Logger != nil {
				w.backend.config.Logger.Debug("collection changed on disk", "name", event.Name, "op", event.Op.String())
			}
			w.sendSignal(ctx, filepath.Base(event.Name))

		case wErr, ok := <-w.fsw.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			if w.backend.config.Logger != nil {
				w.backend.config.Logger.Error("fsnotify error", "error", wErr)
			}
		}
	}
}
