package scene

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads a scene file when it changes on disk. Parse failures are
// logged and dropped, so consumers only ever see valid scenes.
type Watcher struct {
	path     string
	log      *zap.Logger
	fs       *fsnotify.Watcher
	updates  chan *Scene
	Debounce time.Duration
}

// NewWatcher starts watching path. The parent directory is watched rather
// than the file so editors that save by rename are picked up.
func NewWatcher(path string, log *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("scene watcher: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("scene watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("scene watcher: watch %s: %w", filepath.Dir(abs), err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		path:     abs,
		log:      log,
		fs:       fsw,
		updates:  make(chan *Scene, 1),
		Debounce: DefaultDebounce,
	}, nil
}

// Updates delivers freshly loaded scenes. Only the newest unread scene is
// kept. The channel is closed when Run returns.
func (w *Watcher) Updates() <-chan *Scene {
	return w.updates
}

// Run processes file events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.updates)
	defer w.fs.Close()

	reload := time.NewTimer(w.Debounce)
	reload.Stop()
	defer reload.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				reload.Reset(w.Debounce)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("scene watcher error", zap.Error(err))

		case <-reload.C:
			s, err := Load(w.path)
			if err != nil {
				w.log.Warn("scene reload failed, keeping previous scene",
					zap.String("path", w.path), zap.Error(err))
				continue
			}
			w.log.Info("scene reloaded", zap.String("path", w.path), zap.Int("pieces", len(s.Pieces)))
			w.publish(s)
		}
	}
}

func (w *Watcher) publish(s *Scene) {
	select {
	case <-w.updates:
	default:
	}
	w.updates <- s
}
