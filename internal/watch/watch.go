// Package watch reports changes to a single file.
package watch

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher sends the watched path on Changes whenever the file is written or replaced.
// The parent directory is watched because editors often save by renaming a new file into place.
type Watcher struct {
	path    string
	fw      *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	log     *slog.Logger
}

func New(path string, logger *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w := &Watcher{
		path:    abs,
		fw:      fw,
		changes: make(chan string, 1),
		done:    make(chan struct{}),
		log:     logger,
	}
	go w.loop()
	return w, nil
}

// Changes is closed when the watcher stops.
func (w *Watcher) Changes() <-chan string { return w.changes }

func (w *Watcher) Path() string { return w.path }

func (w *Watcher) loop() {
	defer close(w.changes)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			w.log.Debug("file changed", "path", ev.Name, "op", ev.Op.String())
			select {
			case w.changes <- w.path:
			default:
				// a reload is already pending
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "err", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.fw.Close()
}
