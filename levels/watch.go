package levels

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventKind says which kind of level file changed, so a consumer can
// decide whether a spec reload alone is enough or layouts need
// regenerating too.
type EventKind int

const (
	SpecChanged EventKind = iota
	ScriptChanged
)

// Event is one debounced level-file change.
type Event struct {
	Path string
	Kind EventKind
}

// Watcher reports changes to on-disk level specs and layout scripts so a
// running game can reload them without a restart. Events are best-effort:
// when the consumer falls behind, changes collapse into whatever is
// already buffered instead of blocking the watch loop.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration

	Events chan Event
	Errors chan error

	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the given directories for level file changes,
// collapsing editor save bursts within the debounce window.
func NewWatcher(debounce time.Duration, dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher:  w,
		debounce: debounce,
		Events:   make(chan Event, 16),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			kind, ok := classifyLevelFile(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, seen := last[event.Name]; seen && now.Sub(t) < w.debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- Event{Path: event.Name, Kind: kind}:
			default:
				// buffer full; a reload is already pending
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func classifyLevelFile(path string) (EventKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SpecChanged, true
	case ".tengo":
		return ScriptChanged, true
	}
	return 0, false
}
