package choreo

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"
)

const debounceWindow = 100 * time.Millisecond

// Watcher reports changed choreography files under the watched directories.
// Events carries the changed path. Both channels close after Close.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
	filter  *debounce
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	return newWatcher(clockwork.NewRealClock(), dirs...)
}

func newWatcher(clock clockwork.Clock, dirs ...string) (*Watcher, error) {
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
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
		filter:  newDebounce(clock, debounceWindow),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.filter.accept(event) {
				continue
			}
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
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

// debounce drops repeat events for the same file inside one window.
type debounce struct {
	clock  clockwork.Clock
	window time.Duration
	last   map[string]time.Time
}

func newDebounce(clock clockwork.Clock, window time.Duration) *debounce {
	return &debounce{clock: clock, window: window, last: make(map[string]time.Time)}
}

func (d *debounce) accept(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	if !isSpecFile(event.Name) {
		return false
	}
	now := d.clock.Now()
	if t, ok := d.last[event.Name]; ok && now.Sub(t) < d.window {
		return false
	}
	d.last[event.Name] = now
	return true
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
