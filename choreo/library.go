package choreo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/milk9111/motion/easing"
)

var ErrUnknownFile = errors.New("choreo: unknown file")

// Library holds every document of one directory, keyed by file name. With
// no directory it serves the embedded defaults.
type Library struct {
	mu    sync.RWMutex
	dir   string
	files map[string]*File
	reg   *easing.Registry
	log   *slog.Logger
}

// OpenLibrary loads and validates every document in dir. Scripted easings
// are registered into reg so the scheduler using reg can resolve them.
func OpenLibrary(dir string, reg *easing.Registry, log *slog.Logger) (*Library, error) {
	if reg == nil {
		reg = easing.Default.Clone()
	}
	if log == nil {
		log = slog.Default()
	}
	l := &Library{dir: dir, files: make(map[string]*File), reg: reg, log: log}

	var src fs.FS = DefaultsFS
	root := "defaults"
	if dir != "" {
		src = os.DirFS(dir)
		root = "."
	}
	entries, err := fs.ReadDir(src, root)
	if err != nil {
		return nil, fmt.Errorf("choreo: open %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !isSpecFile(e.Name()) {
			continue
		}
		data, err := fs.ReadFile(src, filepath.ToSlash(filepath.Join(root, e.Name())))
		if err != nil {
			return nil, fmt.Errorf("choreo: read %s: %w", e.Name(), err)
		}
		if err := l.install(e.Name(), data); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Library) Registry() *easing.Registry {
	return l.reg
}

func (l *Library) Dir() string {
	return l.dir
}

// File returns the named document. The extension may be omitted.
func (l *Library) File(name string) (*File, error) {
	key := cleanName(name)
	l.mu.RLock()
	defer l.mu.RUnlock()
	f, ok := l.files[key]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFile, name)
	}
	return f, nil
}

func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, 0, len(l.files))
	for name := range l.files {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Reload re-reads path and replaces its document. A removed file is dropped.
// On error the previous document stays in place.
func (l *Library) Reload(path string) (string, error) {
	name := filepath.Base(path)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.mu.Lock()
		delete(l.files, name)
		l.mu.Unlock()
		l.log.Info("choreo file removed", "file", name)
		return name, nil
	}
	if err != nil {
		return name, fmt.Errorf("choreo: reload %s: %w", name, err)
	}
	return name, l.install(name, data)
}

func (l *Library) install(name string, data []byte) error {
	f, err := Parse(data)
	if err != nil {
		return fmt.Errorf("choreo: %s: %w", name, err)
	}
	if err := f.Validate(l.reg); err != nil {
		return fmt.Errorf("choreo: %s: %w", name, err)
	}
	if err := f.RegisterEasings(l.reg); err != nil {
		return fmt.Errorf("choreo: %s: %w", name, err)
	}
	if f.Name == "" {
		f.Name = name
	}

	l.mu.Lock()
	l.files[name] = f
	l.mu.Unlock()
	l.log.Debug("choreo file loaded", "file", name, "animations", len(f.Animations), "sequences", len(f.Sequences))
	return nil
}

// Watch reloads documents as they change on disk until ctx is done. onReload
// runs after every reload attempt, on the watching goroutine.
func (l *Library) Watch(ctx context.Context, onReload func(name string, err error)) error {
	if l.dir == "" {
		return errors.New("choreo: watch needs a directory")
	}
	w, err := NewWatcher(l.dir)
	if err != nil {
		return fmt.Errorf("choreo: watch %s: %w", l.dir, err)
	}
	defer w.Close()

	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			name, err := l.Reload(path)
			if err != nil {
				l.log.Warn("choreo reload failed", "file", name, "err", err)
			}
			if onReload != nil {
				onReload(name, err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			l.log.Warn("choreo watcher error", "err", err)
		case <-ctx.Done():
			return nil
		}
	}
}
