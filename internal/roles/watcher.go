package roles

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// LoadLibraryFile reads a role-profile library from a JSON file. The
// file holds an array of RoleProfile objects.
func LoadLibraryFile(path string) ([]types.RoleProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read role library: %w", err)
	}
	var profiles []types.RoleProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse role library: %w", err)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("role library %s contains no profiles", path)
	}
	return profiles, nil
}

// Watcher reloads a library file when it changes on disk. A failed
// reload keeps the previous snapshot; the library is never left empty.
type Watcher struct {
	mu sync.Mutex

	path    string
	library *Library

	fsWatcher     *fsnotify.Watcher
	debounceDelay time.Duration
	debounceTimer *time.Timer

	stopChan chan struct{}

	logger  *errors.Logger
	running bool
}

// NewWatcher creates a watcher for the given library file.
func NewWatcher(path string, library *Library, debounceDelay time.Duration, logger *errors.Logger) *Watcher {
	if debounceDelay == 0 {
		debounceDelay = time.Second
	}
	return &Watcher{
		path:          path,
		library:       library,
		debounceDelay: debounceDelay,
		stopChan:      make(chan struct{}),
		logger:        logger,
	}
}

// Start loads the file once and begins watching its directory. Watching
// the directory instead of the file survives rename-based atomic writes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("role library watcher is already running")
	}

	profiles, err := LoadLibraryFile(w.path)
	if err != nil {
		return err
	}
	w.library.replace(profiles)

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		if closeErr := fsWatcher.Close(); closeErr != nil && w.logger != nil {
			w.logger.LogError(closeErr, "Failed to close file watcher during cleanup")
		}
		return fmt.Errorf("failed to watch role library directory: %w", err)
	}

	w.fsWatcher = fsWatcher
	w.running = true
	go w.watchLoop()

	if w.logger != nil {
		w.logger.Info("Role library watcher started", "path", w.path, "profiles", len(profiles))
	}
	return nil
}

// Stop ends the watch loop and releases the file watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	close(w.stopChan)
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	if err := w.fsWatcher.Close(); err != nil && w.logger != nil {
		w.logger.LogError(err, "Failed to close role library watcher")
	}
	w.running = false
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.stopChan:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.LogError(err, "Role library watcher error")
			}
		}
	}
}

// scheduleReload debounces bursts of file events into one reload.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceDelay, w.reload)
}

func (w *Watcher) reload() {
	profiles, err := LoadLibraryFile(w.path)
	if err != nil {
		if w.logger != nil {
			w.logger.LogError(err, "Role library reload failed, keeping previous profiles")
		}
		return
	}
	w.library.replace(profiles)
	if w.logger != nil {
		w.logger.Info("Role library reloaded", "path", w.path, "profiles", len(profiles))
	}
}
