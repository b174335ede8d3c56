package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// BlueprintWatcher watches the loaded blueprint file and triggers a reload
// callback when it changes on disk. Events are debounced because CAD exports
// and image writers often emit several write events per save.
type BlueprintWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	path     string
	onChange func(string)
	debounce time.Duration
	timer    *time.Timer
}

// NewBlueprintWatcher creates a watcher with the given debounce interval
func NewBlueprintWatcher(debounce time.Duration) (*BlueprintWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &BlueprintWatcher{
		watcher:  watcher,
		debounce: debounce,
	}, nil
}

// Watch replaces the watched blueprint with the given file.
// callback is called with the path after the file changes and the debounce
// interval passes.
func (bw *BlueprintWatcher) Watch(path string, callback func(string)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.path != "" {
		if err := bw.watcher.Remove(bw.path); err != nil {
			return fmt.Errorf("failed to unwatch %s: %w", bw.path, err)
		}
	}
	if err := bw.watcher.Add(absPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	bw.path = absPath
	bw.onChange = callback
	return nil
}

// Start begins delivering change events
func (bw *BlueprintWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-bw.watcher.Events:
				if !ok {
					return
				}

				// Only writes and creates matter; editors that replace the
				// file on save emit a create.
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					bw.handleChange(event.Name)
				}

			case err, ok := <-bw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()
}

// handleChange debounces a change event for the watched blueprint
func (bw *BlueprintWatcher) handleChange(path string) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if path != bw.path || bw.onChange == nil {
		return
	}

	if bw.timer != nil {
		bw.timer.Stop()
	}

	callback := bw.onChange
	bw.timer = time.AfterFunc(bw.debounce, func() {
		callback(path)
	})
}

// Close stops the watcher
func (bw *BlueprintWatcher) Close() error {
	return bw.watcher.Close()
}
