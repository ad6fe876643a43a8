package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hupe1980/actorkit/logging"
)

// ChangeCallback is called when configuration changes.
type ChangeCallback func(oldConfig, newConfig *Config)

// Watcher watches a configuration file for changes and provides hot-reload
// functionality. Reloads that fail validation are reported and discarded; the
// previous configuration stays in effect.
type Watcher struct {
	// Configuration file path
	configFile string

	// Configuration loader
	loader *Loader

	// Current configuration
	config   *Config
	configMu sync.RWMutex

	// File system watcher
	fsWatcher *fsnotify.Watcher

	// Change callbacks
	callbacks   []ChangeCallback
	callbacksMu sync.RWMutex

	logger logging.Logger

	done chan struct{}
	wg   sync.WaitGroup
}

// NewWatcher creates a configuration watcher for configFile. The initial
// configuration is loaded eagerly so construction fails fast on a broken
// file. A nil logger defaults to NoOp.
func NewWatcher(configFile string, loader *Loader, logger logging.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file system watcher: %w", err)
	}

	watcher := &Watcher{
		configFile: configFile,
		loader:     loader,
		fsWatcher:  fsWatcher,
		logger:     logger,
		done:       make(chan struct{}),
	}

	config, err := loader.LoadFromFile(configFile)
	if err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to load initial config: %w", err)
	}
	watcher.config = config

	return watcher, nil
}

// Start starts watching the configuration file.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(w.configFile); err != nil {
		return fmt.Errorf("failed to watch config file: %w", err)
	}

	w.wg.Add(1)
	go w.watchLoop()

	return nil
}

// Stop stops watching the configuration file.
func (w *Watcher) Stop() error {
	close(w.done)
	err := w.fsWatcher.Close()
	w.wg.Wait()
	return err
}

// GetConfig returns the current configuration.
func (w *Watcher) GetConfig() *Config {
	w.configMu.RLock()
	defer w.configMu.RUnlock()
	return w.config
}

// OnChange registers a callback for configuration changes.
func (w *Watcher) OnChange(callback ChangeCallback) {
	w.callbacksMu.Lock()
	defer w.callbacksMu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Reload manually reloads the configuration.
func (w *Watcher) Reload() error {
	return w.reloadConfig()
}

// watchLoop watches for file system events, debouncing rapid write bursts
// into one reload.
func (w *Watcher) watchLoop() {
	defer w.wg.Done()

	var debounceTimer *time.Timer
	debounceDuration := 500 * time.Millisecond

	for {
		select {
		case <-w.done:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Name != w.configFile {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, func() {
					if err := w.reloadConfig(); err != nil {
						w.logger.Error("failed to reload config", "file", w.configFile, "error", err)
					}
				})
			} else if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				w.logger.Warn("config file was removed or renamed", "file", w.configFile)
				// Re-add in case the file is recreated (common with atomic
				// save-and-rename editors).
				time.AfterFunc(time.Second, func() {
					if err := w.fsWatcher.Add(w.configFile); err != nil {
						w.logger.Error("failed to re-watch config file", "file", w.configFile, "error", err)
					}
				})
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher error", "error", err)
		}
	}
}

// reloadConfig reloads the configuration from file and notifies callbacks.
func (w *Watcher) reloadConfig() error {
	newConfig, err := w.loader.LoadFromFile(w.configFile)
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	w.configMu.Lock()
	oldConfig := w.config
	w.config = newConfig
	w.configMu.Unlock()

	w.notifyCallbacks(oldConfig, newConfig)

	w.logger.Info("configuration reloaded", "file", w.configFile)
	return nil
}

// notifyCallbacks notifies all registered callbacks of configuration changes.
func (w *Watcher) notifyCallbacks(oldConfig, newConfig *Config) {
	w.callbacksMu.RLock()
	callbacks := make([]ChangeCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.callbacksMu.RUnlock()

	for _, callback := range callbacks {
		callback(oldConfig, newConfig)
	}
}
