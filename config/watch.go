package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/sling/parameter"
)

// Watcher reloads the config file on change and hands valid configs to onReload
// It watches the parent directory since editors replace files via rename
type Watcher struct {
	path       string
	parentPath string
	onReload   func(*Config)
	debounce   time.Duration

	watcher *fsnotify.Watcher
	cancel  context.CancelFunc
	done    chan struct{}

	mu      sync.Mutex
	running bool
}

// NewWatcher creates a watcher for path; onReload runs on the watcher goroutine
func NewWatcher(path string, onReload func(*Config)) *Watcher {
	return &Watcher{
		path:       filepath.Clean(path),
		parentPath: filepath.Dir(filepath.Clean(path)),
		onReload:   onReload,
		debounce:   parameter.ConfigReloadDebounce,
	}
}

// Name implements service.Service
func (w *Watcher) Name() string {
	return "config"
}

// Dependencies implements service.Service
func (w *Watcher) Dependencies() []string {
	return nil
}

// Init implements service.Service
func (w *Watcher) Init(args ...any) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	w.watcher = fsw
	return nil
}

// Start begins watching; safe to call once
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}
	if w.watcher == nil {
		if err := w.Init(); err != nil {
			return err
		}
	}
	if err := w.watcher.Add(w.parentPath); err != nil {
		return fmt.Errorf("watch %s: %w", w.parentPath, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})
	w.running = true

	go w.watchLoop(ctx)
	return nil
}

// Stop halts the watcher; idempotent
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		if w.watcher != nil {
			err := w.watcher.Close()
			w.watcher = nil
			return err
		}
		return nil
	}

	w.running = false
	w.cancel()
	err := w.watcher.Close()
	<-w.done
	w.watcher = nil
	return err
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer close(w.done)

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, w.reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Str("path", w.path).Msg("Config watcher error")
		}
	}
}

func (w *Watcher) reload() {
	cfg, _, err := Load(w.path)
	if err != nil {
		log.Warn().Err(err).Str("path", w.path).Msg("Config reload rejected, keeping previous")
		return
	}
	log.Info().Str("path", w.path).Msg("Config reloaded")
	if w.onReload != nil {
		w.onReload(cfg)
	}
}
