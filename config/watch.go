package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay is how long the file must stay quiet before it is reloaded. Editors
// and os.WriteFile truncate before writing, so reloading on the first event would
// read a partial file.
const reloadDelay = 100 * time.Millisecond

// Watcher reloads the controls section of a config file whenever it changes.
// Only controls (including look_button) are handed on; rig time constants stay fixed
// at construction.
type Watcher struct {
	watcher    *fsnotify.Watcher
	path       string
	onControls func(ControlsConfig)
	closeCh    chan struct{}
	done       chan struct{}
	once       sync.Once
}

// NewWatcher starts watching path. The directory is watched rather than the file so
// that rename-on-save editors keep working.
//
// Parameters:
//   - path: the config file
//   - onControls: called with the validated controls section after each successful
//     reload; ControlsConfig.Apply forwards it to a camera.Controller
//
// Returns:
//   - *Watcher: the running watcher; call Close to stop it
//   - error: an error if the file system watcher cannot be started
func NewWatcher(path string, onControls func(ControlsConfig)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	watcher := &Watcher{
		watcher:    w,
		path:       abs,
		onControls: onControls,
		closeCh:    make(chan struct{}),
		done:       make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and waits for its goroutine to exit. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	var (
		timer  *time.Timer
		reload <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDelay)
			} else {
				timer.Reset(reloadDelay)
			}
			reload = timer.C
		case <-reload:
			reload = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[Config] watch error: %v", err)
		case <-w.closeCh:
			return
		}
	}
}

// reload applies the controls of the file on disk. A file that fails to load or
// validate leaves the current controls in place.
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		log.Printf("[Config] reload skipped: %v", err)
		return
	}
	log.Printf("[Config] reloaded controls from %s", w.path)
	if w.onControls != nil {
		w.onControls(cfg.Controls)
	}
}
