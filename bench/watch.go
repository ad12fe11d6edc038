package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits after the last change before
// rerunning, so that a burst of writes triggers a single run.
const DefaultDebounce = 200 * time.Millisecond

// WatchDirs returns the directories a watch over c should observe: the data
// directory when datasets are discovered, plus the parent directory of every
// resolved dataset file.
func (c Config) WatchDirs() []string {
	seen := make(map[string]bool)
	var dirs []string
	add := func(d string) {
		d = filepath.Clean(d)
		if !seen[d] {
			seen[d] = true
			dirs = append(dirs, d)
		}
	}
	if len(c.Datasets) == 0 {
		add(c.DataDir)
	}
	// Resolve errors are reported by the batch itself on every run.
	datasets, _ := c.Resolve()
	for _, ds := range datasets {
		add(filepath.Dir(ds.Text))
		add(filepath.Dir(ds.Pattern))
	}
	sort.Strings(dirs)
	return dirs
}

// Watch calls run once, then again whenever a file in one of dirs is
// created, written, removed or renamed, until ctx is cancelled. Errors from
// run are logged and do not stop the watch.
func Watch(ctx context.Context, dirs []string, debounce time.Duration, logger *slog.Logger, run func(context.Context) error) error {
	if len(dirs) == 0 {
		return errors.New("watch: no directories")
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	runLogged := func() {
		if err := run(ctx); err != nil {
			logger.Error("batch failed", "err", err)
		}
	}
	runLogged()

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("dataset file changed", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		case <-timer.C:
			runLogged()
		}
	}
}
