package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/mj1618/eve-ui-reader/internal/log"
)

// DefaultDebounce is how long a file must stay quiet after a write before
// it is reported. The memory reader writes snapshots in several chunks.
const DefaultDebounce = 200 * time.Millisecond

type WatchOptions struct {
	Debounce time.Duration
	// Pattern filters files written inside watched directories, matched
	// against the base name. Empty means "*.json".
	Pattern string
}

// Watch reports snapshot files that are created or rewritten. Each target
// is a file or a directory. fn runs on the calling goroutine, once per
// file per quiet period. Watch returns when ctx is done.
func Watch(ctx context.Context, targets []string, opts WatchOptions, fn func(path string)) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Pattern == "" {
		opts.Pattern = "*.json"
	}
	if !doublestar.ValidatePattern(opts.Pattern) {
		return fmt.Errorf("invalid pattern %q", opts.Pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	files := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, target := range targets {
		abs, err := filepath.Abs(target)
		if err != nil {
			return fmt.Errorf("watch %s: %w", target, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return fmt.Errorf("watch %s: %w", target, err)
		}
		dir := abs
		if info.IsDir() {
			dirs[abs] = true
		} else {
			files[abs] = true
			dir = filepath.Dir(abs)
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	logger := log.With("component", "watcher")
	logger.Info("watching", "targets", len(targets), "debounce", opts.Debounce)

	wanted := func(path string) bool {
		if files[path] {
			return true
		}
		if !dirs[filepath.Dir(path)] {
			return false
		}
		ok, _ := doublestar.Match(opts.Pattern, filepath.Base(path))
		return ok
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ready := make(chan string)
	pending := make(map[string]*time.Timer)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			path := filepath.Clean(ev.Name)
			if !wanted(path) {
				continue
			}
			logger.Debug("event", "op", ev.Op.String(), "path", path)
			if t, ok := pending[path]; ok {
				t.Reset(opts.Debounce)
				continue
			}
			pending[path] = time.AfterFunc(opts.Debounce, func() {
				select {
				case ready <- path:
				case <-ctx.Done():
				}
			})

		case path := <-ready:
			delete(pending, path)
			fn(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		}
	}
}
