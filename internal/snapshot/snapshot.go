// Package snapshot finds, loads and parses UI tree snapshot files.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/mj1618/eve-ui-reader/internal/uiparse"
	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

// DefaultPattern selects snapshot files inside a directory argument.
const DefaultPattern = "**/*.json"

var ErrNoSnapshots = errors.New("no snapshot files matched")

// Expand turns file names, directories and doublestar patterns such as
// "samples/**/*.json" into a list of files. Order follows the arguments;
// each pattern's matches are sorted and duplicates are dropped.
func Expand(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, pattern := range patterns {
		if info, err := os.Stat(pattern); err == nil {
			if !info.IsDir() {
				add(pattern)
				continue
			}
			pattern = filepath.Join(pattern, DefaultPattern)
		} else if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}

	if len(files) == 0 {
		return nil, ErrNoSnapshots
	}
	return files, nil
}

// Result is one parsed snapshot. Err is set when the file could not be
// read or decoded; UI is nil then.
type Result struct {
	Path string
	UI   *uiparse.UserInterface
	Err  error
}

// Load reads and parses one snapshot file.
func Load(path string, cfg uiparse.Config) (*uiparse.UserInterface, error) {
	raw, err := uitree.ReadSnapshotFile(path)
	if err != nil {
		return nil, err
	}
	return uiparse.Parse(raw, cfg), nil
}

// ParseAll loads and parses paths with at most limit files in flight; zero
// means one per CPU. Results are in the order of paths. A file that fails
// only sets its own Result.Err; the returned error is the context's.
func ParseAll(ctx context.Context, paths []string, cfg uiparse.Config, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ui, err := Load(path, cfg)
			results[i] = Result{Path: path, UI: ui, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
