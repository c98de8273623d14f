package restore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DirResult aggregates the outcome of a bulk restore.
type DirResult struct {
	Results []Result
	Errors  map[string]error
}

// RestoreDir restores every regular file directly inside dir, up to
// concurrency files at a time. It's the disaster-recovery complement to
// a purge pass that wrote an entire archive_dir: replay everything that
// was archived, instead of one file at a time.
//
// A per-file failure is recorded in DirResult.Errors rather than
// aborting the run, so one corrupt or incompatible-version archive
// doesn't block restoring the rest of the directory.
func (l *Loader) RestoreDir(ctx context.Context, dir string, concurrency int) (DirResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return DirResult{}, fmt.Errorf("restore: read dir %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	if concurrency <= 0 {
		concurrency = 1
	}

	var mu sync.Mutex
	dr := DirResult{Errors: make(map[string]error)}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			res, err := l.RestoreFile(gctx, path)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				dr.Errors[path] = err
				l.logger().Error("restore: file failed", "path", path, "error", err)
				return nil
			}
			dr.Results = append(dr.Results, res)
			return nil
		})
	}
	// g.Wait's error is always nil: per-file failures are captured in
	// dr.Errors instead of cancelling the group, so every file gets a
	// chance to restore even if an earlier one fails.
	_ = g.Wait()

	return dr, nil
}
