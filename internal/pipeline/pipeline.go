// Package pipeline runs dispatch.Process over a batch of files with
// bounded concurrency, the Go-native approximation of
// _examples/original_source/core/processor.rs's process_files, which
// fans a rayon par_iter() out across as many threads as there are
// cores. golang.org/x/sync/errgroup gives the same "launch everything,
// wait for all of it, keep going even if some fail" shape without
// hand-rolling a worker pool.
package pipeline

import (
	"context"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/zenfmt/zenfmt/internal/cache"
	"github.com/zenfmt/zenfmt/internal/dispatch"
)

// DefaultConcurrency matches GOMAXPROCS, mirroring rayon's default pool
// size of one worker per logical CPU.
func DefaultConcurrency() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}

// Run processes every path in files concurrently, up to concurrency at
// a time, and returns one dispatch.Result per input file in input
// order. A per-file error never aborts the batch; it is recorded on
// that file's Result. If fc is non-nil, a file already recorded as
// processed under mode at its current content hash is skipped (and
// reported as dispatch.Result.Skipped), and any file that is actually
// processed has its new hash recorded back into fc.
func Run(ctx context.Context, files []string, mode dispatch.Mode, concurrency int, fc *cache.Cache) []dispatch.Result {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency()
	}
	results := make([]dispatch.Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			results[i] = processOne(gctx, fc, path, mode)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func processOne(ctx context.Context, fc *cache.Cache, path string, mode dispatch.Mode) dispatch.Result {
	if fc != nil {
		if content, err := os.ReadFile(path); err == nil {
			hash := cache.Hash(content)
			if seen, err := fc.Seen(path, int(mode), hash); err == nil && seen {
				return dispatch.Result{Path: path, Skipped: true}
			}
		}
	}

	res := dispatch.Process(ctx, path, mode)

	if fc != nil && res.Err == nil {
		if content, err := os.ReadFile(path); err == nil {
			_ = fc.Record(path, int(mode), cache.Hash(content))
		}
	}

	return res
}
