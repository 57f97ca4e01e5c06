package index

import (
	"context"
	"runtime"
	"sync"

	"github.com/oxhq/unreach/internal/graph"
)

// FileInput is one file's worth of ingest input: its path and the
// (index-store, compilation-unit) pairs that produced occurrences for it
// (§4.1 Input).
type FileInput struct {
	File  string
	Units []UnitRef
}

// IngestAll runs IngestFile across files on a worker pool bounded by
// runtime.NumCPU(), committing each resulting FileCommit into g as it
// completes (§5: "a worker pool bounded by the number of available CPUs...
// each worker ingests one file... producing a FileCommit with no shared
// state, then committing it under the graph's single lock"). The first
// worker error cancels the remaining work and is returned; already-queued
// commits from other workers may still land before cancellation is
// observed, which is harmless since Commit on a doomed run is discarded by
// the caller.
func IngestAll(ctx context.Context, g *graph.Graph, files []FileInput, opts Options) error {
	numWorkers := runtime.NumCPU()
	if numWorkers > len(files) {
		numWorkers = len(files)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	workChan := make(chan FileInput, len(files))
	for _, f := range files {
		workChan <- f
	}
	close(workChan)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		firstErr error
	)

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range workChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				fc, err := IngestFile(f.File, f.Units, opts)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					cancel()
					return
				}
				g.Commit(fc)
			}
		}()
	}

	wg.Wait()
	return firstErr
}
