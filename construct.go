package nbgen

import (
	"context"
	"runtime"
	"sync"
)

// Worker sizing constants for ConstructAll.
const (
	// MinWorkers ensures at least one worker is available.
	MinWorkers = 1

	// MaxWorkers caps parallel formatter calls.
	MaxWorkers = 16
)

// ResolveWorkers clamps n to [MinWorkers, MaxWorkers]; n <= 0 picks
// GOMAXPROCS.
func ResolveWorkers(n int) int {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return min(max(n, MinWorkers), MaxWorkers)
}

// ConstructAll constructs every record using up to workers goroutines.
// The returned slice is indexed like records, so callers consume it in the
// original order regardless of completion order. Records not reached before
// ctx is done carry ctx.Err(). The formatter must be safe for concurrent use.
func ConstructAll(ctx context.Context, records []Record, f CodeFormatter, workers int) []Result {
	if len(records) == 0 {
		return nil
	}

	concurrency := min(ResolveWorkers(workers), len(records))
	results := make([]Result, len(records))
	jobs := make(chan int, len(records))
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = Result{Index: idx, Err: err}
					continue
				}
				c, err := Construct(records[idx], f)
				results[idx] = Result{Index: idx, Content: c, Err: err}
			}
		}()
	}

	for i := range records {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// Build constructs records in parallel and assembles them in order.
func Build(ctx context.Context, records []Record, f CodeFormatter, workers int, opts ...Option) (*Document, error) {
	results := ConstructAll(ctx, records, f, workers)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return NewAssembler(opts...).Assemble(results)
}
