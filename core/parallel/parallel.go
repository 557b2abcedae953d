package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/YuminosukeSato/nearest/pkg/errors"
)

// Parallelize divides items into one contiguous range per CPU core and runs
// fn on each range concurrently. It returns the first error reported by any
// range; a panic inside fn is returned as *errors.PanicError.
func Parallelize(items int, fn func(start, end int) error) error {
	if items == 0 {
		return nil
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > items {
		numWorkers = items
	}

	// ceiling division
	chunkSize := (items + numWorkers - 1) / numWorkers

	var g errgroup.Group
	for start := 0; start < items; start += chunkSize {
		end := start + chunkSize
		if end > items {
			end = items
		}
		s, e := start, end
		g.Go(func() error {
			return errors.SafeExecute("parallel.Parallelize", func() error {
				return fn(s, e)
			})
		})
	}
	return g.Wait()
}

// ParallelizeWithThreshold runs fn sequentially over [0, items) when items
// does not exceed threshold, and through Parallelize otherwise.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int) error) error {
	if items <= threshold {
		if items == 0 {
			return nil
		}
		return errors.SafeExecute("parallel.ParallelizeWithThreshold", func() error {
			return fn(0, items)
		})
	}
	return Parallelize(items, fn)
}
