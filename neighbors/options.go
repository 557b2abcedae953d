package neighbors

import "github.com/YuminosukeSato/nearest/pkg/log"

// DefaultParallelThreshold is the batch size above which PredictBatch fans
// queries out across CPU cores.
const DefaultParallelThreshold = 64

// Option is a function that configures a Dataset
type Option func(*Dataset)

// WithLogger sets the logger used for debug records. Defaults to log.GetLogger().
func WithLogger(l log.Logger) Option {
	return func(d *Dataset) {
		d.logger = l
	}
}

// WithParallelThreshold sets the PredictBatch size at or below which queries
// are answered sequentially. Must be non-negative.
func WithParallelThreshold(n int) Option {
	return func(d *Dataset) {
		d.parallelThreshold = n
	}
}
