package neighbors

import (
	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/nearest/pkg/errors"
)

// Distance returns the Euclidean distance between a and b.
// Vectors of different length are rejected with a DimensionError; they are
// never truncated to the shorter one.
func Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.NewDimensionError("Distance", len(a), len(b), 1)
	}
	return floats.Distance(a, b, 2), nil
}
