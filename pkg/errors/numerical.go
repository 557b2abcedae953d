package errors

import (
	"math"
)

// CheckNumericalStability checks if values contain NaN or Inf
// and returns an error pointing at the first offending index.
func CheckNumericalStability(operation string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalInstabilityError(operation, values, i)
		}
	}
	return nil
}

// CheckRows checks every row of a row-major matrix. The returned
// NumericalInstabilityError carries the offending row as Values and the
// column within that row as Index; the row number is added as a wrap.
func CheckRows(operation string, rows [][]float64) error {
	for i, row := range rows {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Wrapf(NewNumericalInstabilityError(operation, row, j), "row %d", i)
			}
		}
	}
	return nil
}
