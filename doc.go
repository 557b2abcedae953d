// Package nearest provides 1-nearest-neighbor classification for small
// in-memory tabular datasets, together with the column statistics needed to
// standardize features first.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/nearest/neighbors"
//	    "github.com/YuminosukeSato/nearest/stats"
//	)
//
//	func main() {
//	    X := [][]float64{{0, 0}, {10, 10}}
//	    labels := []string{"A", "B"}
//
//	    means, _ := stats.Mean(X)
//	    stds, _ := stats.Std(X, means)
//	    if err := stats.Normalize(X, means, stds); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    ds, err := neighbors.NewDataset(X, labels)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    q, _ := stats.NormalizeVector([]float64{1, 1}, means, stds)
//	    label, err := ds.Predict(q)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(label) // A
//	}
//
// # Packages
//
//   - neighbors: Dataset, Euclidean Distance, Predict / PredictBatch / Score
//   - stats: column Mean, population Std, in-place Normalize
//   - preprocessing: StandardScaler over gonum matrices
//   - metrics: Accuracy and confusion matrix over string labels
//   - core/model: shared interfaces and fitted-state base type
//   - core/parallel: chunked parallel execution
//   - pkg/errors: error taxonomy (DimensionError, ErrEmptyDataset, ZeroVarianceError)
//   - pkg/log: slog / zerolog structured logging
//
// Search is always exhaustive. There is no k>1 voting, no metric other than
// Euclidean and no persistence.
package nearest
