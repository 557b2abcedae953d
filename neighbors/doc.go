// Package neighbors implements 1-nearest-neighbor classification over small
// in-memory tabular datasets.
//
// A Dataset holds a rectangular float64 matrix and one label per row.
// Predict scans every row and returns the label of the row closest to the
// query in Euclidean distance; the first row wins exact ties. There is no
// index structure, so a query costs O(rows × features).
//
// Features are usually standardized first with the stats package, and every
// query must go through the same transform:
//
//	means, _ := stats.Mean(X)
//	stds, _ := stats.Std(X, means)
//	_ = stats.Normalize(X, means, stds)
//
//	ds, err := neighbors.NewDataset(X, labels)
//	if err != nil {
//	    return err
//	}
//	q, _ := stats.NormalizeVector(query, means, stds)
//	label, err := ds.Predict(q)
//
// A Dataset copies its input and is immutable, so Predict may be called from
// many goroutines at once.
package neighbors
