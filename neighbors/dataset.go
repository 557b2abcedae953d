package neighbors

import (
	"context"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/nearest/core/model"
	"github.com/YuminosukeSato/nearest/core/parallel"
	"github.com/YuminosukeSato/nearest/metrics"
	"github.com/YuminosukeSato/nearest/pkg/errors"
	"github.com/YuminosukeSato/nearest/pkg/log"
	"github.com/YuminosukeSato/nearest/stats"
)

var _ model.Classifier = (*Dataset)(nil)

// Dataset is an immutable labeled matrix answering 1-nearest-neighbor queries.
// Row i of the matrix is labeled labels[i]. Labels need not be unique.
type Dataset struct {
	matrix [][]float64
	labels []string
	cols   int

	logger            log.Logger
	parallelThreshold int
}

// Neighbor is the row selected by a nearest-neighbor query.
type Neighbor struct {
	Index    int
	Label    string
	Distance float64
}

// NewDataset builds a Dataset from a rectangular matrix and one label per row.
// The inputs are copied, so later changes by the caller are not observed.
//
// It returns ErrEmptyDataset for a matrix without rows or columns, a
// DimensionError for ragged rows or a label count that differs from the row
// count, and a NumericalInstabilityError if any value is NaN or Inf.
func NewDataset(matrix [][]float64, labels []string, opts ...Option) (*Dataset, error) {
	cols, err := stats.Columns("NewDataset", matrix)
	if err != nil {
		return nil, err
	}
	if len(labels) != len(matrix) {
		return nil, errors.NewDimensionError("NewDataset", len(matrix), len(labels), 0)
	}
	if err := errors.CheckRows("NewDataset", matrix); err != nil {
		return nil, err
	}

	d := &Dataset{
		cols:              cols,
		parallelThreshold: DefaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.parallelThreshold < 0 {
		return nil, errors.NewValidationError("parallel_threshold", "must be non-negative", d.parallelThreshold)
	}
	if d.logger == nil {
		d.logger = log.GetLogger()
	}
	d.logger = d.logger.With(log.ModelNameKey, "Dataset", log.ComponentKey, "neighbors")

	// one backing array keeps rows contiguous for the scan
	backing := make([]float64, len(matrix)*cols)
	d.matrix = make([][]float64, len(matrix))
	for i, row := range matrix {
		dst := backing[i*cols : (i+1)*cols : (i+1)*cols]
		copy(dst, row)
		d.matrix[i] = dst
	}
	d.labels = append([]string(nil), labels...)

	if d.logger.Enabled(context.Background(), log.LevelDebug) {
		distinct := make(map[string]struct{}, len(d.labels))
		for _, l := range d.labels {
			distinct[l] = struct{}{}
		}
		d.logger.Debug("Dataset constructed",
			log.SamplesKey, len(d.matrix),
			log.FeaturesKey, cols,
			log.LabelsKey, len(distinct),
		)
	}
	return d, nil
}

// NewDatasetFromDense builds a Dataset from a gonum matrix.
func NewDatasetFromDense(X mat.Matrix, labels []string, opts ...Option) (*Dataset, error) {
	r, _ := X.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, X)
	}
	return NewDataset(rows, labels, opts...)
}

// Dims returns the number of rows and features.
func (d *Dataset) Dims() (rows, cols int) {
	if d == nil {
		return 0, 0
	}
	return len(d.matrix), d.cols
}

// Labels returns a copy of the row labels.
func (d *Dataset) Labels() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.labels...)
}

// Row returns a copy of row i. It panics if i is out of range.
func (d *Dataset) Row(i int) []float64 {
	return append([]float64(nil), d.matrix[i]...)
}

// Predict returns the label of the row closest to input.
func (d *Dataset) Predict(input []float64) (string, error) {
	n, err := d.nearest("Dataset.Predict", input)
	if err != nil {
		return "", err
	}
	return n.Label, nil
}

// Nearest is like Predict but also reports the winning row and its distance.
func (d *Dataset) Nearest(input []float64) (Neighbor, error) {
	return d.nearest("Dataset.Nearest", input)
}

func (d *Dataset) nearest(op string, input []float64) (Neighbor, error) {
	if d == nil || len(d.matrix) == 0 {
		return Neighbor{}, errors.NewEmptyDatasetError(op)
	}
	if len(input) != d.cols {
		return Neighbor{}, errors.NewDimensionError(op, d.cols, len(input), 1)
	}
	if err := errors.CheckNumericalStability(op, input); err != nil {
		return Neighbor{}, err
	}

	best := Neighbor{Index: -1, Distance: math.Inf(1)}
	for i, row := range d.matrix {
		dist := floats.Distance(input, row, 2)
		// strict: the first row reaching the minimum keeps it
		if dist < best.Distance {
			best = Neighbor{Index: i, Label: d.labels[i], Distance: dist}
		}
	}
	if best.Index < 0 {
		// every distance overflowed to +Inf, so all rows tie
		best = Neighbor{Index: 0, Label: d.labels[0], Distance: math.Inf(1)}
	}

	if d.logger.Enabled(context.Background(), log.LevelDebug) {
		d.logger.Debug("Nearest neighbor found",
			log.OperationKey, log.OperationPredict,
			log.NeighborIndexKey, best.Index,
			log.DistanceKey, best.Distance,
		)
	}
	return best, nil
}

// PredictBatch predicts every row of X. Batches larger than the parallel
// threshold are split across CPU cores. The first failing query aborts the
// batch and its index is included in the error.
func (d *Dataset) PredictBatch(X [][]float64) ([]string, error) {
	if d == nil || len(d.matrix) == 0 {
		return nil, errors.NewEmptyDatasetError("Dataset.PredictBatch")
	}

	start := time.Now()
	preds := make([]string, len(X))
	err := parallel.ParallelizeWithThreshold(len(X), d.parallelThreshold, func(start, end int) error {
		for i := start; i < end; i++ {
			n, err := d.nearest("Dataset.PredictBatch", X[i])
			if err != nil {
				return errors.Wrapf(err, "query %d", i)
			}
			preds[i] = n.Label
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.logger.Debug("Batch prediction finished",
		log.OperationKey, log.OperationPredict,
		log.PredsKey, len(preds),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return preds, nil
}

// Score returns the accuracy of PredictBatch(X) against y.
func (d *Dataset) Score(X [][]float64, y []string) (float64, error) {
	if len(X) != len(y) {
		return 0, errors.NewDimensionError("Dataset.Score", len(X), len(y), 0)
	}
	preds, err := d.PredictBatch(X)
	if err != nil {
		return 0, err
	}
	acc, err := metrics.Accuracy(y, preds)
	if err != nil {
		return 0, err
	}

	d.logger.Debug("Dataset scored",
		log.OperationKey, log.OperationScore,
		log.SamplesKey, len(X),
		log.AccuracyKey, acc,
	)
	return acc, nil
}
