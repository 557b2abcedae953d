package preprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/nearest/pkg/errors"
	"github.com/YuminosukeSato/nearest/pkg/log"
)

func TestStandardScalerFitTransform(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})

	scaler := NewStandardScalerDefault()
	XScaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 4}, scaler.Mean)
	want := math.Sqrt(8.0 / 3.0)
	assert.InDeltaSlice(t, []float64{want, want}, scaler.Scale, 1e-12)

	r, c := XScaled.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	assert.InDelta(t, -2/want, XScaled.At(0, 0), 1e-12)
	assert.InDelta(t, 0.0, XScaled.At(1, 1), 1e-12)
	assert.InDelta(t, 2/want, XScaled.At(2, 1), 1e-12)

	// 元の行列は変更されない
	assert.Equal(t, 1.0, X.At(0, 0))

	back, err := scaler.InverseTransform(XScaled)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(X, back, 1e-12))
}

func TestStandardScalerTransformVector(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{
		0, 10,
		2, 30,
	})
	scaler := NewStandardScalerDefault()
	require.NoError(t, scaler.Fit(X))

	got, err := scaler.TransformVector([]float64{2, 20})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0}, got, 1e-12)

	_, err = scaler.TransformVector([]float64{1})
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr), "got %v", err)
}

func TestStandardScalerConstantFeature(t *testing.T) {
	var warnings []error
	errors.SetWarningHandler(func(w error) { warnings = append(warnings, w) })
	defer errors.SetWarningHandler(nil)

	X := mat.NewDense(3, 2, []float64{
		1, 7,
		2, 7,
		3, 7,
	})
	scaler := NewStandardScalerDefault()
	XScaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	assert.Equal(t, 1.0, scaler.Scale[1])
	assert.Equal(t, 0.0, XScaled.At(0, 1))

	require.Len(t, warnings, 1)
	var cfw *errors.ConstantFeatureWarning
	require.True(t, errors.As(warnings[0], &cfw))
	assert.Equal(t, 1, cfw.Feature)
}

func TestStandardScalerWithoutMeanOrStd(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{2, 4})

	noMean := NewStandardScaler(false, true)
	require.NoError(t, noMean.Fit(X))
	assert.Equal(t, []float64{0}, noMean.Mean)
	assert.Equal(t, []float64{1}, noMean.Scale)

	noStd := NewStandardScaler(true, false)
	require.NoError(t, noStd.Fit(X))
	assert.Equal(t, []float64{3}, noStd.Mean)
	assert.Equal(t, []float64{1}, noStd.Scale)
}

func TestStandardScalerErrors(t *testing.T) {
	scaler := NewStandardScalerDefault()

	_, err := scaler.Transform(mat.NewDense(1, 1, []float64{1}))
	var nfErr *errors.NotFittedError
	assert.True(t, errors.As(err, &nfErr), "got %v", err)

	_, err = scaler.TransformVector([]float64{1})
	assert.True(t, errors.As(err, &nfErr), "got %v", err)

	err = scaler.Fit(&mat.Dense{})
	assert.True(t, errors.Is(err, errors.ErrEmptyDataset), "got %v", err)

	require.NoError(t, scaler.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})))
	_, err = scaler.Transform(mat.NewDense(1, 3, []float64{1, 2, 3}))
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr), "got %v", err)
}

func TestStandardScalerString(t *testing.T) {
	scaler := NewStandardScalerDefault()
	assert.Equal(t, "StandardScaler(with_mean=true, with_std=true)", scaler.String())
	require.NoError(t, scaler.Fit(mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})))
	assert.Equal(t, "StandardScaler(with_mean=true, with_std=true, n_features=3)", scaler.String())
	assert.Equal(t, map[string]interface{}{"with_mean": true, "with_std": true}, scaler.GetParams())
}

func TestStandardScalerLogsOperations(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)
	log.SetLogger(logger)
	defer log.SetLogger(nil)

	scaler := NewStandardScalerDefault()
	_, err := scaler.FitTransform(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	require.NoError(t, err)

	assert.True(t, logger.ContainsField(log.OperationKey, log.OperationFit))
	assert.True(t, logger.ContainsField(log.OperationKey, log.OperationTransform))
	assert.True(t, logger.ContainsField(log.FeaturesKey, 2.0))
}
