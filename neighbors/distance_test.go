package neighbors

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/nearest/pkg/errors"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Pythagorean", []float64{0, 0}, []float64{3, 4}, 5},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Empty", []float64{}, []float64{}, 0},
		{"Single", []float64{-2}, []float64{3}, 5},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, math.Sqrt(8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Distance(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestDistanceMismatch(t *testing.T) {
	_, err := Distance([]float64{1, 2, 3}, []float64{1, 2})

	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr), "got %v", err)
	assert.Equal(t, 3, dimErr.Expected)
	assert.Equal(t, 2, dimErr.Got)
}

func TestDistanceProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 0; n < 50; n++ {
		dim := rng.Intn(8) + 1
		a := make([]float64, dim)
		b := make([]float64, dim)
		for i := range a {
			a[i] = rng.NormFloat64() * 100
			b[i] = rng.NormFloat64() * 100
		}

		ab, err := Distance(a, b)
		require.NoError(t, err)
		ba, err := Distance(b, a)
		require.NoError(t, err)
		assert.Equal(t, ab, ba, "symmetry")

		aa, err := Distance(a, a)
		require.NoError(t, err)
		assert.Equal(t, 0.0, aa, "identity")
	}
}

func TestDistanceDoesNotOverflowEarly(t *testing.T) {
	// the naive sum of squares would overflow to +Inf
	got, err := Distance([]float64{0, 0}, []float64{3e200, 4e200})
	require.NoError(t, err)
	assert.InEpsilon(t, 5e200, got, 1e-12)
}
