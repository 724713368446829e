package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}

func TestStdDev(t *testing.T) {
	assert.Equal(t, 0.0, StdDev(nil))
	assert.InDelta(t, 1.0, StdDev([]float64{1, 2, 3}), 1e-9)
}

func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}
	assert.InDelta(t, 1.0, Correlation(x, y), 1e-9)

	down := []float64{10, 8, 6, 4, 2}
	assert.InDelta(t, -1.0, Correlation(x, down), 1e-9)

	// Mismatched or empty inputs degrade to zero
	assert.Equal(t, 0.0, Correlation(x, []float64{1, 2}))
	assert.Equal(t, 0.0, Correlation(nil, nil))
}

func TestCorrelationZeroVariance(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	flat := []float64{7, 7, 7, 7, 7}
	assert.True(t, math.IsNaN(Correlation(x, flat)))
}

func TestQuantile(t *testing.T) {
	data := []float64{5, 1, 3, 2, 4}

	assert.Equal(t, 1.0, Quantile(0.2, data))
	assert.Equal(t, 4.0, Quantile(0.8, data))
	assert.Equal(t, 0.0, Quantile(0.5, nil))

	// Input must not be reordered
	assert.Equal(t, []float64{5, 1, 3, 2, 4}, data)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(1.5))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
}
