package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaveNumbers(t *testing.T) {
	n := 8
	d := 0.25
	k := WaveNumbers(n, d)
	scale := 2 * math.Pi / (float64(n) * d)
	expected := []float64{0, 1, 2, 3, -4, -3, -2, -1}
	for i := range expected {
		assert.InDelta(t, expected[i]*scale, k[i], 1.e-14)
	}
}

func TestUnwrapPhase(t *testing.T) {
	// A linearly growing phase reduced to principal values must come back
	// linear after unwrapping.
	n := 32
	slope := 1.3
	wrapped := make([]float64, n)
	for i := 0; i < n; i++ {
		theta := slope * float64(i)
		wrapped[i] = math.Atan2(math.Sin(theta), math.Cos(theta))
	}
	out := UnwrapPhase(wrapped)
	for i := 1; i < n; i++ {
		assert.InDelta(t, slope, out[i]-out[i-1], 1.e-12)
	}
	assert.Empty(t, UnwrapPhase(nil))
}

func TestDifferenceOperators(t *testing.T) {
	n := 64
	dx := 1.0 / float64(n-1)
	f := make([]float64, n)
	for i := range f {
		x := float64(i) * dx
		f[i] = math.Sin(2 * math.Pi * x)
	}
	df := Gradient(f, dx)
	d2f := SecondDiff(f, dx)
	for i := 2; i < n-2; i++ {
		x := float64(i) * dx
		assert.InDelta(t, 2*math.Pi*math.Cos(2*math.Pi*x), df[i], 0.02)
		w := 2 * math.Pi
		assert.InDelta(t, -w*w*math.Sin(2*math.Pi*x), d2f[i], 0.2)
	}
	// Quadratics are differenced exactly away from the boundary treatment.
	for i := range f {
		x := float64(i) * dx
		f[i] = 3*x*x - x
	}
	df = Gradient(f, dx)
	d2f = SecondDiff(f, dx)
	for i := 1; i < n-1; i++ {
		x := float64(i) * dx
		assert.InDelta(t, 6*x-1, df[i], 1.e-10)
		assert.InDelta(t, 6, d2f[i], 1.e-8)
	}
	assert.InDelta(t, 6, d2f[0], 1.e-8)
	assert.InDelta(t, 6, d2f[n-1], 1.e-8)
}

func TestCumTrapz(t *testing.T) {
	n := 101
	dx := 1.0 / float64(n-1)
	f := make([]float64, n)
	for i := range f {
		x := float64(i) * dx
		f[i] = 2 * x
	}
	F := CumTrapz(f, dx)
	assert.Equal(t, 0., F[0])
	for i := 0; i < n; i++ {
		x := float64(i) * dx
		// Trapezoidal rule is exact for linear integrands.
		assert.InDelta(t, x*x, F[i], 1.e-12)
	}
}

func TestFiniteAndPowers(t *testing.T) {
	assert.True(t, IsFiniteSlice([]float64{0, -1, 2.5}))
	assert.False(t, IsFiniteSlice([]float64{0, math.NaN()}))
	assert.False(t, IsFiniteSlice([]float64{math.Inf(1)}))

	assert.True(t, IsPowerOfTwo(2))
	assert.True(t, IsPowerOfTwo(64))
	assert.False(t, IsPowerOfTwo(1))
	assert.False(t, IsPowerOfTwo(12))
	assert.False(t, IsPowerOfTwo(0))

	assert.Equal(t, 4, Log2(16))
	assert.Equal(t, 1, Log2(2))
	assert.Panics(t, func() { Log2(6) })
}
