package utils

import (
	"math"
)

// WaveNumbers returns the angular wavenumbers for an n-point grid with
// spacing d, laid out in FFT order: [0, 1, ..., n/2-1, -n/2, ..., -1] scaled
// by 2π/(n·d).
func WaveNumbers(n int, d float64) (k []float64) {
	k = make([]float64, n)
	scale := 2.0 * math.Pi / (float64(n) * d)
	for i := 0; i < n; i++ {
		var freq float64
		if i < (n+1)/2 {
			freq = float64(i)
		} else {
			freq = float64(i - n)
		}
		k[i] = freq * scale
	}
	return
}

// UnwrapPhase removes 2π branch-cut jumps from a sequence of principal-value
// phases, walking left to right from the first grid point.
func UnwrapPhase(phase []float64) (out []float64) {
	out = make([]float64, len(phase))
	if len(phase) == 0 {
		return
	}
	out[0] = phase[0]
	var offset float64
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		if d > math.Pi {
			offset -= 2 * math.Pi
		} else if d < -math.Pi {
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return
}

// Gradient computes df/dx with second-order central differences in the
// interior and one-sided differences at the ends.
func Gradient(f []float64, dx float64) (df []float64) {
	n := len(f)
	df = make([]float64, n)
	if n < 2 {
		return
	}
	df[0] = (f[1] - f[0]) / dx
	df[n-1] = (f[n-1] - f[n-2]) / dx
	for i := 1; i < n-1; i++ {
		df[i] = (f[i+1] - f[i-1]) / (2 * dx)
	}
	return
}

// SecondDiff computes d²f/dx² with the standard three-point stencil. The end
// values copy their interior neighbors, which keeps the operator bounded for
// non-periodic data.
func SecondDiff(f []float64, dx float64) (d2f []float64) {
	n := len(f)
	d2f = make([]float64, n)
	if n < 3 {
		return
	}
	rDx2 := 1.0 / (dx * dx)
	for i := 1; i < n-1; i++ {
		d2f[i] = (f[i+1] - 2*f[i] + f[i-1]) * rDx2
	}
	d2f[0] = d2f[1]
	d2f[n-1] = d2f[n-2]
	return
}

// CumTrapz is the cumulative trapezoidal integral of f with spacing dx,
// fixed to zero at the first grid point.
func CumTrapz(f []float64, dx float64) (F []float64) {
	F = make([]float64, len(f))
	for i := 1; i < len(f); i++ {
		F[i] = F[i-1] + 0.5*(f[i-1]+f[i])*dx
	}
	return
}

// IsFiniteSlice reports whether every entry is a finite number.
func IsFiniteSlice(f []float64) bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// IsPowerOfTwo reports whether n is 2^k for some k ≥ 1.
func IsPowerOfTwo(n int) bool {
	return n >= 2 && n&(n-1) == 0
}

// Log2 returns k such that n = 2^k. Panics if n is not a power of two.
func Log2(n int) (k int) {
	if !IsPowerOfTwo(n) {
		panic("not a power of two")
	}
	for n > 1 {
		n >>= 1
		k++
	}
	return
}
