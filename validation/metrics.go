// Package validation computes norm-based error metrics between solver
// histories, to compare the spectral engine against the finite-difference
// oracle or an analytical reference.
package validation

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// L2Error is the root-mean-square difference between two equal-length fields.
func L2Error(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("mismatched field lengths")
	}
	return floats.Distance(a, b, 2) / math.Sqrt(float64(len(a)))
}

// LinfError is the maximum absolute pointwise difference.
func LinfError(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("mismatched field lengths")
	}
	return floats.Distance(a, b, math.Inf(1))
}

// HistoryError computes the L2 error per snapshot over the overlapping
// prefix of two histories.
func HistoryError(h1, h2 [][]float64) (errs []float64) {
	n := len(h1)
	if len(h2) < n {
		n = len(h2)
	}
	errs = make([]float64, n)
	for i := 0; i < n; i++ {
		errs[i] = L2Error(h1[i], h2[i])
	}
	return
}

// Overshoot measures how far a field exceeds the envelope [lo, hi] in either
// direction. Zero means the field stays inside the envelope.
func Overshoot(u []float64, lo, hi float64) (o float64) {
	for _, v := range u {
		if v > hi && v-hi > o {
			o = v - hi
		}
		if v < lo && lo-v > o {
			o = lo - v
		}
	}
	return
}

// TotalVariation is the sum of absolute neighbor differences, a smoothness
// proxy for shock profiles.
func TotalVariation(u []float64) (tv float64) {
	for i := 1; i < len(u); i++ {
		tv += math.Abs(u[i] - u[i-1])
	}
	return
}
