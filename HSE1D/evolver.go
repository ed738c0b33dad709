package HSE1D

import (
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// GaugeEvolver applies the potential-driven phase rotation. The Plus branch
// is rotated by exp(-i·V·dt/ħ), the conjugate Minus branch by the conjugate
// rotation, so the branch phase difference carries the Bernoulli dynamics.
// The mean phase shift over the grid is removed from both rotations, which
// pins the global gauge and keeps later phase unwrapping away from
// unbounded winding. Each multiplier has unit magnitude, so the step is
// exactly unitary.
type GaugeEvolver struct {
	cfg *Configuration
}

func NewGaugeEvolver(cfg *Configuration) *GaugeEvolver {
	return &GaugeEvolver{cfg: cfg}
}

func (g *GaugeEvolver) Apply(w *WaveState, V []float64, dt float64) {
	var (
		n     = w.N()
		rHbar = dt / g.cfg.Hbar
		mean  = floats.Sum(V) / float64(n)
	)
	for i := 0; i < n; i++ {
		phase := -(V[i] - mean) * rHbar
		rot := cmplx.Rect(1, phase)
		w.Plus.Set(i, w.Plus.At(i)*rot)
		w.Minus.Set(i, w.Minus.At(i)*cmplx.Conj(rot))
	}
}
