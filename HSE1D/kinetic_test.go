package HSE1D

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKineticPlaneWave(t *testing.T) {
	// An exact Fourier mode must pick up only the analytic dispersion phase
	// exp(-i·ħ·k²·dt/(2m)).
	n := 32
	sp := testParams(n, 1)
	sp.Viscosity = 0
	sp.InitialVelocity = make([]float64, n)
	cfg := testConfig(t, sp)

	var (
		mode   = 3
		dtHalf = 0.5 * cfg.Dt
		kp     = NewKineticPropagator(cfg, dtHalf)
		w      = NewWaveState(n, cfg.Dx)
	)
	for i := 0; i < n; i++ {
		ph := 2 * math.Pi * float64(mode) * float64(i) / float64(n)
		w.Plus.Set(i, cmplx.Rect(1, ph))
		w.Minus.Set(i, cmplx.Rect(1, -ph))
	}
	before := w.Copy()
	kp.Apply(w)

	k := 2 * math.Pi * float64(mode) / (float64(n) * cfg.Dx)
	rot := cmplx.Exp(complex(0, -0.5*cfg.Hbar*k*k*dtHalf/cfg.Mass))
	for i := 0; i < n; i++ {
		assert.InDelta(t, 0, cmplx.Abs(w.Plus.At(i)-before.Plus.At(i)*rot), 1.e-9)
		// The conjugate branch carries mode -k, whose dispersion phase is
		// identical since it only depends on k².
		assert.InDelta(t, 0, cmplx.Abs(w.Minus.At(i)-before.Minus.At(i)*rot), 1.e-9)
	}
}

func TestKineticUnitarity(t *testing.T) {
	n := 64
	sp := testParams(n, 1)
	sp.Viscosity = 0
	sp.InitialVelocity = make([]float64, n)
	cfg := testConfig(t, sp)

	rng := rand.New(rand.NewSource(7))
	w := NewWaveState(n, cfg.Dx)
	for i := 0; i < n; i++ {
		w.Plus.Set(i, complex(rng.NormFloat64(), rng.NormFloat64()))
		w.Minus.Set(i, complex(rng.NormFloat64(), rng.NormFloat64()))
	}
	mass0 := w.Mass()
	kp := NewKineticPropagator(cfg, 0.5*cfg.Dt)
	for s := 0; s < 20; s++ {
		kp.Apply(w)
	}
	assert.InDelta(t, mass0, w.Mass(), 1.e-10*mass0)
	assert.True(t, w.IsFinite())
}
