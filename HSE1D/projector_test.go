package HSE1D

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectorRenormalizesMass(t *testing.T) {
	n := 16
	sp := testParams(n, 1)
	sp.InitialVelocity = riemannVelocity(n)
	cfg := testConfig(t, sp)

	w := ToWave(cfg.InitialVelocity, cfg)
	p := NewConstraintProjector(cfg, w)
	mass0 := p.InitialMass()
	assert.InDelta(t, 2*float64(n)*cfg.Dx, mass0, 1.e-12)

	// Drift below the limit is corrected exactly.
	w.Plus.Scale(1.0002)
	w.Minus.Scale(1.0002)
	drift, err := p.Project(w)
	assert.NoError(t, err)
	assert.InDelta(t, 4.e-4, drift, 1.e-5)
	assert.InDelta(t, mass0, w.Mass(), 1.e-12)

	// Drift beyond the limit is a reported violation.
	w.Plus.Scale(2)
	w.Minus.Scale(2)
	_, err = p.Project(w)
	assert.Error(t, err)
	var nie *NumericalInstabilityError
	assert.ErrorAs(t, err, &nie)
	assert.Greater(t, nie.Drift, cfg.MassDriftLimit)
}

func TestProjectorRestoresUniformDensity(t *testing.T) {
	n := 16
	sp := testParams(n, 1)
	sp.InitialVelocity = make([]float64, n)
	cfg := testConfig(t, sp)

	// Combined density varies by ~20% around its mean, well inside the
	// envelope. The projection must flatten it and leave phases alone.
	w := NewWaveState(n, cfg.Dx)
	for i := 0; i < n; i++ {
		amp := 1 + 0.1*math.Cos(2*math.Pi*float64(i)/float64(n))
		w.Plus.Set(i, cmplx.Rect(amp, 0.3))
		w.Minus.Set(i, cmplx.Rect(amp, -0.3))
	}
	p := NewConstraintProjector(cfg, w)
	mass0 := p.InitialMass()
	drift, err := p.Project(w)
	assert.NoError(t, err)
	assert.InDelta(t, 0, drift, 1.e-12)

	target := math.Sqrt(0.5 * mass0 / (float64(n) * cfg.Dx))
	for i := 0; i < n; i++ {
		assert.InDelta(t, target, cmplx.Abs(w.Plus.At(i)), 1.e-12)
		assert.InDelta(t, target, cmplx.Abs(w.Minus.At(i)), 1.e-12)
		// The projection touches magnitudes only.
		assert.InDelta(t, 0.3, cmplx.Phase(w.Plus.At(i)), 1.e-12)
		assert.InDelta(t, -0.3, cmplx.Phase(w.Minus.At(i)), 1.e-12)
	}
	assert.InDelta(t, mass0, w.Mass(), 1.e-12)
}

func TestProjectorRejectsEnvelopeBreach(t *testing.T) {
	n := 16
	sp := testParams(n, 1)
	sp.InitialVelocity = make([]float64, n)
	cfg := testConfig(t, sp)

	// One grid point carries nine times the background density: far outside
	// the envelope, so the projection must refuse rather than flatten.
	w := NewWaveState(n, cfg.Dx)
	for i := 0; i < n; i++ {
		w.Plus.Set(i, 1)
		w.Minus.Set(i, 1)
	}
	w.Plus.Set(0, 3)
	w.Minus.Set(0, 3)
	p := NewConstraintProjector(cfg, w)
	_, err := p.Project(w)
	assert.Error(t, err)
	var nie *NumericalInstabilityError
	assert.ErrorAs(t, err, &nie)
	assert.Greater(t, nie.Drift, cfg.DensityEnvelopeLimit)
}

func TestProjectorRejectsNonFiniteMass(t *testing.T) {
	n := 16
	sp := testParams(n, 1)
	sp.InitialVelocity = make([]float64, n)
	cfg := testConfig(t, sp)

	w := ToWave(cfg.InitialVelocity, cfg)
	p := NewConstraintProjector(cfg, w)
	w.Plus.Set(0, complex(math.NaN(), 0))
	_, err := p.Project(w)
	assert.Error(t, err)
}
