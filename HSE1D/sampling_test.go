package HSE1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleMeasurementsDelta(t *testing.T) {
	// All density on one grid point: every shot lands there.
	n := 16
	sp := testParams(n, 1)
	sp.InitialVelocity = make([]float64, n)
	cfg := testConfig(t, sp)

	w := NewWaveState(n, cfg.Dx)
	w.Plus.Set(5, 1)
	w.Minus.Set(5, 1)
	ms := SampleMeasurements(w, cfg, 1000, 4, 42)
	assert.Equal(t, 1000, ms.Shots)
	assert.Equal(t, 1000, ms.Counts[5])
	assert.InDelta(t, 5*cfg.Dx, ms.Mean, 1.e-12)
	assert.InDelta(t, 0, ms.Variance, 1.e-12)
}

func TestSampleMeasurementsUniform(t *testing.T) {
	n := 16
	sp := testParams(n, 1)
	sp.InitialVelocity = make([]float64, n)
	cfg := testConfig(t, sp)

	w := ToWave(cfg.InitialVelocity, cfg)
	shots := 20000
	ms := SampleMeasurements(w, cfg, shots, 3, 7)

	var total int
	for _, c := range ms.Counts {
		total += c
		// Uniform density: each point draws about shots/n hits.
		assert.InDelta(t, float64(shots)/float64(n), float64(c), 0.2*float64(shots)/float64(n))
	}
	assert.Equal(t, shots, total)
	// Mean near the domain midpoint.
	assert.InDelta(t, 0.5, ms.Mean, 0.05)
}

func TestSampleMeasurementsDeterministic(t *testing.T) {
	n := 16
	sp := testParams(n, 1)
	sp.InitialVelocity = riemannVelocity(n)
	cfg := testConfig(t, sp)

	w := ToWave(cfg.InitialVelocity, cfg)
	a := SampleMeasurements(w, cfg, 500, 4, 123)
	b := SampleMeasurements(w, cfg, 500, 4, 123)
	assert.Equal(t, a.Counts, b.Counts)
	assert.Equal(t, a.Mean, b.Mean)

	c := SampleMeasurements(w, cfg, 500, 4, 124)
	assert.NotEqual(t, a.Counts, c.Counts)
}
