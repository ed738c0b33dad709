package HSE1D

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/k1151msarandega/Quantum-Algorithm-as-a-PDE-Solver-for-Computational-Fluid-Dynamics-CFD/InputParameters"
)

func testParams(n, steps int) *InputParameters.SimulationParameters {
	return &InputParameters.SimulationParameters{
		Title:           "test",
		GridPoints:      n,
		DomainLength:    1,
		Dt:              0.01,
		Viscosity:       0.1,
		StepCount:       steps,
		Hbar:            0.1,
		Mass:            1,
		Coupling:        1,
		InitialVelocity: make([]float64, n),
	}
}

func testConfig(t *testing.T, sp *InputParameters.SimulationParameters) *Configuration {
	cfg, err := NewConfiguration(sp)
	assert.NoError(t, err)
	return cfg
}

// riemannVelocity is the step profile u = 1 for x <= L/2 on the unit domain,
// u = 0 beyond.
func riemannVelocity(n int) (u []float64) {
	u = make([]float64, n)
	dx := 1.0 / float64(n-1)
	for i := 0; i < n; i++ {
		if float64(i)*dx <= 0.5 {
			u[i] = 1
		}
	}
	return
}
