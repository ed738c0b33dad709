package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/k1151msarandega/Quantum-Algorithm-as-a-PDE-Solver-for-Computational-Fluid-Dynamics-CFD/InputParameters"
)

func TestRunSolveInput(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
GridPoints: 16
DomainLength: 1.
Dt: 0.01
Viscosity: 0.1
StepCount: 60
Hbar: 1.
Mass: 1.
Coupling: 1.
MaxBondDimension: 4
InitialVelocity: [1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0]
`)
	var input InputParameters.SimulationParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.GridPoints, 16)
	assert.Equal(t, input.MaxBondDimension, 4)
	input.Print()
	assert.Equal(t, input.Viscosity, 0.1)
}

func TestRiemannStep(t *testing.T) {
	u := RiemannStep(16, 1.)
	assert.Equal(t, len(u), 16)
	// Velocity 1 up to and including the midpoint, 0 beyond.
	assert.Equal(t, u[0], 1.)
	assert.Equal(t, u[7], 1.)
	assert.Equal(t, u[8], 0.)
	assert.Equal(t, u[15], 0.)
}
