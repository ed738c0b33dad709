package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	doc := []byte(`
Title: Riemann Step
GridPoints: 16
DomainLength: 1.0
Dt: 0.01
Viscosity: 0.1
StepCount: 60
Hbar: 1.0
Mass: 1.0
Coupling: 1.0
MaxBondDimension: 4
StrictFidelity: true
InitialVelocity: [1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0]
`)
	var sp SimulationParameters
	assert.NoError(t, sp.Parse(doc))
	assert.Equal(t, "Riemann Step", sp.Title)
	assert.Equal(t, 16, sp.GridPoints)
	assert.Equal(t, 1.0, sp.DomainLength)
	assert.Equal(t, 0.01, sp.Dt)
	assert.Equal(t, 0.1, sp.Viscosity)
	assert.Equal(t, 60, sp.StepCount)
	assert.Equal(t, 4, sp.MaxBondDimension)
	assert.True(t, sp.StrictFidelity)
	assert.Equal(t, 16, len(sp.InitialVelocity))
	assert.Equal(t, 1.0, sp.InitialVelocity[0])
	assert.Equal(t, 0.0, sp.InitialVelocity[15])
	assert.InDelta(t, 1.0/15.0, sp.Dx(), 1.e-14)

	assert.Error(t, sp.Parse([]byte("GridPoints: [not an int]")))
}
