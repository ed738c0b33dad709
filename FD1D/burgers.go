package FD1D

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/k1151msarandega/Quantum-Algorithm-as-a-PDE-Solver-for-Computational-Fluid-Dynamics-CFD/InputParameters"
)

// BurgersFD is the classical explicit finite-difference solver for the 1-D
// viscous Burgers' equation. It accepts the same parameter shape as the
// spectral engine and returns a structurally identical history, serving as
// the comparison oracle for field-by-field validation.
type BurgersFD struct {
	N         int
	Dx, Dt    float64
	Viscosity float64
	StepCount int
	D1, D2    *sparse.CSR
	U         *mat.VecDense
}

func NewBurgersFD(sp *InputParameters.SimulationParameters) (c *BurgersFD, err error) {
	if sp.GridPoints < 3 {
		return nil, fmt.Errorf("grid point count %d is too small", sp.GridPoints)
	}
	if len(sp.InitialVelocity) != sp.GridPoints {
		return nil, fmt.Errorf("initial velocity length %d does not match grid point count %d",
			len(sp.InitialVelocity), sp.GridPoints)
	}
	if sp.Dt <= 0 || sp.DomainLength <= 0 || sp.Viscosity < 0 {
		return nil, fmt.Errorf("non-positive dt or domain length, or negative viscosity")
	}
	c = &BurgersFD{
		N:         sp.GridPoints,
		Dx:        sp.Dx(),
		Dt:        sp.Dt,
		Viscosity: sp.Viscosity,
		StepCount: sp.StepCount,
		U:         mat.NewVecDense(sp.GridPoints, append([]float64(nil), sp.InitialVelocity...)),
	}
	c.assembleOperators()
	return c, nil
}

// assembleOperators builds the discrete gradient and Laplacian stencils once
// as sparse matrices: central differences in the interior, one-sided at the
// ends for the gradient, copied-neighbor rows for the Laplacian.
func (c *BurgersFD) assembleOperators() {
	var (
		n     = c.N
		rDx   = 1.0 / c.Dx
		rDx2  = rDx * rDx
		d1Dok = sparse.NewDOK(n, n)
		d2Dok = sparse.NewDOK(n, n)
	)
	d1Dok.Set(0, 0, -rDx)
	d1Dok.Set(0, 1, rDx)
	d1Dok.Set(n-1, n-2, -rDx)
	d1Dok.Set(n-1, n-1, rDx)
	for i := 1; i < n-1; i++ {
		d1Dok.Set(i, i-1, -0.5*rDx)
		d1Dok.Set(i, i+1, 0.5*rDx)
	}
	for _, i := range []int{0, n - 1} {
		j := 1
		if i == n-1 {
			j = n - 2
		}
		d2Dok.Set(i, j-1, rDx2)
		d2Dok.Set(i, j, -2*rDx2)
		d2Dok.Set(i, j+1, rDx2)
	}
	for i := 1; i < n-1; i++ {
		d2Dok.Set(i, i-1, rDx2)
		d2Dok.Set(i, i, -2*rDx2)
		d2Dok.Set(i, i+1, rDx2)
	}
	c.D1 = d1Dok.ToCSR()
	c.D2 = d2Dok.ToCSR()
}

// Run advances forward-Euler in time and records every field, including the
// initial one: du/dt = -u·D1u + ν·D2u.
func (c *BurgersFD) Run() (history [][]float64, err error) {
	var (
		du  = mat.NewVecDense(c.N, nil)
		d2u = mat.NewVecDense(c.N, nil)
	)
	history = make([][]float64, 0, c.StepCount+1)
	history = append(history, c.snapshot())
	for tstep := 0; tstep < c.StepCount; tstep++ {
		du.MulVec(c.D1, c.U)
		d2u.MulVec(c.D2, c.U)
		for i := 0; i < c.N; i++ {
			u := c.U.AtVec(i)
			c.U.SetVec(i, u+c.Dt*(-u*du.AtVec(i)+c.Viscosity*d2u.AtVec(i)))
		}
		for i := 0; i < c.N; i++ {
			if v := c.U.AtVec(i); math.IsNaN(v) || math.IsInf(v, 0) {
				return history, fmt.Errorf("non-finite velocity at step %d, grid point %d", tstep, i)
			}
		}
		history = append(history, c.snapshot())
	}
	return history, nil
}

func (c *BurgersFD) snapshot() []float64 {
	return append([]float64(nil), c.U.RawVector().Data...)
}
