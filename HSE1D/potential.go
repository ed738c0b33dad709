package HSE1D

import (
	"math"

	"github.com/k1151msarandega/Quantum-Algorithm-as-a-PDE-Solver-for-Computational-Fluid-Dynamics-CFD/utils"
)

// PotentialBuilder assembles the effective Hamiltonian potential from the
// current state. Three additive terms, computed fresh every call:
//
//  1. the Bohm quantum potential -ħ²/(2m)·(∂²√ρ)/√ρ, the dispersive
//     regularization of sharp density gradients, near zero whenever the
//     projection has just restored the uniform-density envelope;
//  2. the viscous term -m·ν·∫∂²u dx, evaluated as -m·ν·(∂²Θ - ∂²Θ|₀) on
//     the velocity potential Θ so the anti-derivative is exact. Its spatial
//     gradient re-enters the unitary picture as the physical diffusion
//     ν·∂²u;
//  3. the inter-component coupling g·m·ū·(u-ū), advection of the encoded
//     deviation by the mean flow ū. The deviation's self-advection is
//     already carried by the kinetic step acting on the two conjugate
//     branch phases, so mean transport is the only advective piece the
//     potential must supply: together they give the semiclassical u·∂u,
//     and g = 0 gives exact free evolution.
type PotentialBuilder struct {
	cfg *Configuration
}

func NewPotentialBuilder(cfg *Configuration) *PotentialBuilder {
	return &PotentialBuilder{cfg: cfg}
}

func (pb *PotentialBuilder) Build(w *WaveState) (V []float64, ambiguities []PhaseUnwrapAmbiguity) {
	var (
		cfg    = pb.cfg
		n      = w.N()
		u, rho []float64
	)
	u, rho, ambiguities = ToVelocity(w, cfg)

	sqrtRho := make([]float64, n)
	for i := range rho {
		sqrtRho[i] = math.Max(math.Sqrt(rho[i]), cfg.DensityFloor)
	}
	d2SqrtRho := utils.SecondDiff(sqrtRho, cfg.Dx)
	shear := utils.SecondDiff(velocityPotential(w, cfg), cfg.Dx)

	V = make([]float64, n)
	qFactor := -cfg.Hbar * cfg.Hbar / (2 * cfg.Mass)
	uBar := w.MeanVelocity
	for i := 0; i < n; i++ {
		quantum := qFactor * d2SqrtRho[i] / sqrtRho[i]
		viscous := -cfg.Mass * cfg.Viscosity * (shear[i] - shear[0])
		coupling := cfg.Coupling * cfg.Mass * uBar * (u[i] - uBar)
		V[i] = quantum + viscous + coupling
	}
	return
}
