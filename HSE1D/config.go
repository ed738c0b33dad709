package HSE1D

import (
	"fmt"
	"math"

	"github.com/k1151msarandega/Quantum-Algorithm-as-a-PDE-Solver-for-Computational-Fluid-Dynamics-CFD/InputParameters"
	"github.com/k1151msarandega/Quantum-Algorithm-as-a-PDE-Solver-for-Computational-Fluid-Dynamics-CFD/utils"
)

// Default tolerances applied when the input file leaves them unset.
const (
	DefaultDensityFloor    = 1.e-10
	DefaultMassDriftLimit  = 1.e-3
	DefaultTruncationLimit = 1.e-2
	DefaultDensityEnvelope = 0.9
)

// Configuration is the immutable parameter bundle handed to every component.
// Build it through NewConfiguration, which validates the grid and the
// stability bound; the solver never mutates it.
type Configuration struct {
	N               int     // grid points, power of two
	L               float64 // domain length, grid spans [0, L] inclusive
	Dx, Dt          float64
	Viscosity       float64
	StepCount       int
	Hbar, Mass      float64
	Coupling        float64
	MaxBond         int // 0 selects the dense representation
	DensityFloor    float64
	MassDriftLimit  float64
	TruncationLimit float64
	// DensityEnvelopeLimit is the pointwise relative deviation of the
	// combined branch density from its uniform background beyond which the
	// projector reports a constraint violation.
	DensityEnvelopeLimit float64
	StrictFidelity       bool
	InitialVelocity      []float64
}

func NewConfiguration(sp *InputParameters.SimulationParameters) (*Configuration, error) {
	if !utils.IsPowerOfTwo(sp.GridPoints) {
		return nil, &ConfigurationError{"GridPoints",
			fmt.Sprintf("%d is not a power of two", sp.GridPoints)}
	}
	if sp.DomainLength <= 0 {
		return nil, &ConfigurationError{"DomainLength", "must be positive"}
	}
	if sp.Dt <= 0 {
		return nil, &ConfigurationError{"Dt", "must be positive"}
	}
	if sp.Viscosity < 0 {
		return nil, &ConfigurationError{"Viscosity", "must be non-negative"}
	}
	if sp.StepCount <= 0 {
		return nil, &ConfigurationError{"StepCount", "must be positive"}
	}
	if sp.Hbar <= 0 {
		return nil, &ConfigurationError{"Hbar", "must be positive"}
	}
	if sp.Mass <= 0 {
		return nil, &ConfigurationError{"Mass", "must be positive"}
	}
	if len(sp.InitialVelocity) != sp.GridPoints {
		return nil, &ConfigurationError{"InitialVelocity",
			fmt.Sprintf("length %d does not match grid point count %d",
				len(sp.InitialVelocity), sp.GridPoints)}
	}
	if sp.MaxBondDimension < 0 {
		return nil, &ConfigurationError{"MaxBondDimension", "must be non-negative"}
	}

	dx := sp.Dx()
	var uMax float64
	for _, u := range sp.InitialVelocity {
		if math.Abs(u) > uMax {
			uMax = math.Abs(u)
		}
	}
	// CFL-like stability bound: the time step must resolve both the fastest
	// characteristic and the viscous diffusion scale.
	if uMax > 0 && sp.Dt > dx/uMax {
		return nil, &ConfigurationError{"Dt",
			fmt.Sprintf("%.4e violates the advective bound dx/max|u0| = %.4e", sp.Dt, dx/uMax)}
	}
	if sp.Viscosity > 0 && sp.Dt > dx*dx/(2*sp.Viscosity) {
		return nil, &ConfigurationError{"Dt",
			fmt.Sprintf("%.4e violates the viscous bound dx²/(2ν) = %.4e",
				sp.Dt, dx*dx/(2*sp.Viscosity))}
	}

	cfg := &Configuration{
		N:                    sp.GridPoints,
		L:                    sp.DomainLength,
		Dx:                   dx,
		Dt:                   sp.Dt,
		Viscosity:            sp.Viscosity,
		StepCount:            sp.StepCount,
		Hbar:                 sp.Hbar,
		Mass:                 sp.Mass,
		Coupling:             sp.Coupling,
		MaxBond:              sp.MaxBondDimension,
		DensityFloor:         sp.DensityFloor,
		MassDriftLimit:       sp.MassDriftLimit,
		TruncationLimit:      sp.TruncationLimit,
		DensityEnvelopeLimit: sp.DensityEnvelopeLimit,
		StrictFidelity:       sp.StrictFidelity,
		InitialVelocity:      append([]float64(nil), sp.InitialVelocity...),
	}
	if cfg.DensityFloor <= 0 {
		cfg.DensityFloor = DefaultDensityFloor
	}
	if cfg.MassDriftLimit <= 0 {
		cfg.MassDriftLimit = DefaultMassDriftLimit
	}
	if cfg.TruncationLimit <= 0 {
		cfg.TruncationLimit = DefaultTruncationLimit
	}
	if cfg.DensityEnvelopeLimit <= 0 {
		cfg.DensityEnvelopeLimit = DefaultDensityEnvelope
	}
	return cfg, nil
}
