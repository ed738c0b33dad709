package HSE1D

import (
	"math"
	"math/cmplx"
)

// ConstraintProjector enforces the run invariants after each kinetic
// sub-step: total probability mass is renormalized to its initial value, and
// the combined branch density is projected back onto the uniform background
// required by the incompressible velocity encoding. Drift beyond the
// configured limits is a reported violation, not a silent clamp.
type ConstraintProjector struct {
	cfg   *Configuration
	mass0 float64
}

func NewConstraintProjector(cfg *Configuration, w *WaveState) *ConstraintProjector {
	return &ConstraintProjector{cfg: cfg, mass0: w.Mass()}
}

func (p *ConstraintProjector) InitialMass() float64 { return p.mass0 }

// Project renormalizes mass and restores the uniform density background in
// place, returning the relative mass drift it corrected. The kinetic sub-step
// transports density along the encoded characteristics; the deviation it
// accumulates between projections must stay inside the configured envelope,
// otherwise the half-step has strayed too far for the projection to be a
// small correction and the run fails with NumericalInstabilityError.
// Magnitudes are flattened, phases are kept.
func (p *ConstraintProjector) Project(w *WaveState) (drift float64, err error) {
	mass := w.Mass()
	if mass <= 0 || math.IsNaN(mass) || math.IsInf(mass, 0) {
		return 0, &NumericalInstabilityError{Drift: math.Inf(1), Msg: "total mass is not a positive finite number"}
	}
	drift = math.Abs(mass-p.mass0) / p.mass0
	if drift > p.cfg.MassDriftLimit {
		return drift, &NumericalInstabilityError{Drift: drift,
			Msg: "mass drift exceeds the configured limit"}
	}
	scale := complex(math.Sqrt(p.mass0/mass), 0)
	w.Plus.Scale(scale)
	w.Minus.Scale(scale)

	var (
		n         = w.N()
		rhoP      = w.Plus.AbsSq()
		rhoM      = w.Minus.AbsSq()
		rhoBar    = p.mass0 / (float64(n) * p.cfg.Dx)
		deviation float64
	)
	for i := 0; i < n; i++ {
		d := math.Abs(rhoP[i]+rhoM[i]-rhoBar) / rhoBar
		if d > deviation {
			deviation = d
		}
	}
	if deviation > p.cfg.DensityEnvelopeLimit {
		return drift, &NumericalInstabilityError{Drift: deviation,
			Msg: "density deviation exceeds the constraint envelope"}
	}
	target := math.Sqrt(0.5 * rhoBar)
	for i := 0; i < n; i++ {
		w.Plus.Set(i, cmplx.Rect(target, cmplx.Phase(w.Plus.At(i))))
		w.Minus.Set(i, cmplx.Rect(target, cmplx.Phase(w.Minus.At(i))))
	}
	return drift, nil
}
