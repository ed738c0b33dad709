package HSE1D

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/k1151msarandega/Quantum-Algorithm-as-a-PDE-Solver-for-Computational-Fluid-Dynamics-CFD/utils"
)

// KineticPropagator applies the free-particle half-step in frequency space:
// each mode is rotated by exp(-i·ħ·k²·dtHalf/(2m)). Every multiplier has
// unit magnitude, so the step is unitary by construction.
type KineticPropagator struct {
	expK   []complex128
	dtHalf float64
}

func NewKineticPropagator(cfg *Configuration, dtHalf float64) (kp *KineticPropagator) {
	kp = &KineticPropagator{
		expK:   make([]complex128, cfg.N),
		dtHalf: dtHalf,
	}
	k := utils.WaveNumbers(cfg.N, cfg.Dx)
	factor := -0.5 * cfg.Hbar * dtHalf / cfg.Mass
	for i := range kp.expK {
		kp.expK[i] = cmplx.Exp(complex(0, factor*k[i]*k[i]))
	}
	return
}

// Apply propagates both spinor components in place.
func (kp *KineticPropagator) Apply(w *WaveState) {
	kp.applyComponent(w.Plus.V)
	kp.applyComponent(w.Minus.V)
}

func (kp *KineticPropagator) applyComponent(psi []complex128) {
	spec := fft.FFT(psi)
	for i := range spec {
		spec[i] *= kp.expK[i]
	}
	copy(psi, fft.IFFT(spec))
}
