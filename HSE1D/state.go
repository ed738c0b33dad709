package HSE1D

import (
	"github.com/k1151msarandega/Quantum-Algorithm-as-a-PDE-Solver-for-Computational-Fluid-Dynamics-CFD/utils"
)

// WaveState is the two-component spinor wavefunction on the grid. Plus holds
// the forward characteristic branch, Minus its conjugate (opposite-sign)
// branch. The phases encode only the zero-mean part of the velocity field;
// MeanVelocity carries the mean as an explicit offset, which keeps the
// wavefunction free of net phase winding across the periodic wrap of the
// spectral grid. Exactly one WaveState is owned by the driver during a run.
type WaveState struct {
	Plus, Minus  utils.Vector
	Dx           float64
	MeanVelocity float64
}

func NewWaveState(n int, dx float64) *WaveState {
	return &WaveState{
		Plus:  utils.NewVector(n),
		Minus: utils.NewVector(n),
		Dx:    dx,
	}
}

func (w *WaveState) N() int { return w.Plus.Len() }

func (w *WaveState) Copy() *WaveState {
	return &WaveState{
		Plus:         w.Plus.Copy(),
		Minus:        w.Minus.Copy(),
		Dx:           w.Dx,
		MeanVelocity: w.MeanVelocity,
	}
}

// Mass is the total probability mass across both components, scaled by the
// spatial step.
func (w *WaveState) Mass() float64 {
	np, nm := w.Plus.Norm(), w.Minus.Norm()
	return (np*np + nm*nm) * w.Dx
}

func (w *WaveState) IsFinite() bool {
	return w.Plus.IsFinite() && w.Minus.IsFinite()
}

// Representation is the evolvable-state abstraction behind which the dense
// and tensor-train variants interchange. The propagation steps act on the
// dense working view returned by Wave; Sync folds the working view back into
// the underlying representation and reports the fidelity loss of doing so.
type Representation interface {
	Wave() *WaveState
	Sync() (truncationError float64, err error)
	Label() string
}

// DenseState evolves the wavefunction directly; Sync is exact.
type DenseState struct {
	w *WaveState
}

func NewDenseState(w *WaveState) *DenseState { return &DenseState{w: w} }

func (d *DenseState) Wave() *WaveState { return d.w }

func (d *DenseState) Sync() (float64, error) { return 0, nil }

func (d *DenseState) Label() string { return "dense" }

// CompressedState keeps the wavefunction as a pair of bounded-bond tensor
// trains, one per spinor component. Sync refactorizes the working view,
// accumulates the discarded singular mass, and re-expands so later steps see
// exactly what the compressed representation can carry.
type CompressedState struct {
	w           *WaveState
	maxBond     int
	Plus, Minus *TensorTrain
}

func NewCompressedState(w *WaveState, maxBond int) *CompressedState {
	return &CompressedState{w: w, maxBond: maxBond}
}

func (c *CompressedState) Wave() *WaveState { return c.w }

func (c *CompressedState) Sync() (truncationError float64, err error) {
	var ep, em float64
	if c.Plus, ep, err = syncComponent(c.w.Plus, c.maxBond); err != nil {
		return 0, err
	}
	if c.Minus, em, err = syncComponent(c.w.Minus, c.maxBond); err != nil {
		return 0, err
	}
	if ep > em {
		return ep, nil
	}
	return em, nil
}

// syncComponent refactorizes one component in place. Truncation rotates
// probability mass out of the kept subspace; the component norm is restored
// afterward and the loss reported as the truncation error, so downstream
// mass accounting sees an explicit diagnostic instead of a silent leak.
func syncComponent(comp utils.Vector, maxBond int) (tt *TensorTrain, truncErr float64, err error) {
	norm0 := comp.Norm()
	if tt, truncErr, err = Compress(comp.V, maxBond); err != nil {
		return nil, 0, err
	}
	copy(comp.V, tt.Expand())
	if norm1 := comp.Norm(); norm0 > 0 && norm1 > 0 {
		comp.Scale(complex(norm0/norm1, 0))
	}
	return tt, truncErr, nil
}

func (c *CompressedState) Label() string { return "tensor-train" }

// MaxRank is the largest bond dimension currently held by either train.
func (c *CompressedState) MaxRank() (r int) {
	if c.Plus != nil {
		r = c.Plus.MaxRank()
	}
	if c.Minus != nil && c.Minus.MaxRank() > r {
		r = c.Minus.MaxRank()
	}
	return
}
