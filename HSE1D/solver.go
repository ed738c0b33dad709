package HSE1D

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/k1151msarandega/Quantum-Algorithm-as-a-PDE-Solver-for-Computational-Fluid-Dynamics-CFD/utils"
)

type SolverState uint8

const (
	Uninitialized SolverState = iota
	Initialized
	Stepping
	Completed
	Failed
)

var solverStateNames = []string{"Uninitialized", "Initialized", "Stepping", "Completed", "Failed"}

func (s SolverState) String() string { return solverStateNames[s] }

// SimulationHistory is the per-run record: one velocity snapshot per recorded
// step (stepCount+1 including the initial field) and one diagnostic scalar
// per executed step: the truncation error on the compressed path, the
// corrected mass drift on the dense path. FlaggedSteps lists steps whose
// truncation error exceeded the configured ceiling in non-strict mode.
// Immutable once returned from Solve.
type SimulationHistory struct {
	Velocity     [][]float64
	Diagnostics  []float64
	FlaggedSteps []int
}

// UnitaryOp describes one diagonal propagator applied during a timestep, for
// collaborators that enumerate the applied operator sequence.
type UnitaryOp struct {
	Kind string // "kinetic" or "potential"
	Dt   float64
}

// HSESolver drives the five-stage prediction-correction timestep over the
// configured step count. The wavefunction is exclusively owned by the solver
// for the duration of a run.
type HSESolver struct {
	cfg       *Configuration
	rep       Representation
	kinetic   *KineticPropagator
	projector *ConstraintProjector
	potential *PotentialBuilder
	evolver   *GaugeEvolver
	state     SolverState
	history   SimulationHistory
	tstep     int
}

func NewHSESolver(cfg *Configuration) (c *HSESolver) {
	c = &HSESolver{
		cfg:       cfg,
		kinetic:   NewKineticPropagator(cfg, 0.5*cfg.Dt),
		potential: NewPotentialBuilder(cfg),
		evolver:   NewGaugeEvolver(cfg),
		state:     Uninitialized,
	}
	w := ToWave(cfg.InitialVelocity, cfg)
	c.projector = NewConstraintProjector(cfg, w)
	if cfg.MaxBond > 0 {
		c.rep = NewCompressedState(w, cfg.MaxBond)
	} else {
		c.rep = NewDenseState(w)
	}
	fmt.Printf("Hydrodynamic Schrödinger Equation in 1 Dimension\nSolving viscous Burgers via Madelung transform\nRepresentation: %s\n", c.rep.Label())
	fmt.Printf("N = %d, dx = %8.5f, dt = %8.5f, nu = %8.5f, hbar = %8.5f, Nsteps = %d\n\n",
		cfg.N, cfg.Dx, cfg.Dt, cfg.Viscosity, cfg.Hbar, cfg.StepCount)
	c.state = Initialized
	return
}

func (c *HSESolver) State() SolverState { return c.state }

// FinalWave returns a copy of the wavefunction for post-run consumers such
// as measurement sampling. The working state itself is never aliased out.
func (c *HSESolver) FinalWave() *WaveState { return c.rep.Wave().Copy() }

// OperatorSequence enumerates the diagonal unitaries applied per timestep,
// in order. The sequence is identical for every step of a run.
func (c *HSESolver) OperatorSequence() []UnitaryOp {
	return []UnitaryOp{
		{Kind: "kinetic", Dt: 0.5 * c.cfg.Dt},
		{Kind: "potential", Dt: c.cfg.Dt},
		{Kind: "kinetic", Dt: 0.5 * c.cfg.Dt},
	}
}

// Solve runs the configured step count and returns the history, the wall
// clock seconds spent stepping, and the per-step diagnostics. On failure the
// history up to the last valid step is still returned alongside the error.
// A solver can run exactly once; terminal states do not transition back.
func (c *HSESolver) Solve() (history SimulationHistory, wallClockSeconds float64, diagnostics []float64, err error) {
	var (
		logFrequency = 50
		start        = time.Now()
	)
	if c.state != Initialized {
		return c.history, 0, c.history.Diagnostics,
			errors.Errorf("cannot solve from state %s", c.state)
	}
	if err = c.record(); err != nil {
		c.state = Failed
		return c.history, time.Since(start).Seconds(), c.history.Diagnostics, err
	}
	c.state = Stepping
	for c.tstep = 0; c.tstep < c.cfg.StepCount; c.tstep++ {
		if err = c.step(); err != nil {
			c.state = Failed
			return c.history, time.Since(start).Seconds(), c.history.Diagnostics,
				errors.Wrapf(err, "step %d", c.tstep)
		}
		if c.tstep%logFrequency == 0 {
			u := c.history.Velocity[len(c.history.Velocity)-1]
			umin, umax := u[0], u[0]
			for _, v := range u {
				if v < umin {
					umin = v
				}
				if v > umax {
					umax = v
				}
			}
			fmt.Printf("Time = %8.4f, step [%d], umin = %8.4f, umax = %8.4f\n",
				float64(c.tstep+1)*c.cfg.Dt, c.tstep, umin, umax)
		}
	}
	c.state = Completed
	return c.history, time.Since(start).Seconds(), c.history.Diagnostics, nil
}

// step executes one full Strang-split timestep:
// kinetic half → project → potential (gauge corrected, full dt) →
// kinetic half → project → representation sync → record.
func (c *HSESolver) step() error {
	w := c.rep.Wave()

	c.kinetic.Apply(w)
	drift1, err := c.projector.Project(w)
	if err != nil {
		return c.fill(err)
	}

	V, ambiguities := c.potential.Build(w)
	if !utils.IsFiniteSlice(V) {
		return c.fill(&NumericalInstabilityError{Step: c.tstep, Msg: "potential is not finite"})
	}
	for _, a := range ambiguities {
		fmt.Printf("warning: %s\n", a)
	}
	c.evolver.Apply(w, V, c.cfg.Dt)

	c.kinetic.Apply(w)
	drift2, err := c.projector.Project(w)
	if err != nil {
		return c.fill(err)
	}

	truncErr, err := c.rep.Sync()
	if err != nil {
		return c.fill(err)
	}
	if truncErr > c.cfg.TruncationLimit {
		fe := &CompressionFidelityError{Step: c.tstep, TruncationError: truncErr, Ceiling: c.cfg.TruncationLimit}
		if c.cfg.StrictFidelity {
			return c.fill(fe)
		}
		fmt.Printf("warning: %s\n", fe.Error())
		c.history.FlaggedSteps = append(c.history.FlaggedSteps, c.tstep)
	}

	diag := drift1
	if drift2 > diag {
		diag = drift2
	}
	if c.cfg.MaxBond > 0 {
		diag = truncErr
	}
	c.history.Diagnostics = append(c.history.Diagnostics, diag)
	return c.record()
}

// fill stamps the current step index into typed errors raised below the
// driver, which only know their local context.
func (c *HSESolver) fill(err error) error {
	if e, ok := err.(*NumericalInstabilityError); ok {
		e.Step = c.tstep
	}
	return err
}

func (c *HSESolver) record() error {
	u, _, _ := ToVelocity(c.rep.Wave(), c.cfg)
	if !utils.IsFiniteSlice(u) {
		return &NumericalInstabilityError{Step: c.tstep, Msg: "velocity field is not finite"}
	}
	c.history.Velocity = append(c.history.Velocity, u)
	return nil
}
