package HSE1D

import "fmt"

// ConfigurationError reports an invalid parameter detected at construction
// time. It is never retried.
type ConfigurationError struct {
	Param string
	Msg   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error [%s]: %s", e.Param, e.Msg)
}

// NumericalInstabilityError reports a mid-run constraint violation or a
// non-finite field value. The run transitions to Failed; history up to the
// last valid step remains retrievable.
type NumericalInstabilityError struct {
	Step  int
	Drift float64
	Msg   string
}

func (e *NumericalInstabilityError) Error() string {
	return fmt.Sprintf("numerical instability at step %d (drift %.3e): %s", e.Step, e.Drift, e.Msg)
}

// CompressionFidelityError reports a per-step truncation error above the
// configured ceiling. Soft by default: the driver records it and continues
// unless strict fidelity is requested.
type CompressionFidelityError struct {
	Step            int
	TruncationError float64
	Ceiling         float64
}

func (e *CompressionFidelityError) Error() string {
	return fmt.Sprintf("truncation error %.3e exceeds ceiling %.3e at step %d",
		e.TruncationError, e.Ceiling, e.Step)
}

// PhaseUnwrapAmbiguity records an unwrapped phase gradient implying a
// velocity jump inconsistent with a steep-but-finite shock. Diagnostic only,
// never aborts the run.
type PhaseUnwrapAmbiguity struct {
	Index    int
	Velocity float64
}

func (a PhaseUnwrapAmbiguity) String() string {
	return fmt.Sprintf("phase unwrap ambiguity at grid point %d (implied velocity %.3e)", a.Index, a.Velocity)
}
