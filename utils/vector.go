package utils

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas/cblas128"
)

// Vector wraps a complex128 slice with chainable mutating operations.
// Methods that modify the vector return the receiver so operations compose.
type Vector struct {
	V []complex128
}

func NewVector(n int, dataO ...[]complex128) (v Vector) {
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			panic("mismatch in provided data size vs dimension")
		}
		v = Vector{dataO[0]}
		return
	}
	v = Vector{make([]complex128, n)}
	return
}

func (v Vector) Len() int { return len(v.V) }

func (v Vector) Copy() Vector {
	d := make([]complex128, len(v.V))
	copy(d, v.V)
	return Vector{d}
}

func (v Vector) At(i int) complex128 { return v.V[i] }

func (v Vector) Set(i int, val complex128) Vector {
	v.V[i] = val
	return v
}

func (v Vector) Scale(a complex128) Vector {
	for i := range v.V {
		v.V[i] *= a
	}
	return v
}

func (v Vector) Add(w Vector) Vector {
	for i := range v.V {
		v.V[i] += w.V[i]
	}
	return v
}

func (v Vector) Subtract(w Vector) Vector {
	for i := range v.V {
		v.V[i] -= w.V[i]
	}
	return v
}

func (v Vector) ElMul(w Vector) Vector {
	for i := range v.V {
		v.V[i] *= w.V[i]
	}
	return v
}

func (v Vector) Apply(f func(complex128) complex128) Vector {
	for i, val := range v.V {
		v.V[i] = f(val)
	}
	return v
}

// Norm is the Euclidean norm over the complex entries.
func (v Vector) Norm() float64 {
	return cblas128.Nrm2(cblas128.Vector{N: len(v.V), Data: v.V, Inc: 1})
}

// InnerProduct is the conjugated inner product <v, w>.
func (v Vector) InnerProduct(w Vector) complex128 {
	if len(v.V) != len(w.V) {
		panic("mismatch in vector dimensions")
	}
	return cblas128.Dotc(
		cblas128.Vector{N: len(v.V), Data: v.V, Inc: 1},
		cblas128.Vector{N: len(w.V), Data: w.V, Inc: 1},
	)
}

// AbsSq returns |v[i]|² per element as a real slice.
func (v Vector) AbsSq() (d []float64) {
	d = make([]float64, len(v.V))
	for i, val := range v.V {
		re, im := real(val), imag(val)
		d[i] = re*re + im*im
	}
	return
}

// Phase returns the principal argument per element, in (-π, π].
func (v Vector) Phase() (d []float64) {
	d = make([]float64, len(v.V))
	for i, val := range v.V {
		d[i] = cmplx.Phase(val)
	}
	return
}

func (v Vector) IsFinite() bool {
	for _, val := range v.V {
		if math.IsNaN(real(val)) || math.IsInf(real(val), 0) ||
			math.IsNaN(imag(val)) || math.IsInf(imag(val), 0) {
			return false
		}
	}
	return true
}
