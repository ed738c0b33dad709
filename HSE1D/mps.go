package HSE1D

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"

	"github.com/k1151msarandega/Quantum-Algorithm-as-a-PDE-Solver-for-Computational-Fluid-Dynamics-CFD/utils"
)

// Relative singular-value cutoff. Values this far below the leading singular
// value carry no usable fidelity at float64 precision.
const svCutoff = 1e-14

// Core is one site tensor of a tensor train, with axes (left bond, physical,
// right bond) in row-major order. The physical dimension is always 2: the
// train factorizes a length-2^n state over n binary sites.
type Core struct {
	Data        []complex128
	Left, Right int
}

func (c Core) at(l, p, r int) complex128 {
	return c.Data[(l*2+p)*c.Right+r]
}

// TensorTrain is the bounded-bond factorization of one spinor component. It
// owns its core tensors and re-expands exactly to the dense state it encodes
// (up to the truncation reported at construction).
type TensorTrain struct {
	Cores []Core
	N     int
}

// Compress factorizes a length-2^n dense state into a tensor train with
// bond dimension at most maxBond, via an SVD sweep across the site chain.
// The returned truncation error is the discarded singular mass √(Σσ²)
// relative to the state norm; it shrinks monotonically as maxBond grows and
// reaches zero when maxBond covers the full state rank.
func Compress(psi []complex128, maxBond int) (tt *TensorTrain, truncationError float64, err error) {
	n := len(psi)
	if !utils.IsPowerOfTwo(n) {
		return nil, 0, errors.Errorf("state length %d is not a power of two", n)
	}
	if maxBond < 1 {
		return nil, 0, errors.Errorf("bond dimension %d is not positive", maxBond)
	}
	var (
		sites = utils.Log2(n)
		norm  = utils.NewVector(n, psi).Norm()
	)
	tt = &TensorTrain{Cores: make([]Core, 0, sites), N: n}

	rem := make([]complex128, n)
	copy(rem, psi)
	left, rest := 1, n
	var discarded float64
	for site := 0; site < sites-1; site++ {
		rows, cols := left*2, rest/2
		u, s, v := utils.SVD(rem, rows, cols)

		rank := rows
		if cols < rank {
			rank = cols
		}
		if maxBond < rank {
			rank = maxBond
		}
		for rank > 1 && s[rank-1] <= svCutoff*s[0] {
			rank--
		}
		for i := rank; i < len(s); i++ {
			discarded += s[i] * s[i]
		}

		core := Core{Data: make([]complex128, rows*rank), Left: left, Right: rank}
		for i := 0; i < rows; i++ {
			for j := 0; j < rank; j++ {
				core.Data[i*rank+j] = u[i*cols+j]
			}
		}
		tt.Cores = append(tt.Cores, core)

		// rem ← diag(s)·Vᴴ restricted to the kept rank.
		rem = make([]complex128, rank*cols)
		for i := 0; i < rank; i++ {
			si := complex(s[i], 0)
			for j := 0; j < cols; j++ {
				rem[i*cols+j] = si * cmplx.Conj(v[j*cols+i])
			}
		}
		left, rest = rank, cols
	}
	tt.Cores = append(tt.Cores, Core{Data: rem, Left: left, Right: 1})

	if norm > 0 {
		truncationError = math.Sqrt(discarded) / norm
	}
	return tt, truncationError, nil
}

// Expand contracts the train back to the dense state.
func (tt *TensorTrain) Expand() (psi []complex128) {
	var (
		first = tt.Cores[0]
		size  = 2
		right = first.Right
	)
	cur := make([]complex128, size*right)
	copy(cur, first.Data)
	for _, core := range tt.Cores[1:] {
		next := make([]complex128, size*2*core.Right)
		for a := 0; a < size; a++ {
			for b := 0; b < core.Left; b++ {
				cab := cur[a*right+b]
				if cab == 0 {
					continue
				}
				for p := 0; p < 2; p++ {
					row := (a*2 + p) * core.Right
					for j := 0; j < core.Right; j++ {
						next[row+j] += cab * core.at(b, p, j)
					}
				}
			}
		}
		cur = next
		size *= 2
		right = core.Right
	}
	return cur
}

// MaxRank is the largest bond dimension in the train.
func (tt *TensorTrain) MaxRank() (r int) {
	for _, c := range tt.Cores {
		if c.Right > r {
			r = c.Right
		}
	}
	return
}
