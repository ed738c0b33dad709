package utils

import (
	"math"
	"math/cmplx"
	"sort"
)

const (
	svdMaxSweeps = 60
	svdTol       = 1e-14
)

// SVD computes the decomposition A = U·diag(S)·Vᴴ of an m×n complex matrix
// given in row-major order, using one-sided Jacobi rotations on the columns.
// U is m×n, S holds n singular values in descending order, V is n×n.
// Columns of U beyond rank(A) are zero and carry zero singular values.
//
// gonum's SVD is real-valued only, so this carries the complex case for the
// tensor-train factorization.
func SVD(a []complex128, m, n int) (u []complex128, s []float64, v []complex128) {
	if len(a) != m*n {
		panic("matrix data length does not match dimensions")
	}
	w := make([]complex128, m*n)
	copy(w, a)

	// V accumulates the column rotations, starting from the identity.
	v = make([]complex128, n*n)
	for j := 0; j < n; j++ {
		v[j*n+j] = 1
	}

	for sweep := 0; sweep < svdMaxSweeps; sweep++ {
		rotated := false
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				var app, aqq float64
				var apq complex128
				for i := 0; i < m; i++ {
					wp, wq := w[i*n+p], w[i*n+q]
					app += real(wp)*real(wp) + imag(wp)*imag(wp)
					aqq += real(wq)*real(wq) + imag(wq)*imag(wq)
					apq += cmplx.Conj(wp) * wq
				}
				r := cmplx.Abs(apq)
				if r <= svdTol*math.Sqrt(app*aqq) || r == 0 {
					continue
				}
				rotated = true
				// Unitary 2x2 rotation diagonalizing the column Gram block
				// [[app, apq], [conj(apq), aqq]].
				e := apq / complex(r, 0)
				tau := (aqq - app) / (2 * r)
				var t float64
				if tau >= 0 {
					t = 1 / (tau + math.Sqrt(1+tau*tau))
				} else {
					t = -1 / (-tau + math.Sqrt(1+tau*tau))
				}
				c := 1 / math.Sqrt(1+t*t)
				sn := complex(c*t, 0)
				cc := complex(c, 0)
				for i := 0; i < m; i++ {
					wp, wq := w[i*n+p], w[i*n+q]
					w[i*n+p] = cc*wp - sn*cmplx.Conj(e)*wq
					w[i*n+q] = sn*e*wp + cc*wq
				}
				for i := 0; i < n; i++ {
					vp, vq := v[i*n+p], v[i*n+q]
					v[i*n+p] = cc*vp - sn*cmplx.Conj(e)*vq
					v[i*n+q] = sn*e*vp + cc*vq
				}
			}
		}
		if !rotated {
			break
		}
	}

	// Column norms are the singular values; normalized columns form U.
	s = make([]float64, n)
	u = make([]complex128, m*n)
	for j := 0; j < n; j++ {
		var nrm float64
		for i := 0; i < m; i++ {
			wj := w[i*n+j]
			nrm += real(wj)*real(wj) + imag(wj)*imag(wj)
		}
		s[j] = math.Sqrt(nrm)
		if s[j] > 0 {
			rs := complex(1/s[j], 0)
			for i := 0; i < m; i++ {
				u[i*n+j] = w[i*n+j] * rs
			}
		}
	}

	// Sort descending and permute the columns of U and V to match.
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool { return s[perm[a]] > s[perm[b]] })
	sSorted := make([]float64, n)
	uSorted := make([]complex128, m*n)
	vSorted := make([]complex128, n*n)
	for jNew, jOld := range perm {
		sSorted[jNew] = s[jOld]
		for i := 0; i < m; i++ {
			uSorted[i*n+jNew] = u[i*n+jOld]
		}
		for i := 0; i < n; i++ {
			vSorted[i*n+jNew] = v[i*n+jOld]
		}
	}
	return uSorted, sSorted, vSorted
}
