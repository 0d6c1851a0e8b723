package basis

import (
	"fmt"

	"github.com/notargets/gosem/utils"
)

// Vandermonde1D builds the modal Vandermonde matrix V[i,j] = P_j(R[i]) using
// the orthonormalized Legendre basis.
func Vandermonde1D(N int, R utils.Vector) (V utils.Matrix) {
	V = utils.NewMatrix(R.Len(), N+1)
	for j := 0; j < N+1; j++ {
		V.SetCol(j, JacobiP(R, 0, 0, j))
	}
	return
}

// GradVandermonde1D builds the derivative Vandermonde matrix
// Vr[i,j] = P'_j(R[i]).
func GradVandermonde1D(R utils.Vector, N int) (Vr utils.Matrix) {
	Vr = utils.NewMatrix(R.Len(), N+1)
	for j := 0; j < N+1; j++ {
		Vr.SetCol(j, GradJacobiP(R, 0, 0, j))
	}
	return
}

// Dmatrix1D builds the nodal differentiation matrix D = Vr * Vinv for the
// collocation points R, exact for polynomials through degree N.
func Dmatrix1D(N int, R utils.Vector) (D utils.Matrix) {
	var (
		err error
		V   = Vandermonde1D(N, R)
	)
	Vinv, err := V.Inverse()
	if err != nil {
		panic(fmt.Errorf("unable to build differentiation matrix: %v", err))
	}
	Vr := GradVandermonde1D(R, N)
	D = Vr.Mul(Vinv)
	return
}

// CutoffFilter builds the nodal filter matrix F = V * diag(sigma) * Vinv that
// removes modal content above degree NMax from a nodal vector sampled at the
// points R. The filter is idempotent. When NMax is at or above the grid
// degree the identity is returned and no modal transform is performed.
func CutoffFilter(R utils.Vector, NMax int) (F utils.Matrix) {
	var (
		err error
		N   = R.Len() - 1
	)
	if NMax >= N || N == 0 {
		// Degenerate polynomial construction is avoided at N = 0, where the
		// Vandermonde matrix is the 1x1 identity
		F = utils.NewDiagMatrix(N+1, nil, 1.)
		return
	}
	V := Vandermonde1D(N, R)
	Vinv, err := V.Inverse()
	if err != nil {
		panic(fmt.Errorf("unable to build cutoff filter: %v", err))
	}
	sigma := make([]float64, N+1)
	for j := 0; j <= NMax; j++ {
		sigma[j] = 1.
	}
	F = V.Mul(utils.NewDiagMatrix(N+1, sigma)).Mul(Vinv)
	return
}
