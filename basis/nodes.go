package basis

import (
	"math"

	"github.com/notargets/gosem/utils"

	"gonum.org/v1/gonum/mat"
)

// JacobiGQ computes the N+1 point Gauss quadrature nodes and weights for the
// Jacobi polynomial of type (alpha,beta), via the Golub-Welsch eigenvalue
// problem on the symmetric tridiagonal recurrence matrix.
func JacobiGQ(alpha, beta float64, N int) (X, W utils.Vector) {
	if N == 0 {
		x := []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w := []float64{2.}
		return utils.NewVector(1, x), utils.NewVector(1, w)
	}

	h1 := make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// Main diagonal
	d0 := make([]float64, N+1)
	fac := -.5 * (alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	// Handle division by zero
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	// First super diagonal
	d1 := make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	JJ := utils.NewSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	x := eig.Values(nil)
	X = utils.NewVector(N+1, x)

	VVr := mat.NewDense(len(x), len(x), nil)
	eig.VectorsTo(VVr)
	W = utils.NewVector(N+1, VVr.RawRowView(0)).POW(2).Scale(gamma0(alpha, beta))
	return X, W
}

// JacobiGL computes the N+1 point Gauss-Lobatto nodes, including the interval
// endpoints -1 and 1.
func JacobiGL(alpha, beta float64, N int) (X utils.Vector) {
	var (
		x = make([]float64, N+1)
	)
	if N == 0 {
		panic("Gauss-Lobatto nodes require N >= 1")
	}
	x[0], x[N] = -1, 1
	if N > 1 {
		xint, _ := JacobiGQ(alpha+1, beta+1, N-2)
		copy(x[1:N], xint.DataP)
	}
	X = utils.NewVector(N+1, x)
	return
}
