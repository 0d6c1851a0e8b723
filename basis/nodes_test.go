package basis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJacobiGQ_WeightsAndSymmetry(t *testing.T) {
	const (
		N   = 5
		tol = 1e-12
	)
	X, W := JacobiGQ(0, 0, N)
	assert.Equal(t, N+1, X.Len())
	assert.Equal(t, N+1, W.Len())

	// Legendre weights integrate constants over [-1,1]
	var sum float64
	for _, w := range W.DataP {
		sum += w
	}
	assert.InDelta(t, 2., sum, tol)

	// Nodes are symmetric about the origin
	for i := 0; i <= N; i++ {
		assert.InDelta(t, -X.AtVec(N-i), X.AtVec(i), tol)
	}
}

func TestJacobiGQ_QuadratureExactness(t *testing.T) {
	const (
		N   = 4
		tol = 1e-12
	)
	X, W := JacobiGQ(0, 0, N)
	// Exact through degree 2N+1: check x^6 -> 2/7 at N = 4 (degree 6 <= 9)
	var sum float64
	for i, w := range W.DataP {
		sum += w * math.Pow(X.AtVec(i), 6)
	}
	assert.InDelta(t, 2./7., sum, tol)
}

func TestJacobiGL_Endpoints(t *testing.T) {
	const tol = 1e-12
	for _, N := range []int{1, 2, 5, 8} {
		X := JacobiGL(0, 0, N)
		assert.Equal(t, N+1, X.Len())
		assert.InDelta(t, -1., X.AtVec(0), tol)
		assert.InDelta(t, 1., X.AtVec(N), tol)
		for i := 0; i < N; i++ {
			assert.Less(t, X.AtVec(i), X.AtVec(i+1))
		}
	}
}
