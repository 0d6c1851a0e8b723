package basis

import (
	"testing"

	"github.com/notargets/gosem/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDmatrix1D_DifferentiatesPolynomials(t *testing.T) {
	const (
		N   = 4
		tol = 1e-10
	)
	R := JacobiGL(0, 0, N)
	D := Dmatrix1D(N, R)

	// d/dr (r^3 - 2r) = 3r^2 - 2, exactly representable at degree 4
	u := make([]float64, N+1)
	for i := range u {
		r := R.AtVec(i)
		u[i] = r*r*r - 2*r
	}
	U := utils.NewMatrix(N+1, 1, u)
	DU := D.Mul(U)
	for i := 0; i <= N; i++ {
		r := R.AtVec(i)
		assert.InDelta(t, 3*r*r-2, DU.At(i, 0), tol)
	}
}

func TestCutoffFilter_Identity(t *testing.T) {
	const tol = 1e-10
	for _, N := range []int{1, 3, 6} {
		R := JacobiGL(0, 0, N)
		F := CutoffFilter(R, N)
		for i := 0; i <= N; i++ {
			for j := 0; j <= N; j++ {
				want := 0.
				if i == j {
					want = 1.
				}
				assert.InDelta(t, want, F.At(i, j), tol)
			}
		}
	}
	// Degenerate N = 0 grid yields the 1x1 identity
	R0 := utils.NewVector(1, []float64{0})
	F0 := CutoffFilter(R0, 0)
	nr, nc := F0.Dims()
	require.Equal(t, 1, nr)
	require.Equal(t, 1, nc)
	assert.InDelta(t, 1., F0.At(0, 0), tol)
}

func TestCutoffFilter_Idempotent(t *testing.T) {
	const (
		N   = 6
		tol = 1e-9
	)
	R := JacobiGL(0, 0, N)
	for NMax := 0; NMax < N; NMax++ {
		F := CutoffFilter(R, NMax)
		FF := F.Mul(F)
		for i := range F.DataP {
			assert.InDelta(t, F.DataP[i], FF.DataP[i], tol)
		}
	}
}

func TestCutoffFilter_RemovesHighModes(t *testing.T) {
	const (
		N   = 5
		tol = 1e-9
	)
	R := JacobiGL(0, 0, N)
	F := CutoffFilter(R, N-1)

	// The top orthonormal mode is annihilated
	top := utils.NewMatrix(N+1, 1, JacobiP(R, 0, 0, N))
	filtered := F.Mul(top)
	for i := 0; i <= N; i++ {
		assert.InDelta(t, 0., filtered.At(i, 0), tol)
	}

	// Modes at or below the cutoff pass through unchanged
	low := utils.NewMatrix(N+1, 1, JacobiP(R, 0, 0, N-1))
	kept := F.Mul(low)
	for i := 0; i <= N; i++ {
		assert.InDelta(t, low.At(i, 0), kept.At(i, 0), tol)
	}
}
