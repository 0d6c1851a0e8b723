package metrics

import (
	"math"
	"testing"

	"github.com/notargets/gosem/basis"
	"github.com/notargets/gosem/geometry"
	"github.com/notargets/gosem/mesh"
	"github.com/notargets/gosem/utils"

	"github.com/stretchr/testify/assert"
)

func TestMetrics1D_Affine(t *testing.T) {
	const (
		Nq  = 5
		K   = 4
		tol = 1e-10
	)
	R := basis.JacobiGL(0, 0, Nq-1)
	D := basis.Dmatrix1D(Nq-1, R)
	b := mesh.NewBrick1D(0, 2, K)

	X := utils.NewMatrix(Nq, K)
	geometry.BlendGrid1D(b.VX, R, X)

	mt := NewMetrics1D(R, D, Nq-1, K, 2)
	mt.Compute(X)

	// Each element spans 0.5, so J is the half length 0.25 everywhere
	for i := range mt.J.DataP {
		assert.InDelta(t, 0.25, mt.J.DataP[i], tol)
		assert.InDelta(t, 4., mt.Rx.DataP[i], tol)
		assert.InDelta(t, 0.25, mt.JcV.DataP[i], tol)
	}
	for k := 0; k < K; k++ {
		assert.InDelta(t, -1., mt.Nx.At(0, k), tol)
		assert.InDelta(t, 1., mt.Nx.At(1, k), tol)
		assert.InDelta(t, 1., mt.SJ.At(0, k), tol)
		assert.InDelta(t, 1., mt.SJ.At(1, k), tol)
	}
}

func TestMetrics1D_ReversedElementFlipsNormals(t *testing.T) {
	const (
		Nq  = 4
		tol = 1e-10
	)
	R := basis.JacobiGL(0, 0, Nq-1)
	D := basis.Dmatrix1D(Nq-1, R)

	// One element with swapped endpoints: negative J
	VX := utils.NewMatrix(2, 1, []float64{1, 0})
	X := utils.NewMatrix(Nq, 1)
	geometry.BlendGrid1D(VX, R, X)

	mt := NewMetrics1D(R, D, Nq-1, 1, 1)
	mt.Compute(X)

	for i := range mt.J.DataP {
		assert.InDelta(t, -0.5, mt.J.DataP[i], tol)
		assert.InDelta(t, 0.5, mt.JcV.DataP[i], tol)
	}
	assert.InDelta(t, 1., mt.Nx.At(0, 0), tol)
	assert.InDelta(t, -1., mt.Nx.At(1, 0), tol)
}

func TestMetrics1D_DimensionMismatchPanics(t *testing.T) {
	R := basis.JacobiGL(0, 0, 3)
	D := basis.Dmatrix1D(3, R)
	mt := NewMetrics1D(R, D, 3, 2, 1)
	assert.Panics(t, func() { mt.Compute(utils.NewMatrix(5, 2)) })
	assert.Panics(t, func() { NewMetrics1D(R, utils.NewMatrix(3, 3), 3, 2, 1) })
}

func TestMetrics1D_FilteredGeometryKeepsAffineExact(t *testing.T) {
	const (
		Nq  = 6
		tol = 1e-9
	)
	R := basis.JacobiGL(0, 0, Nq-1)
	D := basis.Dmatrix1D(Nq-1, R)
	VX := utils.NewMatrix(2, 1, []float64{0, 1})
	X := utils.NewMatrix(Nq, 1)
	geometry.BlendGrid1D(VX, R, X)

	// Affine geometry is degree 1; capping at degree 1 must not change it
	mt := NewMetrics1D(R, D, 1, 1, 1)
	mt.Compute(X)
	for i := range mt.J.DataP {
		assert.InDelta(t, 0.5, mt.J.DataP[i], tol)
	}
	assert.False(t, math.IsNaN(mt.J.DataP[0]))
}

func TestMetrics1D_NegativeCapDisablesFiltering(t *testing.T) {
	const (
		Nq  = 5
		tol = 1e-10
	)
	R := basis.JacobiGL(0, 0, Nq-1)
	D := basis.Dmatrix1D(Nq-1, R)
	VX := utils.NewMatrix(2, 1, []float64{0, 1})
	X := utils.NewMatrix(Nq, 1)
	geometry.BlendGrid1D(VX, R, X)

	// A negative degree cap is meaningless and must not zero the geometry
	mt := NewMetrics1D(R, D, -1, 1, 1)
	assert.True(t, mt.F.IsEmpty())
	mt.Compute(X)
	for i := range mt.J.DataP {
		assert.InDelta(t, 0.5, mt.J.DataP[i], tol)
	}
}
