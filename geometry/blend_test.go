package geometry

import (
	"testing"

	"github.com/notargets/gosem/basis"
	"github.com/notargets/gosem/utils"

	"github.com/stretchr/testify/assert"
)

func TestBlendGrid1D(t *testing.T) {
	const tol = 1e-12
	var (
		K  = 2
		R  = basis.JacobiGL(0, 0, 2) // -1, 0, 1
		VX = utils.NewMatrix(2, K, []float64{
			0, 1, // low endpoints per element
			1, 2, // high endpoints per element
		})
		X = utils.NewMatrix(3, K)
	)
	BlendGrid1D(VX, R, X)
	// Element 0 maps [-1,1] -> [0,1], element 1 -> [1,2]
	assert.InDelta(t, 0., X.At(0, 0), tol)
	assert.InDelta(t, 0.5, X.At(1, 0), tol)
	assert.InDelta(t, 1., X.At(2, 0), tol)
	assert.InDelta(t, 1.5, X.At(1, 1), tol)
	assert.InDelta(t, 2., X.At(2, 1), tol)
}

func TestBlendGrid2D_UnitSquare(t *testing.T) {
	const tol = 1e-12
	var (
		R1 = basis.JacobiGL(0, 0, 2)
		R2 = basis.JacobiGL(0, 0, 2)
		// Binary counting corner order: (0,0),(1,0),(0,1),(1,1)
		VX = utils.NewMatrix(4, 1, []float64{0, 1, 0, 1})
		VY = utils.NewMatrix(4, 1, []float64{0, 0, 1, 1})
		X  = utils.NewMatrix(9, 1)
		Y  = utils.NewMatrix(9, 1)
	)
	BlendGrid2D(VX, VY, R1, R2, X, Y)
	// Point (i,j) = (1,1) is the element center
	assert.InDelta(t, 0.5, X.At(1+3*1, 0), tol)
	assert.InDelta(t, 0.5, Y.At(1+3*1, 0), tol)
	// Corner (0,0) is vertex 0, corner (2,2) is vertex 3
	assert.InDelta(t, 0., X.At(0, 0), tol)
	assert.InDelta(t, 0., Y.At(0, 0), tol)
	assert.InDelta(t, 1., X.At(8, 0), tol)
	assert.InDelta(t, 1., Y.At(8, 0), tol)
	// Corner (2,0) is vertex 1: (1,0)
	assert.InDelta(t, 1., X.At(2, 0), tol)
	assert.InDelta(t, 0., Y.At(2, 0), tol)
}

func TestBlendGrid3D_Trilinear(t *testing.T) {
	const tol = 1e-12
	var (
		R  = basis.JacobiGL(0, 0, 1) // -1, 1: points coincide with corners
		VX = utils.NewMatrix(8, 1, []float64{0, 2, 0, 2, 0, 2, 0, 2})
		VY = utils.NewMatrix(8, 1, []float64{0, 0, 3, 3, 0, 0, 3, 3})
		VZ = utils.NewMatrix(8, 1, []float64{0, 0, 0, 0, 4, 4, 4, 4})
		X  = utils.NewMatrix(8, 1)
		Y  = utils.NewMatrix(8, 1)
		Z  = utils.NewMatrix(8, 1)
	)
	BlendGrid3D(VX, VY, VZ, R, R, R, X, Y, Z)
	// At corner-coincident points the blend reproduces the vertices
	for v := 0; v < 8; v++ {
		assert.InDelta(t, VX.At(v, 0), X.At(v, 0), tol)
		assert.InDelta(t, VY.At(v, 0), Y.At(v, 0), tol)
		assert.InDelta(t, VZ.At(v, 0), Z.At(v, 0), tol)
	}
}

func TestBlendGrid_DimensionMismatchPanics(t *testing.T) {
	var (
		R  = basis.JacobiGL(0, 0, 2)
		VX = utils.NewMatrix(4, 1) // 4 vertices is a 2D block, not 1D
		X  = utils.NewMatrix(3, 1)
	)
	assert.Panics(t, func() { BlendGrid1D(VX, R, X) })

	// Coordinate field sized for the wrong point count
	VX1 := utils.NewMatrix(2, 1)
	Xbad := utils.NewMatrix(4, 1)
	assert.Panics(t, func() { BlendGrid1D(VX1, R, Xbad) })
}
