package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrick1D(t *testing.T) {
	b := NewBrick1D(0, 2, 4)
	require.Equal(t, 4, b.K)
	assert.Equal(t, 5, b.Nvert())
	for k := 0; k < b.K; k++ {
		assert.InDelta(t, 0.5*float64(k), b.VX.At(0, k), 1.e-12)
		assert.InDelta(t, 0.5*float64(k+1), b.VX.At(1, k), 1.e-12)
	}
	b.Connect()
	// Interior faces pair up, domain ends point back at themselves
	assert.Equal(t, 0, b.EToE[0][0])
	assert.Equal(t, 0, b.EToF[0][0])
	assert.Equal(t, 1, b.EToE[0][1])
	assert.Equal(t, 0, b.EToF[0][1])
	assert.Equal(t, 0, b.EToE[1][0])
	assert.Equal(t, 1, b.EToF[1][0])
	assert.Equal(t, 3, b.EToE[3][1])
	assert.Equal(t, 1, b.EToF[3][1])
}

func TestBrick2DConnect(t *testing.T) {
	b := NewBrick2D([2]float64{0, 0}, [2]float64{1, 1}, 2, 2)
	require.Equal(t, 4, b.K)
	assert.Equal(t, 9, b.Nvert())
	b.Connect()
	// Element 0 sits at the lower-left corner: faces 0 and 2 are boundary
	assert.Equal(t, 0, b.EToE[0][0])
	assert.Equal(t, 0, b.EToE[0][2])
	// xi1-high face of element 0 meets the xi1-low face of element 1
	assert.Equal(t, 1, b.EToE[0][1])
	assert.Equal(t, 0, b.EToF[0][1])
	assert.Equal(t, 0, b.EToE[1][0])
	assert.Equal(t, 1, b.EToF[1][0])
	// xi2-high face of element 0 meets the xi2-low face of element 2
	assert.Equal(t, 2, b.EToE[0][3])
	assert.Equal(t, 2, b.EToF[0][3])
	// Element 3 at the upper-right corner: faces 1 and 3 are boundary
	assert.Equal(t, 3, b.EToE[3][1])
	assert.Equal(t, 3, b.EToE[3][3])
	assert.Equal(t, 2, b.EToE[3][0])
	assert.Equal(t, 1, b.EToE[3][2])
}

func TestBrick3DConnect(t *testing.T) {
	b := NewBrick3D([3]float64{0, 0, 0}, [3]float64{1, 1, 1}, 2, 1, 2)
	require.Equal(t, 4, b.K)
	b.Connect()
	// k = k1 + 2*k3 here, so element 0 neighbors element 1 along xi1 and
	// element 2 along xi3
	assert.Equal(t, 1, b.EToE[0][1])
	assert.Equal(t, 0, b.EToF[0][1])
	assert.Equal(t, 2, b.EToE[0][5])
	assert.Equal(t, 4, b.EToF[0][5])
	// The lone xi2 layer leaves both xi2 faces on the boundary everywhere
	for k := 0; k < b.K; k++ {
		assert.Equal(t, k, b.EToE[k][2])
		assert.Equal(t, k, b.EToE[k][3])
	}
}

func TestBrickVertexOrder(t *testing.T) {
	// Bit d of the local vertex index is the offset along axis d
	b := NewBrick3D([3]float64{0, 0, 0}, [3]float64{1, 2, 3}, 1, 1, 1)
	for v := 0; v < 8; v++ {
		assert.InDelta(t, float64(v&1)*1, b.VX.At(v, 0), 1.e-12)
		assert.InDelta(t, float64(v>>1&1)*2, b.VY.At(v, 0), 1.e-12)
		assert.InDelta(t, float64(v>>2&1)*3, b.VZ.At(v, 0), 1.e-12)
	}
}
