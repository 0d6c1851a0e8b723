// Package mesh builds Cartesian brick meshes of line, quadrilateral, and
// hexahedral elements, supplying the per-element vertex blocks consumed by
// the grid blender. Vertex ordering within an element is binary counting:
// vertex v sits at the corner whose offset along axis d is bit d of v.
package mesh

import (
	"fmt"

	"github.com/notargets/gosem/utils"
)

// Brick is a structured block of K1 x K2 x K3 elements over a box. Unused
// trailing dimensions have extent 1.
type Brick struct {
	Dim        int
	K          int
	K1, K2, K3 int
	VX, VY, VZ utils.Matrix // Per-element vertex coordinates (2^Dim, K)
	EToV       [][]int      // Global vertex indices per element, binary-counting order
	EToE, EToF [][]int      // Face connectivity, filled by Connect
}

func NewBrick1D(xmin, xmax float64, K int) (b *Brick) {
	b = &Brick{
		Dim: 1,
		K:   K,
		K1:  K,
		K2:  1,
		K3:  1,
		VX:  utils.NewMatrix(2, K),
	}
	dx := (xmax - xmin) / float64(K)
	b.EToV = make([][]int, K)
	for k := 0; k < K; k++ {
		b.VX.Set(0, k, xmin+float64(k)*dx)
		b.VX.Set(1, k, xmin+float64(k+1)*dx)
		b.EToV[k] = []int{k, k + 1}
	}
	return
}

func NewBrick2D(xmin, xmax [2]float64, K1, K2 int) (b *Brick) {
	var (
		K = K1 * K2
	)
	b = &Brick{
		Dim: 2,
		K:   K,
		K1:  K1,
		K2:  K2,
		K3:  1,
		VX:  utils.NewMatrix(4, K),
		VY:  utils.NewMatrix(4, K),
	}
	dx := (xmax[0] - xmin[0]) / float64(K1)
	dy := (xmax[1] - xmin[1]) / float64(K2)
	b.EToV = make([][]int, K)
	for k2 := 0; k2 < K2; k2++ {
		for k1 := 0; k1 < K1; k1++ {
			k := k1 + K1*k2
			b.EToV[k] = make([]int, 4)
			for v := 0; v < 4; v++ {
				i1 := k1 + v&1
				i2 := k2 + v>>1&1
				b.VX.Set(v, k, xmin[0]+float64(i1)*dx)
				b.VY.Set(v, k, xmin[1]+float64(i2)*dy)
				b.EToV[k][v] = i1 + (K1+1)*i2
			}
		}
	}
	return
}

func NewBrick3D(xmin, xmax [3]float64, K1, K2, K3 int) (b *Brick) {
	var (
		K = K1 * K2 * K3
	)
	b = &Brick{
		Dim: 3,
		K:   K,
		K1:  K1,
		K2:  K2,
		K3:  K3,
		VX:  utils.NewMatrix(8, K),
		VY:  utils.NewMatrix(8, K),
		VZ:  utils.NewMatrix(8, K),
	}
	dx := (xmax[0] - xmin[0]) / float64(K1)
	dy := (xmax[1] - xmin[1]) / float64(K2)
	dz := (xmax[2] - xmin[2]) / float64(K3)
	b.EToV = make([][]int, K)
	for k3 := 0; k3 < K3; k3++ {
		for k2 := 0; k2 < K2; k2++ {
			for k1 := 0; k1 < K1; k1++ {
				k := k1 + K1*(k2+K2*k3)
				b.EToV[k] = make([]int, 8)
				for v := 0; v < 8; v++ {
					i1 := k1 + v&1
					i2 := k2 + v>>1&1
					i3 := k3 + v>>2&1
					b.VX.Set(v, k, xmin[0]+float64(i1)*dx)
					b.VY.Set(v, k, xmin[1]+float64(i2)*dy)
					b.VZ.Set(v, k, xmin[2]+float64(i3)*dz)
					b.EToV[k][v] = i1 + (K1+1)*(i2+(K2+1)*i3)
				}
			}
		}
	}
	return
}

// Nvert returns the total global vertex count of the brick.
func (b *Brick) Nvert() int {
	switch b.Dim {
	case 1:
		return b.K1 + 1
	case 2:
		return (b.K1 + 1) * (b.K2 + 1)
	case 3:
		return (b.K1 + 1) * (b.K2 + 1) * (b.K3 + 1)
	}
	panic(fmt.Errorf("invalid brick dimension %d", b.Dim))
}

// faceVertices lists the element-local vertices of each face, low/high per
// axis, consistent with the binary-counting corner order.
func faceVertices(dim int) [][]int {
	switch dim {
	case 1:
		return [][]int{{0}, {1}}
	case 2:
		return [][]int{{0, 2}, {1, 3}, {0, 1}, {2, 3}}
	case 3:
		return [][]int{
			{0, 2, 4, 6}, {1, 3, 5, 7},
			{0, 1, 4, 5}, {2, 3, 6, 7},
			{0, 1, 2, 3}, {4, 5, 6, 7},
		}
	}
	panic(fmt.Errorf("invalid dimension %d", dim))
}
