// Package geometry fills physical coordinate fields for tensor-product
// elements by corner-weighted blending of vertex coordinates in reference
// space: linear in 1-D, bilinear in 2-D, trilinear in 3-D.
//
// Vertex ordering is binary counting: vertex v carries the sign combination
// (+- along axis 1 from bit 0, axis 2 from bit 1, axis 3 from bit 2), so
// vertex 0 sits at the (-1,-1,-1) corner of the reference cube.
package geometry

import (
	"fmt"

	"github.com/notargets/gosem/utils"
)

// BlendGrid1D fills X (Nq x K) from per-element endpoint coordinates
// VX (2 x K) by linear interpolation along the reference points R.
func BlendGrid1D(VX utils.Matrix, R utils.Vector, X utils.Matrix) {
	var (
		Nq = R.Len()
		K  = checkBlendDims(1, []utils.Matrix{VX}, []utils.Matrix{X}, Nq)
		xD = X.DataP
	)
	for k := 0; k < K; k++ {
		x0, x1 := VX.At(0, k), VX.At(1, k)
		for i := 0; i < Nq; i++ {
			r := R.AtVec(i)
			xD[k+i*K] = ((1.-r)*x0 + (1.+r)*x1) / 2.
		}
	}
}

// BlendGrid2D fills X, Y (Nq1*Nq2 x K) from per-element corner coordinates
// VX, VY (4 x K) by bilinear interpolation over the reference points R1, R2.
func BlendGrid2D(VX, VY utils.Matrix, R1, R2 utils.Vector, X, Y utils.Matrix) {
	var (
		Nq1, Nq2 = R1.Len(), R2.Len()
		K        = checkBlendDims(2, []utils.Matrix{VX, VY}, []utils.Matrix{X, Y}, Nq1*Nq2)
		xD, yD   = X.DataP, Y.DataP
	)
	for k := 0; k < K; k++ {
		for j := 0; j < Nq2; j++ {
			r2 := R2.AtVec(j)
			for i := 0; i < Nq1; i++ {
				r1 := R1.AtVec(i)
				ind := k + (i+j*Nq1)*K
				var x, y float64
				for v := 0; v < 4; v++ {
					w := cornerWeight2D(v, r1, r2)
					x += w * VX.At(v, k)
					y += w * VY.At(v, k)
				}
				xD[ind], yD[ind] = x, y
			}
		}
	}
}

// BlendGrid3D fills X, Y, Z (Nq1*Nq2*Nq3 x K) from per-element corner
// coordinates VX, VY, VZ (8 x K) by trilinear interpolation over the
// reference points R1, R2, R3.
func BlendGrid3D(VX, VY, VZ utils.Matrix, R1, R2, R3 utils.Vector, X, Y, Z utils.Matrix) {
	var (
		Nq1, Nq2, Nq3 = R1.Len(), R2.Len(), R3.Len()
		K             = checkBlendDims(3, []utils.Matrix{VX, VY, VZ}, []utils.Matrix{X, Y, Z}, Nq1*Nq2*Nq3)
		xD, yD, zD    = X.DataP, Y.DataP, Z.DataP
	)
	for k := 0; k < K; k++ {
		for kk := 0; kk < Nq3; kk++ {
			r3 := R3.AtVec(kk)
			for j := 0; j < Nq2; j++ {
				r2 := R2.AtVec(j)
				for i := 0; i < Nq1; i++ {
					r1 := R1.AtVec(i)
					ind := k + (i+Nq1*(j+Nq2*kk))*K
					var x, y, z float64
					for v := 0; v < 8; v++ {
						w := cornerWeight3D(v, r1, r2, r3)
						x += w * VX.At(v, k)
						y += w * VY.At(v, k)
						z += w * VZ.At(v, k)
					}
					xD[ind], yD[ind], zD[ind] = x, y, z
				}
			}
		}
	}
}

func cornerWeight2D(v int, r1, r2 float64) float64 {
	w := 0.25
	if v&1 != 0 {
		w *= 1. + r1
	} else {
		w *= 1. - r1
	}
	if v&2 != 0 {
		w *= 1. + r2
	} else {
		w *= 1. - r2
	}
	return w
}

func cornerWeight3D(v int, r1, r2, r3 float64) float64 {
	w := cornerWeight2D(v&3, r1, r2) / 2.
	if v&4 != 0 {
		w *= 1. + r3
	} else {
		w *= 1. - r3
	}
	return w
}

// checkBlendDims enforces the vertex block contract: d coordinate arrays of
// 2^d vertices per element, coordinate fields of Np points per element, all
// sharing one element count. Violations are caller defects and panic.
func checkBlendDims(d int, V, X []utils.Matrix, Np int) (K int) {
	var (
		nvert = 1 << d
	)
	if len(V) != d || len(X) != d {
		panic(fmt.Errorf("dimension mismatch: have %d vertex and %d coordinate arrays, need %d", len(V), len(X), d))
	}
	_, K = V[0].Dims()
	for _, m := range V {
		nr, nc := m.Dims()
		if nr != nvert || nc != K {
			panic(fmt.Errorf("vertex array dims [%d,%d] do not match [%d,%d]", nr, nc, nvert, K))
		}
	}
	for _, m := range X {
		nr, nc := m.Dims()
		if nr != Np || nc != K {
			panic(fmt.Errorf("coordinate array dims [%d,%d] do not match [%d,%d]", nr, nc, Np, K))
		}
	}
	return
}
