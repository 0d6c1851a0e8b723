// Package metrics computes the geometric terms of curvilinear tensor-product
// spectral elements: volume Jacobians, contravariant metric derivatives, a
// covariant-speed scalar, and face unit normals with surface Jacobians.
//
// Volume fields are (Np, K) matrices, one column per element, points ordered
// with the first reference direction fastest. Face fields are
// (NfpMax*Nfaces, K) matrices with rows beyond a face's true point count held
// at NaN, so all faces share one fixed upper-bound layout.
//
// Each Compute call is a stateless transform over the caller's coordinate
// fields, data-parallel across elements. Degenerate or inverted geometry
// propagates as Inf/NaN in the outputs; only dimension mismatches panic.
package metrics

import (
	"fmt"
	"math"

	"github.com/notargets/gosem/basis"
	"github.com/notargets/gosem/utils"
)

// applyAxis applies the square operator Op along one tensor axis of a
// contiguous per-element field. The axis is described by its extent n, the
// stride between consecutive points along it, and the number of outer blocks;
// in and out must not alias.
func applyAxis(Op utils.Matrix, n, stride, nblocks int, in, out []float64) {
	for b := 0; b < nblocks; b++ {
		for s := 0; s < stride; s++ {
			base := b*n*stride + s
			for i := 0; i < n; i++ {
				opRow := Op.DataP[i*n : (i+1)*n]
				var sum float64
				for m := 0; m < n; m++ {
					sum += opRow[m] * in[base+stride*m]
				}
				out[base+stride*i] = sum
			}
		}
	}
}

// filterAxis applies Op along an axis in place, using tmp as scratch.
func filterAxis(Op utils.Matrix, n, stride, nblocks int, field, tmp []float64) {
	applyAxis(Op, n, stride, nblocks, field, tmp)
	copy(field, tmp)
}

// clampNMetric clamps the per-direction degree cap into [0, Nq-1]. A cap at
// or above the grid degree is meaningless and disables filtering, as does a
// negative cap; a zero filter must never be produced.
func clampNMetric(NMetric, Nq int) int {
	if NMetric < 0 || NMetric >= Nq-1 {
		return Nq - 1
	}
	return NMetric
}

// metricFilter builds the per-direction cutoff filter, or an empty Matrix
// when the direction is untruncated.
func metricFilter(R utils.Vector, NMetric int) (F utils.Matrix) {
	var (
		Nq = R.Len()
		nm = clampNMetric(NMetric, Nq)
	)
	if nm == Nq-1 {
		return
	}
	F = basis.CutoffFilter(R, nm)
	F.SetReadOnly("CutoffFilter")
	return
}

func checkVolumeField(name string, M utils.Matrix, Np, K int) {
	nr, nc := M.Dims()
	if nr != Np || nc != K {
		panic(fmt.Errorf("%s dims [%d,%d] do not match [%d,%d]", name, nr, nc, Np, K))
	}
}

func checkDMatrix(name string, D utils.Matrix, Nq int) {
	nr, nc := D.Dims()
	if nr != Nq || nc != Nq {
		panic(fmt.Errorf("%s dims [%d,%d] are not square of size %d", name, nr, nc, Nq))
	}
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

func hypot3(a, b, c float64) float64 {
	return math.Sqrt(a*a + b*b + c*c)
}
