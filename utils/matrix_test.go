package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixOps(t *testing.T) {
	A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
	B := NewMatrix(2, 2, []float64{0, 1, 1, 0})

	C := A.Mul(B)
	assert.Equal(t, []float64{2, 1, 4, 3}, C.DataP)

	At := A.Transpose()
	assert.Equal(t, []float64{1, 3, 2, 4}, At.DataP)
	// Transpose does not touch the receiver
	assert.Equal(t, []float64{1, 2, 3, 4}, A.DataP)

	D := A.Copy().Scale(2).AddScalar(1)
	assert.Equal(t, []float64{3, 5, 7, 9}, D.DataP)
	assert.Equal(t, []float64{1, 2, 3, 4}, A.DataP)

	assert.InDelta(t, 1., A.Min(), 1.e-15)
	assert.InDelta(t, 4., A.Max(), 1.e-15)
}

func TestMatrixInverse(t *testing.T) {
	A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
	Ainv, err := A.Inverse()
	require.NoError(t, err)
	I := A.Mul(Ainv)
	want := []float64{1, 0, 0, 1}
	for i, v := range I.DataP {
		assert.InDelta(t, want[i], v, 1.e-12)
	}

	S := NewMatrix(2, 2, []float64{1, 2, 2, 4})
	_, err = S.Inverse()
	assert.Error(t, err)
}

func TestMatrixReadOnly(t *testing.T) {
	A := NewMatrix(2, 2)
	A.SetReadOnly("A")
	assert.Panics(t, func() { A.Set(0, 0, 1) })
	A.SetWritable()
	assert.NotPanics(t, func() { A.Set(0, 0, 1) })
}

func TestDiagMatrix(t *testing.T) {
	D := NewDiagMatrix(3, []float64{1, 2, 3})
	assert.Equal(t, []float64{1, 0, 0, 0, 2, 0, 0, 0, 3}, D.DataP)
	E := NewDiagMatrix(2, nil, 5)
	assert.Equal(t, []float64{5, 0, 0, 5}, E.DataP)
}

func TestPartitionMap(t *testing.T) {
	// Buckets tile the index range with at most one element of imbalance
	for _, tc := range [][2]int{{1, 1}, {2, 7}, {3, 10}, {4, 4}, {8, 3}} {
		pm := NewPartitionMap(tc[0], tc[1])
		require.LessOrEqual(t, pm.ParallelDegree, tc[1])
		var total int
		prev := 0
		for n := 0; n < pm.ParallelDegree; n++ {
			kMin, kMax := pm.GetBucketRange(n)
			assert.Equal(t, prev, kMin)
			assert.Greater(t, kMax, kMin)
			total += pm.GetBucketDimension(n)
			prev = kMax
		}
		assert.Equal(t, tc[1], total)
		minDim, maxDim := tc[1], 0
		for n := 0; n < pm.ParallelDegree; n++ {
			d := pm.GetBucketDimension(n)
			if d < minDim {
				minDim = d
			}
			if d > maxDim {
				maxDim = d
			}
		}
		assert.LessOrEqual(t, maxDim-minDim, 1)
	}
}
