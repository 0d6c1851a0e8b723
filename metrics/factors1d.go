package metrics

import (
	"math"
	"sync"

	"github.com/notargets/gosem/utils"
)

// Metrics1D holds the metric terms of K line elements with Nq collocation
// points each. Output buffers are allocated once per mesh configuration and
// repopulated by each Compute call.
type Metrics1D struct {
	Nq, K int
	D     utils.Matrix // Differentiation matrix, borrowed read-only
	F     utils.Matrix // Cutoff filter, empty when untruncated

	J, Rx, JcV utils.Matrix // Volume fields (Nq, K)
	Nx, SJ     utils.Matrix // Face fields (2, K): one point per endpoint face

	pm      *utils.PartitionMap
	scratch [][]float64 // Per-worker element buffer
}

// NewMetrics1D allocates metric storage for K elements over the collocation
// points R with differentiation matrix D. NMetric caps the polynomial degree
// of the blended geometry; pass Nq-1 to disable filtering.
func NewMetrics1D(R utils.Vector, D utils.Matrix, NMetric, K, NP int) (mt *Metrics1D) {
	var (
		Nq = R.Len()
	)
	checkDMatrix("D", D, Nq)
	mt = &Metrics1D{
		Nq:  Nq,
		K:   K,
		D:   D,
		F:   metricFilter(R, NMetric),
		J:   utils.NewMatrix(Nq, K),
		Rx:  utils.NewMatrix(Nq, K),
		JcV: utils.NewMatrix(Nq, K),
		Nx:  utils.NewMatrix(2, K),
		SJ:  utils.NewMatrix(2, K),
		pm:  utils.NewPartitionMap(NP, K),
	}
	mt.scratch = make([][]float64, mt.pm.ParallelDegree)
	for n := range mt.scratch {
		mt.scratch[n] = make([]float64, 2*Nq)
	}
	return
}

// Compute repopulates all metric fields from the coordinate field X (Nq, K).
func (mt *Metrics1D) Compute(X utils.Matrix) {
	checkVolumeField("X", X, mt.Nq, mt.K)
	var wg sync.WaitGroup
	for n := 0; n < mt.pm.ParallelDegree; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			kMin, kMax := mt.pm.GetBucketRange(n)
			for k := kMin; k < kMax; k++ {
				mt.computeElement(k, X, mt.scratch[n])
			}
		}(n)
	}
	wg.Wait()
}

func (mt *Metrics1D) computeElement(k int, X utils.Matrix, scratch []float64) {
	var (
		Nq  = mt.Nq
		K   = mt.K
		xe  = scratch[:Nq]
		tmp = scratch[Nq : 2*Nq]
	)
	for i := 0; i < Nq; i++ {
		xe[i] = X.DataP[k+i*K]
	}
	if !mt.F.IsEmpty() {
		filterAxis(mt.F, Nq, 1, 1, xe, tmp)
	}
	applyAxis(mt.D, Nq, 1, 1, xe, tmp) // tmp = dx/dxi
	for i := 0; i < Nq; i++ {
		ind := k + i*K
		J := tmp[i]
		mt.J.DataP[ind] = J
		mt.Rx.DataP[ind] = 1. / J
		mt.JcV.DataP[ind] = math.Abs(J)
	}
	// Two endpoint faces, surface Jacobian is identically one
	mt.Nx.DataP[k] = -sign(tmp[0])
	mt.Nx.DataP[k+K] = sign(tmp[Nq-1])
	mt.SJ.DataP[k] = 1.
	mt.SJ.DataP[k+K] = 1.
}
