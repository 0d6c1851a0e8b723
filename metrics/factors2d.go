package metrics

import (
	"math"
	"sync"

	"github.com/notargets/gosem/utils"
)

// Metrics2D holds the metric terms of K quadrilateral elements with
// Nq1 x Nq2 collocation points each.
//
// The four faces are ordered: xi1 low, xi1 high, xi2 low, xi2 high. Faces
// orthogonal to xi1 carry Nq2 points, faces orthogonal to xi2 carry Nq1;
// face rows beyond a face's true point count are NaN.
type Metrics2D struct {
	Nq1, Nq2, K int
	NfpMax      int
	D1, D2      utils.Matrix // Differentiation matrices, borrowed read-only
	F1, F2      utils.Matrix // Per-direction cutoff filters, empty when untruncated

	J, JcV         utils.Matrix // Volume fields (Nq1*Nq2, K)
	Rx, Ry, Sx, Sy utils.Matrix // Metric derivatives dxi_i/dx_j
	Nx, Ny, SJ     utils.Matrix // Face fields (NfpMax*4, K)

	pm      *utils.PartitionMap
	scratch [][]float64
}

func NewMetrics2D(R1, R2 utils.Vector, D1, D2 utils.Matrix, NMetric [2]int, K, NP int) (mt *Metrics2D) {
	var (
		Nq1, Nq2 = R1.Len(), R2.Len()
		Np       = Nq1 * Nq2
		NfpMax   = Nq1
	)
	checkDMatrix("D1", D1, Nq1)
	checkDMatrix("D2", D2, Nq2)
	if Nq2 > NfpMax {
		NfpMax = Nq2
	}
	mt = &Metrics2D{
		Nq1:    Nq1,
		Nq2:    Nq2,
		K:      K,
		NfpMax: NfpMax,
		D1:     D1,
		D2:     D2,
		F1:     metricFilter(R1, NMetric[0]),
		F2:     metricFilter(R2, NMetric[1]),
		J:      utils.NewMatrix(Np, K),
		JcV:    utils.NewMatrix(Np, K),
		Rx:     utils.NewMatrix(Np, K),
		Ry:     utils.NewMatrix(Np, K),
		Sx:     utils.NewMatrix(Np, K),
		Sy:     utils.NewMatrix(Np, K),
		Nx:     utils.NewMatrix(NfpMax*4, K),
		Ny:     utils.NewMatrix(NfpMax*4, K),
		SJ:     utils.NewMatrix(NfpMax*4, K),
		pm:     utils.NewPartitionMap(NP, K),
	}
	mt.scratch = make([][]float64, mt.pm.ParallelDegree)
	for n := range mt.scratch {
		mt.scratch[n] = make([]float64, 7*Np)
	}
	return
}

// Compute repopulates all metric fields from the coordinate fields X, Y
// (Nq1*Nq2, K).
func (mt *Metrics2D) Compute(X, Y utils.Matrix) {
	var (
		Np = mt.Nq1 * mt.Nq2
	)
	checkVolumeField("X", X, Np, mt.K)
	checkVolumeField("Y", Y, Np, mt.K)
	var wg sync.WaitGroup
	for n := 0; n < mt.pm.ParallelDegree; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			kMin, kMax := mt.pm.GetBucketRange(n)
			for k := kMin; k < kMax; k++ {
				mt.computeElement(k, X, Y, mt.scratch[n])
			}
		}(n)
	}
	wg.Wait()
}

func (mt *Metrics2D) computeElement(k int, X, Y utils.Matrix, scratch []float64) {
	var (
		Nq1, Nq2 = mt.Nq1, mt.Nq2
		Np       = Nq1 * Nq2
		K        = mt.K
		xe       = scratch[0*Np : 1*Np]
		ye       = scratch[1*Np : 2*Np]
		xr       = scratch[2*Np : 3*Np]
		xs       = scratch[3*Np : 4*Np]
		yr       = scratch[4*Np : 5*Np]
		ys       = scratch[5*Np : 6*Np]
		tmp      = scratch[6*Np : 7*Np]
	)
	for p := 0; p < Np; p++ {
		xe[p] = X.DataP[k+p*K]
		ye[p] = Y.DataP[k+p*K]
	}
	mt.filterField(xe, tmp)
	mt.filterField(ye, tmp)

	// Differentiation is along one tensor axis at a time
	applyAxis(mt.D1, Nq1, 1, Nq2, xe, xr)
	applyAxis(mt.D2, Nq2, Nq1, 1, xe, xs)
	applyAxis(mt.D1, Nq1, 1, Nq2, ye, yr)
	applyAxis(mt.D2, Nq2, Nq1, 1, ye, ys)

	for p := 0; p < Np; p++ {
		ind := k + p*K
		J := xr[p]*ys[p] - yr[p]*xs[p]
		mt.J.DataP[ind] = J
		mt.JcV.DataP[ind] = math.Hypot(xs[p], ys[p])
		// Metric derivatives are the 2x2 cofactors over J
		mt.Rx.DataP[ind] = ys[p] / J
		mt.Ry.DataP[ind] = -xs[p] / J
		mt.Sx.DataP[ind] = -yr[p] / J
		mt.Sy.DataP[ind] = xr[p] / J
	}
	mt.computeFaces(k, xr, xs, yr, ys)
}

func (mt *Metrics2D) filterField(field, tmp []float64) {
	if !mt.F1.IsEmpty() {
		filterAxis(mt.F1, mt.Nq1, 1, mt.Nq2, field, tmp)
	}
	if !mt.F2.IsEmpty() {
		filterAxis(mt.F2, mt.Nq2, mt.Nq1, 1, field, tmp)
	}
}

func (mt *Metrics2D) computeFaces(k int, xr, xs, yr, ys []float64) {
	var (
		Nq1, Nq2 = mt.Nq1, mt.Nq2
		K        = mt.K
		NfpMax   = mt.NfpMax
		setFace  = func(face, n int, nx, ny float64) {
			row := n + NfpMax*face
			sJ := math.Hypot(nx, ny)
			mt.Nx.DataP[k+row*K] = nx / sJ
			mt.Ny.DataP[k+row*K] = ny / sJ
			mt.SJ.DataP[k+row*K] = sJ
		}
		padFace = func(face, Nfp int) {
			for n := Nfp; n < NfpMax; n++ {
				row := n + NfpMax*face
				mt.Nx.DataP[k+row*K] = math.NaN()
				mt.Ny.DataP[k+row*K] = math.NaN()
				mt.SJ.DataP[k+row*K] = math.NaN()
			}
		}
	)
	// Faces orthogonal to xi1: J*dxi1/dx = ys, J*dxi1/dy = -xs
	for n := 0; n < Nq2; n++ {
		pLo := Nq1 * n
		pHi := (Nq1 - 1) + Nq1*n
		setFace(0, n, -ys[pLo], xs[pLo])
		setFace(1, n, ys[pHi], -xs[pHi])
	}
	padFace(0, Nq2)
	padFace(1, Nq2)
	// Faces orthogonal to xi2: J*dxi2/dx = -yr, J*dxi2/dy = xr
	for n := 0; n < Nq1; n++ {
		pLo := n
		pHi := n + Nq1*(Nq2-1)
		setFace(2, n, yr[pLo], -xr[pLo])
		setFace(3, n, -yr[pHi], xr[pHi])
	}
	padFace(2, Nq1)
	padFace(3, Nq1)
}
