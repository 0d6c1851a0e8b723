package metrics

import (
	"math"
	"sync"

	"github.com/notargets/gosem/utils"
)

// Metrics3D holds the metric terms of K hexahedral elements with
// Nq1 x Nq2 x Nq3 collocation points each.
//
// The metric derivatives are built with the curl-invariant construction of
// Kopriva (2006): the nine J-scaled terms come from discrete curls of
// cross-product auxiliary fields rather than direct differentiation, so the
// discrete identity sum_i D_i (J dxi_i/dx_n) = 0 holds to machine precision
// and free-stream preservation survives on curved elements.
//
// The six faces are ordered: xi1 low/high, xi2 low/high, xi3 low/high, with
// the two in-face reference directions flattened first-direction-fastest into
// the face point index. Face rows beyond a face's true point count are NaN.
type Metrics3D struct {
	Nq1, Nq2, Nq3 int
	K             int
	NfpMax        int
	D1, D2, D3    utils.Matrix // Differentiation matrices, borrowed read-only
	F1, F2, F3    utils.Matrix // Per-direction cutoff filters, empty when untruncated

	J, JcV     utils.Matrix // Volume fields (Nq1*Nq2*Nq3, K)
	Rx, Ry, Rz utils.Matrix // dxi1/dx_n
	Sx, Sy, Sz utils.Matrix // dxi2/dx_n
	Tx, Ty, Tz utils.Matrix // dxi3/dx_n
	Nx, Ny, Nz utils.Matrix // Face fields (NfpMax*6, K)
	SJ         utils.Matrix

	pm      *utils.PartitionMap
	scratch []*scratch3D
}

// scratch3D is the per-worker workspace of one element's computation, sized
// once so Compute stays allocation free.
type scratch3D struct {
	xe, ye, ze []float64 // Coordinates, degree-filtered
	dx, dy, dz [3][]float64
	aux        [3][3][]float64 // aux[n][d] = x_m * d(x_l)/dxi_d, (n,m,l) cyclic
	jm         [3][3][]float64 // jm[i][n] = J * dxi_i/dx_n
	tmp        []float64
	jn         []float64 // Naive Jacobian, used only for orientation sign
}

func newScratch3D(Np int) (s *scratch3D) {
	s = &scratch3D{
		xe:  make([]float64, Np),
		ye:  make([]float64, Np),
		ze:  make([]float64, Np),
		tmp: make([]float64, Np),
		jn:  make([]float64, Np),
	}
	for d := 0; d < 3; d++ {
		s.dx[d] = make([]float64, Np)
		s.dy[d] = make([]float64, Np)
		s.dz[d] = make([]float64, Np)
		for n := 0; n < 3; n++ {
			s.aux[n][d] = make([]float64, Np)
			s.jm[d][n] = make([]float64, Np)
		}
	}
	return
}

func NewMetrics3D(R1, R2, R3 utils.Vector, D1, D2, D3 utils.Matrix, NMetric [3]int, K, NP int) (mt *Metrics3D) {
	var (
		Nq1, Nq2, Nq3 = R1.Len(), R2.Len(), R3.Len()
		Np            = Nq1 * Nq2 * Nq3
	)
	checkDMatrix("D1", D1, Nq1)
	checkDMatrix("D2", D2, Nq2)
	checkDMatrix("D3", D3, Nq3)
	NfpMax := Nq2 * Nq3
	if Nq1*Nq3 > NfpMax {
		NfpMax = Nq1 * Nq3
	}
	if Nq1*Nq2 > NfpMax {
		NfpMax = Nq1 * Nq2
	}
	mt = &Metrics3D{
		Nq1:    Nq1,
		Nq2:    Nq2,
		Nq3:    Nq3,
		K:      K,
		NfpMax: NfpMax,
		D1:     D1,
		D2:     D2,
		D3:     D3,
		F1:     metricFilter(R1, NMetric[0]),
		F2:     metricFilter(R2, NMetric[1]),
		F3:     metricFilter(R3, NMetric[2]),
		J:      utils.NewMatrix(Np, K),
		JcV:    utils.NewMatrix(Np, K),
		Rx:     utils.NewMatrix(Np, K),
		Ry:     utils.NewMatrix(Np, K),
		Rz:     utils.NewMatrix(Np, K),
		Sx:     utils.NewMatrix(Np, K),
		Sy:     utils.NewMatrix(Np, K),
		Sz:     utils.NewMatrix(Np, K),
		Tx:     utils.NewMatrix(Np, K),
		Ty:     utils.NewMatrix(Np, K),
		Tz:     utils.NewMatrix(Np, K),
		Nx:     utils.NewMatrix(NfpMax*6, K),
		Ny:     utils.NewMatrix(NfpMax*6, K),
		Nz:     utils.NewMatrix(NfpMax*6, K),
		SJ:     utils.NewMatrix(NfpMax*6, K),
		pm:     utils.NewPartitionMap(NP, K),
	}
	mt.scratch = make([]*scratch3D, mt.pm.ParallelDegree)
	for n := range mt.scratch {
		mt.scratch[n] = newScratch3D(Np)
	}
	return
}

// Compute repopulates all metric fields from the coordinate fields X, Y, Z
// (Nq1*Nq2*Nq3, K).
func (mt *Metrics3D) Compute(X, Y, Z utils.Matrix) {
	var (
		Np = mt.Nq1 * mt.Nq2 * mt.Nq3
	)
	checkVolumeField("X", X, Np, mt.K)
	checkVolumeField("Y", Y, Np, mt.K)
	checkVolumeField("Z", Z, Np, mt.K)
	var wg sync.WaitGroup
	for n := 0; n < mt.pm.ParallelDegree; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			kMin, kMax := mt.pm.GetBucketRange(n)
			for k := kMin; k < kMax; k++ {
				mt.computeElement(k, X, Y, Z, mt.scratch[n])
			}
		}(n)
	}
	wg.Wait()
}

func (mt *Metrics3D) computeElement(k int, X, Y, Z utils.Matrix, s *scratch3D) {
	var (
		Np = mt.Nq1 * mt.Nq2 * mt.Nq3
		K  = mt.K
	)
	for p := 0; p < Np; p++ {
		s.xe[p] = X.DataP[k+p*K]
		s.ye[p] = Y.DataP[k+p*K]
		s.ze[p] = Z.DataP[k+p*K]
	}
	mt.filterField(s.xe, s.tmp)
	mt.filterField(s.ye, s.tmp)
	mt.filterField(s.ze, s.tmp)

	for d := 0; d < 3; d++ {
		mt.diffAxis(d, s.xe, s.dx[d])
		mt.diffAxis(d, s.ye, s.dy[d])
		mt.diffAxis(d, s.ze, s.dz[d])
	}

	// The naive Jacobian fixes orientation only; its metric derivatives would
	// violate the discrete conservation identity on curved elements
	for p := 0; p < Np; p++ {
		s.jn[p] = s.dx[0][p]*(s.dy[1][p]*s.dz[2][p]-s.dy[2][p]*s.dz[1][p]) -
			s.dy[0][p]*(s.dx[1][p]*s.dz[2][p]-s.dx[2][p]*s.dz[1][p]) +
			s.dz[0][p]*(s.dx[1][p]*s.dy[2][p]-s.dx[2][p]*s.dy[1][p])
		mt.JcV.DataP[k+p*K] = hypot3(s.dx[2][p], s.dy[2][p], s.dz[2][p])
	}

	// Cross-product auxiliary fields, one triple per physical-coordinate
	// pair: aux[0][d] = y*dz/dxi_d, aux[1][d] = z*dx/dxi_d, aux[2][d] = x*dy/dxi_d
	for d := 0; d < 3; d++ {
		for p := 0; p < Np; p++ {
			s.aux[0][d][p] = s.ye[p] * s.dz[d][p]
			s.aux[1][d][p] = s.ze[p] * s.dx[d][p]
			s.aux[2][d][p] = s.xe[p] * s.dy[d][p]
		}
		mt.filterField(s.aux[0][d], s.tmp)
		mt.filterField(s.aux[1][d], s.tmp)
		mt.filterField(s.aux[2][d], s.tmp)
	}

	// Discrete curl of the auxiliary fields yields the J-scaled metric
	// derivatives: J*dxi_i/dx_n = D_a(aux[n][b]) - D_b(aux[n][a]), (i,a,b) cyclic
	for n := 0; n < 3; n++ {
		mt.curl(1, 2, s.aux[n], s.jm[0][n], s.tmp)
		mt.curl(2, 0, s.aux[n], s.jm[1][n], s.tmp)
		mt.curl(0, 1, s.aux[n], s.jm[2][n], s.tmp)
	}

	// J is recovered from the curl-built terms: det(jm) = J^2, sign from the
	// naive Jacobian
	for p := 0; p < Np; p++ {
		det := s.jm[0][0][p]*(s.jm[1][1][p]*s.jm[2][2][p]-s.jm[1][2][p]*s.jm[2][1][p]) -
			s.jm[0][1][p]*(s.jm[1][0][p]*s.jm[2][2][p]-s.jm[1][2][p]*s.jm[2][0][p]) +
			s.jm[0][2][p]*(s.jm[1][0][p]*s.jm[2][1][p]-s.jm[1][1][p]*s.jm[2][0][p])
		J := sign(s.jn[p]) * math.Sqrt(math.Abs(det))
		ind := k + p*K
		mt.J.DataP[ind] = J
		mt.Rx.DataP[ind] = s.jm[0][0][p] / J
		mt.Ry.DataP[ind] = s.jm[0][1][p] / J
		mt.Rz.DataP[ind] = s.jm[0][2][p] / J
		mt.Sx.DataP[ind] = s.jm[1][0][p] / J
		mt.Sy.DataP[ind] = s.jm[1][1][p] / J
		mt.Sz.DataP[ind] = s.jm[1][2][p] / J
		mt.Tx.DataP[ind] = s.jm[2][0][p] / J
		mt.Ty.DataP[ind] = s.jm[2][1][p] / J
		mt.Tz.DataP[ind] = s.jm[2][2][p] / J
	}
	mt.computeFaces(k, s)
}

// diffAxis differentiates a per-element field along reference axis d.
func (mt *Metrics3D) diffAxis(d int, in, out []float64) {
	switch d {
	case 0:
		applyAxis(mt.D1, mt.Nq1, 1, mt.Nq2*mt.Nq3, in, out)
	case 1:
		applyAxis(mt.D2, mt.Nq2, mt.Nq1, mt.Nq3, in, out)
	case 2:
		applyAxis(mt.D3, mt.Nq3, mt.Nq1*mt.Nq2, 1, in, out)
	}
}

// curl computes D_a(aux[b]) - D_b(aux[a]) into out.
func (mt *Metrics3D) curl(a, b int, aux [3][]float64, out, tmp []float64) {
	mt.diffAxis(a, aux[b], out)
	mt.diffAxis(b, aux[a], tmp)
	for p := range out {
		out[p] -= tmp[p]
	}
}

func (mt *Metrics3D) filterField(field, tmp []float64) {
	if !mt.F1.IsEmpty() {
		filterAxis(mt.F1, mt.Nq1, 1, mt.Nq2*mt.Nq3, field, tmp)
	}
	if !mt.F2.IsEmpty() {
		filterAxis(mt.F2, mt.Nq2, mt.Nq1, mt.Nq3, field, tmp)
	}
	if !mt.F3.IsEmpty() {
		filterAxis(mt.F3, mt.Nq3, mt.Nq1*mt.Nq2, 1, field, tmp)
	}
}

func (mt *Metrics3D) computeFaces(k int, s *scratch3D) {
	var (
		Nq1, Nq2, Nq3 = mt.Nq1, mt.Nq2, mt.Nq3
		K             = mt.K
		NfpMax        = mt.NfpMax
		setFace       = func(face, n, p int, orient float64, jmRow [3][]float64) {
			row := n + NfpMax*face
			nx := orient * jmRow[0][p]
			ny := orient * jmRow[1][p]
			nz := orient * jmRow[2][p]
			sJ := hypot3(nx, ny, nz)
			mt.Nx.DataP[k+row*K] = nx / sJ
			mt.Ny.DataP[k+row*K] = ny / sJ
			mt.Nz.DataP[k+row*K] = nz / sJ
			mt.SJ.DataP[k+row*K] = sJ
		}
		padFace = func(face, Nfp int) {
			for n := Nfp; n < NfpMax; n++ {
				row := n + NfpMax*face
				mt.Nx.DataP[k+row*K] = math.NaN()
				mt.Ny.DataP[k+row*K] = math.NaN()
				mt.Nz.DataP[k+row*K] = math.NaN()
				mt.SJ.DataP[k+row*K] = math.NaN()
			}
		}
	)
	jmR := [3][]float64{s.jm[0][0], s.jm[0][1], s.jm[0][2]}
	jmS := [3][]float64{s.jm[1][0], s.jm[1][1], s.jm[1][2]}
	jmT := [3][]float64{s.jm[2][0], s.jm[2][1], s.jm[2][2]}
	// Faces orthogonal to xi1
	for kk := 0; kk < Nq3; kk++ {
		for j := 0; j < Nq2; j++ {
			n := j + Nq2*kk
			pLo := Nq1 * (j + Nq2*kk)
			pHi := (Nq1 - 1) + Nq1*(j+Nq2*kk)
			setFace(0, n, pLo, -1, jmR)
			setFace(1, n, pHi, 1, jmR)
		}
	}
	padFace(0, Nq2*Nq3)
	padFace(1, Nq2*Nq3)
	// Faces orthogonal to xi2
	for kk := 0; kk < Nq3; kk++ {
		for i := 0; i < Nq1; i++ {
			n := i + Nq1*kk
			pLo := i + Nq1*Nq2*kk
			pHi := i + Nq1*((Nq2-1)+Nq2*kk)
			setFace(2, n, pLo, -1, jmS)
			setFace(3, n, pHi, 1, jmS)
		}
	}
	padFace(2, Nq1*Nq3)
	padFace(3, Nq1*Nq3)
	// Faces orthogonal to xi3
	for j := 0; j < Nq2; j++ {
		for i := 0; i < Nq1; i++ {
			n := i + Nq1*j
			pLo := i + Nq1*j
			pHi := i + Nq1*(j+Nq2*(Nq3-1))
			setFace(4, n, pLo, -1, jmT)
			setFace(5, n, pHi, 1, jmT)
		}
	}
	padFace(4, Nq1*Nq2)
	padFace(5, Nq1*Nq2)
}
