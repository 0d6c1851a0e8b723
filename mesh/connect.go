package mesh

import (
	"github.com/james-bowman/sparse"
)

// Connect fills EToE and EToF from the element-to-vertex table by forming the
// sparse face-to-vertex incidence matrix and matching faces that share all of
// their vertices through the FToV * FToV^T product. Unconnected (boundary)
// faces point back at themselves.
func (b *Brick) Connect() {
	var (
		fv         = faceVertices(b.Dim)
		Nfaces     = 2 * b.Dim
		Nfv        = len(fv[0])
		TotalFaces = Nfaces * b.K
		Nv         = b.Nvert()
	)
	FToV := sparse.NewDOK(TotalFaces, Nv)
	var sk int
	for k := 0; k < b.K; k++ {
		for face := 0; face < Nfaces; face++ {
			for _, v := range fv[face] {
				FToV.Set(sk, b.EToV[k][v], 1)
			}
			sk++
		}
	}
	FToF := sparse.NewCSR(TotalFaces, TotalFaces, nil, nil, nil)
	csr := FToV.ToCSR()
	FToF.Mul(csr, csr.T())

	b.EToE = make([][]int, b.K)
	b.EToF = make([][]int, b.K)
	for k := 0; k < b.K; k++ {
		b.EToE[k] = make([]int, Nfaces)
		b.EToF[k] = make([]int, Nfaces)
		for face := 0; face < Nfaces; face++ {
			b.EToE[k][face] = k
			b.EToF[k][face] = face
		}
	}
	// Two distinct faces sharing all Nfv vertices are connected
	FToF.DoNonZero(func(gf1, gf2 int, val float64) {
		if gf1 == gf2 || val != float64(Nfv) {
			return
		}
		k1, f1 := gf1/Nfaces, gf1%Nfaces
		k2, f2 := gf2/Nfaces, gf2%Nfaces
		b.EToE[k1][f1] = k2
		b.EToF[k1][f1] = f2
	})
}
