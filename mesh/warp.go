package mesh

import (
	"math"

	"github.com/notargets/gosem/utils"
)

// Warp2D deforms blended coordinate fields in place with a smooth sinusoidal
// perturbation, producing curved elements on a mesh over [0,1]^2. Amplitude
// should stay below about 0.15 to keep the Jacobian single-signed.
func Warp2D(X, Y utils.Matrix, amp float64) {
	for i, x := range X.DataP {
		y := Y.DataP[i]
		X.DataP[i] = x + amp*math.Sin(math.Pi*x)*math.Sin(2*math.Pi*y)
		Y.DataP[i] = y + amp*math.Sin(2*math.Pi*x)*math.Sin(math.Pi*y)
	}
}

// Warp3D is the three dimensional analogue of Warp2D over [0,1]^3.
func Warp3D(X, Y, Z utils.Matrix, amp float64) {
	for i, x := range X.DataP {
		y := Y.DataP[i]
		z := Z.DataP[i]
		X.DataP[i] = x + amp*math.Sin(math.Pi*x)*math.Sin(2*math.Pi*y)*math.Sin(2*math.Pi*z)
		Y.DataP[i] = y + amp*math.Sin(2*math.Pi*x)*math.Sin(math.Pi*y)*math.Sin(2*math.Pi*z)
		Z.DataP[i] = z + amp*math.Sin(2*math.Pi*x)*math.Sin(2*math.Pi*y)*math.Sin(math.Pi*z)
	}
}
