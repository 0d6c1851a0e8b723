/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/notargets/gosem/InputParameters"
	"github.com/notargets/gosem/basis"
	"github.com/notargets/gosem/geometry"
	"github.com/notargets/gosem/mesh"
	"github.com/notargets/gosem/metrics"
	"github.com/notargets/gosem/utils"
	"github.com/spf13/cobra"
)

// ThreeDCmd represents the 3D command
var ThreeDCmd = &cobra.Command{
	Use:   "3D",
	Short: "Curl invariant metric terms for three dimensional hexahedral elements",
	Long: `
Builds a 3D brick mesh, optionally warps it into curved elements, blends
element coordinates and computes the curl invariant metric terms of Kopriva
(2006), then verifies the discrete geometric conservation law,

gosem 3D `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("3D called")
		inputFile, _ := cmd.Flags().GetString("inputParametersFile")
		nq, _ := cmd.Flags().GetInt("nq")
		k, _ := cmd.Flags().GetInt("k")
		warp, _ := cmd.Flags().GetFloat64("warp")
		nmetric, _ := cmd.Flags().GetInt("nmetric")
		mp := &InputParameters.MetricsParameters{
			Title:         "3D metrics",
			Dimension:     3,
			Nq:            []int{nq, nq, nq},
			K:             []int{k, k, k},
			WarpAmplitude: warp,
		}
		if nmetric >= 0 {
			mp.NMetric = []int{nmetric, nmetric, nmetric}
		}
		mp = processInput(inputFile, mp)
		defer startProfile()()
		Run3D(mp)
	},
}

func init() {
	rootCmd.AddCommand(ThreeDCmd)
	ThreeDCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file of run parameters")
	ThreeDCmd.Flags().IntP("nq", "n", 5, "collocation point count per direction")
	ThreeDCmd.Flags().IntP("k", "k", 4, "element count per direction")
	ThreeDCmd.Flags().Float64P("warp", "w", 0, "sinusoidal mesh warp amplitude")
	ThreeDCmd.Flags().IntP("nmetric", "m", -1, "geometry degree cap per direction, -1 for no filtering")
}

func Run3D(mp *InputParameters.MetricsParameters) {
	var (
		Nq1, Nq2, Nq3 = mp.Nq[0], mp.Nq[1], mp.Nq[2]
		Np            = Nq1 * Nq2 * Nq3
	)
	R1 := basis.JacobiGL(0, 0, Nq1-1)
	R2 := basis.JacobiGL(0, 0, Nq2-1)
	R3 := basis.JacobiGL(0, 0, Nq3-1)
	D1 := basis.Dmatrix1D(Nq1-1, R1)
	D2 := basis.Dmatrix1D(Nq2-1, R2)
	D3 := basis.Dmatrix1D(Nq3-1, R3)
	b := mesh.NewBrick3D(
		[3]float64{mp.XMin[0], mp.XMin[1], mp.XMin[2]},
		[3]float64{mp.XMax[0], mp.XMax[1], mp.XMax[2]},
		mp.K[0], mp.K[1], mp.K[2])
	b.Connect()

	X := utils.NewMatrix(Np, b.K)
	Y := utils.NewMatrix(Np, b.K)
	Z := utils.NewMatrix(Np, b.K)
	geometry.BlendGrid3D(b.VX, b.VY, b.VZ, R1, R2, R3, X, Y, Z)
	if mp.WarpAmplitude != 0 {
		mesh.Warp3D(X, Y, Z, mp.WarpAmplitude)
	}

	nm := mp.NMetricOrDefault()
	mt := metrics.NewMetrics3D(R1, R2, R3, D1, D2, D3,
		[3]int{nm[0], nm[1], nm[2]}, b.K, mp.Parallelism)
	mt.Compute(X, Y, Z)

	reportJacobian(mt.J)
	fmt.Printf("normal unit deviation   = %v\n", normalDeviation(mt.Nx, mt.Ny, mt.Nz))
	fmt.Printf("discrete GCL residual   = %v\n", mt.GCLResidual())
}
