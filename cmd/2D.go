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

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Metric terms for two dimensional quadrilateral elements",
	Long: `
Builds a 2D brick mesh, optionally warps it into curved elements, blends
element coordinates and computes Jacobians, metric derivatives and face
normals with surface Jacobians,

gosem 2D `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("2D called")
		inputFile, _ := cmd.Flags().GetString("inputParametersFile")
		nq, _ := cmd.Flags().GetInt("nq")
		k, _ := cmd.Flags().GetInt("k")
		warp, _ := cmd.Flags().GetFloat64("warp")
		mp := processInput(inputFile, &InputParameters.MetricsParameters{
			Title:         "2D metrics",
			Dimension:     2,
			Nq:            []int{nq, nq},
			K:             []int{k, k},
			WarpAmplitude: warp,
		})
		defer startProfile()()
		Run2D(mp)
	},
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file of run parameters")
	TwoDCmd.Flags().IntP("nq", "n", 5, "collocation point count per direction")
	TwoDCmd.Flags().IntP("k", "k", 8, "element count per direction")
	TwoDCmd.Flags().Float64P("warp", "w", 0, "sinusoidal mesh warp amplitude")
}

func Run2D(mp *InputParameters.MetricsParameters) {
	var (
		Nq1, Nq2 = mp.Nq[0], mp.Nq[1]
		Np       = Nq1 * Nq2
	)
	R1 := basis.JacobiGL(0, 0, Nq1-1)
	R2 := basis.JacobiGL(0, 0, Nq2-1)
	D1 := basis.Dmatrix1D(Nq1-1, R1)
	D2 := basis.Dmatrix1D(Nq2-1, R2)
	b := mesh.NewBrick2D([2]float64{mp.XMin[0], mp.XMin[1]}, [2]float64{mp.XMax[0], mp.XMax[1]}, mp.K[0], mp.K[1])
	b.Connect()

	X := utils.NewMatrix(Np, b.K)
	Y := utils.NewMatrix(Np, b.K)
	geometry.BlendGrid2D(b.VX, b.VY, R1, R2, X, Y)
	if mp.WarpAmplitude != 0 {
		mesh.Warp2D(X, Y, mp.WarpAmplitude)
	}

	nm := mp.NMetricOrDefault()
	mt := metrics.NewMetrics2D(R1, R2, D1, D2, [2]int{nm[0], nm[1]}, b.K, mp.Parallelism)
	mt.Compute(X, Y)

	reportJacobian(mt.J)
	fmt.Printf("normal unit deviation   = %v\n", normalDeviation(mt.Nx, mt.Ny))
}
