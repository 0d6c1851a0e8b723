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

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "Metric terms for one dimensional line elements",
	Long: `
Builds a 1D mesh, blends element coordinates and computes Jacobians, metric
derivatives and endpoint normals,

gosem 1D `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("1D called")
		inputFile, _ := cmd.Flags().GetString("inputParametersFile")
		nq, _ := cmd.Flags().GetInt("nq")
		k, _ := cmd.Flags().GetInt("k")
		mp := processInput(inputFile, &InputParameters.MetricsParameters{
			Title:     "1D metrics",
			Dimension: 1,
			Nq:        []int{nq},
			K:         []int{k},
		})
		defer startProfile()()
		Run1D(mp)
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file of run parameters")
	OneDCmd.Flags().IntP("nq", "n", 5, "collocation point count")
	OneDCmd.Flags().IntP("k", "k", 10, "element count")
}

func Run1D(mp *InputParameters.MetricsParameters) {
	var (
		Nq = mp.Nq[0]
		K  = mp.K[0]
	)
	R := basis.JacobiGL(0, 0, Nq-1)
	D := basis.Dmatrix1D(Nq-1, R)
	b := mesh.NewBrick1D(mp.XMin[0], mp.XMax[0], K)
	b.Connect()

	X := utils.NewMatrix(Nq, K)
	geometry.BlendGrid1D(b.VX, R, X)

	mt := metrics.NewMetrics1D(R, D, mp.NMetricOrDefault()[0], K, mp.Parallelism)
	mt.Compute(X)

	reportJacobian(mt.J)
	fmt.Printf("normal unit deviation   = %v\n", normalDeviation(mt.Nx))
}
