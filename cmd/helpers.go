package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/notargets/gosem/InputParameters"
	"github.com/notargets/gosem/utils"
)

// processInput loads the YAML metrics parameter file, or falls back to the
// supplied defaults when no file is given.
func processInput(fileName string, defaults *InputParameters.MetricsParameters) (mp *InputParameters.MetricsParameters) {
	mp = defaults
	if len(fileName) != 0 {
		data, err := os.ReadFile(fileName)
		if err != nil {
			fmt.Printf("error reading input parameters file: %s\n", err.Error())
			os.Exit(1)
		}
		mp = &InputParameters.MetricsParameters{}
		if err = mp.Parse(data); err != nil {
			fmt.Printf("error parsing input parameters file: %s\n", err.Error())
			os.Exit(1)
		}
	} else if err := mp.Validate(); err != nil {
		fmt.Printf("error in input parameters: %s\n", err.Error())
		os.Exit(1)
	}
	mp.Print()
	return
}

// normalDeviation reports the largest deviation of any face normal from unit
// length, skipping the NaN padding of ragged faces.
func normalDeviation(components ...utils.Matrix) (dev float64) {
	var (
		nr, nc = components[0].Dims()
	)
	for i := 0; i < nr*nc; i++ {
		var norm2 float64
		if utils.IsNan(components[0].DataP[i]) {
			continue
		}
		for _, c := range components {
			norm2 += c.DataP[i] * c.DataP[i]
		}
		if d := math.Abs(math.Sqrt(norm2) - 1.); d > dev {
			dev = d
		}
	}
	return
}

func reportJacobian(J utils.Matrix) {
	fmt.Printf("J min/max               = %v / %v\n", J.Min(), J.Max())
}
