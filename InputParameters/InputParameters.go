package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type MetricsParameters struct {
	Title         string    `yaml:"Title"`
	Dimension     int       `yaml:"Dimension"`
	Nq            []int     `yaml:"Nq"`      // Collocation point count per direction
	NMetric       []int     `yaml:"NMetric"` // Geometry degree cap per direction; empty disables filtering
	K             []int     `yaml:"K"`       // Element count per direction
	XMin          []float64 `yaml:"XMin"`    // Mesh box extents
	XMax          []float64 `yaml:"XMax"`
	WarpAmplitude float64   `yaml:"WarpAmplitude"` // Sinusoidal mesh deformation, 0 for straight sided
	Parallelism   int       `yaml:"Parallelism"`   // Worker count for element-parallel compute
}

func (mp *MetricsParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, mp); err != nil {
		return err
	}
	return mp.Validate()
}

func (mp *MetricsParameters) Validate() error {
	d := mp.Dimension
	if d < 1 || d > 3 {
		return fmt.Errorf("Dimension must be 1, 2 or 3, have %d", d)
	}
	if len(mp.Nq) != d || len(mp.K) != d {
		return fmt.Errorf("Nq and K must each have %d entries", d)
	}
	for i, nq := range mp.Nq {
		if nq < 2 {
			return fmt.Errorf("Nq[%d] must be at least 2, have %d", i, nq)
		}
	}
	if len(mp.NMetric) != 0 && len(mp.NMetric) != d {
		return fmt.Errorf("NMetric must be empty or have %d entries", d)
	}
	for i, nm := range mp.NMetric {
		if nm < 0 {
			return fmt.Errorf("NMetric[%d] must be non-negative, have %d", i, nm)
		}
	}
	if len(mp.XMin) == 0 {
		mp.XMin = make([]float64, d)
	}
	if len(mp.XMax) == 0 {
		mp.XMax = make([]float64, d)
		for i := range mp.XMax {
			mp.XMax[i] = 1
		}
	}
	if len(mp.XMin) != d || len(mp.XMax) != d {
		return fmt.Errorf("XMin and XMax must each have %d entries", d)
	}
	if mp.Parallelism < 1 {
		mp.Parallelism = 1
	}
	return nil
}

// NMetricOrDefault returns the per-direction degree cap, defaulting to Nq-1
// (no filtering) when unset.
func (mp *MetricsParameters) NMetricOrDefault() (nm []int) {
	nm = make([]int, mp.Dimension)
	for i := range nm {
		if len(mp.NMetric) != 0 {
			nm[i] = mp.NMetric[i]
		} else {
			nm[i] = mp.Nq[i] - 1
		}
	}
	return
}

func (mp *MetricsParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mp.Title)
	fmt.Printf("[%d]\t\t\t= Dimension\n", mp.Dimension)
	fmt.Printf("%v\t\t= Nq\n", mp.Nq)
	fmt.Printf("%v\t\t= NMetric\n", mp.NMetricOrDefault())
	fmt.Printf("%v\t\t= K\n", mp.K)
	fmt.Printf("%v -> %v\t= Extents\n", mp.XMin, mp.XMax)
	fmt.Printf("%8.5f\t\t= WarpAmplitude\n", mp.WarpAmplitude)
	fmt.Printf("[%d]\t\t\t= Parallelism\n", mp.Parallelism)
}
