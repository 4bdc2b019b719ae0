package curve_test

import (
	"fmt"

	"github.com/katalvlaran/hrmelt/curve"
)

// ExampleDataset_MeltingTemperatures walks the canonical HRM pipeline:
// build a Dataset, normalize to 0–100, derive melting-rate curves, and
// read off each sample's melting temperature. Sample B is constant, so
// its scaling is undefined and its Tm is NaN.
func ExampleDataset_MeltingTemperatures() {
	d, err := curve.New(
		[]float64{30.0, 31.0, 32.0},
		[]string{"A", "B"},
		[][]float64{{10, 50, 10}, {20, 20, 20}},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, rec := range d.Normalize().Diff().MeltingTemperatures() {
		fmt.Printf("%s: %.1f\n", rec.Sample, rec.Tm)
	}

	// Output:
	// A: 32.0
	// B: NaN
}

// ExampleDataset_Subset demonstrates the open temperature interval: both
// bounds are excluded and the original Dataset is untouched.
func ExampleDataset_Subset() {
	d, _ := curve.New(
		[]float64{78.0, 79.0, 80.0, 81.0},
		[]string{"S"},
		[][]float64{{40, 30, 20, 10}},
	)

	sub := d.Subset(78.0, 81.0)
	fmt.Println("window:", sub.Temperatures())
	fmt.Println("original rows:", d.Len())

	// Output:
	// window: [79 80]
	// original rows: 4
}
