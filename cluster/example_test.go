package cluster_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hrmelt/cluster"
)

// ExampleCluster groups four melt-curve samples by shape with the
// deterministic Ward strategy: two wild-type-like curves and two
// variant-like curves fall into two groups.
func ExampleCluster() {
	// One row per sample; columns are normalized intensities per
	// temperature point.
	samples := mat.NewDense(4, 3, []float64{
		100, 50, 0,
		99, 48, 1,
		100, 10, 0,
		98, 12, 2,
	})

	opts := cluster.DefaultOptions()
	opts.Method = cluster.Agglomerative
	opts.K = 2

	labels, err := cluster.Cluster(samples, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("labels:", labels)

	// Output:
	// labels: [0 0 1 1]
}
