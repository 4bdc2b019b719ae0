package cluster

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// defaultMaxIterations caps Lloyd refinement when Options.MaxIterations
// is unset.
const defaultMaxIterations = 100

// kmeansPartition runs Lloyd's algorithm: seed K centroids from a
// deterministic permutation of sample rows, then alternate
// nearest-centroid assignment and centroid recomputation until labels
// stabilize or the iteration cap is reached.
//
// Degenerate rows (NaN features) produce NaN distances everywhere, never
// win an assignment comparison, and are excluded from centroid means;
// they stay on the deterministic fallback label 0.
//
// Complexity: O(iter×n×K×T) time, O(K×T) extra memory.
func kmeansPartition(m *mat.Dense, n int, opts Options) []int {
	rng := rngFromSeed(opts.Seed)
	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = defaultMaxIterations
	}
	_, dims := m.Dims()

	// Seed centroids from a shuffled row order, preferring NaN-free rows;
	// degenerate rows are used only when nothing else remains.
	perm := permRows(n, rng)
	used := make([]bool, n)
	centroids := make([][]float64, 0, opts.K)
	for _, allowNaN := range []bool{false, true} {
		for _, i := range perm {
			if len(centroids) == opts.K {
				break
			}
			if used[i] || (!allowNaN && rowHasNaN(m, i)) {
				continue
			}
			used[i] = true
			centroids = append(centroids, append([]float64(nil), m.RawRowView(i)...))
		}
	}

	labels := make([]int, n)
	sums := make([][]float64, opts.K)
	counts := make([]int, opts.K)
	for c := range sums {
		sums[c] = make([]float64, dims)
	}

	for iter := 0; iter < maxIter; iter++ {
		// Assignment pass.
		changed := false
		for i := 0; i < n; i++ {
			best := math.Inf(1)
			bestC := labels[i]
			for c := range centroids {
				if d := distanceTo(m, i, centroids[c]); d < best {
					best, bestC = d, c
				}
			}
			if bestC != labels[i] {
				labels[i] = bestC
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		// Update pass: mean of assigned NaN-free rows; a cluster that
		// lost all members keeps its previous centroid.
		for c := range sums {
			counts[c] = 0
			for f := range sums[c] {
				sums[c][f] = 0
			}
		}
		for i := 0; i < n; i++ {
			if rowHasNaN(m, i) {
				continue
			}
			counts[labels[i]]++
			floats.Add(sums[labels[i]], m.RawRowView(i))
		}
		for c := range centroids {
			if counts[c] == 0 {
				continue
			}
			floats.ScaleTo(centroids[c], 1/float64(counts[c]), sums[c])
		}
	}

	return labels
}
