package cluster

import "gonum.org/v1/gonum/mat"

// densityScan runs classic DBSCAN over the sample rows: a sample with at
// least MinPoints neighbors (itself included) within Eps becomes a core
// sample and seeds a cluster, which then expands through the cores it can
// reach; everything left over keeps the Noise label.
//
// A degenerate row's distance to anything, itself included, is NaN, so
// its neighborhood is empty and it always lands in Noise.
//
// Complexity: O(n²×T) time, O(n) memory.
func densityScan(m *mat.Dense, n int, opts Options) []int {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = Noise
	}
	visited := make([]bool, n)

	next := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true
		seeds := neighborhood(m, n, i, opts.Eps)
		if len(seeds) < opts.MinPoints {
			continue // stays Noise unless a later cluster reaches it
		}

		labels[i] = next
		for q := 0; q < len(seeds); q++ {
			p := seeds[q]
			if labels[p] == Noise {
				labels[p] = next
			}
			if visited[p] {
				continue
			}
			visited[p] = true
			reach := neighborhood(m, n, p, opts.Eps)
			if len(reach) >= opts.MinPoints {
				seeds = append(seeds, reach...)
			}
		}
		next++
	}

	return labels
}

// neighborhood returns the indices of all rows within eps of row i,
// i itself included. NaN distances fail the comparison and are excluded.
func neighborhood(m *mat.Dense, n, i int, eps float64) []int {
	var nb []int
	for j := 0; j < n; j++ {
		if rowDistance(m, i, j) <= eps {
			nb = append(nb, j)
		}
	}

	return nb
}
