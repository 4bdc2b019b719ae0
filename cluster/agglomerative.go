package cluster

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// wardAgglomerate merges samples bottom-up into exactly k groups using
// Ward linkage: each merge is the pair whose union yields the minimum
// increase in within-cluster variance. Inter-cluster distances are
// maintained incrementally with the Lance–Williams update on squared
// Euclidean distances, so the whole run is deterministic.
//
// Final labels are renumbered by the order in which each surviving group
// first appears in the sample sequence, so label 0 always contains
// sample 0. Degenerate rows carry NaN distances, lose every minimum
// comparison, and are merged last by lowest active index.
//
// Complexity: O(n³) time, O(n²) memory.
func wardAgglomerate(m *mat.Dense, n, k int) []int {
	// Pairwise squared-distance matrix.
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dd := rowDistance(m, i, j)
			d[i][j] = dd * dd
			d[j][i] = d[i][j]
		}
	}

	active := make([]bool, n)
	size := make([]int, n)
	members := make([][]int, n)
	for i := range active {
		active[i] = true
		size[i] = 1
		members[i] = []int{i}
	}

	for merges := 0; merges < n-k; merges++ {
		// Closest active pair; NaN never wins a strict comparison.
		bi, bj := -1, -1
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if active[j] && d[i][j] < best {
					best, bi, bj = d[i][j], i, j
				}
			}
		}
		if bi < 0 {
			// Every remaining pair is NaN-distanced: merge the two
			// lowest active indices to keep the group count exact.
			for i := 0; i < n && bj < 0; i++ {
				if !active[i] {
					continue
				}
				if bi < 0 {
					bi = i
				} else {
					bj = i
				}
			}
		}

		// Lance–Williams update folds bj into bi.
		ni, nj := float64(size[bi]), float64(size[bj])
		for h := 0; h < n; h++ {
			if !active[h] || h == bi || h == bj {
				continue
			}
			nh := float64(size[h])
			d[bi][h] = ((ni+nh)*d[bi][h] + (nj+nh)*d[bj][h] - nh*d[bi][bj]) / (ni + nj + nh)
			d[h][bi] = d[bi][h]
		}
		size[bi] += size[bj]
		members[bi] = append(members[bi], members[bj]...)
		active[bj] = false
	}

	// Renumber surviving groups by first sample appearance.
	root := make([]int, n)
	for c := 0; c < n; c++ {
		if !active[c] {
			continue
		}
		for _, s := range members[c] {
			root[s] = c
		}
	}
	labels := make([]int, n)
	relabel := make(map[int]int, k)
	for i := 0; i < n; i++ {
		lab, ok := relabel[root[i]]
		if !ok {
			lab = len(relabel)
			relabel[root[i]] = lab
		}
		labels[i] = lab
	}

	return labels
}
