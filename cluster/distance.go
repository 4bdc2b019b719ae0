package cluster

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// rowDistance returns the Euclidean distance between rows i and j of m.
// NaN features propagate to a NaN distance.
func rowDistance(m *mat.Dense, i, j int) float64 {
	return floats.Distance(m.RawRowView(i), m.RawRowView(j), 2)
}

// distanceTo returns the Euclidean distance between row i of m and the
// point p. NaN features propagate to a NaN distance.
func distanceTo(m *mat.Dense, i int, p []float64) float64 {
	return floats.Distance(m.RawRowView(i), p, 2)
}

// rowHasNaN reports whether any feature of row i is NaN (a degenerate
// sample after constant-curve normalization).
func rowHasNaN(m *mat.Dense, i int) bool {
	for _, v := range m.RawRowView(i) {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}
