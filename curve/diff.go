package curve

import "math"

// Diff derives the melting-rate curve of every sample: the consecutive
// forward difference of the negated receiver column,
// d[i] = -(x[i] - x[i-1]) for i ≥ 1. The first element has no
// predecessor and is NaN. Applied to a normalized melt curve this is the
// rate of fluorescence loss between adjacent temperature steps, the
// characteristic melting-peak signal of HRM analysis.
//
// Output columns keep the axis length; NaN inputs propagate.
//
// Complexity: O(S×T).
func (d *Dataset) Diff() *Dataset {
	cols := make([][]float64, len(d.columns))
	for c, col := range d.columns {
		out := make([]float64, len(col))
		if len(col) > 0 {
			out[0] = math.NaN()
		}
		for i := 1; i < len(col); i++ {
			out[i] = -(col[i] - col[i-1])
		}
		cols[c] = out
	}

	return d.withColumns(cols)
}
