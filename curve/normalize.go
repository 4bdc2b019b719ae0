package curve

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Normalize rescales every sample column independently onto the 0–100
// range: scaled[i] = (x[i] - min) / (max - min) * 100. For any
// non-constant column the minimum maps to exactly 0 and the maximum to
// exactly 100.
//
// Degenerate case: a constant column (max == min) has no defined scaling
// and yields NaN at every position; the sentinel propagates through
// downstream computations instead of raising.
//
// Complexity: O(S×T).
func (d *Dataset) Normalize() *Dataset {
	cols := make([][]float64, len(d.columns))
	for c, col := range d.columns {
		out := make([]float64, len(col))
		if len(col) == 0 {
			cols[c] = out
			continue
		}
		lo, hi := floats.Min(col), floats.Max(col)
		span := hi - lo
		if span == 0 {
			for i := range out {
				out[i] = math.NaN()
			}
			cols[c] = out
			continue
		}
		for i, v := range col {
			out[i] = (v - lo) / span * 100
		}
		cols[c] = out
	}

	return d.withColumns(cols)
}
