package curve

import "math"

// MeltingTemperatures interprets the receiver's columns as melting-rate
// curves and returns, per sample, the temperature at which that curve
// attains its maximum. The scan runs in ascending temperature order and
// keeps the first strict maximum, so ties resolve to the lowest
// temperature. Output order follows sample column order.
//
// NaN values never win a comparison; a column that is entirely NaN (a
// degenerate sample, or a zero-length dataset) yields Tm = NaN rather
// than an error.
//
// Complexity: O(S×T) time, O(S) memory.
func (d *Dataset) MeltingTemperatures() []MeltingTemperature {
	out := make([]MeltingTemperature, len(d.names))
	for c, col := range d.columns {
		best := math.Inf(-1)
		bestIdx := -1
		for i, v := range col {
			if v > best {
				best = v
				bestIdx = i
			}
		}
		tm := math.NaN()
		if bestIdx >= 0 {
			tm = d.temps[bestIdx]
		}
		out[c] = MeltingTemperature{Sample: d.names[c], Tm: tm}
	}

	return out
}
