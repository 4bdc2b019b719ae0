package curve

import "fmt"

// Subtract removes the named reference sample's column pointwise from
// every column, the reference itself included (its adjusted curve is all
// zeros unless degenerate). Used on normalized data to highlight relative
// differences between melt curves.
//
// Errors: ErrSampleNotFound when ref is not among the sample names; no
// partial computation is performed.
//
// Complexity: O(S×T).
func (d *Dataset) Subtract(ref string) (*Dataset, error) {
	r, ok := d.index[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSampleNotFound, ref)
	}

	base := d.columns[r]
	cols := make([][]float64, len(d.columns))
	for c, col := range d.columns {
		out := make([]float64, len(col))
		for i, v := range col {
			out[i] = v - base[i]
		}
		cols[c] = out
	}

	return d.withColumns(cols), nil
}
