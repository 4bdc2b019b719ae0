package curve

import (
	"fmt"

	"github.com/spf13/cast"
	"gonum.org/v1/gonum/mat"
)

// New constructs a Dataset from a temperature axis, sample names, and one
// intensity column per name. Inputs are deep-copied; the caller keeps
// ownership of its slices.
//
// Contracts:
//   - len(names) == len(columns), with at least one sample.
//   - Every name is non-empty and unique.
//   - Every column has exactly len(temps) values.
//
// A zero-length axis is legal (it models "no data in range" downstream).
//
// Errors: ErrNoSamples, ErrLengthMismatch, ErrEmptySampleName,
// ErrDuplicateSample.
//
// Complexity: O(S×T).
func New(temps []float64, names []string, columns [][]float64) (*Dataset, error) {
	if len(names) == 0 || len(columns) == 0 {
		return nil, ErrNoSamples
	}
	if len(names) != len(columns) {
		return nil, fmt.Errorf("%w: %d names vs %d columns", ErrLengthMismatch, len(names), len(columns))
	}

	d := &Dataset{
		temps:   append([]float64(nil), temps...),
		names:   make([]string, 0, len(names)),
		columns: make([][]float64, 0, len(columns)),
		index:   make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, ErrEmptySampleName
		}
		if _, dup := d.index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSample, name)
		}
		if len(columns[i]) != len(temps) {
			return nil, fmt.Errorf("%w: sample %q has %d values, axis has %d", ErrLengthMismatch, name, len(columns[i]), len(temps))
		}
		d.index[name] = i
		d.names = append(d.names, name)
		d.columns = append(d.columns, append([]float64(nil), columns[i]...))
	}

	return d, nil
}

// FromTable constructs a Dataset from a header row plus data rows, the
// in-memory shape a tabular loader hands over.
//
// Contracts:
//   - header[0] == TemperatureColumn; at least two columns total.
//   - Every row has exactly len(header) cells.
//   - Every cell converts to float64 (strings like "81.5" are accepted).
//
// Errors: ErrBadTable wrapping the specific violation, then whatever New
// rejects (duplicate or empty sample names).
//
// Complexity: O(S×T).
func FromTable(header []string, rows [][]any) (*Dataset, error) {
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: need the temperature column and at least one sample column, got %d columns", ErrBadTable, len(header))
	}
	if header[0] != TemperatureColumn {
		return nil, fmt.Errorf("%w: first column must be named %q, got %q", ErrBadTable, TemperatureColumn, header[0])
	}

	temps := make([]float64, len(rows))
	columns := make([][]float64, len(header)-1)
	for c := range columns {
		columns[c] = make([]float64, len(rows))
	}
	for r, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d cells, header has %d", ErrBadTable, r, len(row), len(header))
		}
		for c, cell := range row {
			v, err := cast.ToFloat64E(cell)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %q: %v", ErrBadTable, r, header[c], err)
			}
			if c == 0 {
				temps[r] = v
			} else {
				columns[c-1][r] = v
			}
		}
	}

	return New(temps, header[1:], columns)
}

// Len returns the number of temperature points.
func (d *Dataset) Len() int { return len(d.temps) }

// SampleCount returns the number of sample columns.
func (d *Dataset) SampleCount() int { return len(d.names) }

// Temperatures returns a copy of the temperature axis.
func (d *Dataset) Temperatures() []float64 {
	return append([]float64(nil), d.temps...)
}

// SampleNames returns a copy of the sample names in column order.
func (d *Dataset) SampleNames() []string {
	return append([]string(nil), d.names...)
}

// Sample returns a copy of the named sample's intensity column.
// The second result is false when the name is unknown.
func (d *Dataset) Sample(name string) ([]float64, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}

	return append([]float64(nil), d.columns[i]...), true
}

// Subset returns a new Dataset holding only rows whose temperature lies
// strictly inside (low, high). Sample columns are filtered identically,
// so alignment is preserved. An empty result is not an error; downstream
// operations treat a zero-length Dataset as "no data in range".
//
// Complexity: O(S×T).
func (d *Dataset) Subset(low, high float64) *Dataset {
	keep := make([]int, 0, len(d.temps))
	for i, t := range d.temps {
		if t > low && t < high {
			keep = append(keep, i)
		}
	}

	out := &Dataset{
		temps:   make([]float64, len(keep)),
		names:   append([]string(nil), d.names...),
		columns: make([][]float64, len(d.columns)),
		index:   make(map[string]int, len(d.index)),
	}
	for name, i := range d.index {
		out.index[name] = i
	}
	for j, i := range keep {
		out.temps[j] = d.temps[i]
	}
	for c, col := range d.columns {
		out.columns[c] = make([]float64, len(keep))
		for j, i := range keep {
			out.columns[c][j] = col[i]
		}
	}

	return out
}

// Matrix returns the dataset as a dense feature matrix with one row per
// sample and one column per temperature point, the shape the cluster
// engine consumes. Returns nil when the dataset has no rows or samples
// (gonum forbids zero-sized matrices).
//
// Complexity: O(S×T).
func (d *Dataset) Matrix() *mat.Dense {
	if len(d.temps) == 0 || len(d.names) == 0 {
		return nil
	}
	m := mat.NewDense(len(d.names), len(d.temps), nil)
	for r, col := range d.columns {
		m.SetRow(r, col)
	}

	return m
}

// withColumns builds a derived Dataset sharing the receiver's axis and
// naming but carrying freshly computed columns. Internal: callers hand
// over ownership of cols.
func (d *Dataset) withColumns(cols [][]float64) *Dataset {
	out := &Dataset{
		temps:   append([]float64(nil), d.temps...),
		names:   append([]string(nil), d.names...),
		columns: cols,
		index:   make(map[string]int, len(d.index)),
	}
	for name, i := range d.index {
		out.index[name] = i
	}

	return out
}
