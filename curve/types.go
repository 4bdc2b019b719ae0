// Package curve defines the Dataset container, result records, and
// sentinel errors shared by all curve operations.
package curve

import "errors"

// TemperatureColumn is the mandated name of the axis column at the
// tabular boundary (FromTable).
const TemperatureColumn = "Temperature"

// Sentinel errors for curve operations.
var (
	// ErrNoSamples indicates construction with no sample columns.
	ErrNoSamples = errors.New("curve: dataset must contain at least one sample column")
	// ErrLengthMismatch indicates a sample column whose length differs from the temperature axis.
	ErrLengthMismatch = errors.New("curve: sample column length must equal temperature axis length")
	// ErrEmptySampleName indicates a sample with an empty name.
	ErrEmptySampleName = errors.New("curve: sample name must be non-empty")
	// ErrDuplicateSample indicates two sample columns sharing one name.
	ErrDuplicateSample = errors.New("curve: duplicate sample name")
	// ErrBadTable indicates tabular input violating the boundary contract
	// (missing Temperature header, fewer than two columns, ragged or
	// non-numeric rows).
	ErrBadTable = errors.New("curve: malformed input table")
	// ErrSampleNotFound indicates a reference sample name absent from the dataset.
	ErrSampleNotFound = errors.New("curve: reference sample not found")
)

// Dataset is an immutable-in-effect holder of a temperature axis and a
// named collection of sample intensity columns positionally aligned to it.
//
// Invariant: len(columns[i]) == len(temps) for every i, and
// index[names[i]] == i. All slices are owned by the Dataset; constructors
// and operations copy their inputs.
type Dataset struct {
	temps   []float64
	names   []string
	columns [][]float64
	index   map[string]int
}

// MeltingTemperature records the temperature at which one sample's
// melting-rate curve peaks. Tm is NaN for a degenerate (constant) sample.
type MeltingTemperature struct {
	Sample string
	Tm     float64
}
