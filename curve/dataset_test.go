package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hrmelt/curve"
)

// threePoint builds the canonical two-sample fixture: axis 30..32,
// A is a melt peak, B is constant (degenerate).
func threePoint(t *testing.T) *curve.Dataset {
	t.Helper()
	d, err := curve.New(
		[]float64{30.0, 31.0, 32.0},
		[]string{"A", "B"},
		[][]float64{{10, 50, 10}, {20, 20, 20}},
	)
	require.NoError(t, err)

	return d
}

// TestNew_Errors verifies construction-time validation sentinels.
func TestNew_Errors(t *testing.T) {
	temps := []float64{30, 31, 32}
	cases := []struct {
		name    string
		names   []string
		columns [][]float64
		err     error
	}{
		{"NoSamples", nil, nil, curve.ErrNoSamples},
		{"NameColumnCountMismatch", []string{"A", "B"}, [][]float64{{1, 2, 3}}, curve.ErrLengthMismatch},
		{"ShortColumn", []string{"A"}, [][]float64{{1, 2}}, curve.ErrLengthMismatch},
		{"EmptyName", []string{""}, [][]float64{{1, 2, 3}}, curve.ErrEmptySampleName},
		{"DuplicateName", []string{"A", "A"}, [][]float64{{1, 2, 3}, {4, 5, 6}}, curve.ErrDuplicateSample},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := curve.New(temps, tc.names, tc.columns)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_CopiesInputs ensures the Dataset does not alias caller slices.
func TestNew_CopiesInputs(t *testing.T) {
	temps := []float64{30, 31, 32}
	col := []float64{10, 50, 10}
	d, err := curve.New(temps, []string{"A"}, [][]float64{col})
	require.NoError(t, err)

	temps[0] = -1
	col[0] = -1

	assert.Equal(t, []float64{30, 31, 32}, d.Temperatures())
	got, ok := d.Sample("A")
	require.True(t, ok)
	assert.Equal(t, []float64{10, 50, 10}, got)
}

// TestFromTable_Valid accepts mixed numeric cell types, including
// numeric strings, and preserves column order.
func TestFromTable_Valid(t *testing.T) {
	d, err := curve.FromTable(
		[]string{"Temperature", "A", "B"},
		[][]any{
			{30.0, 10, "20"},
			{"31.0", 50.0, 20},
			{32.0, "10", 20.0},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, []float64{30, 31, 32}, d.Temperatures())
	assert.Equal(t, []string{"A", "B"}, d.SampleNames())
	a, _ := d.Sample("A")
	assert.Equal(t, []float64{10, 50, 10}, a)
}

// TestFromTable_Errors verifies the tabular boundary contract.
func TestFromTable_Errors(t *testing.T) {
	cases := []struct {
		name   string
		header []string
		rows   [][]any
	}{
		{"TooFewColumns", []string{"Temperature"}, nil},
		{"WrongAxisName", []string{"Temp", "A"}, nil},
		{"RaggedRow", []string{"Temperature", "A"}, [][]any{{30.0}}},
		{"NonNumericCell", []string{"Temperature", "A"}, [][]any{{30.0, "melt"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := curve.FromTable(tc.header, tc.rows)
			assert.ErrorIs(t, err, curve.ErrBadTable)
		})
	}
}

// TestSubset_OpenInterval checks that both bounds are exclusive and the
// receiver survives unmodified.
func TestSubset_OpenInterval(t *testing.T) {
	d := threePoint(t)

	sub := d.Subset(30.0, 32.0)
	assert.Equal(t, []float64{31.0}, sub.Temperatures(), "bounds must be excluded")
	a, _ := sub.Sample("A")
	assert.Equal(t, []float64{50}, a, "sample columns must stay aligned")

	// Original is untouched.
	assert.Equal(t, 3, d.Len())
}

// TestSubset_Empty confirms a fully out-of-range window yields a legal
// zero-length Dataset rather than an error.
func TestSubset_Empty(t *testing.T) {
	d := threePoint(t)

	sub := d.Subset(100, 200)
	assert.Equal(t, 0, sub.Len())
	assert.Equal(t, 2, sub.SampleCount(), "sample naming survives an empty window")
}

// TestMatrix verifies the sample-rows feature matrix shape and the nil
// guard for empty data.
func TestMatrix(t *testing.T) {
	d := threePoint(t)

	m := d.Matrix()
	require.NotNil(t, m)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []float64{10, 50, 10}, m.RawRowView(0))

	assert.Nil(t, d.Subset(100, 200).Matrix(), "empty window has no matrix")
}
