// Package hrm defines the Session state, long-format Record, options,
// and sentinel errors.
package hrm

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/hrmelt/cluster"
	"github.com/katalvlaran/hrmelt/curve"
)

// Sentinel errors for session operations.
var (
	// ErrNilDataset indicates New was called with a nil dataset.
	ErrNilDataset = errors.New("hrm: dataset must be non-nil")
	// ErrNoAssignment indicates Reshape was called while the cached
	// cluster assignment is invalidated (after Subset, before Cluster).
	ErrNoAssignment = errors.New("hrm: no cluster assignment; run Cluster after changing the temperature window")
	// ErrAssignmentMismatch indicates reshaped data whose sample count
	// differs from the cached assignment length.
	ErrAssignmentMismatch = errors.New("hrm: cluster assignment length must equal sample count")
)

// Curves is the read surface Reshape needs from curve data. It is
// satisfied by *curve.Dataset and by any derived dataset that keeps the
// view's sample ordering.
type Curves interface {
	Temperatures() []float64
	SampleNames() []string
	Sample(name string) ([]float64, bool)
}

// Record is one row of the long-format reshape output: a single
// (sample, temperature point) observation with its cluster label.
type Record struct {
	Temperature float64
	Sample      string
	Intensity   float64
	Cluster     int
}

// Session owns the original dataset, the current temperature-window
// view, the clustering configuration, and the cached assignment.
type Session struct {
	full   *curve.Dataset // dataset as constructed; Subset always slices from here
	view   *curve.Dataset // current working window
	copts  cluster.Options
	labels []int // cached assignment for view's samples; nil when invalidated
	log    *zap.Logger
}

// Option mutates Session construction defaults.
type Option func(*Session)

// WithLogger installs a structured logger; the default is zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClusterOptions replaces the clustering configuration used by the
// eager construction-time run (default: cluster.DefaultOptions(),
// k-means into two groups).
func WithClusterOptions(opts cluster.Options) Option {
	return func(s *Session) { s.copts = opts }
}
