package hrm

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/hrmelt/cluster"
	"github.com/katalvlaran/hrmelt/curve"
)

// New constructs a Session over ds and eagerly clusters its normalized
// curves with the configured options, so the Session starts with a valid
// assignment. With defaults this is k-means into two groups; datasets
// with fewer samples than K fail with cluster.ErrBadClusterCount rather
// than clustering silently.
//
// Errors: ErrNilDataset, plus cluster sentinels from the eager run.
func New(ds *curve.Dataset, opts ...Option) (*Session, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}

	s := &Session{
		full:  ds,
		view:  ds,
		copts: cluster.DefaultOptions(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := s.Cluster(s.copts); err != nil {
		return nil, err
	}

	return s, nil
}

// Dataset returns the current working view.
func (s *Session) Dataset() *curve.Dataset { return s.view }

// Subset narrows the working view to temperatures strictly inside
// (low, high). The window is always cut from the original dataset, so
// repeated calls never compound. The cached cluster assignment described
// the previous rows and is invalidated; Reshape refuses to run until the
// next Cluster call. An empty window is legal.
func (s *Session) Subset(low, high float64) {
	s.view = s.full.Subset(low, high)
	s.labels = nil
	s.log.Debug("subset applied",
		zap.Float64("low", low),
		zap.Float64("high", high),
		zap.Int("rows", s.view.Len()),
	)
}

// Normalize rescales each sample of the current view to 0–100.
func (s *Session) Normalize() *curve.Dataset { return s.view.Normalize() }

// Diff returns the melting-rate curves of the current view.
func (s *Session) Diff() *curve.Dataset { return s.view.Normalize().Diff() }

// MeltingTemperatures returns each sample's peak melting temperature in
// the current view. Degenerate samples yield Tm = NaN.
func (s *Session) MeltingTemperatures() []curve.MeltingTemperature {
	return s.Diff().MeltingTemperatures()
}

// Subtract removes the named reference sample's normalized curve from
// every sample of the current view.
//
// Errors: curve.ErrSampleNotFound.
func (s *Session) Subtract(ref string) (*curve.Dataset, error) {
	return s.view.Normalize().Subtract(ref)
}

// Cluster groups the current view's samples by normalized curve shape
// and caches the assignment for Reshape. The options also become the
// Session's configuration for subsequent runs. On error the previously
// cached assignment is left untouched.
//
// Errors: cluster sentinels (ErrUnsupportedMethod, ErrBadClusterCount,
// ErrBadNeighborhood, ErrNoSamples).
func (s *Session) Cluster(opts cluster.Options) ([]int, error) {
	labels, err := cluster.Cluster(s.view.Normalize().Matrix(), opts)
	if err != nil {
		return nil, err
	}

	s.copts = opts
	s.labels = labels
	s.log.Debug("samples clustered",
		zap.Stringer("method", opts.Method),
		zap.Int("samples", len(labels)),
	)

	return s.Labels(), nil
}

// Labels returns a copy of the cached cluster assignment, or nil when it
// is invalidated.
func (s *Session) Labels() []int {
	if s.labels == nil {
		return nil
	}

	return append([]int(nil), s.labels...)
}
