package hrm

// Reshape flattens data into the long form consumed by plotting
// collaborators: one Record per (sample, temperature point), each tagged
// with the sample's cached cluster label. data is usually one of the
// Session's derived datasets (Normalize, Diff, Subtract output) and must
// keep the view's sample ordering.
//
// Ordering: samples in their original column order, temperatures in
// input order within each sample's block. Output length is exactly
// sampleCount × temperaturePointCount.
//
// Errors: ErrNoAssignment while the cached assignment is invalidated;
// ErrAssignmentMismatch when data's sample count differs from the
// assignment length.
func (s *Session) Reshape(data Curves) ([]Record, error) {
	if s.labels == nil {
		return nil, ErrNoAssignment
	}

	names := data.SampleNames()
	if len(names) != len(s.labels) {
		return nil, ErrAssignmentMismatch
	}

	temps := data.Temperatures()
	out := make([]Record, 0, len(names)*len(temps))
	for c, name := range names {
		col, _ := data.Sample(name)
		for i, t := range temps {
			out = append(out, Record{
				Temperature: t,
				Sample:      name,
				Intensity:   col[i],
				Cluster:     s.labels[c],
			})
		}
	}

	return out, nil
}
