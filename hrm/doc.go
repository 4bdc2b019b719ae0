// Package hrm ties the melt-curve pipeline together into one analysis
// Session: a Dataset, its current temperature window, and the cached
// cluster assignment.
//
// What:
//
//   - New validates a curve.Dataset and eagerly clusters it (default:
//     k-means into two groups), so a fresh Session always carries a
//     usable assignment.
//   - Subset narrows the working view to an open temperature interval;
//     the slice is always taken from the ORIGINAL dataset, so successive
//     windows never compound, and the cached assignment is invalidated
//     because it described different rows.
//   - Normalize / Diff / MeltingTemperatures / Subtract delegate to the
//     current view (see package curve for semantics).
//   - Cluster recomputes and caches the assignment; a failed run leaves
//     the previous assignment untouched.
//   - Reshape flattens curve data plus the cached assignment into the
//     long-format Record sequence used by plotting collaborators.
//
// Concurrency: a Session is single-threaded state. Clustering and
// subsetting mutate the cached assignment, so concurrent callers must
// serialize access externally.
//
// Logging: the Session accepts an optional zap logger (WithLogger) and
// defaults to a nop logger; it emits Debug events on subset and
// recluster only.
//
// Errors:
//
//   - ErrNilDataset: New called without a dataset.
//   - ErrNoAssignment: Reshape while the cached assignment is invalidated.
//   - Plus curve and cluster sentinels forwarded from delegated calls.
package hrm
