// Package cluster groups melt-curve samples by shape similarity.
//
// What:
//
//   - Cluster is the unified dispatcher: it accepts a dense feature
//     matrix (one row per sample, temperature points as features) plus
//     Options, and routes to the requested strategy.
//   - KMeans: centroid partitioning into exactly K groups (Lloyd's
//     algorithm seeded from a deterministic permutation of sample rows).
//   - Agglomerative: bottom-up Ward-linkage merging into exactly K
//     groups; deterministic, labels renumbered by first appearance.
//   - DBSCAN: density scan with neighborhood radius Eps and MinPoints;
//     takes no K, emits a variable number of clusters plus Noise (-1).
//
// Design principles:
//
//   - Deterministic: seed routing for the centroid strategy; no
//     time-based randomness (Seed==0 selects a fixed default seed).
//   - Strict sentinels: only errors from types.go; an unknown Method is
//     ErrUnsupportedMethod, never a silent no-op.
//   - NaN tolerance: a degenerate sample row (all NaN after
//     normalization) never wins a distance comparison; it falls to a
//     deterministic assignment (partitioning strategies) or to Noise
//     (density strategy). Distance math never panics on NaN.
//
// Complexity:
//
//   - KMeans:        O(iter×n×K×T).
//   - Agglomerative: O(n³) time, O(n²) memory (Lance–Williams updates).
//   - DBSCAN:        O(n²×T).
//
// Errors:
//
//   - ErrNoSamples, ErrBadClusterCount, ErrBadNeighborhood,
//     ErrUnsupportedMethod.
package cluster
