// Package cluster - unified dispatcher for clustering strategies.
//
// This file provides the canonical entry point: validate the feature
// matrix and Options, then route to the requested strategy
// (KMeans / Agglomerative / DBSCAN).
package cluster

import "gonum.org/v1/gonum/mat"

// Cluster validates inputs and routes to the chosen strategy.
//
// Contracts:
//   - features holds one row per sample; columns are temperature points.
//     All samples share one feature dimensionality by construction.
//   - KMeans / Agglomerative require 1 <= opts.K <= row count.
//   - DBSCAN requires opts.Eps > 0 and opts.MinPoints >= 1; opts.K is ignored.
//
// The result always has exactly one label per sample row. Partitioning
// strategies draw labels from {0..K-1}; DBSCAN draws from {0..} plus
// Noise. Rows containing NaN are tolerated, never fatal (see doc.go).
//
// Errors: strict sentinels from types.go (ErrNoSamples,
// ErrBadClusterCount, ErrBadNeighborhood, ErrUnsupportedMethod).
//
// Complexity: validation O(1); the rest per strategy (see doc.go).
func Cluster(features *mat.Dense, opts Options) ([]int, error) {
	n, err := validate(features, opts)
	if err != nil {
		return nil, err
	}

	switch opts.Method {
	case KMeans:
		return kmeansPartition(features, n, opts), nil
	case Agglomerative:
		return wardAgglomerate(features, n, opts.K), nil
	case DBSCAN:
		return densityScan(features, n, opts), nil
	default:
		return nil, ErrUnsupportedMethod
	}
}

// validate enforces the per-strategy option contracts and returns the
// sample count.
func validate(features *mat.Dense, opts Options) (int, error) {
	if features == nil || features.IsEmpty() {
		return 0, ErrNoSamples
	}
	n, _ := features.Dims()

	switch opts.Method {
	case KMeans, Agglomerative:
		if opts.K < 1 || opts.K > n {
			return 0, ErrBadClusterCount
		}
	case DBSCAN:
		if opts.Eps <= 0 || opts.MinPoints < 1 {
			return 0, ErrBadNeighborhood
		}
	default:
		return 0, ErrUnsupportedMethod
	}

	return n, nil
}
