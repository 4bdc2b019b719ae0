// Package cluster defines the strategy enum, options, and sentinel
// errors for sample clustering.
package cluster

import "errors"

// Sentinel errors for clustering operations.
var (
	// ErrNoSamples indicates an empty or nil feature matrix.
	ErrNoSamples = errors.New("cluster: feature matrix must contain at least one sample row")
	// ErrBadClusterCount indicates K < 1 or K > sample count for a partitioning strategy.
	ErrBadClusterCount = errors.New("cluster: cluster count must satisfy 1 <= K <= sample count")
	// ErrBadNeighborhood indicates Eps <= 0 or MinPoints < 1 for the density strategy.
	ErrBadNeighborhood = errors.New("cluster: eps must be positive and min points at least 1")
	// ErrUnsupportedMethod indicates an unrecognized clustering method.
	ErrUnsupportedMethod = errors.New("cluster: unsupported clustering method")
)

// Noise is the label assigned by the density strategy to samples that fit
// no dense neighborhood. Partitioning strategies never emit it.
const Noise = -1

// Method selects the clustering strategy.
type Method int

const (
	// KMeans partitions samples into exactly K groups by centroid distance.
	KMeans Method = iota
	// Agglomerative merges samples bottom-up into exactly K groups (Ward linkage).
	Agglomerative
	// DBSCAN groups samples by neighborhood density; ignores K, may emit Noise.
	DBSCAN
)

// String returns the canonical lowercase strategy name.
func (m Method) String() string {
	switch m {
	case KMeans:
		return "kmeans"
	case Agglomerative:
		return "agglomerative"
	case DBSCAN:
		return "dbscan"
	default:
		return "unknown"
	}
}

// Options configures a clustering run.
//
// Fields:
//   - Method        — strategy to dispatch to.
//   - K             — target group count (KMeans, Agglomerative only).
//   - Eps           — neighborhood radius in normalized-percentage units (DBSCAN only).
//   - MinPoints     — minimum neighborhood size, self included, for a core sample (DBSCAN only).
//   - Seed          — RNG seed for centroid initialization; 0 selects a fixed default,
//     so identical inputs and options always reproduce identical labels.
//   - MaxIterations — Lloyd iteration cap (KMeans only); <= 0 selects the default.
type Options struct {
	Method        Method
	K             int
	Eps           float64
	MinPoints     int
	Seed          int64
	MaxIterations int
}

// DefaultOptions returns the canonical configuration: KMeans with two
// groups, the 0.2 neighborhood radius conventional for 0–100 normalized
// melt curves, MinPoints=5, deterministic seeding, 100 Lloyd iterations.
func DefaultOptions() Options {
	return Options{
		Method:        KMeans,
		K:             2,
		Eps:           0.2,
		MinPoints:     5,
		Seed:          0,
		MaxIterations: 100,
	}
}
