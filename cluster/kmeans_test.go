package cluster_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hrmelt/cluster"
)

// TestKMeans_TwoObviousGroups separates two near samples from one far
// sample; Lloyd converges to this split from any seeding of two distinct
// centroids.
func TestKMeans_TwoObviousGroups(t *testing.T) {
	m := features(
		[]float64{0, 0, 0},
		[]float64{1, 1, 1},
		[]float64{100, 100, 100},
	)
	opts := cluster.DefaultOptions() // KMeans, K=2

	labels, err := cluster.Cluster(m, opts)
	require.NoError(t, err)
	require.Len(t, labels, 3)

	assert.Equal(t, labels[0], labels[1], "near samples must share a group")
	assert.NotEqual(t, labels[0], labels[2], "the far sample must stand alone")
}

// TestKMeans_Deterministic verifies that equal seeds reproduce equal
// labels, the fixed-seed policy behind Seed==0.
func TestKMeans_Deterministic(t *testing.T) {
	m := features(
		[]float64{0, 1}, []float64{2, 1}, []float64{9, 8},
		[]float64{8, 9}, []float64{4, 4}, []float64{5, 5},
	)
	opts := cluster.DefaultOptions()
	opts.K = 3

	first, err := cluster.Cluster(m, opts)
	require.NoError(t, err)
	second, err := cluster.Cluster(m, opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	opts.Seed = 42
	third, err := cluster.Cluster(m, opts)
	require.NoError(t, err)
	fourth, err := cluster.Cluster(m, opts)
	require.NoError(t, err)
	assert.Equal(t, third, fourth)
}

// TestKMeans_SingleGroup collapses everything into label 0 when K=1.
func TestKMeans_SingleGroup(t *testing.T) {
	m := features([]float64{0, 0}, []float64{5, 5}, []float64{9, 9})
	opts := cluster.DefaultOptions()
	opts.K = 1

	labels, err := cluster.Cluster(m, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, labels)
}

// TestKMeans_DegenerateRow checks that an all-NaN row (a constant curve
// after normalization) neither panics nor poisons real centroids: it
// lands on the deterministic fallback label.
func TestKMeans_DegenerateRow(t *testing.T) {
	nan := math.NaN()
	m := features(
		[]float64{0, 0, 0},
		[]float64{100, 100, 100},
		[]float64{nan, nan, nan},
	)
	opts := cluster.DefaultOptions()

	labels, err := cluster.Cluster(m, opts)
	require.NoError(t, err)
	require.Len(t, labels, 3)

	assert.NotEqual(t, labels[0], labels[1], "real samples must still separate")
	assert.Equal(t, 0, labels[2], "degenerate sample keeps the fallback label")
}
