// Package hrmelt is an in-memory toolkit for High Resolution Melting
// (HRM) curve analysis — from raw fluorescence traces to melting
// temperatures, curve-shape clusters and plot-ready records.
//
// 🚀 What is hrmelt?
//
//	A focused, deterministic library that brings together:
//		• Dataset primitives: aligned temperature/intensity columns, value-semantic ops
//		• Normalization: independent per-sample min-max scaling to 0–100
//		• Melting-rate curves: negated forward differences with NaN edge policy
//		• Tm extraction: first-peak melting temperatures per sample
//		• Baseline subtraction: reference-relative difference curves
//		• Clustering: k-means, Ward agglomerative and DBSCAN strategies
//		• Reshaping: long-format records for plotting collaborators
//
// ✨ Why choose hrmelt?
//
//   - Deterministic – seeded centroid initialization, reproducible labels
//   - Degeneracy-safe – constant curves propagate NaN instead of panicking
//   - Minimal API – one Session facade over small, explicit packages
//   - No I/O – pure computation; loading and rendering stay outside
//
// Under the hood, everything is organized under three subpackages:
//
//	curve/   — Dataset, Subset, Normalize, Diff, Subtract, MeltingTemperatures
//	cluster/ — strategy-dispatched sample clustering over a feature matrix
//	hrm/     — analysis Session: cached cluster state, Reshape, logging
//
// Quick sketch:
//
//	Temperature  SampleA  SampleB        Tm(A) = 31.0
//	  30.0         10       20     ──►   Tm(B) = NaN (constant curve)
//	  31.0         50       20
//	  32.0         10       20
//
//	go get github.com/katalvlaran/hrmelt
package hrmelt
