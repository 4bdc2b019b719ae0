// Package curve holds the numeric core of High Resolution Melting (HRM)
// analysis: an aligned temperature/intensity Dataset and the per-sample
// curve operations derived from it.
//
// What:
//
//   - Dataset couples one ascending temperature axis with named sample
//     intensity columns of identical length. Every operation returns a
//     fresh Dataset; inputs are never mutated or aliased.
//   - Subset filters rows to an open temperature interval (low, high).
//   - Normalize rescales each sample independently to the 0–100 range.
//   - Diff derives the melting-rate curve: the negated forward difference
//     of a normalized curve, peaking at the melting temperature.
//   - MeltingTemperatures locates each sample's peak melting rate.
//   - Subtract removes a reference sample's curve from every column.
//
// Degeneracy policy:
//
//   - A constant sample column has no defined min-max scaling; Normalize
//     yields NaN at every position for that sample and the sentinel
//     propagates through Diff, MeltingTemperatures and distance math the
//     way IEEE-754 NaN does. Degeneracy is never an error.
//
// Complexity:
//
//   - Subset / Normalize / Diff / Subtract: O(S×T) time and memory
//     (S samples, T temperature points).
//   - MeltingTemperatures: O(S×T) time, O(S) memory.
//
// Errors:
//
//   - ErrNoSamples: construction with zero sample columns.
//   - ErrLengthMismatch: a sample column's length differs from the axis.
//   - ErrEmptySampleName / ErrDuplicateSample: invalid sample naming.
//   - ErrBadTable: FromTable input violates the tabular boundary contract.
//   - ErrSampleNotFound: Subtract with an unknown reference name.
package curve
