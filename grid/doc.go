// SPDX-License-Identifier: MIT

// Package grid builds the discretized state space of the migration model.
//
// What is built?
//
//	R axis      — num_R evenly spaced net migration returns in [min_R, max_R],
//	              shared by both parents.
//	Share axis  — num_share evenly spaced custody shares (mother's fraction of
//	              time with the child) in [min_share, max_share].
//	(Rw, Rm)    — the num_R × num_R pairwise expansion of the R axis with itself,
//	              row index = mother's return, column index = father's return.
//	              It is never materialized; Space.Pair resolves it by index lookup.
//
// Contract:
//   - Axis endpoints are exact: At(0) == min, At(n-1) == max.
//   - n == 1 yields the single value min (numpy.linspace semantics).
//   - Degenerate specs (n < 1, min > max, non-finite bounds) fail with
//     ErrInvalidGridSpec; check with errors.Is.
//
// Axes are immutable after Build; Values returns a copy.
package grid
