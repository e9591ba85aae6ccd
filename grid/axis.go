// SPDX-License-Identifier: MIT

package grid

import "math"

// Axis is an ordered sequence of evenly spaced values.
type Axis struct {
	values []float64
}

// validateRange enforces n ≥ 1, finite bounds and lo ≤ hi.
// Complexity: O(1).
func validateRange(method string, lo, hi float64, n int) error {
	if n < 1 {
		return gridErrorf(method, ErrInvalidGridSpec, "cardinality must be ≥ 1, got %d", n)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return gridErrorf(method, ErrInvalidGridSpec, "bounds must be finite, got [%g, %g]", lo, hi)
	}
	if lo > hi {
		return gridErrorf(method, ErrInvalidGridSpec, "min %g > max %g", lo, hi)
	}

	return nil
}

// Linspace returns n evenly spaced values over [lo, hi], endpoints included.
//
// Stage 1 (Validate): n ≥ 1, finite bounds, lo ≤ hi.
// Stage 2 (Execute): v[i] = lo + i*step, step = (hi-lo)/(n-1).
// Stage 3 (Finalize): pin v[n-1] = hi so the endpoint is exact under rounding.
//
// Complexity: O(n) time and memory.
func Linspace(lo, hi float64, n int) (Axis, error) {
	if err := validateRange("Linspace", lo, hi, n); err != nil {
		return Axis{}, err
	}

	values := make([]float64, n)
	values[0] = lo
	if n == 1 {
		return Axis{values: values}, nil
	}

	step := (hi - lo) / float64(n-1)
	for i := 1; i < n-1; i++ {
		values[i] = lo + float64(i)*step
	}
	values[n-1] = hi

	return Axis{values: values}, nil
}

// Len returns the number of grid points.
func (a Axis) Len() int { return len(a.values) }

// At returns the i-th grid value or ErrOutOfRange.
func (a Axis) At(i int) (float64, error) {
	if i < 0 || i >= len(a.values) {
		return 0, gridErrorf("Axis.At", ErrOutOfRange, "index %d, len %d", i, len(a.values))
	}

	return a.values[i], nil
}

// Values returns a copy of the grid values.
func (a Axis) Values() []float64 {
	out := make([]float64, len(a.values))
	copy(out, a.values)

	return out
}

// Min returns the first grid value (0 for an empty Axis).
func (a Axis) Min() float64 {
	if len(a.values) == 0 {
		return 0
	}

	return a.values[0]
}

// Max returns the last grid value (0 for an empty Axis).
func (a Axis) Max() float64 {
	if len(a.values) == 0 {
		return 0
	}

	return a.values[len(a.values)-1]
}

// Step returns the constant spacing between consecutive points, 0 when Len() < 2.
func (a Axis) Step() float64 {
	if len(a.values) < 2 {
		return 0
	}

	return (a.Max() - a.Min()) / float64(len(a.values)-1)
}
