// SPDX-License-Identifier: MIT
// Package: relocate/grid
//
// errors.go — sentinel errors for the grid package.

package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidGridSpec indicates a degenerate grid specification: cardinality
// below one, an inverted range (min > max), or a non-finite bound.
// Usage: if errors.Is(err, ErrInvalidGridSpec) { /* fix the config */ }.
var ErrInvalidGridSpec = errors.New("grid: invalid grid spec")

// ErrOutOfRange indicates an axis index outside [0, Len()).
var ErrOutOfRange = errors.New("grid: index out of range")

// gridErrorf prefixes err with the method and a formatted detail, keeping err matchable.
func gridErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
