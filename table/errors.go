// SPDX-License-Identifier: MIT
// Package: relocate/table
//
// errors.go — sentinel errors for the table package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Methods attach context with %w (see tableErrorf), never by re-declaring messages.

package table

import (
	"errors"
	"fmt"
)

// ErrBadShape is returned when a requested shape has a non-positive extent
// or its cell count does not fit in an int.
var ErrBadShape = errors.New("table: invalid shape")

// ErrOutOfRange indicates that an index is outside the table bounds.
// Public indexers (At/Set) return this instead of panicking.
var ErrOutOfRange = errors.New("table: index out of range")

// tableErrorf wraps err with the table kind, method and offending index.
func tableErrorf(kind, method string, idx []int, err error) error {
	return fmt.Errorf("%s.%s%v: %w", kind, method, idx, err)
}
