// SPDX-License-Identifier: MIT

package sweep

import "errors"

var (
	// ErrNilInput indicates a nil grid space or an unallocated solution.
	ErrNilInput = errors.New("sweep: nil input")

	// ErrShapeMismatch indicates the solution was allocated for a different state space.
	ErrShapeMismatch = errors.New("sweep: solution shape does not match grid")
)
