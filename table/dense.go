// SPDX-License-Identifier: MIT
// Package table stores migration decisions in fixed-shape boolean arrays.
// Vector, Matrix and Tensor keep their cells in one flat row-major slice,
// so a (s, i, j) cell of a Tensor lives at s*rows*cols + i*cols + j.
package table

import (
	"math"
	"strings"
)

// cellCount multiplies the extents, rejecting non-positive dims and int overflow.
// Complexity: O(len(dims)).
func cellCount(dims ...int) (int, error) {
	n := 1
	for _, d := range dims {
		if d <= 0 {
			return 0, ErrBadShape
		}
		if n > math.MaxInt/d {
			return 0, ErrBadShape
		}
		n *= d
	}

	return n, nil
}

// countTrue returns the number of set cells in data.
func countTrue(data []bool) int {
	var n int
	for _, v := range data {
		if v {
			n++
		}
	}

	return n
}

// Vector is a one-dimensional boolean table.
type Vector struct {
	data []bool
}

// NewVector allocates an n-cell Vector filled with false.
// Complexity: O(n) time and memory.
func NewVector(n int) (*Vector, error) {
	if _, err := cellCount(n); err != nil {
		return nil, err
	}

	return &Vector{data: make([]bool, n)}, nil
}

// Len returns the number of cells.
func (v *Vector) Len() int { return len(v.data) }

// At returns the cell at i or ErrOutOfRange.
func (v *Vector) At(i int) (bool, error) {
	if i < 0 || i >= len(v.data) {
		return false, tableErrorf("Vector", "At", []int{i}, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set writes b at i or returns ErrOutOfRange.
func (v *Vector) Set(i int, b bool) error {
	if i < 0 || i >= len(v.data) {
		return tableErrorf("Vector", "Set", []int{i}, ErrOutOfRange)
	}
	v.data[i] = b

	return nil
}

// Count returns the number of true cells.
func (v *Vector) Count() int { return countTrue(v.data) }

// Matrix is a rows×cols boolean table indexed [i, j].
type Matrix struct {
	r, c int    // number of rows and columns
	data []bool // flat backing storage, len == r*c
}

// NewMatrix allocates a rows×cols Matrix filled with false.
// Stage 1 (Validate): rows, cols > 0 and r*c fits in int.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewMatrix(rows, cols int) (*Matrix, error) {
	n, err := cellCount(rows, cols)
	if err != nil {
		return nil, err
	}

	return &Matrix{r: rows, c: cols, data: make([]bool, n)}, nil
}

// Rows returns the first extent.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the second extent.
func (m *Matrix) Cols() int { return m.c }

// indexOf computes the flat offset for (i, j) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) indexOf(method string, i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, tableErrorf("Matrix", method, []int{i, j}, ErrOutOfRange)
	}

	return i*m.c + j, nil
}

// At returns the cell at (i, j).
func (m *Matrix) At(i, j int) (bool, error) {
	idx, err := m.indexOf("At", i, j)
	if err != nil {
		return false, err
	}

	return m.data[idx], nil
}

// Set writes b at (i, j).
func (m *Matrix) Set(i, j int, b bool) error {
	idx, err := m.indexOf("Set", i, j)
	if err != nil {
		return err
	}
	m.data[idx] = b

	return nil
}

// Count returns the number of true cells.
func (m *Matrix) Count() int { return countTrue(m.data) }

// Equal reports whether o has the same shape and cells.
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String renders rows of 0/1 for debugging.
// Complexity: O(r*c).
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if m.data[i*m.c+j] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Tensor is a layers×rows×cols boolean table indexed [s, i, j].
type Tensor struct {
	s, r, c int
	data    []bool // flat backing storage, len == s*r*c
}

// NewTensor allocates a layers×rows×cols Tensor filled with false.
// Complexity: O(s*r*c) time and memory.
func NewTensor(layers, rows, cols int) (*Tensor, error) {
	n, err := cellCount(layers, rows, cols)
	if err != nil {
		return nil, err
	}

	return &Tensor{s: layers, r: rows, c: cols, data: make([]bool, n)}, nil
}

// Layers returns the first extent.
func (t *Tensor) Layers() int { return t.s }

// Rows returns the second extent.
func (t *Tensor) Rows() int { return t.r }

// Cols returns the third extent.
func (t *Tensor) Cols() int { return t.c }

func (t *Tensor) indexOf(method string, s, i, j int) (int, error) {
	if s < 0 || s >= t.s || i < 0 || i >= t.r || j < 0 || j >= t.c {
		return 0, tableErrorf("Tensor", method, []int{s, i, j}, ErrOutOfRange)
	}

	return (s*t.r+i)*t.c + j, nil
}

// At returns the cell at (s, i, j).
func (t *Tensor) At(s, i, j int) (bool, error) {
	idx, err := t.indexOf("At", s, i, j)
	if err != nil {
		return false, err
	}

	return t.data[idx], nil
}

// Set writes b at (s, i, j).
func (t *Tensor) Set(s, i, j int, b bool) error {
	idx, err := t.indexOf("Set", s, i, j)
	if err != nil {
		return err
	}
	t.data[idx] = b

	return nil
}

// Count returns the number of true cells.
func (t *Tensor) Count() int { return countTrue(t.data) }

// CountLayer returns the number of true cells in layer s, or 0 when s is out of range.
func (t *Tensor) CountLayer(s int) int {
	if s < 0 || s >= t.s {
		return 0
	}
	size := t.r * t.c

	return countTrue(t.data[s*size : (s+1)*size])
}

// Equal reports whether o has the same shape and cells.
func (t *Tensor) Equal(o *Tensor) bool {
	if o == nil || t.s != o.s || t.r != o.r || t.c != o.c {
		return false
	}
	for k := range t.data {
		if t.data[k] != o.data[k] {
			return false
		}
	}

	return true
}
