// SPDX-License-Identifier: MIT

package table

import "fmt"

// Shape describes the extents of a Solution.
type Shape struct {
	NumR     int // cardinality of the net-return axis
	NumShare int // cardinality of the custody-share axis
}

// Solution holds one pair of decision tables per household configuration.
//
// Indexing:
//   - Single:             [iR]
//   - CoupleW, CoupleM:   [iRw, iRm]
//   - JointW/M, SoleW/M:  [iShare, iRw, iRm]
//
// Every table is owned by the Solution and is independent of the others.
type Solution struct {
	Single  *Vector
	CoupleW *Matrix
	CoupleM *Matrix
	JointW  *Tensor
	JointM  *Tensor
	SoleW   *Tensor
	SoleM   *Tensor
}

// NewSolution allocates all tables for shape s, filled with false.
// Returns ErrBadShape (wrapped) when any extent is invalid.
// Complexity: O(NumR² · NumShare) memory.
func NewSolution(s Shape) (*Solution, error) {
	var (
		sol Solution
		err error
	)
	if sol.Single, err = NewVector(s.NumR); err != nil {
		return nil, fmt.Errorf("NewSolution: single: %w", err)
	}
	for _, dst := range []**Matrix{&sol.CoupleW, &sol.CoupleM} {
		if *dst, err = NewMatrix(s.NumR, s.NumR); err != nil {
			return nil, fmt.Errorf("NewSolution: couple: %w", err)
		}
	}

	tensors := []**Tensor{&sol.JointW, &sol.JointM, &sol.SoleW, &sol.SoleM}
	for _, dst := range tensors {
		if *dst, err = NewTensor(s.NumShare, s.NumR, s.NumR); err != nil {
			return nil, fmt.Errorf("NewSolution: divorced: %w", err)
		}
	}

	return &sol, nil
}

// Allocated reports whether sol is non-nil and holds every table.
func (sol *Solution) Allocated() bool {
	return sol != nil && sol.Single != nil &&
		sol.CoupleW != nil && sol.CoupleM != nil &&
		sol.JointW != nil && sol.JointM != nil &&
		sol.SoleW != nil && sol.SoleM != nil
}

// Shape returns the extents the Solution was allocated with.
// An unallocated Solution has the zero Shape.
func (sol *Solution) Shape() Shape {
	if !sol.Allocated() {
		return Shape{}
	}

	return Shape{NumR: sol.CoupleW.Rows(), NumShare: sol.JointW.Layers()}
}

// Equal reports whether every table of o matches sol cell by cell.
// Unallocated solutions are never equal.
func (sol *Solution) Equal(o *Solution) bool {
	if !sol.Allocated() || !o.Allocated() {
		return false
	}
	if sol.Single.Len() != o.Single.Len() {
		return false
	}
	for i := 0; i < sol.Single.Len(); i++ {
		if sol.Single.data[i] != o.Single.data[i] {
			return false
		}
	}

	return sol.CoupleW.Equal(o.CoupleW) && sol.CoupleM.Equal(o.CoupleM) &&
		sol.JointW.Equal(o.JointW) && sol.JointM.Equal(o.JointM) &&
		sol.SoleW.Equal(o.SoleW) && sol.SoleM.Equal(o.SoleM)
}
