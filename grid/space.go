// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Spec carries the bounds and cardinalities of both state dimensions.
type Spec struct {
	MinR, MaxR         float64
	NumR               int
	MinShare, MaxShare float64
	NumShare           int
}

// Space is the built state space: the net-return axis shared by both
// parents and the custody-share axis.
type Space struct {
	R     Axis
	Share Axis
}

// Build constructs the R and share axes from spec.
// Errors wrap ErrInvalidGridSpec with the offending dimension.
// Complexity: O(NumR + NumShare).
func Build(spec Spec) (*Space, error) {
	r, err := Linspace(spec.MinR, spec.MaxR, spec.NumR)
	if err != nil {
		return nil, fmt.Errorf("Build: R axis: %w", err)
	}
	share, err := Linspace(spec.MinShare, spec.MaxShare, spec.NumShare)
	if err != nil {
		return nil, fmt.Errorf("Build: share axis: %w", err)
	}

	return &Space{R: r, Share: share}, nil
}

// Pair returns (grid_Rw[iRw, iRm], grid_Rm[iRw, iRm]) of the ij-indexed
// meshgrid, i.e. (R[iRw], R[iRm]).
func (s *Space) Pair(iRw, iRm int) (rw, rm float64, err error) {
	if rw, err = s.R.At(iRw); err != nil {
		return 0, 0, err
	}
	if rm, err = s.R.At(iRm); err != nil {
		return 0, 0, err
	}

	return rw, rm, nil
}
