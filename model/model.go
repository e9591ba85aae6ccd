// SPDX-License-Identifier: MIT

// Package model ties parameters, grids and solution tables into one solve run.
//
// Lifecycle: New (validate) → Allocate (grids + zero tables) → Solve (sweep).
// Params and grids are never mutated after Allocate.
package model

import (
	"context"
	"fmt"

	"github.com/katalvlaran/relocate/grid"
	"github.com/katalvlaran/relocate/sweep"
	"github.com/katalvlaran/relocate/table"
)

// Model is one configured run of the migration model.
type Model struct {
	Params Params
	Space  *grid.Space     // nil until Allocate
	Sol    *table.Solution // nil until Allocate
	solved bool
}

// New validates p and returns an unallocated Model.
func New(p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("model.New: %w", err)
	}

	return &Model{Params: p}, nil
}

// Allocate builds the grids and zero-filled solution tables.
func (m *Model) Allocate() error {
	space, err := grid.Build(m.Params.GridSpec())
	if err != nil {
		return fmt.Errorf("Model.Allocate: %w", err)
	}
	sol, err := table.NewSolution(table.Shape{NumR: space.R.Len(), NumShare: space.Share.Len()})
	if err != nil {
		return fmt.Errorf("Model.Allocate: %w", err)
	}
	m.Space, m.Sol, m.solved = space, sol, false

	return nil
}

// Solve runs the sweep, allocating first if needed.
func (m *Model) Solve(ctx context.Context, opts ...sweep.Option) error {
	if m.Sol == nil {
		if err := m.Allocate(); err != nil {
			return err
		}
	}
	if err := sweep.Solve(ctx, m.Space, m.Params.Delta, m.Sol, opts...); err != nil {
		return fmt.Errorf("Model.Solve: %w", err)
	}
	m.solved = true

	return nil
}

// Solved reports whether the last Solve completed.
func (m *Model) Solved() bool { return m.solved }
