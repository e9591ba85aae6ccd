// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/relocate/decision"
	"github.com/katalvlaran/relocate/grid"
	"github.com/katalvlaran/relocate/table"
)

// Solve fills every table of sol from the rules evaluated on space with
// custody value delta.
//
// Stage 1 (Validate): non-nil inputs with every table allocated, sol shaped (NumR, NumShare) like space.
// Stage 2 (Execute): single vector serially, then rows in parallel.
// Stage 3 (Finalize): join, record metrics.
//
// A cancelled ctx stops dispatching rows and its error is returned; tables
// are then only partially written and must not be used.
func Solve(ctx context.Context, space *grid.Space, delta float64, sol *table.Solution, opts ...Option) error {
	if space == nil || !sol.Allocated() {
		return fmt.Errorf("Solve: %w", ErrNilInput)
	}
	want := table.Shape{NumR: space.R.Len(), NumShare: space.Share.Len()}
	if got := sol.Shape(); got != want {
		return fmt.Errorf("Solve: solution %+v, grid %+v: %w", got, want, ErrShapeMismatch)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newConfig(opts...)
	start := time.Now()
	cfg.logger.Info("sweep started",
		"num_r", want.NumR, "num_share", want.NumShare, "delta", delta, "workers", cfg.workers)

	r := space.R.Values()
	shares := space.Share.Values()

	for i, v := range r {
		if err := sol.Single.Set(i, decision.Single(v)); err != nil {
			return fmt.Errorf("Solve: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for iRw := range r {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cfg.logger.Debug("sweep row", "i_rw", iRw)

			return solveRow(iRw, r, shares, delta, sol)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	// a cancellation racing the last row leaves no error in the group
	if err := ctx.Err(); err != nil {
		return err
	}

	elapsed := time.Since(start)
	record(cfg, sol, want)
	cfg.logger.Info("sweep finished", "elapsed", elapsed)
	cfg.metrics.ObserveSweep(elapsed)

	return nil
}

// solveRow writes every cell whose mother index is iRw.
// Complexity: O(NumR·NumShare).
func solveRow(iRw int, r, shares []float64, delta float64, sol *table.Solution) error {
	rw := r[iRw]
	for iRm, rm := range r {
		w, m := decision.Couple(rw, rm)
		if err := setPair(sol.CoupleW, sol.CoupleM, iRw, iRm, w, m); err != nil {
			return err
		}

		for iShare, share := range shares {
			w, m = decision.JointCustody(rw, rm, share, delta)
			if err := setPair3(sol.JointW, sol.JointM, iShare, iRw, iRm, w, m); err != nil {
				return err
			}

			w, m = decision.SoleCustody(rw, rm, share, delta)
			if err := setPair3(sol.SoleW, sol.SoleM, iShare, iRw, iRm, w, m); err != nil {
				return err
			}
		}
	}

	return nil
}

func setPair(tw, tm *table.Matrix, i, j int, w, m bool) error {
	if err := tw.Set(i, j, w); err != nil {
		return err
	}

	return tm.Set(i, j, m)
}

func setPair3(tw, tm *table.Tensor, s, i, j int, w, m bool) error {
	if err := tw.Set(s, i, j, w); err != nil {
		return err
	}

	return tm.Set(s, i, j, m)
}

// record pushes per-household cell and move counts to the metrics sink.
func record(cfg config, sol *table.Solution, shape table.Shape) {
	if cfg.metrics == nil {
		return
	}
	pairs := shape.NumR * shape.NumR
	divorced := pairs * shape.NumShare

	cfg.metrics.AddCells(decision.HouseholdSingle.String(), shape.NumR)
	cfg.metrics.AddCells(decision.HouseholdCouple.String(), pairs)
	cfg.metrics.AddCells(decision.HouseholdJoint.String(), divorced)
	cfg.metrics.AddCells(decision.HouseholdSole.String(), divorced)

	cfg.metrics.AddMoves(decision.HouseholdSingle.String(), "w", sol.Single.Count())
	cfg.metrics.AddMoves(decision.HouseholdCouple.String(), "w", sol.CoupleW.Count())
	cfg.metrics.AddMoves(decision.HouseholdCouple.String(), "m", sol.CoupleM.Count())
	cfg.metrics.AddMoves(decision.HouseholdJoint.String(), "w", sol.JointW.Count())
	cfg.metrics.AddMoves(decision.HouseholdJoint.String(), "m", sol.JointM.Count())
	cfg.metrics.AddMoves(decision.HouseholdSole.String(), "w", sol.SoleW.Count())
	cfg.metrics.AddMoves(decision.HouseholdSole.String(), "m", sol.SoleM.Count())
}
