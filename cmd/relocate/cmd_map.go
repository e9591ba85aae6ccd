// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/relocate/decision"
	"github.com/katalvlaran/relocate/grid"
	"github.com/katalvlaran/relocate/render"
	"github.com/katalvlaran/relocate/store"
	"github.com/katalvlaran/relocate/table"
)

type mapFlags struct {
	household  string
	shareIndex int
	runID      string
	dbPath     string
}

func newMapCmd(a *app) *cobra.Command {
	f := &mapFlags{}
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Draw the decision regions of one household",
		Long: `Draw the decision regions of one household over (Rw, Rm).
B = both move, W = mother only, M = father only, . = nobody.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMap(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.household, "household", "joint", "couple, joint or sole")
	cmd.Flags().IntVar(&f.shareIndex, "share-index", 0, "custody share grid index")
	cmd.Flags().StringVar(&f.runID, "run", "", "stored run id (solves fresh when empty)")
	cmd.Flags().StringVar(&f.dbPath, "db", "", "sqlite file holding --run (overrides config)")

	return cmd
}

func (a *app) runMap(cmd *cobra.Command, f *mapFlags) error {
	h, err := decision.ParseHousehold(f.household)
	if err != nil {
		return err
	}

	var (
		space *grid.Space
		sol   *table.Solution
	)
	if f.runID == "" {
		m, err := a.solveModel(cmd, a.cfg.Model, 0, nil)
		if err != nil {
			return err
		}
		space, sol = m.Space, m.Sol
	} else {
		if space, sol, err = a.loadRun(cmd, f.runID, f.dbPath); err != nil {
			return err
		}
	}

	return render.Map(cmd.OutOrStdout(), h, space, sol, f.shareIndex)
}

// loadRun reads a stored run and rebuilds its grid space from the stored params.
func (a *app) loadRun(cmd *cobra.Command, rawID, dbPath string) (*grid.Space, *table.Solution, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, nil, fmt.Errorf("run id %q: %w", rawID, err)
	}
	if dbPath == "" {
		dbPath = a.cfg.Store.Path
	}
	if dbPath == "" {
		return nil, nil, fmt.Errorf("--run needs --db or store.path")
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	defer s.Close()

	run, err := s.LoadRun(cmd.Context(), id)
	if err != nil {
		return nil, nil, err
	}
	space, err := grid.Build(run.Params.GridSpec())
	if err != nil {
		return nil, nil, err
	}

	return space, run.Solution, nil
}
