// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/relocate/metrics"
	"github.com/katalvlaran/relocate/model"
	"github.com/katalvlaran/relocate/report"
	"github.com/katalvlaran/relocate/store"
	"github.com/katalvlaran/relocate/sweep"
)

type solveFlags struct {
	workers     int
	dbPath      string
	format      string
	showMetrics bool
	delta       float64
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve all decision tables and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, f)
		},
	}
	cmd.Flags().IntVar(&f.workers, "workers", 0, "parallel rows (0 uses config)")
	cmd.Flags().StringVar(&f.dbPath, "db", "", "sqlite file to store the run (overrides config)")
	cmd.Flags().StringVar(&f.format, "format", report.FormatYAML, "summary format: yaml or json")
	cmd.Flags().BoolVar(&f.showMetrics, "metrics", false, "print sweep metrics to stderr")
	cmd.Flags().Float64Var(&f.delta, "delta", 0, "value of time with the child (overrides config)")

	return cmd
}

// solveModel validates params and runs the sweep with the configured workers.
func (a *app) solveModel(cmd *cobra.Command, p model.Params, workers int, mets *metrics.Metrics) (*model.Model, error) {
	m, err := model.New(p)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = a.cfg.Sweep.Workers
	}
	if err := m.Solve(cmd.Context(),
		sweep.WithWorkers(workers),
		sweep.WithLogger(a.logger),
		sweep.WithMetrics(mets),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (a *app) runSolve(cmd *cobra.Command, f *solveFlags) error {
	p := a.cfg.Model
	if cmd.Flags().Changed("delta") {
		p.Delta = f.delta
	}

	reg := prometheus.NewRegistry()
	m, err := a.solveModel(cmd, p, f.workers, metrics.New(reg))
	if err != nil {
		return err
	}

	runID, createdAt := uuid.New(), time.Now().UTC()
	summary := report.Summarize(runID, createdAt, m.Params, m.Space, m.Sol)
	if err := report.Encode(cmd.OutOrStdout(), f.format, summary); err != nil {
		return err
	}

	dbPath := a.cfg.Store.Path
	if f.dbPath != "" {
		dbPath = f.dbPath
	}
	if dbPath != "" {
		s, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()
		run := store.Run{ID: runID, CreatedAt: createdAt, Params: m.Params, Solution: m.Sol}
		if err := s.SaveRun(cmd.Context(), run); err != nil {
			return err
		}
		a.logger.Info("run stored", "run_id", runID, "db", dbPath)
	}

	if f.showMetrics {
		families, err := reg.Gather()
		if err != nil {
			return fmt.Errorf("gather metrics: %w", err)
		}
		for _, mf := range families {
			if _, err := expfmt.MetricFamilyToText(cmd.ErrOrStderr(), mf); err != nil {
				return err
			}
		}
	}

	return nil
}
