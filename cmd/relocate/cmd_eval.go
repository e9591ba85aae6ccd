// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/relocate/decision"
)

type evalFlags struct {
	household string
	rw, rm    float64
	share     float64
	delta     float64
}

func newEvalCmd(a *app) *cobra.Command {
	f := &evalFlags{}
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate one household rule at a single point",
		RunE: func(cmd *cobra.Command, args []string) error {
			delta := a.cfg.Model.Delta
			if cmd.Flags().Changed("delta") {
				delta = f.delta
			}
			h, err := decision.ParseHousehold(f.household)
			if err != nil {
				return err
			}
			w, m, err := decision.Evaluate(h, f.rw, f.rm, f.share, delta)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "household=%s move_w=%t move_m=%t\n", h, w, m)

			return err
		},
	}
	cmd.Flags().StringVar(&f.household, "household", "couple", "single, couple, joint or sole")
	cmd.Flags().Float64Var(&f.rw, "rw", 0, "mother's net return to moving")
	cmd.Flags().Float64Var(&f.rm, "rm", 0, "father's net return to moving")
	cmd.Flags().Float64Var(&f.share, "share", 0.5, "mother's share of time with the child")
	cmd.Flags().Float64Var(&f.delta, "delta", 0, "value of time with the child (overrides config)")

	return cmd
}
