// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/relocate/store"
)

func newRunsCmd(a *app) *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List stored runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = a.cfg.Store.Path
			}
			if dbPath == "" {
				return fmt.Errorf("runs needs --db or store.path")
			}
			s, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			runs, err := s.ListRuns(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tDELTA\tNUM_R\tNUM_SHARE")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%g\t%d\t%d\n",
					r.ID, r.CreatedAt.Format(time.RFC3339), r.Params.Delta, r.Params.NumR, r.Params.NumShare)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "sqlite file (overrides config)")

	return cmd
}
