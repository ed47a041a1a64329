package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/internal/report"
)

var errNoStore = errors.New("results: --sqlite is not set")

func newResultsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "results [FILE]",
		Short: "List stored networks, or print one network's stored support",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.SQLite == "" {
				return errNoStore
			}
			st, err := report.OpenStore(cmd.Context(), a.cfg.SQLite)
			if err != nil {
				return err
			}
			defer st.Close()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				files, err := st.Files(cmd.Context())
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Fprintln(out, f)
				}
				return nil
			}

			rows, err := st.Results(cmd.Context(), args[0], a.cfg.Params)
			if err != nil {
				return err
			}
			return report.WriteCSV(out, rows)
		},
	}
}
