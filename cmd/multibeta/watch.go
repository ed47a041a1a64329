package main

import (
	"github.com/spf13/cobra"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/batch"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Process the input folder, then every edge list written into it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := batch.NewRunner(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			defer r.Close()

			out := cmd.OutOrStdout()
			return r.Watch(cmd.Context(), func(rep batch.FileReport, err error) {
				if err == nil {
					printReports(out, []batch.FileReport{rep})
				}
			})
		},
	}
}
