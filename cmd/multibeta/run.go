package main

import (
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/batch"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Evaluate every edge list of the input folder once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports, err := batch.ProcessDir(cmd.Context(), a.cfg)
			printReports(cmd.OutOrStdout(), reports)
			return err
		},
	}
}

// printReports writes one line per processed file.
func printReports(w io.Writer, reports []batch.FileReport) {
	if len(reports) == 0 {
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tNODES\tEDGES\tFAILED\tCSV")
	for _, rep := range reports {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n",
			filepath.Base(rep.File), rep.Summary.Nodes, rep.Summary.Edges, len(rep.Failed), rep.CSV)
	}
	tw.Flush()
}
