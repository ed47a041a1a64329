package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/bfs"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/edgelist"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/support"
)

func newInspectCmd(a *app) *cobra.Command {
	var alpha string

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Describe a network's reach per node, or one alpha's rounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := edgelist.ReadFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d nodes, %d edge records\n", args[0], g.VertexCount(), g.EdgeCount())

			if alpha != "" {
				ev, err := support.NewEvaluator(g, a.cfg.Params)
				if err != nil {
					return err
				}
				o, err := ev.Evaluate(alpha, nil)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "TARGET\tITERATIONS\tCONVERGED\tSTEP")
				for _, rs := range o.Rounds {
					fmt.Fprintf(tw, "%s\t%d\t%t\t%.3g\n", rs.Target, rs.Iterations, rs.Converged, rs.Step)
				}
				tw.Flush()
				fmt.Fprintf(out, "total support of %s: %d\n", alpha, o.Total)
				return nil
			}

			reach, err := bfs.Reach(cmd.Context(), g)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NODE\tIN\tOUT\tREACHES\tECCENTRICITY")
			for _, id := range g.Vertices() {
				in, outDeg, err := g.Degree(id)
				if err != nil {
					return err
				}
				r := reach[id]
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", id, in, outDeg, r.Reached()-1, r.Eccentricity())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&alpha, "alpha", "", "trace the rounds of this alpha instead")

	return cmd
}
