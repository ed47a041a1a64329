package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/builder"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/edgelist"
)

type generateFlags struct {
	kind      string
	n         int
	p         float64
	seed      int64
	ids       string
	weightMin float64
	weightMax float64
	directed  bool
	out       string
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic network as an edge list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if f.out != "" {
				file, err := os.Create(f.out)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}
			return generate(w, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.kind, "kind", "path", "topology: "+strings.Join(builder.Kinds, ", "))
	fl.IntVarP(&f.n, "nodes", "n", 10, "vertex count (grid: side length)")
	fl.Float64Var(&f.p, "p", 0.1, "link probability for random graphs")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.StringVar(&f.ids, "ids", "excel", "vertex ID scheme: decimal, letter, excel, hex, base36 or prefix:<s>")
	fl.Float64Var(&f.weightMin, "weight-min", 1, "lower link weight bound")
	fl.Float64Var(&f.weightMax, "weight-max", 1, "upper link weight bound")
	fl.BoolVar(&f.directed, "directed", false, "emit one record per link instead of mirrored pairs")
	fl.StringVarP(&f.out, "out", "o", "", "output file (default stdout)")

	return cmd
}

func generate(w io.Writer, f generateFlags) error {
	cons, err := builder.ByKind(f.kind, f.n, f.p)
	if err != nil {
		return err
	}
	idFn, err := builder.IDScheme(f.ids)
	if err != nil {
		return err
	}
	if f.weightMin < 0 || f.weightMax < f.weightMin {
		return fmt.Errorf("generate: need 0 ≤ weight-min ≤ weight-max, got %g and %g", f.weightMin, f.weightMax)
	}

	bopts := []builder.BuilderOption{
		builder.WithIDScheme(idFn),
		builder.WithSeed(f.seed),
		builder.WithUniformWeight(f.weightMin, f.weightMax),
	}
	if f.directed {
		bopts = append(bopts, builder.WithDirected())
	}
	g, err := builder.BuildGraph(nil, bopts, cons)
	if err != nil {
		return err
	}

	return edgelist.Write(w, g)
}
