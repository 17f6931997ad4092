package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lpath/builder"
	"github.com/katalvlaran/lpath/converters"
	"github.com/katalvlaran/lpath/core"
)

// generateFlags parameterise the generate command.
type generateFlags struct {
	model      string
	n          int
	p          float64
	m          int
	degree     float64
	seed       int64
	undirected bool
	selfLoops  bool
	output     string
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated graph in the text format",
		Long: `Models:
  empty, path, cycle, complete   deterministic topologies on n vertices
  sparse                         G(n,p): every pair independently with probability p
  edges                          m uniformly drawn pairs (with replacement)
  degree                         round(n*d/2) drawn pairs for average degree d`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctor, err := f.constructor()
			if err != nil {
				return err
			}
			bopts := []builder.BuilderOption{builder.WithSeed(f.seed)}
			if f.selfLoops {
				bopts = append(bopts, builder.WithSelfLoops())
			}
			g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(!f.undirected)}, bopts, ctor)
			if err != nil {
				return err
			}
			if f.output == "" || f.output == "-" {
				return converters.WriteGraph(cmd.OutOrStdout(), g)
			}
			return converters.WriteGraphFile(f.output, g)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&f.model, "model", "sparse", "empty | path | cycle | complete | sparse | edges | degree")
	fs.IntVarP(&f.n, "vertices", "n", 10, "vertex count")
	fs.Float64VarP(&f.p, "probability", "P", 0.2, "edge probability (sparse)")
	fs.IntVar(&f.m, "edges", 20, "edge draws (edges)")
	fs.Float64VarP(&f.degree, "degree", "d", 2, "average degree (degree)")
	fs.Int64Var(&f.seed, "seed", 1, "random seed")
	fs.BoolVarP(&f.undirected, "undirected", "u", false, "generate an undirected graph")
	fs.BoolVar(&f.selfLoops, "self-loops", false, "allow v→v arcs in random models")
	fs.StringVarP(&f.output, "output", "o", "", "write to this file instead of stdout (.gz and .zst are compressed)")

	return cmd
}

// constructor maps the model name onto a builder constructor.
func (f generateFlags) constructor() (builder.Constructor, error) {
	switch f.model {
	case "empty":
		return builder.Empty(f.n), nil
	case "path":
		return builder.Path(f.n), nil
	case "cycle":
		return builder.Cycle(f.n), nil
	case "complete":
		return builder.Complete(f.n), nil
	case "sparse":
		return builder.RandomSparse(f.n, f.p), nil
	case "edges":
		return builder.RandomEdges(f.n, f.m), nil
	case "degree":
		return builder.AverageDegree(f.n, f.degree), nil
	default:
		return nil, fmt.Errorf("generate: unknown model %q", f.model)
	}
}
