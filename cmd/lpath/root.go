package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Every call returns fresh flag state,
// which keeps tests independent.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lpath",
		Short: "Exact longest simple path search",
		Long: `lpath finds a longest simple path (most vertices, no vertex repeated)
in a directed or undirected graph with one of four exact strategies:
BRUTE_FORCE, BRANCH_N_BOUND, FAST_BOUND and BRUTE_FORCE_COMPLETE.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd(), newCompareCmd(), newGenerateCmd())

	return root
}
