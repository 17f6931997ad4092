// Command lpath searches a graph for a longest simple path.
//
//	lpath solve -m FAST_BOUND < graph.txt
//	lpath compare graph.txt
//	lpath generate --model sparse -n 20 -P 0.15 --seed 7 > graph.txt
//
// The graph format is the vertex count on the first line followed by one
// "u v" edge per line. Exit codes: 0 success, 1 input or usage error,
// 2 invalid result path, 3 search interrupted (time limit or signal).
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command tree and maps its error onto an exit code.
func execute(args []string, in io.Reader, out, errOut io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.Execute()
	if err == nil {
		return exitOK
	}
	fmt.Fprintln(errOut, "error:", err)

	return exitCode(err)
}
