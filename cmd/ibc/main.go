// Command ibc is the IB compiler/interpreter's CLI and embedding
// entrypoint: run a program, print its diagnostics, or export its
// control-flow graph.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cmdRoot := &cobra.Command{
		Use:           "ibc",
		Short:         "the IB language compiler and interpreter",
		Long:          `ibc lexes, parses, binds, verifies and evaluates IB programs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmdRoot.AddCommand(cmdRun())
	cmdRoot.AddCommand(cmdAnalyze())
	cmdRoot.AddCommand(cmdGraph())
	cmdRoot.AddCommand(cmdSessions())

	if err := cmdRoot.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ibc: %s\n", err)
		os.Exit(1)
	}
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
