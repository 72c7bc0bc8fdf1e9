package main

import (
	"fmt"
	"os"

	"github.com/ibcompiler/ib/internal/cfg"
	"github.com/spf13/cobra"
)

func cmdGraph() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "graph <file>",
		Short: "render the control-flow graph of every function as DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}

			var graphs []*cfg.Node
			ctx := analyze(source, &graphs)
			printDiagnostics(ctx.Bag.ToRecords())

			dot := cfg.Digraph(graphs)
			if outPath == "" {
				fmt.Println(dot)
				return nil
			}
			return os.WriteFile(outPath, []byte(dot), 0o644)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the DOT graph to a file instead of stdout")
	return cmd
}
