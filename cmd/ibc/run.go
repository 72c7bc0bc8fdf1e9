package main

import (
	"fmt"

	"github.com/ibcompiler/ib/internal/evaluator"
	"github.com/spf13/cobra"
)

func cmdRun() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "run an IB program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}

			ctx := analyze(source, nil)
			if !ctx.Bag.Empty() {
				printDiagnostics(ctx.Bag.ToRecords())
				return fmt.Errorf("%s has %d diagnostic(s), not running", args[0], len(ctx.Bag.Errors()))
			}

			io := newStdIO()
			evaluator.New(io).Run(ctx.Bound)
			return nil
		},
	}
}
