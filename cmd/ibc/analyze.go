package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ibcompiler/ib/internal/config"
	"github.com/ibcompiler/ib/internal/diagnostics"
	"github.com/spf13/cobra"
)

func cmdAnalyze() *cobra.Command {
	var verbose bool
	var storePath string

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "lex, parse, bind and verify an IB program without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}

			started := time.Now()
			ctx := analyze(source, nil)

			records := ctx.Bag.ToRecords()
			printDiagnostics(records)

			store, err := diagnostics.OpenStore(storePath)
			if err != nil {
				return err
			}
			defer store.Close()
			runID, err := store.RecordRun(source, records)
			if err != nil {
				return err
			}

			if verbose {
				fmt.Printf("run %s: %s, %s source, %d diagnostic(s)\n",
					runID, humanize.RelTime(started, time.Now(), "elapsed", "from now"),
					humanize.Bytes(uint64(len(source))), len(records))
			}

			if len(records) > 0 {
				return fmt.Errorf("%d diagnostic(s)", len(records))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print elapsed time, source size and the session id")
	cmd.Flags().StringVar(&storePath, "store", config.DefaultStorePath, "path to the diagnostics run log")
	return cmd
}
