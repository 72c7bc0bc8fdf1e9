package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/ibcompiler/ib/internal/config"
	"github.com/ibcompiler/ib/internal/diagnostics"
	"github.com/spf13/cobra"
)

func cmdSessions() *cobra.Command {
	var storePath string
	var limit int

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "list past analyze runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := diagnostics.OpenStore(storePath)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(limit)
			if err != nil {
				return err
			}
			for _, r := range runs {
				fmt.Printf("%s  %s  %s  %d diagnostic(s)\n",
					r.ID, r.SourceHash[:12], humanize.Time(r.StartedAt), r.ErrorCount)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&storePath, "store", config.DefaultStorePath, "path to the diagnostics run log")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to list")
	return cmd
}
