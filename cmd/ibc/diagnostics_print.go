package main

import (
	"fmt"
	"os"

	"github.com/ibcompiler/ib/internal/diagnostics"
	"github.com/mattn/go-isatty"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// printDiagnostics renders diagnostic records one per line, colourising
// the message in red when stderr is an interactive terminal.
func printDiagnostics(records []diagnostics.Record) {
	colour := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	for _, r := range records {
		if colour {
			fmt.Fprintf(os.Stderr, "%s%s%s (offset %d-%d)\n", ansiRed, r.Message, ansiReset, r.OffsetStart, r.OffsetEnd)
		} else {
			fmt.Fprintf(os.Stderr, "%s (offset %d-%d)\n", r.Message, r.OffsetStart, r.OffsetEnd)
		}
	}
}
