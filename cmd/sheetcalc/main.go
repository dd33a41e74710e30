// Package main provides the command line entry point for sheetcalc.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

const (
	formatTSV  = "tsv"
	formatJSON = "json"
)

type runOptions struct {
	format  string
	output  string
	texts   bool
	stats   bool
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetcalc",
		Short: "Evaluate spreadsheet scripts",
		Long: `sheetcalc runs line-oriented scripts against an in-memory sheet
and prints the resulting grid.`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newRunCmd())
	return rootCmd
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Run a script, use - to read from stdin",
		Long: `Run executes one command per line:

  set <CELL> <text>    set a cell; empty text clears it
  clear <CELL>         clear a cell
  get <CELL>           print the cell value
  size                 print the printable size as "rows cols"
  print values|texts   print the grid

Blank lines and lines starting with # are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file path for the final grid (default: stdout)")
	cmd.Flags().StringVar(&opts.format, "format", formatTSV, "Final grid format: tsv, json")
	cmd.Flags().BoolVar(&opts.texts, "texts", false, "Print cell texts instead of values")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print cache statistics")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Echo each script command to stderr")
	return cmd
}
