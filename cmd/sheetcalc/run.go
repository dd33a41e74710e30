package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vogtb/go-spreadsheet/packages/spreadsheet"
)

func run(cmd *cobra.Command, scriptPath string, opts *runOptions) error {
	if opts.format != formatTSV && opts.format != formatJSON {
		return fmt.Errorf("invalid format: %s (must be tsv or json)", opts.format)
	}

	script, err := openScript(cmd, scriptPath)
	if err != nil {
		return err
	}
	defer script.Close()

	counters := &spreadsheet.Counters{}
	printLn := func(line string) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	runner := spreadsheet.NewRunnableSheet(printLn, spreadsheet.WithStats(counters))

	var trace func(string)
	if opts.verbose {
		trace = func(line string) {
			fmt.Fprintln(cmd.ErrOrStderr(), line)
		}
	}
	if err := runScript(runner, script, trace); err != nil {
		return err
	}

	var stats *spreadsheet.Counters
	if opts.stats {
		stats = counters
	}

	var out bytes.Buffer
	if err := writeGrid(&out, runner.Sheet(), opts, stats); err != nil {
		return fmt.Errorf("failed to render grid: %w", err)
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, out.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if _, err := cmd.OutOrStdout().Write(out.Bytes()); err != nil {
		return err
	}

	if opts.stats && opts.format == formatTSV {
		printLn(counters.String())
	}
	return nil
}

func openScript(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	return f, nil
}
