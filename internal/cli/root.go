// Package cli provides the command-line interface for TypeStat.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"typestat/pkg/analyzer"
	"typestat/pkg/output"
	"typestat/pkg/parser"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "typestat <log-file>",
		Short: "Aggregate log entries by their type field",
		Long: `TypeStat analyzes the occurrences of entry types in a log file.

Each line of the input file must be a complete JSON object containing a
"type" field with a string value. Entries are grouped by this type, and for
each unique type TypeStat prints:

  - the number of entries with this type
  - the space used (in bytes, excluding the line terminator) by all
    entries with this type

Rows are sorted by type so repeated runs produce identical output.

Exit codes:
  0 - File processed, report printed
  1 - The file could not be read or one of its lines could not be processed`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	source := parser.NewFileSource(path)
	defer source.Close()

	a := analyzer.NewAnalyzer()
	table, err := a.Analyze(ctx, source)
	if err != nil {
		return fmt.Errorf("could not process file %s: %w", path, err)
	}

	report := output.NewReport(table)

	var formatter output.Formatter = output.NewTextFormatter()
	if err := formatter.Format(report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}
