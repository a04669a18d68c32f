// Package cli implements the dnagen command tree.
//
// The library packages never configure global logging; log level and
// handler are set up here, from the --verbose/--quiet flags, before any
// command runs.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
	Quiet   bool
	Format  string // "text" | "fasta" | "json"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "fasta", "json"}

// NewRootCommand creates the root command for the dnagen CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "dnagen",
		Short: "DNA sequence generator with windowed quality control",
		Long: `dnagen extends an initial DNA sequence to a target length with a
backtracking search, accepting only extensions whose trailing window
satisfies the configured validation rules.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Verbose && opts.Quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}
			setupLogging(opts)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress progress and summary output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|fasta|json)")

	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewProfilesCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewAnalyzeCommand(opts))
	cmd.AddCommand(NewLibraryCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func setupLogging(opts *RootOptions) {
	level := slog.LevelInfo
	switch {
	case opts.Verbose:
		level = slog.LevelDebug
	case opts.Quiet:
		level = slog.LevelError
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
