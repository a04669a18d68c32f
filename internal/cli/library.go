package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/miskiewiczm/dna-generator/internal/library"
)

// NewLibraryCommand creates the library command group.
func NewLibraryCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Inspect a sequence library database",
		Long: `Inspect sequences previously saved with 'generate --db'. The library is
a single SQLite file; records are listed newest first.`,
	}

	cmd.AddCommand(newLibraryListCommand(opts))
	cmd.AddCommand(newLibraryShowCommand(opts))

	return cmd
}

func newLibraryListCommand(opts *RootOptions) *cobra.Command {
	var (
		dbPath string
		limit  int
	)

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List saved sequences",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := library.Open(dbPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "opening library", err)
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), limit)
			if err != nil {
				return WrapExitError(ExitCommandError, "listing sequences", err)
			}

			if opts.Format == "json" {
				data, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return WrapExitError(ExitCommandError, "encoding records", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "Library is empty.")
				return nil
			}
			fmt.Fprintf(out, "%-36s  %-20s  %6s  %6s  %-13s  %s\n",
				"id", "created", "length", "gc%", "mode", "profile")
			for _, rec := range records {
				profileName := rec.Profile
				if profileName == "" {
					profileName = "-"
				}
				fmt.Fprintf(out, "%-36s  %-20s  %6d  %6.2f  %-13s  %s\n",
					rec.ID, rec.CreatedAt.Format("2006-01-02 15:04:05"),
					rec.Length, rec.GCContent*100, rec.Mode, profileName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "library database path (required)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of records (0 = all)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func newLibraryShowCommand(opts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:           "show ID",
		Short:         "Show a saved sequence",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := library.Open(dbPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "opening library", err)
			}
			defer store.Close()

			rec, err := store.Get(cmd.Context(), args[0])
			if errors.Is(err, library.ErrNotFound) {
				return NewExitError(ExitFailure, fmt.Sprintf("no sequence with id %s", args[0]))
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "reading sequence", err)
			}

			if opts.Format == "json" {
				data, err := json.MarshalIndent(rec, "", "  ")
				if err != nil {
					return WrapExitError(ExitCommandError, "encoding record", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:               %s\n", rec.ID)
			fmt.Fprintf(out, "Created:          %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "Initial sequence: %s\n", rec.InitialSequence)
			fmt.Fprintf(out, "Sequence:         %s\n", rec.Sequence)
			fmt.Fprintf(out, "Length:           %d bp\n", rec.Length)
			fmt.Fprintf(out, "GC content:       %.2f%%\n", rec.GCContent*100)
			fmt.Fprintf(out, "Mode:             %s\n", rec.Mode)
			if rec.Seed != nil {
				fmt.Fprintf(out, "Seed:             %d\n", *rec.Seed)
			}
			if rec.Profile != "" {
				fmt.Fprintf(out, "Profile:          %s\n", rec.Profile)
			}
			fmt.Fprintf(out, "Total attempts:   %d\n", rec.TotalAttempts)
			fmt.Fprintf(out, "Backtracks:       %d\n", rec.BacktrackCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "library database path (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}
