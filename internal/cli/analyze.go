package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/miskiewiczm/dna-generator/internal/analysis"
	"github.com/miskiewiczm/dna-generator/internal/config"
	"github.com/miskiewiczm/dna-generator/internal/dna"
	"github.com/miskiewiczm/dna-generator/internal/validation"
)

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(opts *RootOptions) *cobra.Command {
	var (
		windowSize int
		csvFile    string
	)

	cmd := &cobra.Command{
		Use:   "analyze SEQUENCE",
		Short: "Report sliding-window metrics for a sequence",
		Long: `Compute base composition and per-window metrics for an existing DNA
sequence. Every window of the requested size is evaluated with step 1;
the report can be printed or exported to CSV.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := dna.Normalize(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid sequence", err)
			}
			if windowSize < 5 {
				return NewExitError(ExitCommandError, "window size must be at least 5")
			}

			cfg := config.Default()
			cfg.WindowSize = windowSize
			validator, err := validation.New(cfg.BuildRules()...)
			if err != nil {
				return WrapExitError(ExitCommandError, "building validator", err)
			}

			reports := analysis.SlidingWindows(seq, windowSize, validator)
			composition := analysis.Compose(seq)

			if csvFile != "" {
				f, err := os.Create(csvFile)
				if err != nil {
					return WrapExitError(ExitCommandError, "creating CSV file", err)
				}
				defer f.Close()
				if err := analysis.WriteCSV(f, reports); err != nil {
					return WrapExitError(ExitCommandError, "writing CSV", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Analysis written to file: %s (%d windows)\n", csvFile, len(reports))
				return nil
			}

			if opts.Format == "json" {
				payload := struct {
					Composition analysis.Composition    `json:"composition"`
					Windows     []analysis.WindowReport `json:"windows"`
				}{composition, reports}
				data, err := json.MarshalIndent(payload, "", "  ")
				if err != nil {
					return WrapExitError(ExitCommandError, "encoding report", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			printAnalysis(cmd, composition, reports)
			return nil
		},
	}

	cmd.Flags().IntVar(&windowSize, "window-size", 20, "analysis window size")
	cmd.Flags().StringVar(&csvFile, "csv-file", "", "export the window report to CSV")

	return cmd
}

func printAnalysis(cmd *cobra.Command, c analysis.Composition, reports []analysis.WindowReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Length:     %d bp\n", c.Length)
	fmt.Fprintf(out, "GC content: %.2f%%\n", c.GCContent*100)
	for _, b := range "ATGC" {
		base := string(b)
		fmt.Fprintf(out, "  %s: %4d (%.1f%%)\n", base, c.Counts[base], c.Fractions[base]*100)
	}
	if len(reports) == 0 {
		fmt.Fprintln(out, "\nSequence shorter than the analysis window; no window report.")
		return
	}
	fmt.Fprintf(out, "\nWindows (%d):\n", len(reports))
	fmt.Fprintf(out, "%8s %8s %8s %8s %6s\n", "start", "end", "gc%", "tm", "valid")
	for _, r := range reports {
		fmt.Fprintf(out, "%8d %8d %8.2f %8.1f %6s\n",
			r.Start, r.End, r.Metrics.GCContent*100, r.Metrics.MeltingTemperature, yesNo(r.Metrics.IsValid))
	}
}
