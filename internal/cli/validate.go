package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/miskiewiczm/dna-generator/internal/config"
	"github.com/miskiewiczm/dna-generator/internal/dna"
	"github.com/miskiewiczm/dna-generator/internal/profile"
	"github.com/miskiewiczm/dna-generator/internal/validation"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(opts *RootOptions) *cobra.Command {
	var (
		profileName string
		profileFile string
	)

	cmd := &cobra.Command{
		Use:   "validate SEQUENCE",
		Short: "Validate an existing DNA sequence",
		Long: `Validate an existing DNA sequence against the configured rules and
report its metrics. Exits non-zero when the sequence fails validation.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := dna.Normalize(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid sequence", err)
			}

			cfg := config.Default()
			if profileName != "" || profileFile != "" {
				registry, err := profile.NewRegistry()
				if err != nil {
					return WrapExitError(ExitCommandError, "loading built-in profiles", err)
				}
				if profileFile != "" {
					if err := registry.LoadUserFile(profileFile); err != nil {
						return WrapExitError(ExitCommandError, "loading profile file", err)
					}
				}
				if profileName != "" {
					p, err := registry.Get(profileName)
					if err != nil {
						return WrapExitError(ExitCommandError, "unknown profile", err)
					}
					if err := p.Apply(&cfg); err != nil {
						return WrapExitError(ExitCommandError, "applying profile", err)
					}
				}
			}
			if err := cfg.Validate(); err != nil {
				return WrapExitError(ExitCommandError, "invalid configuration", err)
			}

			validator, err := validation.New(cfg.BuildRules()...)
			if err != nil {
				return WrapExitError(ExitCommandError, "building validator", err)
			}
			metrics := validator.ValidateSequence(seq)

			if opts.Format == "json" {
				data, err := json.MarshalIndent(metrics, "", "  ")
				if err != nil {
					return WrapExitError(ExitCommandError, "encoding metrics", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else {
				printMetrics(cmd, validator, metrics)
			}

			if !metrics.IsValid {
				return NewExitError(ExitFailure, "sequence failed validation")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "", "validation profile name")
	cmd.Flags().StringVar(&profileFile, "profile-file", "", "user profile YAML file merged over built-ins")

	return cmd
}

func printMetrics(cmd *cobra.Command, v *validation.Validator, m validation.Metrics) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Length:               %d bp\n", m.Length)
	fmt.Fprintf(out, "GC content:           %.2f%%\n", m.GCContent*100)
	if v.Enabled(validation.RuleMeltingTemperature) {
		fmt.Fprintf(out, "Melting temperature:  %.1f C\n", m.MeltingTemperature)
	}
	if v.Enabled(validation.RuleHairpinStructures) {
		fmt.Fprintf(out, "Hairpin Tm:           %.1f C\n", m.HairpinTm)
	}
	if v.Enabled(validation.RuleHomodimerStructures) {
		fmt.Fprintf(out, "Homodimer Tm:         %.1f C\n", m.HomodimerTm)
	}
	if m.HasHomopolymers {
		fmt.Fprintf(out, "Homopolymers:         yes (%s)\n", m.LongestHomopolymer)
	} else {
		fmt.Fprintln(out, "Homopolymers:         no")
	}
	if m.HasDinucleotideRepeats {
		fmt.Fprintf(out, "Dinucleotide repeats: yes (%s)\n", m.MaxDinucleotideRepeat)
	} else {
		fmt.Fprintln(out, "Dinucleotide repeats: no")
	}
	fmt.Fprintf(out, "3' GC count (last 5): %d\n", m.ThreePrimeGCCount)
	fmt.Fprintf(out, "Valid:                %s\n", yesNo(m.IsValid))
}
