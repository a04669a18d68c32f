package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/miskiewiczm/dna-generator/internal/profile"
)

// NewProfilesCommand creates the profiles command.
func NewProfilesCommand(opts *RootOptions) *cobra.Command {
	var profileFile string

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List available validation profiles",
		Long: `List the built-in validation profiles and, optionally, profiles merged
from a user YAML file. Each profile bundles a set of rule switches and
recommended parameter values for a class of sequences.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := profile.NewRegistry()
			if err != nil {
				return WrapExitError(ExitCommandError, "loading built-in profiles", err)
			}
			if profileFile != "" {
				if err := registry.LoadUserFile(profileFile); err != nil {
					return WrapExitError(ExitCommandError, "loading profile file", err)
				}
			}

			if opts.Format == "json" {
				data, err := json.MarshalIndent(registry.List(), "", "  ")
				if err != nil {
					return WrapExitError(ExitCommandError, "encoding profiles", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Available validation profiles:")
			fmt.Fprintln(out)
			for _, p := range registry.List() {
				fmt.Fprintf(out, "  %s\n", p.Name)
				if p.Description != "" {
					fmt.Fprintf(out, "    %s\n", p.Description)
				}
				if enabled := enabledRules(p); len(enabled) > 0 {
					fmt.Fprintf(out, "    rules: %s\n", strings.Join(enabled, ", "))
				} else {
					fmt.Fprintln(out, "    rules: none")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profileFile, "profile-file", "", "user profile YAML file merged over built-ins")

	return cmd
}

func enabledRules(p profile.Profile) []string {
	var enabled []string
	for name, on := range p.Rules {
		if on {
			enabled = append(enabled, name)
		}
	}
	sort.Strings(enabled)
	return enabled
}
