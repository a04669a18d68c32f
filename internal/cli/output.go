package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/miskiewiczm/dna-generator/internal/generator"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // at least one sequence generated / validation passed
	ExitFailure      = 1 // generation or validation failure
	ExitCommandError = 2 // command error (bad flags, missing files, ...)
)

// ExitError carries a specific exit code out of a command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. nil means success;
// a non-ExitError defaults to ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// humanPrinter renders grouped integers in stats output (1,234,567).
var humanPrinter = message.NewPrinter(language.English)

// FormatResults renders generation results in the requested format.
func FormatResults(results []generator.Result, format string, sequencesOnly bool) (string, error) {
	switch format {
	case "fasta":
		return formatFASTA(results, sequencesOnly), nil
	case "json":
		return formatJSON(results, sequencesOnly)
	default:
		return formatText(results, sequencesOnly), nil
	}
}

func formatFASTA(results []generator.Result, sequencesOnly bool) string {
	var b strings.Builder
	for i, res := range results {
		if !res.Success() {
			continue
		}
		if sequencesOnly {
			fmt.Fprintf(&b, ">sequence_%d\n", i+1)
		} else {
			gc := 0.0
			if res.Metrics != nil {
				gc = res.Metrics.GCContent
			}
			fmt.Fprintf(&b, ">sequence_%d|length=%d|gc=%.2f%%\n", i+1, res.ActualLength, gc*100)
		}
		b.WriteString(res.Sequence)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatJSON(results []generator.Result, sequencesOnly bool) (string, error) {
	var payload any = results
	if sequencesOnly {
		sequences := make([]string, 0, len(results))
		for _, res := range results {
			if res.Success() {
				sequences = append(sequences, res.Sequence)
			}
		}
		payload = sequences
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding results: %w", err)
	}
	return string(data), nil
}

func formatText(results []generator.Result, sequencesOnly bool) string {
	var b strings.Builder
	if sequencesOnly {
		for _, res := range results {
			if res.Success() {
				b.WriteString(res.Sequence)
				b.WriteByte('\n')
			}
		}
		return strings.TrimRight(b.String(), "\n")
	}

	for i, res := range results {
		fmt.Fprintf(&b, "=== SEQUENCE %d ===\n", i+1)
		fmt.Fprintf(&b, "Outcome: %s\n", res.Outcome)
		if res.Success() {
			fmt.Fprintf(&b, "Sequence: %s\n", res.Sequence)
			fmt.Fprintf(&b, "Length: %d\n", res.ActualLength)
			if res.Seed != nil {
				fmt.Fprintf(&b, "Seed: %d\n", *res.Seed)
			}
			fmt.Fprintf(&b, "Generation time: %.2fs\n", res.DurationSeconds)
			if res.Metrics != nil {
				fmt.Fprintf(&b, "GC content: %.2f%%\n", res.Metrics.GCContent*100)
				fmt.Fprintf(&b, "Melting temperature: %.1f C\n", res.Metrics.MeltingTemperature)
				fmt.Fprintf(&b, "Hairpin Tm: %.1f C\n", res.Metrics.HairpinTm)
				fmt.Fprintf(&b, "Homodimer Tm: %.1f C\n", res.Metrics.HomodimerTm)
				fmt.Fprintf(&b, "Global compliance (informational): %s\n", yesNo(res.Metrics.IsValid))
			}
		} else {
			fmt.Fprintf(&b, "Error: %s\n", res.ErrorMessage)
		}
		if res.Stats != nil {
			fmt.Fprintf(&b, "Total attempts: %s\n", humanPrinter.Sprintf("%d", res.Stats.TotalAttempts))
			fmt.Fprintf(&b, "Backtracks: %s\n", humanPrinter.Sprintf("%d", res.Stats.BacktrackCount))
			fmt.Fprintf(&b, "Max depth reached: %d\n", res.Stats.MaxDepthReached)
			if roll := res.Stats.Rollup; roll.Samples > 0 {
				fmt.Fprintf(&b, "Window GC: %.2f%% - %.2f%%\n", roll.GCMin*100, roll.GCMax*100)
				if roll.TmSamples > 0 {
					fmt.Fprintf(&b, "Window Tm: %.1f - %.1f C\n", roll.TmMin, roll.TmMax)
				}
			}
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}
