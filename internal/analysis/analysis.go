// Package analysis produces sliding-window quality reports over complete
// sequences, for tuning rule thresholds and inspecting generated output.
package analysis

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/miskiewiczm/dna-generator/internal/dna"
	"github.com/miskiewiczm/dna-generator/internal/validation"
)

// WindowReport is the metric row for one window position.
type WindowReport struct {
	Start   int                `json:"window_start"`
	End     int                `json:"window_end"`
	Window  string             `json:"sequence"`
	Metrics validation.Metrics `json:"metrics"`
}

// SlidingWindows evaluates every windowSize-long window of seq with step 1.
// Returns nil when the sequence is shorter than the window.
func SlidingWindows(seq []byte, windowSize int, v *validation.Validator) []WindowReport {
	if windowSize < 1 || len(seq) < windowSize {
		return nil
	}
	reports := make([]WindowReport, 0, len(seq)-windowSize+1)
	for i := 0; i+windowSize <= len(seq); i++ {
		window := seq[i : i+windowSize]
		reports = append(reports, WindowReport{
			Start:   i,
			End:     i + windowSize,
			Window:  string(window),
			Metrics: v.ValidateSequence(window),
		})
	}
	return reports
}

// csvHeader is the fixed column layout of WriteCSV.
var csvHeader = []string{
	"window_start", "window_end", "sequence",
	"gc_content", "melting_temperature", "hairpin_tm", "homodimer_tm",
	"has_homopolymers", "has_dinucleotide_repeats", "three_prime_gc_count",
	"is_valid", "longest_homopolymer", "max_dinucleotide_repeat",
}

// WriteCSV writes the reports as CSV, one row per window.
func WriteCSV(w io.Writer, reports []WindowReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range reports {
		row := []string{
			fmt.Sprintf("%d", r.Start),
			fmt.Sprintf("%d", r.End),
			r.Window,
			fmt.Sprintf("%.4f", r.Metrics.GCContent),
			fmt.Sprintf("%.2f", r.Metrics.MeltingTemperature),
			fmt.Sprintf("%.2f", r.Metrics.HairpinTm),
			fmt.Sprintf("%.2f", r.Metrics.HomodimerTm),
			fmt.Sprintf("%t", r.Metrics.HasHomopolymers),
			fmt.Sprintf("%t", r.Metrics.HasDinucleotideRepeats),
			fmt.Sprintf("%d", r.Metrics.ThreePrimeGCCount),
			fmt.Sprintf("%t", r.Metrics.IsValid),
			r.Metrics.LongestHomopolymer,
			r.Metrics.MaxDinucleotideRepeat,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Composition summarizes per-base counts and fractions.
type Composition struct {
	Length    int                `json:"length"`
	Counts    map[string]int     `json:"counts"`
	Fractions map[string]float64 `json:"fractions"`
	GCContent float64            `json:"gc_content"`
}

// Compose computes the base composition of seq.
func Compose(seq []byte) Composition {
	c := Composition{
		Length:    len(seq),
		Counts:    make(map[string]int, len(dna.Alphabet)),
		Fractions: make(map[string]float64, len(dna.Alphabet)),
		GCContent: dna.GCFraction(seq),
	}
	for _, b := range dna.Alphabet {
		c.Counts[string(b)] = 0
	}
	for _, b := range seq {
		c.Counts[string(b)]++
	}
	if len(seq) > 0 {
		for base, n := range c.Counts {
			c.Fractions[base] = float64(n) / float64(len(seq))
		}
	}
	return c
}
