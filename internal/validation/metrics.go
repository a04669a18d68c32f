package validation

import "fmt"

// Reporting thresholds used when the corresponding rule is not configured.
const (
	defaultMaxHomopolymerRun    = 4
	defaultMaxDinucleotideCount = 2
)

// Metrics is the quality report for a complete sequence. Unlike window
// validation, which gates the search, Metrics is informational: a sequence
// whose every window passed during generation may still fail a global
// check (IsValid reflects the global result).
type Metrics struct {
	Length                 int     `json:"length"`
	GCContent              float64 `json:"gc_content"`
	MeltingTemperature     float64 `json:"melting_temperature"`
	HairpinTm              float64 `json:"hairpin_tm"`
	HomodimerTm            float64 `json:"homodimer_tm"`
	HasHomopolymers        bool    `json:"has_homopolymers"`
	LongestHomopolymer     string  `json:"longest_homopolymer,omitempty"`
	HasDinucleotideRepeats bool    `json:"has_dinucleotide_repeats"`
	MaxDinucleotideRepeat  string  `json:"max_dinucleotide_repeat,omitempty"`
	ThreePrimeGCCount      int     `json:"three_prime_gc_count"`
	IsValid                bool    `json:"is_valid"`
}

// ValidateSequence computes the full metric report for seq and evaluates
// the configured rules over the whole sequence.
func (v *Validator) ValidateSequence(seq []byte) Metrics {
	m := Metrics{
		Length:             len(seq),
		GCContent:          v.GCFraction(seq),
		MeltingTemperature: MeltingTemperature(seq, v.thermoParams()),
		HairpinTm:          HairpinTm(seq),
		HomodimerTm:        HomodimerTm(seq),
		ThreePrimeGCCount:  threePrimeGCCount(seq),
		IsValid:            v.IsWindowValid(seq),
	}

	maxRun := defaultMaxHomopolymerRun
	if r, ok := v.byKind[RuleHomopolymerRuns]; ok {
		maxRun = r.(HomopolymerRule).MaxRun
	}
	if base, run := longestHomopolymer(seq); run > maxRun {
		m.HasHomopolymers = true
		m.LongestHomopolymer = fmt.Sprintf("%sx%d", string(base), run)
	}

	maxRepeats := defaultMaxDinucleotideCount
	if r, ok := v.byKind[RuleDinucleotideRepeats]; ok {
		maxRepeats = r.(DinucleotideRule).MaxRepeats
	}
	if block, repeats := maxDinucleotideRepeat(seq); repeats > maxRepeats {
		m.HasDinucleotideRepeats = true
		m.MaxDinucleotideRepeat = fmt.Sprintf("%sx%d", string(block[:]), repeats)
	}

	return m
}
