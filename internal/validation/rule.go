package validation

import (
	"github.com/miskiewiczm/dna-generator/internal/dna"
)

// RuleKind identifies a validation rule category. The values double as the
// rule keys accepted in profile files.
type RuleKind string

const (
	RuleGCContent           RuleKind = "gc_content"
	RuleMeltingTemperature  RuleKind = "melting_temperature"
	RuleHairpinStructures   RuleKind = "hairpin_structures"
	RuleHomodimerStructures RuleKind = "homodimer_structures"
	RuleHomopolymerRuns     RuleKind = "homopolymer_runs"
	RuleDinucleotideRepeats RuleKind = "dinucleotide_repeats"
	RuleThreePrimeStability RuleKind = "three_prime_stability"
)

// KnownRuleKinds lists every rule kind in evaluation order. The order is
// fixed: cheap sequence checks first, thermodynamic estimates last.
var KnownRuleKinds = []RuleKind{
	RuleGCContent,
	RuleHomopolymerRuns,
	RuleDinucleotideRepeats,
	RuleThreePrimeStability,
	RuleMeltingTemperature,
	RuleHairpinStructures,
	RuleHomodimerStructures,
}

// Rule is one window-validity check. Check returns true when the window
// passes the rule.
type Rule interface {
	Kind() RuleKind
	Check(window []byte) bool
}

// GCContentRule bounds the GC fraction of a window.
type GCContentRule struct {
	Min float64
	Max float64
}

func (GCContentRule) Kind() RuleKind { return RuleGCContent }

func (r GCContentRule) Check(window []byte) bool {
	gc := dna.GCFraction(window)
	return gc >= r.Min && gc <= r.Max
}

// HomopolymerRule rejects windows containing a run of one symbol longer
// than MaxRun. A run of exactly MaxRun is allowed.
type HomopolymerRule struct {
	MaxRun int
}

func (HomopolymerRule) Kind() RuleKind { return RuleHomopolymerRuns }

func (r HomopolymerRule) Check(window []byte) bool {
	_, run := longestHomopolymer(window)
	return run <= r.MaxRun
}

// DinucleotideRule rejects windows containing a two-symbol block repeated
// consecutively more than MaxRepeats times. ATAT counts as 2 repeats of AT.
type DinucleotideRule struct {
	MaxRepeats int
}

func (DinucleotideRule) Kind() RuleKind { return RuleDinucleotideRepeats }

func (r DinucleotideRule) Check(window []byte) bool {
	_, repeats := maxDinucleotideRepeat(window)
	return repeats <= r.MaxRepeats
}

// ThreePrimeRule bounds the number of G/C symbols among the last five
// positions of the window (the 3' end of the growing strand). Windows
// shorter than five are checked over their full length.
type ThreePrimeRule struct {
	MaxGC int
}

func (ThreePrimeRule) Kind() RuleKind { return RuleThreePrimeStability }

func (r ThreePrimeRule) Check(window []byte) bool {
	return threePrimeGCCount(window) <= r.MaxGC
}

// MeltingTemperatureRule bounds the estimated melting temperature of the
// window. Uses the fallback Tm estimate (see thermo.go).
type MeltingTemperatureRule struct {
	Min    float64
	Max    float64
	Params ThermoParams
}

func (MeltingTemperatureRule) Kind() RuleKind { return RuleMeltingTemperature }

func (r MeltingTemperatureRule) Check(window []byte) bool {
	tm := MeltingTemperature(window, r.Params)
	return tm >= r.Min && tm <= r.Max
}

// HairpinRule bounds the estimated melting temperature of the most stable
// hairpin stem within the window.
type HairpinRule struct {
	MaxTm float64
}

func (HairpinRule) Kind() RuleKind { return RuleHairpinStructures }

func (r HairpinRule) Check(window []byte) bool {
	return HairpinTm(window) <= r.MaxTm
}

// HomodimerRule bounds the estimated melting temperature of the strongest
// self-dimer alignment of the window against its own reverse complement.
type HomodimerRule struct {
	MaxTm float64
}

func (HomodimerRule) Kind() RuleKind { return RuleHomodimerStructures }

func (r HomodimerRule) Check(window []byte) bool {
	return HomodimerTm(window) <= r.MaxTm
}

// longestHomopolymer returns the base and length of the longest run of a
// single symbol. Returns (0, 0) for an empty window.
func longestHomopolymer(window []byte) (base byte, run int) {
	if len(window) == 0 {
		return 0, 0
	}
	base, run = window[0], 1
	cur := 1
	for i := 1; i < len(window); i++ {
		if window[i] == window[i-1] {
			cur++
		} else {
			cur = 1
		}
		if cur > run {
			run = cur
			base = window[i]
		}
	}
	return base, run
}

// maxDinucleotideRepeat returns the two-symbol block with the highest
// consecutive repeat count and that count. A single occurrence of any
// block counts as 1.
func maxDinucleotideRepeat(window []byte) (block [2]byte, repeats int) {
	for i := 0; i+2 <= len(window); i++ {
		b0, b1 := window[i], window[i+1]
		c := 1
		for j := i + 2; j+2 <= len(window) && window[j] == b0 && window[j+1] == b1; j += 2 {
			c++
		}
		if c > repeats {
			repeats = c
			block = [2]byte{b0, b1}
		}
	}
	return block, repeats
}

// threePrimeGCCount counts G/C symbols in the last five positions of the
// window, or the whole window if shorter.
func threePrimeGCCount(window []byte) int {
	tail := window
	if len(tail) > 5 {
		tail = tail[len(tail)-5:]
	}
	return dna.GCCount(tail)
}
