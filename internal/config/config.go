// Package config defines the generator configuration: generation mode,
// quality thresholds, rule toggles, and algorithm parameters.
//
// All range checks happen eagerly in Validate, before any search starts.
// A Config that fails validation never reaches the engine.
package config

import (
	"fmt"
	"math/big"

	"github.com/miskiewiczm/dna-generator/internal/engine"
	"github.com/miskiewiczm/dna-generator/internal/validation"
)

// RuleSet toggles the individual validation rules. This is the user-facing
// switch surface; Rules() materializes it into tagged rule variants for
// the oracle.
type RuleSet struct {
	GCContent           bool `yaml:"gc_content" json:"gc_content"`
	MeltingTemperature  bool `yaml:"melting_temperature" json:"melting_temperature"`
	HairpinStructures   bool `yaml:"hairpin_structures" json:"hairpin_structures"`
	HomodimerStructures bool `yaml:"homodimer_structures" json:"homodimer_structures"`
	HomopolymerRuns     bool `yaml:"homopolymer_runs" json:"homopolymer_runs"`
	DinucleotideRepeats bool `yaml:"dinucleotide_repeats" json:"dinucleotide_repeats"`
	ThreePrimeStability bool `yaml:"three_prime_stability" json:"three_prime_stability"`
}

// Config holds every knob of a generation run. Construct with Default and
// adjust, then Validate before use; generator.New does the validation for
// you.
type Config struct {
	// Mode and seed. A nil-equivalent seed (HasSeed false) in deterministic
	// mode derives one from the input parameters.
	Mode    engine.Mode
	Seed    int64
	HasSeed bool

	// Reaction conditions for the thermodynamic estimates.
	Thermo validation.ThermoParams

	// GC content bounds (fractions in [0,1]).
	MinGC float64
	MaxGC float64

	// Melting temperature bounds [degrees C].
	MinTm float64
	MaxTm float64

	// Secondary structure bounds [degrees C].
	MaxHairpinTm   float64
	MaxHomodimerTm float64

	// Sequence quality parameters.
	WindowSize             int
	MaxHomopolymerLength   int
	MaxDinucleotideRepeats int
	MaxThreePrimeGC        int

	// Algorithm parameters.
	MaxBacktrackAttempts int
	EnableHeuristics     bool
	ProgressLogging      bool

	// Active rules.
	Rules RuleSet
}

// Default returns the baseline configuration. Thermodynamic rules are off
// by default: only simplified fallback formulas are available, so they
// must be opted into explicitly (or via a profile).
func Default() Config {
	return Config{
		Mode:   engine.ModeDeterministic,
		Thermo: validation.DefaultThermoParams(),

		MinGC: 0.45,
		MaxGC: 0.55,

		MinTm:          55.0,
		MaxTm:          65.0,
		MaxHairpinTm:   30.0,
		MaxHomodimerTm: 30.0,

		WindowSize:             20,
		MaxHomopolymerLength:   4,
		MaxDinucleotideRepeats: 2,
		MaxThreePrimeGC:        3,

		MaxBacktrackAttempts: 10000,
		EnableHeuristics:     true,
		ProgressLogging:      true,

		Rules: RuleSet{
			GCContent:           true,
			HomopolymerRuns:     true,
			DinucleotideRepeats: true,
			ThreePrimeStability: true,
		},
	}
}

// Validate checks every parameter range. Returns the first violation.
func (c *Config) Validate() error {
	if c.MinGC < 0 || c.MinGC > 1 {
		return fmt.Errorf("min GC must be in [0.0, 1.0], got %v", c.MinGC)
	}
	if c.MaxGC < 0 || c.MaxGC > 1 {
		return fmt.Errorf("max GC must be in [0.0, 1.0], got %v", c.MaxGC)
	}
	if c.MinGC > c.MaxGC {
		return fmt.Errorf("min GC (%v) cannot be greater than max GC (%v)", c.MinGC, c.MaxGC)
	}
	if c.MinTm < 0 {
		return fmt.Errorf("min Tm cannot be negative, got %v", c.MinTm)
	}
	if c.MinTm > c.MaxTm {
		return fmt.Errorf("min Tm (%v) cannot be greater than max Tm (%v)", c.MinTm, c.MaxTm)
	}
	if c.Thermo.MvConc <= 0 {
		return fmt.Errorf("monovalent ion concentration must be positive, got %v", c.Thermo.MvConc)
	}
	if c.Thermo.DvConc < 0 {
		return fmt.Errorf("divalent ion concentration cannot be negative, got %v", c.Thermo.DvConc)
	}
	if c.Thermo.DNTPConc < 0 {
		return fmt.Errorf("dNTP concentration cannot be negative, got %v", c.Thermo.DNTPConc)
	}
	if c.Thermo.DNAConc <= 0 {
		return fmt.Errorf("DNA concentration must be positive, got %v", c.Thermo.DNAConc)
	}
	if c.WindowSize < 5 {
		return fmt.Errorf("window size must be >= 5, got %d", c.WindowSize)
	}
	if c.MaxHomopolymerLength < 2 {
		return fmt.Errorf("max homopolymer length must be >= 2, got %d", c.MaxHomopolymerLength)
	}
	if c.MaxDinucleotideRepeats < 1 {
		return fmt.Errorf("max dinucleotide repeats must be >= 1, got %d", c.MaxDinucleotideRepeats)
	}
	if c.MaxThreePrimeGC < 0 || c.MaxThreePrimeGC > 5 {
		return fmt.Errorf("max 3' GC count must be in [0, 5], got %d", c.MaxThreePrimeGC)
	}
	if c.MaxBacktrackAttempts < 1 {
		return fmt.Errorf("max backtrack attempts must be >= 1, got %d", c.MaxBacktrackAttempts)
	}
	return nil
}

// BuildRules materializes the enabled rule toggles into tagged rule
// variants, in the oracle's evaluation order.
func (c *Config) BuildRules() []validation.Rule {
	var rules []validation.Rule
	if c.Rules.GCContent {
		rules = append(rules, validation.GCContentRule{Min: c.MinGC, Max: c.MaxGC})
	}
	if c.Rules.HomopolymerRuns {
		rules = append(rules, validation.HomopolymerRule{MaxRun: c.MaxHomopolymerLength})
	}
	if c.Rules.DinucleotideRepeats {
		rules = append(rules, validation.DinucleotideRule{MaxRepeats: c.MaxDinucleotideRepeats})
	}
	if c.Rules.ThreePrimeStability {
		rules = append(rules, validation.ThreePrimeRule{MaxGC: c.MaxThreePrimeGC})
	}
	if c.Rules.MeltingTemperature {
		rules = append(rules, validation.MeltingTemperatureRule{Min: c.MinTm, Max: c.MaxTm, Params: c.Thermo})
	}
	if c.Rules.HairpinStructures {
		rules = append(rules, validation.HairpinRule{MaxTm: c.MaxHairpinTm})
	}
	if c.Rules.HomodimerStructures {
		rules = append(rules, validation.HomodimerRule{MaxTm: c.MaxHomodimerTm})
	}
	return rules
}

// RunConfig derives the engine's immutable per-run configuration.
func (c *Config) RunConfig() engine.RunConfig {
	return engine.RunConfig{
		WindowSize:      c.WindowSize,
		MaxAttempts:     c.MaxBacktrackAttempts,
		Heuristics:      c.EnableHeuristics,
		Mode:            c.Mode,
		MinGC:           c.MinGC,
		MaxGC:           c.MaxGC,
		ProgressLogging: c.ProgressLogging,
	}
}

// SearchSpaceBound returns 4^extensionLength, the number of distinct
// extensions of the given length. True completeness - finding any valid
// completion that exists - requires MaxBacktrackAttempts to cover this
// bound; CoversSearchSpace makes the comparison explicit instead of
// leaving it as an implicit assumption.
func SearchSpaceBound(extensionLength int) *big.Int {
	if extensionLength < 0 {
		return big.NewInt(0)
	}
	return new(big.Int).Exp(big.NewInt(4), big.NewInt(int64(extensionLength)), nil)
}

// CoversSearchSpace reports whether the attempt budget is large enough to
// enumerate every extension of the given length.
func (c *Config) CoversSearchSpace(extensionLength int) bool {
	return big.NewInt(int64(c.MaxBacktrackAttempts)).Cmp(SearchSpaceBound(extensionLength)) >= 0
}
