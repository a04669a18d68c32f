// Package profile provides the validation-profile registry: named bundles
// of rule toggles and recommended thresholds.
//
// Built-in profiles ship embedded in the binary; user profile files merge
// over them, same-name profiles overriding. The registry is explicitly
// constructed and ownership-passed - there is no process-wide cache.
//
// Every profile document, built-in or user-supplied, is validated against
// an embedded CUE schema before it enters the registry, so malformed
// profiles are rejected with positioned field errors instead of surfacing
// as odd generation behavior later.
package profile

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/miskiewiczm/dna-generator/internal/config"
	"github.com/miskiewiczm/dna-generator/internal/validation"
)

//go:embed builtin.yaml
var builtinYAML []byte

// Profile is one named validation profile.
type Profile struct {
	Name        string             `yaml:"-" json:"name"`
	Description string             `yaml:"description" json:"description"`
	Rules       map[string]bool    `yaml:"rules" json:"rules"`
	Params      map[string]float64 `yaml:"params" json:"params"`
}

type profilesFile struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Registry holds the loaded profiles. Construct with NewRegistry; not safe
// for concurrent mutation (load user files before handing it out).
type Registry struct {
	profiles map[string]Profile
}

// NewRegistry loads the built-in profiles.
func NewRegistry() (*Registry, error) {
	r := &Registry{profiles: make(map[string]Profile)}
	if err := r.merge(builtinYAML, "builtin"); err != nil {
		return nil, fmt.Errorf("loading built-in profiles: %w", err)
	}
	return r, nil
}

// LoadUserFile merges a user profile file into the registry. Profiles with
// names already present override the built-ins.
func (r *Registry) LoadUserFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading profile file: %w", err)
	}
	return r.merge(data, path)
}

func (r *Registry) merge(data []byte, source string) error {
	if err := validateDocument(data, source); err != nil {
		return err
	}
	var file profilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%s: parsing profiles: %w", source, err)
	}
	for name, p := range file.Profiles {
		if _, exists := r.profiles[name]; exists {
			slog.Debug("profile overridden", "name", name, "source", source)
		}
		p.Name = name
		r.profiles[name] = p
	}
	return nil
}

// Get returns the named profile.
func (r *Registry) Get(name string) (Profile, error) {
	p, ok := r.profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown validation profile %q (available: %v)", name, r.Names())
	}
	return p, nil
}

// Names returns all profile names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns all profiles sorted by name.
func (r *Registry) List() []Profile {
	out := make([]Profile, 0, len(r.profiles))
	for _, name := range r.Names() {
		out = append(out, r.profiles[name])
	}
	return out
}

// Apply writes the profile's rule toggles and recommended thresholds into
// cfg. Rule keys missing from the profile default to enabled. The "none"
// profile additionally disables heuristics, so that rule-free generation
// is genuinely uniform.
func (p Profile) Apply(cfg *config.Config) error {
	ruleOn := func(kind validation.RuleKind) bool {
		v, ok := p.Rules[string(kind)]
		if !ok {
			return true
		}
		return v
	}
	cfg.Rules = config.RuleSet{
		GCContent:           ruleOn(validation.RuleGCContent),
		MeltingTemperature:  ruleOn(validation.RuleMeltingTemperature),
		HairpinStructures:   ruleOn(validation.RuleHairpinStructures),
		HomodimerStructures: ruleOn(validation.RuleHomodimerStructures),
		HomopolymerRuns:     ruleOn(validation.RuleHomopolymerRuns),
		DinucleotideRepeats: ruleOn(validation.RuleDinucleotideRepeats),
		ThreePrimeStability: ruleOn(validation.RuleThreePrimeStability),
	}

	for key, value := range p.Params {
		switch key {
		case "min_gc":
			cfg.MinGC = value
		case "max_gc":
			cfg.MaxGC = value
		case "min_tm":
			cfg.MinTm = value
		case "max_tm":
			cfg.MaxTm = value
		case "max_hairpin_tm":
			cfg.MaxHairpinTm = value
		case "max_homodimer_tm":
			cfg.MaxHomodimerTm = value
		case "max_homopolymer_length":
			cfg.MaxHomopolymerLength = int(value)
		case "max_dinucleotide_repeats":
			cfg.MaxDinucleotideRepeats = int(value)
		case "max_3prime_gc":
			cfg.MaxThreePrimeGC = int(value)
		default:
			return fmt.Errorf("profile %q: unknown parameter %q", p.Name, key)
		}
	}

	if p.Name == "none" {
		cfg.EnableHeuristics = false
	}
	return nil
}
