package validation

import (
	"fmt"

	"github.com/miskiewiczm/dna-generator/internal/dna"
)

// Validator evaluates an ordered set of rules against trailing windows.
// Rules are evaluated in the order they were passed to New; the first
// failing rule decides FailingRule.
//
// A Validator holds no mutable state after construction.
type Validator struct {
	rules  []Rule
	byKind map[RuleKind]Rule
}

// New builds a Validator from rule variants. Each kind may appear at most
// once.
func New(rules ...Rule) (*Validator, error) {
	v := &Validator{
		rules:  make([]Rule, 0, len(rules)),
		byKind: make(map[RuleKind]Rule, len(rules)),
	}
	for _, r := range rules {
		if _, dup := v.byKind[r.Kind()]; dup {
			return nil, fmt.Errorf("duplicate validation rule: %s", r.Kind())
		}
		v.rules = append(v.rules, r)
		v.byKind[r.Kind()] = r
	}
	return v, nil
}

// Rules returns the configured rules in evaluation order.
func (v *Validator) Rules() []Rule {
	out := make([]Rule, len(v.rules))
	copy(out, v.rules)
	return out
}

// IsWindowValid reports whether the window passes every configured rule.
// A pure function of the window content and the rule set.
func (v *Validator) IsWindowValid(window []byte) bool {
	for _, r := range v.rules {
		if !r.Check(window) {
			return false
		}
	}
	return true
}

// FailingRule returns the kind of the first rule the window violates.
// ok is false when the window passes all rules.
func (v *Validator) FailingRule(window []byte) (kind RuleKind, ok bool) {
	for _, r := range v.rules {
		if !r.Check(window) {
			return r.Kind(), true
		}
	}
	return "", false
}

// Enabled reports whether a rule of the given kind is configured.
func (v *Validator) Enabled(kind RuleKind) bool {
	_, ok := v.byKind[kind]
	return ok
}

// Probe checks the window against a single rule. Returns true when the
// window passes, or when no rule of that kind is configured.
func (v *Validator) Probe(kind RuleKind, window []byte) bool {
	r, ok := v.byKind[kind]
	if !ok {
		return true
	}
	return r.Check(window)
}

// GCFraction exposes the window GC fraction for heuristic scoring.
func (v *Validator) GCFraction(window []byte) float64 {
	return dna.GCFraction(window)
}

// GCBounds returns the configured GC bounds. ok is false when the GC rule
// is not active.
func (v *Validator) GCBounds() (min, max float64, ok bool) {
	r, found := v.byKind[RuleGCContent]
	if !found {
		return 0, 0, false
	}
	gc := r.(GCContentRule)
	return gc.Min, gc.Max, true
}

// thermoParams returns the reaction conditions from the melting
// temperature rule when configured, defaults otherwise.
func (v *Validator) thermoParams() ThermoParams {
	if r, ok := v.byKind[RuleMeltingTemperature]; ok {
		return r.(MeltingTemperatureRule).Params
	}
	return DefaultThermoParams()
}

// Observation carries the window metrics recorded into the stats rollup.
// Thermodynamic estimates are only computed when the corresponding rule is
// active; the Has* flags mark which fields are meaningful.
type Observation struct {
	GC             float64
	HasTm          bool
	Tm             float64
	HasHairpinTm   bool
	HairpinTm      float64
	HasHomodimerTm bool
	HomodimerTm    float64
}

// Observe computes the rollup metrics for one accepted window.
func (v *Validator) Observe(window []byte) Observation {
	obs := Observation{GC: dna.GCFraction(window)}
	if v.Enabled(RuleMeltingTemperature) {
		obs.HasTm = true
		obs.Tm = MeltingTemperature(window, v.thermoParams())
	}
	if v.Enabled(RuleHairpinStructures) {
		obs.HasHairpinTm = true
		obs.HairpinTm = HairpinTm(window)
	}
	if v.Enabled(RuleHomodimerStructures) {
		obs.HasHomodimerTm = true
		obs.HomodimerTm = HomodimerTm(window)
	}
	return obs
}
