package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T, rules ...Rule) *Validator {
	t.Helper()
	v, err := New(rules...)
	require.NoError(t, err)
	return v
}

func TestNew_DuplicateKind(t *testing.T) {
	_, err := New(
		GCContentRule{Min: 0.4, Max: 0.6},
		GCContentRule{Min: 0.3, Max: 0.7},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestValidator_IsWindowValid(t *testing.T) {
	v := newTestValidator(t,
		GCContentRule{Min: 0.25, Max: 0.75},
		HomopolymerRule{MaxRun: 4},
	)

	assert.True(t, v.IsWindowValid([]byte("ATGC")))
	assert.False(t, v.IsWindowValid([]byte("GGGGG"))) // GC and homopolymer
	assert.False(t, v.IsWindowValid([]byte("GCAAAAAT")))
}

func TestValidator_FailingRule_Order(t *testing.T) {
	v := newTestValidator(t,
		GCContentRule{Min: 0.25, Max: 0.75},
		HomopolymerRule{MaxRun: 4},
	)

	// GGGGG violates both rules; the first configured rule wins.
	kind, failed := v.FailingRule([]byte("GGGGG"))
	assert.True(t, failed)
	assert.Equal(t, RuleGCContent, kind)

	kind, failed = v.FailingRule([]byte("GCAAAAAT"))
	assert.True(t, failed)
	assert.Equal(t, RuleHomopolymerRuns, kind)

	_, failed = v.FailingRule([]byte("ATGC"))
	assert.False(t, failed)
}

func TestValidator_Probe(t *testing.T) {
	v := newTestValidator(t, HomopolymerRule{MaxRun: 4})

	assert.False(t, v.Probe(RuleHomopolymerRuns, []byte("AAAAA")))
	assert.True(t, v.Probe(RuleHomopolymerRuns, []byte("AAAA")))
	// Unconfigured kinds pass by definition.
	assert.True(t, v.Probe(RuleGCContent, []byte("AAAAA")))
}

func TestValidator_Enabled(t *testing.T) {
	v := newTestValidator(t, GCContentRule{Min: 0.4, Max: 0.6})

	assert.True(t, v.Enabled(RuleGCContent))
	assert.False(t, v.Enabled(RuleMeltingTemperature))
}

func TestValidator_GCBounds(t *testing.T) {
	v := newTestValidator(t, GCContentRule{Min: 0.4, Max: 0.6})
	min, max, ok := v.GCBounds()
	assert.True(t, ok)
	assert.Equal(t, 0.4, min)
	assert.Equal(t, 0.6, max)

	empty := newTestValidator(t)
	_, _, ok = empty.GCBounds()
	assert.False(t, ok)
}

func TestValidator_Observe(t *testing.T) {
	// Thermodynamic fields are only computed when the rules are active.
	plain := newTestValidator(t, GCContentRule{Min: 0, Max: 1})
	obs := plain.Observe([]byte("ATGC"))
	assert.Equal(t, 0.5, obs.GC)
	assert.False(t, obs.HasTm)
	assert.False(t, obs.HasHairpinTm)
	assert.False(t, obs.HasHomodimerTm)

	thermo := newTestValidator(t,
		MeltingTemperatureRule{Min: 0, Max: 100, Params: DefaultThermoParams()},
	)
	obs = thermo.Observe([]byte("ATGC"))
	assert.True(t, obs.HasTm)
	assert.InDelta(t, 12.0, obs.Tm, 1e-9)
}

func TestValidator_ValidateSequence(t *testing.T) {
	v := newTestValidator(t,
		GCContentRule{Min: 0.25, Max: 0.75},
		HomopolymerRule{MaxRun: 4},
		DinucleotideRule{MaxRepeats: 2},
	)

	m := v.ValidateSequence([]byte("ATGCATGCGC"))
	assert.Equal(t, 10, m.Length)
	assert.InDelta(t, 0.6, m.GCContent, 1e-9)
	assert.False(t, m.HasHomopolymers)
	assert.False(t, m.HasDinucleotideRepeats)
	assert.True(t, m.IsValid)

	m = v.ValidateSequence([]byte("ATGCAAAAAT"))
	assert.True(t, m.HasHomopolymers)
	assert.Equal(t, "Ax5", m.LongestHomopolymer)
	assert.False(t, m.IsValid)

	m = v.ValidateSequence([]byte("GCATATATGC"))
	assert.True(t, m.HasDinucleotideRepeats)
	assert.Equal(t, "ATx3", m.MaxDinucleotideRepeat)
	assert.False(t, m.IsValid)
}
