package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/miskiewiczm/dna-generator/internal/validation"
)

func TestNewStats(t *testing.T) {
	s := newStats(8)
	assert.Equal(t, 8, s.MaxDepthReached)
	assert.Equal(t, 0, s.TotalAttempts)
	assert.NotNil(t, s.Rejections)
}

func TestStats_RecordRejection(t *testing.T) {
	s := newStats(0)
	s.recordRejection(validation.RuleGCContent)
	s.recordRejection(validation.RuleGCContent)
	s.recordRejection(validation.RuleHomopolymerRuns)

	assert.Equal(t, 2, s.Rejections[validation.RuleGCContent])
	assert.Equal(t, 1, s.Rejections[validation.RuleHomopolymerRuns])
}

func TestWindowRollup_Record(t *testing.T) {
	var r WindowRollup

	r.record(validation.Observation{GC: 0.5})
	r.record(validation.Observation{GC: 0.3})
	r.record(validation.Observation{GC: 0.7})

	assert.Equal(t, 3, r.Samples)
	assert.Equal(t, 0.3, r.GCMin)
	assert.Equal(t, 0.7, r.GCMax)
	assert.Equal(t, 0, r.TmSamples)
}

func TestWindowRollup_ThermoFields(t *testing.T) {
	var r WindowRollup

	r.record(validation.Observation{GC: 0.5, HasTm: true, Tm: 60})
	r.record(validation.Observation{GC: 0.5, HasTm: true, Tm: 55})
	r.record(validation.Observation{GC: 0.5}) // Tm rule inactive for this window

	assert.Equal(t, 3, r.Samples)
	assert.Equal(t, 2, r.TmSamples)
	assert.Equal(t, 55.0, r.TmMin)
	assert.Equal(t, 60.0, r.TmMax)

	r.record(validation.Observation{GC: 0.5, HasHairpinTm: true, HairpinTm: 12})
	r.record(validation.Observation{GC: 0.5, HasHomodimerTm: true, HomodimerTm: 20})
	assert.Equal(t, 12.0, r.HairpinTmMax)
	assert.Equal(t, 20.0, r.HomodimerTmMax)
}
