package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeltingTemperature_Wallace(t *testing.T) {
	p := DefaultThermoParams()

	// Below 14 nt the Wallace rule applies: 2 per A/T, 4 per G/C.
	assert.InDelta(t, 12.0, MeltingTemperature([]byte("ATGC"), p), 1e-9)
	assert.InDelta(t, 8.0, MeltingTemperature([]byte("AAAA"), p), 1e-9)
	assert.InDelta(t, 16.0, MeltingTemperature([]byte("GGCC"), p), 1e-9)
	assert.Equal(t, 0.0, MeltingTemperature(nil, p))
}

func TestMeltingTemperature_Long(t *testing.T) {
	p := DefaultThermoParams()

	// 20 nt with 10 G/C; at 50 mM monovalent the salt correction is zero.
	seq := []byte("ATGCATGCATGCATGCATGC")
	want := 64.9 + 41.0*(10.0-16.4)/20.0
	assert.InDelta(t, want, MeltingTemperature(seq, p), 1e-9)

	// Higher salt raises the estimate.
	salty := p
	salty.MvConc = 100.0
	assert.Greater(t, MeltingTemperature(seq, salty), want)
}

func TestHairpinTm(t *testing.T) {
	// GCCG ... TTT ... CGGC folds back on itself: a 4-pair stem around a
	// 3 nt loop. Stem Wallace Tm = 16.
	assert.InDelta(t, 16.0, HairpinTm([]byte("GCCGTTTCGGC")), 1e-9)

	// No complementary symbols at all, no stem.
	assert.Equal(t, 0.0, HairpinTm([]byte("ACACACACACAC")))

	// Too short to enclose a loop.
	assert.Equal(t, 0.0, HairpinTm([]byte("GCCGCGGC")))
}

func TestHomodimerTm(t *testing.T) {
	// GGGGCCCC equals its own reverse complement: a full 8-match
	// alignment at offset zero. Wallace Tm = 32.
	assert.InDelta(t, 32.0, HomodimerTm([]byte("GGGGCCCC")), 1e-9)

	// Shorter than the minimum run.
	assert.Equal(t, 0.0, HomodimerTm([]byte("GGG")))
}
