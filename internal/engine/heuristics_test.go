package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miskiewiczm/dna-generator/internal/validation"
)

func heuristicEngine(t *testing.T, rules ...validation.Rule) *Engine {
	t.Helper()
	oracle, err := validation.New(rules...)
	require.NoError(t, err)
	cfg := testConfig()
	cfg.Heuristics = true
	cfg.MinGC, cfg.MaxGC = 0.4, 0.6
	e, err := New(cfg, oracle)
	require.NoError(t, err)
	return e
}

func TestScore_HomopolymerPenalty(t *testing.T) {
	e := heuristicEngine(t, validation.HomopolymerRule{MaxRun: 4})

	seq := []byte("GCTAAAA")
	// Extending the A run past four triggers the hard penalty.
	assert.Equal(t, homopolymerPenalty, e.score('A', seq, 0, false))
	assert.Less(t, e.score('T', seq, 0, false), 1.0)
}

func TestScore_PenaltySeverityOrder(t *testing.T) {
	e := heuristicEngine(t,
		validation.HomopolymerRule{MaxRun: 4},
		validation.ThreePrimeRule{MaxGC: 3},
		validation.DinucleotideRule{MaxRepeats: 2},
	)

	// GGGG + G violates both the homopolymer and the 3' rule; the
	// homopolymer penalty wins the short circuit.
	assert.Equal(t, homopolymerPenalty, e.score('G', []byte("ATGGGG"), 0, false))

	// GCGC + G: five-symbol tail GCGCG has 4 G/C, a pure 3' violation.
	assert.Equal(t, threePrimePenalty, e.score('G', []byte("ATGCGC"), 0, false))

	// ATAT + AT...: a third AT repeat with an A/T-heavy tail only trips
	// the dinucleotide rule.
	assert.Equal(t, dinucleotidePenalty, e.score('T', []byte("GCATATA"), 0, false))
}

func TestScore_GCTargeting(t *testing.T) {
	e := heuristicEngine(t, validation.GCContentRule{Min: 0.4, Max: 0.6})

	// Window is all A/T: G or C moves the GC fraction toward the 0.5
	// target and must cost less than another A.
	seq := []byte("ATTATA")
	target := 0.5
	assert.Less(t, e.score('G', seq, target, true), e.score('A', seq, target, true))
}

func TestScore_DiversityTerm(t *testing.T) {
	e := heuristicEngine(t)

	// Without GC targeting or active rules the frequency term dominates:
	// the rarest base in the window is preferred.
	seq := []byte("AAATTT")
	assert.Less(t, e.score('G', seq, 0, false), e.score('A', seq, 0, false))
}

func TestNoveltyPenalty(t *testing.T) {
	e := heuristicEngine(t)

	// Appending T to ...GCA GCA GC reproduces no recent 3-mer; appending
	// A recreates GCA twice over.
	seq := []byte("GCAGCAGC")
	assert.Greater(t, e.noveltyPenalty(seq, 'A'), e.noveltyPenalty(seq, 'T'))

	// Too little history: no penalty.
	assert.Equal(t, 0.0, e.noveltyPenalty([]byte("A"), 'T'))
}

func TestChoose_HeuristicsOff(t *testing.T) {
	cfg := testConfig()
	e := newTestEngine(t, cfg, acceptAll())

	rng := NewDeterministicSource(3)
	counts := map[byte]int{}
	for i := 0; i < 4000; i++ {
		counts[e.choose([]byte("ATGC"), []byte{'A', 'T', 'G', 'C'}, rng)]++
	}
	// Uniform pick: every symbol lands in a generous band around 25%.
	for _, b := range []byte{'A', 'T', 'G', 'C'} {
		assert.Greater(t, counts[b], 800, string(b))
		assert.Less(t, counts[b], 1200, string(b))
	}
}

func TestChoose_SingleOption(t *testing.T) {
	cfg := testConfig()
	cfg.Heuristics = true
	e := newTestEngine(t, cfg, acceptAll())

	rng := NewDeterministicSource(3)
	assert.Equal(t, byte('G'), e.choose([]byte("ATGC"), []byte{'G'}, rng))
}

func TestPick_UniqueMinimum(t *testing.T) {
	cfg := testConfig()
	e := newTestEngine(t, cfg, acceptAll())

	rng := NewDeterministicSource(1)
	scored := []scoredCandidate{
		{cost: 0.10, base: 'G'},
		{cost: 0.30, base: 'A'},
		{cost: 0.50, base: 'T'},
	}
	assert.Equal(t, byte('G'), e.pick(scored, rng))
	// A unique minimum must not consume randomness.
	assert.Equal(t, int64(0), rng.Calls())
}

func TestPick_ExactTies(t *testing.T) {
	cfg := testConfig()
	e := newTestEngine(t, cfg, acceptAll())

	rng := NewDeterministicSource(1)
	scored := []scoredCandidate{
		{cost: 0.10, base: 'G'},
		{cost: 0.10, base: 'A'},
		{cost: 0.50, base: 'T'},
	}
	got := e.pick(scored, rng)
	assert.Contains(t, []byte{'G', 'A'}, got)
	assert.Equal(t, int64(1), rng.Calls())
}

func TestPick_RandomModeBand(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = ModeRandom
	e := newTestEngine(t, cfg, acceptAll())

	scored := []scoredCandidate{
		{cost: 0.100, base: 'G'},
		{cost: 0.110, base: 'A'}, // within the margin
		{cost: 0.500, base: 'T'}, // outside
	}
	rng := NewDeterministicSource(5)
	seen := map[byte]bool{}
	for i := 0; i < 200; i++ {
		b := e.pick(scored, rng)
		assert.Contains(t, []byte{'G', 'A'}, b)
		seen[b] = true
	}
	assert.True(t, seen['G'])
	assert.True(t, seen['A'])
}

func TestGather(t *testing.T) {
	scored := []scoredCandidate{
		{cost: 0.1, base: 'G'},
		{cost: 0.2, base: 'A'},
		{cost: 0.3, base: 'T'},
	}
	assert.Equal(t, []byte{'G', 'A'}, gather(scored, 0.2))
	assert.Equal(t, []byte{'G', 'A', 'T'}, gather(scored, 1.0))
}
