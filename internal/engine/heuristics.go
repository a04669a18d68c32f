package engine

import (
	"bytes"
	"math"
	"sort"

	"github.com/miskiewiczm/dna-generator/internal/validation"
)

// Heuristic scoring constants. Hard-constraint penalties are ordered
// homopolymer > 3' stability > dinucleotide so the cost ranking among
// violating candidates stays meaningful when only some rules are active.
const (
	homopolymerPenalty  = 1e6
	threePrimePenalty   = 5e5
	dinucleotidePenalty = 2e5

	diversityWeight  = 0.05
	noveltyWeight    = 0.01
	randomModeMargin = 0.02
	scoreEpsilon     = 1e-9
)

// recentHistoryMin is the floor on the history slice scanned by the
// novelty term.
const recentHistoryMin = 100

type scoredCandidate struct {
	cost float64
	base byte
}

// choose picks the next candidate from the frontier. With heuristics
// disabled, or a single option left, it is a uniform pick; otherwise
// candidates are scored (lower cost is better) and handed to the
// mode-dependent selector.
func (e *Engine) choose(seq []byte, options []byte, rng *Source) byte {
	if !e.cfg.Heuristics || len(options) <= 1 {
		return rng.Choice(options)
	}

	// GC targeting aims at the midpoint of the configured bounds, and only
	// applies while the GC rule is active.
	targetGC := 0.0
	gcTargeting := false
	if e.oracle.Enabled(validation.RuleGCContent) {
		targetGC = (e.cfg.MinGC + e.cfg.MaxGC) / 2.0
		gcTargeting = true
	}

	scored := make([]scoredCandidate, 0, len(options))
	for _, b := range options {
		scored = append(scored, scoredCandidate{
			cost: e.score(b, seq, targetGC, gcTargeting),
			base: b,
		})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].cost < scored[j].cost })

	return e.pick(scored, rng)
}

// score computes the heuristic cost of appending base to seq, evaluated
// against the hypothetical trailing window.
//
// Hard-constraint short circuit first, in fixed severity order, each gated
// by its own rule flag. Then the soft terms: distance of the window GC
// fraction from the target, frequency of the base within the window, and a
// novelty penalty counting recent occurrences of the new 3/4/5-symbol
// suffixes.
func (e *Engine) score(base byte, seq []byte, targetGC float64, gcTargeting bool) float64 {
	window := trailingWindow(seq, base, e.cfg.WindowSize)

	if e.oracle.Enabled(validation.RuleHomopolymerRuns) &&
		!e.oracle.Probe(validation.RuleHomopolymerRuns, window) {
		return homopolymerPenalty
	}
	if e.oracle.Enabled(validation.RuleThreePrimeStability) &&
		!e.oracle.Probe(validation.RuleThreePrimeStability, window) {
		return threePrimePenalty
	}
	if e.oracle.Enabled(validation.RuleDinucleotideRepeats) &&
		!e.oracle.Probe(validation.RuleDinucleotideRepeats, window) {
		return dinucleotidePenalty
	}

	dist := 0.0
	if gcTargeting {
		dist = math.Abs(e.oracle.GCFraction(window) - targetGC)
	}

	freq := 0.0
	if len(window) > 0 {
		freq = float64(bytes.Count(window, []byte{base})) / float64(len(window))
	}

	novelty := e.noveltyPenalty(seq, base)

	return dist + diversityWeight*freq + novelty
}

// noveltyPenalty discourages short periodic motifs: for suffix lengths 3,
// 4, and 5 of seq+base, count occurrences within the recent history slice
// (the last max(100, windowSize) symbols of seq) and charge a small
// constant per occurrence.
func (e *Engine) noveltyPenalty(seq []byte, base byte) float64 {
	recentLen := recentHistoryMin
	if e.cfg.WindowSize > recentLen {
		recentLen = e.cfg.WindowSize
	}
	recent := seq
	if len(recent) > recentLen {
		recent = recent[len(recent)-recentLen:]
	}

	penalty := 0.0
	for _, k := range [...]int{3, 4, 5} {
		if len(seq)+1 < k {
			continue
		}
		kmer := make([]byte, k)
		copy(kmer, seq[len(seq)-(k-1):])
		kmer[k-1] = base
		penalty += noveltyWeight * float64(bytes.Count(recent, kmer))
	}
	return penalty
}
