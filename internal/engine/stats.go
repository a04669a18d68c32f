package engine

import (
	"github.com/miskiewiczm/dna-generator/internal/validation"
)

// Stats is the per-run accumulator returned alongside every result,
// success or failure.
//
// Counting rules:
//   - TotalAttempts increments exactly once per loop iteration, whether
//     the iteration accepted, rejected, or backtracked.
//   - BacktrackCount increments exactly once each time an emptied frontier
//     causes a symbol to be removed.
//   - MaxDepthReached is the sequence-length high-water mark. Monotonically
//     non-decreasing; never reset by backtracking.
type Stats struct {
	TotalAttempts   int `json:"total_attempts"`
	BacktrackCount  int `json:"backtrack_count"`
	MaxDepthReached int `json:"max_depth_reached"`

	// Rejections counts window rejections by the first rule that failed.
	Rejections map[validation.RuleKind]int `json:"rejections,omitempty"`

	// Rollup tracks metric extrema over accepted windows.
	Rollup WindowRollup `json:"window_rollup"`
}

func newStats(initialLength int) Stats {
	return Stats{
		MaxDepthReached: initialLength,
		Rejections:      make(map[validation.RuleKind]int),
	}
}

func (s *Stats) recordRejection(kind validation.RuleKind) {
	s.Rejections[kind]++
}

// WindowRollup holds min/max metrics over the windows accepted during a
// run. Samples is the number of accepted windows; the remaining fields are
// meaningless when it is zero. Tm extrema are only tracked when the
// corresponding thermodynamic rules are active.
type WindowRollup struct {
	Samples        int     `json:"samples"`
	GCMin          float64 `json:"gc_min"`
	GCMax          float64 `json:"gc_max"`
	TmSamples      int     `json:"tm_samples,omitempty"`
	TmMin          float64 `json:"tm_min,omitempty"`
	TmMax          float64 `json:"tm_max,omitempty"`
	HairpinTmMax   float64 `json:"hairpin_tm_max,omitempty"`
	HomodimerTmMax float64 `json:"homodimer_tm_max,omitempty"`
}

func (r *WindowRollup) record(obs validation.Observation) {
	if r.Samples == 0 || obs.GC < r.GCMin {
		r.GCMin = obs.GC
	}
	if r.Samples == 0 || obs.GC > r.GCMax {
		r.GCMax = obs.GC
	}
	r.Samples++

	if obs.HasTm {
		if r.TmSamples == 0 || obs.Tm < r.TmMin {
			r.TmMin = obs.Tm
		}
		if r.TmSamples == 0 || obs.Tm > r.TmMax {
			r.TmMax = obs.Tm
		}
		r.TmSamples++
	}
	if obs.HasHairpinTm && obs.HairpinTm > r.HairpinTmMax {
		r.HairpinTmMax = obs.HairpinTm
	}
	if obs.HasHomodimerTm && obs.HomodimerTm > r.HomodimerTmMax {
		r.HomodimerTmMax = obs.HomodimerTm
	}
}
