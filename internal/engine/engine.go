package engine

import (
	"fmt"
	"log/slog"

	"github.com/miskiewiczm/dna-generator/internal/dna"
	"github.com/miskiewiczm/dna-generator/internal/validation"
)

// Mode selects the candidate tie-break policy.
type Mode int

const (
	// ModeDeterministic breaks exact score ties via the seeded RNG; a run
	// is fully reproducible from its seed.
	ModeDeterministic Mode = iota
	// ModeRandom picks uniformly among all candidates within a margin of
	// the best score, trading reproducibility for diversity.
	ModeRandom
)

func (m Mode) String() string {
	if m == ModeRandom {
		return "random"
	}
	return "deterministic"
}

// Oracle is the window-validity contract the search loop consumes. It is
// implemented by validation.Validator; tests substitute stubs.
//
// Every method must be a pure function of the window content and the
// oracle's configuration.
type Oracle interface {
	IsWindowValid(window []byte) bool
	FailingRule(window []byte) (validation.RuleKind, bool)
	Enabled(kind validation.RuleKind) bool
	Probe(kind validation.RuleKind, window []byte) bool
	GCFraction(window []byte) float64
	Observe(window []byte) validation.Observation
}

// RunConfig is the immutable per-run configuration of the engine.
type RunConfig struct {
	// WindowSize bounds the trailing window passed to the oracle.
	WindowSize int
	// MaxAttempts is the attempt budget; the loop stops once the attempt
	// counter exceeds it.
	MaxAttempts int
	// Heuristics enables candidate scoring. When false, candidate choice
	// is a uniform pick among the remaining frontier symbols.
	Heuristics bool
	// Mode selects the tie-break policy.
	Mode Mode
	// MinGC/MaxGC are the GC bounds used for heuristic targeting. Only
	// meaningful while the oracle's GC rule is active.
	MinGC, MaxGC float64
	// ProgressLogging emits a progress line at depth multiples of 50.
	ProgressLogging bool
}

func (c RunConfig) validate() error {
	if c.WindowSize < 1 {
		return fmt.Errorf("window size must be >= 1, got %d", c.WindowSize)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be >= 1, got %d", c.MaxAttempts)
	}
	if c.MinGC > c.MaxGC {
		return fmt.Errorf("min GC (%v) cannot exceed max GC (%v)", c.MinGC, c.MaxGC)
	}
	return nil
}

// Outcome classifies how a run ended.
type Outcome int

const (
	// OutcomeSuccess: the sequence reached the target length.
	OutcomeSuccess Outcome = iota
	// OutcomeBudgetExceeded: the attempt budget ran out first.
	OutcomeBudgetExceeded
	// OutcomeSpaceExhausted: the frontier stack emptied at the root, so no
	// completion is reachable with the configured window size.
	OutcomeSpaceExhausted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeBudgetExceeded:
		return "budget_exceeded"
	case OutcomeSpaceExhausted:
		return "space_exhausted"
	}
	return "unknown"
}

// Result is the engine's return value. Sequence is only set on success; a
// failed run exposes no partial sequence, only Stats.
type Result struct {
	Outcome  Outcome
	Sequence []byte
	Stats    Stats
}

// Engine runs backtracking extensions against one oracle. The Engine
// itself is stateless between runs and may be reused; each Extend call
// owns its search state exclusively.
type Engine struct {
	cfg    RunConfig
	oracle Oracle
}

// New validates cfg and returns an Engine bound to the oracle.
func New(cfg RunConfig, oracle Oracle) (*Engine, error) {
	if oracle == nil {
		return nil, fmt.Errorf("oracle is required")
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid run config: %w", err)
	}
	return &Engine{cfg: cfg, oracle: oracle}, nil
}

// Extend grows initial to targetLength one symbol at a time, backtracking
// on dead ends. initial must already be normalized and no longer than
// targetLength; rng must be exclusive to this call.
func (e *Engine) Extend(initial []byte, targetLength int, rng *Source) Result {
	seq := make([]byte, len(initial), targetLength)
	copy(seq, initial)

	stats := newStats(len(initial))

	// Frontier stack: one not-yet-tried symbol set per position past the
	// initial sequence, plus the frontier for the position being decided.
	frontiers := make([][]byte, 0, targetLength-len(initial)+1)
	frontiers = append(frontiers, freshFrontier())

	outcome := OutcomeSuccess
	for len(seq) < targetLength {
		stats.TotalAttempts++

		if stats.TotalAttempts > e.cfg.MaxAttempts {
			slog.Warn("attempt budget exhausted", "max_attempts", e.cfg.MaxAttempts)
			outcome = OutcomeBudgetExceeded
			break
		}
		if len(frontiers) == 0 {
			slog.Warn("search space exhausted", "attempts", stats.TotalAttempts)
			outcome = OutcomeSpaceExhausted
			break
		}

		top := frontiers[len(frontiers)-1]
		if len(top) == 0 {
			// Dead end: this position has no untried symbols left.
			frontiers = frontiers[:len(frontiers)-1]
			if len(seq) > len(initial) {
				seq = seq[:len(seq)-1]
				stats.BacktrackCount++
			}
			continue
		}

		candidate := e.choose(seq, top, rng)
		frontiers[len(frontiers)-1] = removeSymbol(top, candidate)

		window := trailingWindow(seq, candidate, e.cfg.WindowSize)
		if !e.oracle.IsWindowValid(window) {
			if kind, ok := e.oracle.FailingRule(window); ok {
				stats.recordRejection(kind)
			}
			continue
		}

		seq = append(seq, candidate)
		frontiers = append(frontiers, freshFrontier())
		if len(seq) > stats.MaxDepthReached {
			stats.MaxDepthReached = len(seq)
		}
		stats.Rollup.record(e.oracle.Observe(window))

		if e.cfg.ProgressLogging && len(seq)%50 == 0 {
			slog.Info("generation progress",
				"length", len(seq),
				"target", targetLength,
				"percent", fmt.Sprintf("%.1f", float64(len(seq))/float64(targetLength)*100))
		}
	}

	if len(seq) == targetLength {
		final := make([]byte, len(seq))
		copy(final, seq)
		return Result{Outcome: OutcomeSuccess, Sequence: final, Stats: stats}
	}
	return Result{Outcome: outcome, Stats: stats}
}

// freshFrontier returns the full symbol set for a new position, in
// canonical alphabet order.
func freshFrontier() []byte {
	f := make([]byte, len(dna.Alphabet))
	copy(f, dna.Alphabet)
	return f
}

// removeSymbol deletes the first occurrence of b, preserving order.
func removeSymbol(frontier []byte, b byte) []byte {
	for i, x := range frontier {
		if x == b {
			return append(frontier[:i], frontier[i+1:]...)
		}
	}
	return frontier
}

// trailingWindow builds the window for testing candidate appended to seq:
// the last windowSize symbols of seq+candidate, or all of it if shorter.
func trailingWindow(seq []byte, candidate byte, windowSize int) []byte {
	total := len(seq) + 1
	size := windowSize
	if total < size {
		size = total
	}
	w := make([]byte, size)
	copy(w, seq[total-size:])
	w[size-1] = candidate
	return w
}
