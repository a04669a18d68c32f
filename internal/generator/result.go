package generator

import (
	"time"

	"github.com/miskiewiczm/dna-generator/internal/engine"
	"github.com/miskiewiczm/dna-generator/internal/validation"
)

// Outcome classifies how a generation request ended. The engine outcomes
// are carried through unchanged; OutcomeError covers input faults and
// recovered internal faults.
type Outcome string

const (
	OutcomeSuccess        Outcome = "success"
	OutcomeBudgetExceeded Outcome = "budget_exceeded"
	OutcomeSpaceExhausted Outcome = "space_exhausted"
	OutcomeError          Outcome = "error"
)

func outcomeFromEngine(o engine.Outcome) Outcome {
	switch o {
	case engine.OutcomeSuccess:
		return OutcomeSuccess
	case engine.OutcomeBudgetExceeded:
		return OutcomeBudgetExceeded
	case engine.OutcomeSpaceExhausted:
		return OutcomeSpaceExhausted
	}
	return OutcomeError
}

// Result is the outcome of one generation request. Every failure mode is
// reported through Result, never as an error return: callers inspect
// Outcome and retry with a different seed, relaxed rules, or a larger
// budget.
type Result struct {
	Outcome         Outcome             `json:"outcome"`
	Sequence        string              `json:"sequence,omitempty"`
	InitialSequence string              `json:"initial_sequence"`
	TargetLength    int                 `json:"target_length"`
	ActualLength    int                 `json:"actual_length,omitempty"`
	Seed            *int64              `json:"seed,omitempty"`
	Metrics         *validation.Metrics `json:"quality_metrics,omitempty"`
	Stats           *engine.Stats       `json:"generation_stats,omitempty"`
	ErrorMessage    string              `json:"error_message,omitempty"`
	Duration        time.Duration       `json:"-"`
	DurationSeconds float64             `json:"generation_time_seconds"`
}

// Success reports whether the request produced a full-length sequence.
func (r Result) Success() bool {
	return r.Outcome == OutcomeSuccess
}
