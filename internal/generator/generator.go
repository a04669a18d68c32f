// Package generator is the high-level generation API: it validates input,
// resolves seeds, drives the backtracking engine, and reports structured
// results.
//
// Search failures and input faults are reported through Result, never as
// error returns; only configuration faults fail construction. Batch
// generation isolates item faults so one failing item never aborts the
// rest.
package generator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/miskiewiczm/dna-generator/internal/config"
	"github.com/miskiewiczm/dna-generator/internal/dna"
	"github.com/miskiewiczm/dna-generator/internal/engine"
	"github.com/miskiewiczm/dna-generator/internal/validation"
)

// Generator generates DNA sequences under one validated configuration.
// Safe for concurrent Generate calls: each call builds its own RNG and
// search state.
type Generator struct {
	cfg    config.Config
	oracle *validation.Validator
	engine *engine.Engine
}

// New validates cfg eagerly and builds the oracle and engine. Any range
// violation fails construction; the engine never sees an invalid config.
func New(cfg config.Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	oracle, err := validation.New(cfg.BuildRules()...)
	if err != nil {
		return nil, fmt.Errorf("building validator: %w", err)
	}
	eng, err := engine.New(cfg.RunConfig(), oracle)
	if err != nil {
		return nil, fmt.Errorf("building engine: %w", err)
	}
	slog.Debug("generator initialized", "mode", cfg.Mode.String(), "rules", len(oracle.Rules()))
	return &Generator{cfg: cfg, oracle: oracle, engine: eng}, nil
}

// Config returns a copy of the generator's configuration.
func (g *Generator) Config() config.Config {
	return g.cfg
}

// Oracle returns the generator's validator, for analysis and reporting.
func (g *Generator) Oracle() *validation.Validator {
	return g.oracle
}

// GenerateOption adjusts a single Generate call.
type GenerateOption func(*generateOptions)

type generateOptions struct {
	seed    int64
	hasSeed bool
}

// WithSeed overrides the seed for this call. Only meaningful in
// deterministic mode.
func WithSeed(seed int64) GenerateOption {
	return func(o *generateOptions) {
		o.seed = seed
		o.hasSeed = true
	}
}

// Generate extends initial to targetLength. All failures - malformed
// input, budget exhaustion, space exhaustion - come back as a Result with
// the matching Outcome.
func (g *Generator) Generate(initial string, targetLength int, opts ...GenerateOption) Result {
	start := time.Now()
	var o generateOptions
	for _, opt := range opts {
		opt(&o)
	}

	res := Result{
		InitialSequence: initial,
		TargetLength:    targetLength,
	}

	seq, err := dna.Normalize(initial)
	if err != nil {
		return g.failed(res, err.Error(), start)
	}
	res.InitialSequence = string(seq)

	if targetLength < len(seq) {
		return g.failed(res,
			fmt.Sprintf("target length (%d) must be >= initial sequence length (%d)", targetLength, len(seq)),
			start)
	}

	rng := g.newSource(seq, targetLength, o)
	if rng.Deterministic() {
		seed := rng.Seed()
		res.Seed = &seed
		slog.Debug("deterministic run", "seed", seed)
	}

	er := g.engine.Extend(seq, targetLength, rng)
	res.Stats = &er.Stats
	res.Duration = time.Since(start)
	res.DurationSeconds = res.Duration.Seconds()
	res.Outcome = outcomeFromEngine(er.Outcome)

	if er.Outcome != engine.OutcomeSuccess {
		res.ErrorMessage = "failed to generate a sequence meeting window criteria"
		return res
	}

	res.Sequence = string(er.Sequence)
	res.ActualLength = len(er.Sequence)
	metrics := g.oracle.ValidateSequence(er.Sequence)
	res.Metrics = &metrics
	return res
}

// GenerateBatch produces count sequences. Items are generated one after
// another; a panic inside a single item is recovered and converted into an
// error Result so the remaining items still run.
func (g *Generator) GenerateBatch(initial string, targetLength, count int, opts ...GenerateOption) []Result {
	results := make([]Result, 0, count)
	for i := 0; i < count; i++ {
		slog.Debug("batch item", "index", i+1, "count", count)
		results = append(results, g.generateIsolated(initial, targetLength, opts...))
	}
	return results
}

func (g *Generator) generateIsolated(initial string, targetLength int, opts ...GenerateOption) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("generation panicked", "panic", r)
			res = Result{
				Outcome:         OutcomeError,
				InitialSequence: initial,
				TargetLength:    targetLength,
				ErrorMessage:    fmt.Sprintf("internal fault: %v", r),
			}
		}
	}()
	return g.Generate(initial, targetLength, opts...)
}

// newSource builds the call-scoped RNG. Deterministic mode resolves the
// seed as: per-call option, then config seed, then a seed derived from the
// generation parameters. Random mode always takes fresh entropy.
func (g *Generator) newSource(initial []byte, targetLength int, o generateOptions) *engine.Source {
	if g.cfg.Mode != engine.ModeDeterministic {
		return engine.NewRandomSource()
	}
	switch {
	case o.hasSeed:
		return engine.NewDeterministicSource(o.seed)
	case g.cfg.HasSeed:
		return engine.NewDeterministicSource(g.cfg.Seed)
	default:
		return engine.NewDeterministicSource(
			deriveSeed(initial, targetLength, g.cfg.WindowSize, g.cfg.MinGC, g.cfg.MaxGC))
	}
}

func (g *Generator) failed(res Result, message string, start time.Time) Result {
	slog.Error("generation failed", "error", message)
	res.Outcome = OutcomeError
	res.ErrorMessage = message
	res.Duration = time.Since(start)
	res.DurationSeconds = res.Duration.Seconds()
	return res
}
