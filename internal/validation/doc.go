// Package validation implements the window-validity oracle consumed by the
// backtracking engine.
//
// Rules are tagged variants, each carrying its own threshold payload
// (GCContentRule, HomopolymerRule, ...). The Validator evaluates an ordered
// rule set against a trailing window and answers three kinds of questions:
//
//   - IsWindowValid: the pure boolean gate used once per search trial
//   - Probe / FailingRule: per-rule checks used for heuristic scoring and
//     rejection diagnostics
//   - ValidateSequence / Observe: metric reports for result output and
//     window rollups
//
// Thermodynamic rules (melting temperature, hairpin, homodimer) use
// simplified non-thermodynamic fallback formulas: the Wallace rule for
// short windows and a GC-fraction estimate with monovalent salt correction
// otherwise. They are approximations, intended for screening rather than
// assay design, and are disabled in the default rule set.
//
// A Validator is immutable after construction and safe for concurrent use.
package validation
