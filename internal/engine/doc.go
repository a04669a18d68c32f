// Package engine implements the backtracking search that extends a DNA
// sequence to a target length under window-validity constraints.
//
// ARCHITECTURE:
//
// Single-Owner Search Loop:
// Each call to Extend runs fully synchronously and exclusively owns its
// sequence buffer, frontier stack, and stats. Nothing here is shared;
// concurrent generation means one Engine + one rng.Source per worker.
//
// Loop shape, one attempt per iteration:
//  1. Count the attempt; stop on budget exhaustion.
//  2. Stop if the frontier stack is empty (search space exhausted).
//  3. Empty top frontier: pop, drop the last appended symbol, count a
//     backtrack, next iteration.
//  4. Otherwise pick a candidate (heuristic scoring + mode-dependent
//     tie-break), consume it from the frontier, and test the trailing
//     window against the oracle.
//  5. Accepted: append, push a fresh frontier, update max depth.
//     Rejected: the candidate is already consumed; next iteration.
//
// Consuming the candidate before the oracle test is what makes the search
// exhaustive: each of the four symbols is tried at most once per position
// before the frontier can empty.
//
// DETERMINISM:
// With a seeded Source, the chosen symbol is a pure function of the seed
// and the ordinal position of the RNG call within the run. Frontier order,
// scoring order, and tie-gathering order are all fixed, so identical
// inputs reproduce identical sequences byte for byte.
//
// There is no mid-run cancellation; the attempt budget is the only bound
// on a run's cost.
package engine
