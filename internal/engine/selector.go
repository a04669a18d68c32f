package engine

// pick selects the final candidate from the ascending-sorted score list.
//
// Two-tier policy:
//   - Random mode first gathers the near-optimal band (cost within
//     randomModeMargin of the minimum) and picks uniformly when it holds
//     more than one candidate.
//   - Otherwise - deterministic mode, or a one-candidate band - exact ties
//     (within scoreEpsilon of the minimum) are broken via the RNG, which
//     keeps seeded runs reproducible; a unique minimum is taken as is.
func (e *Engine) pick(scored []scoredCandidate, rng *Source) byte {
	best := scored[0].cost

	if e.cfg.Mode == ModeRandom {
		band := gather(scored, best+randomModeMargin)
		if len(band) > 1 {
			return rng.Choice(band)
		}
	}

	ties := gather(scored, best+scoreEpsilon)
	if len(ties) > 1 {
		return rng.Choice(ties)
	}
	return scored[0].base
}

// gather returns the bases of every candidate with cost at most limit,
// preserving score order.
func gather(scored []scoredCandidate, limit float64) []byte {
	out := make([]byte, 0, len(scored))
	for _, c := range scored {
		if c.cost <= limit {
			out = append(out, c.base)
		}
	}
	return out
}
