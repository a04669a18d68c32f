package validation

import (
	"math"

	"github.com/miskiewiczm/dna-generator/internal/dna"
)

// ThermoParams holds the reaction conditions used by the thermodynamic
// estimates. The fallback formulas only use the monovalent salt
// concentration; the remaining concentrations are carried for config
// parity and reporting.
type ThermoParams struct {
	MvConc   float64 // monovalent ion concentration [mM]
	DvConc   float64 // divalent ion concentration [mM]
	DNTPConc float64 // dNTP concentration [mM]
	DNAConc  float64 // DNA concentration [nM]
}

// DefaultThermoParams are standard PCR-like reaction conditions.
func DefaultThermoParams() ThermoParams {
	return ThermoParams{MvConc: 50.0, DvConc: 4.0, DNTPConc: 0.5, DNAConc: 50.0}
}

// wallaceTm is the Wallace rule: 2 degrees per A/T, 4 degrees per G/C.
// Reasonable for oligos shorter than ~14 nt.
func wallaceTm(seq []byte) float64 {
	gc := dna.GCCount(seq)
	at := len(seq) - gc
	return float64(2*at + 4*gc)
}

// MeltingTemperature estimates the melting temperature of seq in degrees
// Celsius. Short sequences use the Wallace rule; longer sequences use the
// GC-fraction estimate with a monovalent salt correction relative to 50 mM.
func MeltingTemperature(seq []byte, p ThermoParams) float64 {
	if len(seq) == 0 {
		return 0
	}
	if len(seq) < 14 {
		return wallaceTm(seq)
	}
	gc := float64(dna.GCCount(seq))
	tm := 64.9 + 41.0*(gc-16.4)/float64(len(seq))
	if p.MvConc > 0 {
		tm += 16.6 * math.Log10(p.MvConc/50.0)
	}
	return tm
}

// HairpinTm estimates the melting temperature of the most stable hairpin
// stem in seq. Stems need at least 4 complementary pairs enclosing a loop
// of at least 3 unpaired symbols; the stem's Wallace Tm is returned for the
// best stem found, 0 when no stem qualifies.
func HairpinTm(seq []byte) float64 {
	const (
		minStem = 4
		minLoop = 3
	)
	n := len(seq)
	best := 0.0
	for i := 0; i < n; i++ {
		for j := n - 1; j >= i+2*minStem+minLoop-1; j-- {
			stem := 0
			for {
				ip, jp := i+stem, j-stem
				// pairing ip/jp must leave a loop of at least minLoop
				if jp-ip-1 < minLoop || seq[ip] != dna.Complement(seq[jp]) {
					break
				}
				stem++
			}
			if stem >= minStem {
				tm := wallaceTm(seq[i : i+stem])
				if tm > best {
					best = tm
				}
			}
		}
	}
	return best
}

// HomodimerTm estimates the melting temperature of the strongest self-dimer
// by sliding seq along its own reverse complement and scoring the longest
// run of consecutive matches at any offset. Runs shorter than 4 are ignored.
func HomodimerTm(seq []byte) float64 {
	const minRun = 4
	n := len(seq)
	if n < minRun {
		return 0
	}
	rc := dna.ReverseComplement(seq)
	best := 0.0
	for offset := -(n - minRun); offset <= n-minRun; offset++ {
		run := 0
		bestRunStart, bestRunLen := 0, 0
		for i := 0; i < n; i++ {
			j := i + offset
			if j < 0 || j >= n {
				run = 0
				continue
			}
			if seq[i] == rc[j] {
				run++
				if run > bestRunLen {
					bestRunLen = run
					bestRunStart = i - run + 1
				}
			} else {
				run = 0
			}
		}
		if bestRunLen >= minRun {
			tm := wallaceTm(seq[bestRunStart : bestRunStart+bestRunLen])
			if tm > best {
				best = tm
			}
		}
	}
	return best
}
