package validation

import "testing"

// Fixed 20 nt windows spanning the composition range the search actually
// visits: alternating, repeat-heavy, AT-rich, and GC-rich content.
var benchWindows = [][]byte{
	[]byte("ATGCATGCATGCATGCATGC"),
	[]byte("GCTAGCTAGCTAGCTAGCTA"),
	[]byte("AATTCCGGAATTCCGGAATT"),
	[]byte("CGCGATATCGCGATCGCGAT"),
	[]byte("TACGTACGTACGTACGTACG"),
}

func newBenchValidator(b *testing.B, thermo bool) *Validator {
	b.Helper()
	rules := []Rule{
		GCContentRule{Min: 0.40, Max: 0.60},
		HomopolymerRule{MaxRun: 4},
		DinucleotideRule{MaxRepeats: 2},
		ThreePrimeRule{MaxGC: 3},
	}
	if thermo {
		rules = append(rules,
			MeltingTemperatureRule{Min: 55.0, Max: 65.0, Params: DefaultThermoParams()},
			HairpinRule{MaxTm: 30.0},
			HomodimerRule{MaxTm: 30.0},
		)
	}
	v, err := New(rules...)
	if err != nil {
		b.Fatal(err)
	}
	return v
}

// BenchmarkIsWindowValid times the per-window check that gates every
// candidate in the search loop, with and without the thermodynamic rules.
func BenchmarkIsWindowValid(b *testing.B) {
	for _, tc := range []struct {
		name   string
		thermo bool
	}{
		{"SequenceRules", false},
		{"AllRules", true},
	} {
		b.Run(tc.name, func(b *testing.B) {
			v := newBenchValidator(b, tc.thermo)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v.IsWindowValid(benchWindows[i%len(benchWindows)])
			}
		})
	}
}

// BenchmarkValidateSequence times the full metric report computed once per
// finished sequence.
func BenchmarkValidateSequence(b *testing.B) {
	v := newBenchValidator(b, true)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v.ValidateSequence(benchWindows[i%len(benchWindows)])
	}
}
