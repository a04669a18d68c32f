package generator_test

import (
	"fmt"

	"github.com/miskiewiczm/dna-generator/internal/config"
	"github.com/miskiewiczm/dna-generator/internal/generator"
	"github.com/miskiewiczm/dna-generator/internal/profile"
)

// Example extends a validated primer start to 200 nt under the
// sequence_only profile with a fixed seed, the simplest reliable setup.
func Example() {
	reg, _ := profile.NewRegistry()
	p, _ := reg.Get("sequence_only")

	cfg := config.Default()
	_ = p.Apply(&cfg)
	cfg.Seed = 42
	cfg.HasSeed = true
	cfg.MaxBacktrackAttempts = 50000

	gen, err := generator.New(cfg)
	if err != nil {
		panic(err)
	}

	result := gen.Generate("GAGACGAGCATGAGACATAC", 200)
	fmt.Println(result.Success())
	fmt.Println(len(result.Sequence))
	// Output:
	// true
	// 200
}

// ExampleGenerator_Generate_profiles runs the same request under two
// validation profiles and compares the outcomes.
func ExampleGenerator_Generate_profiles() {
	reg, _ := profile.NewRegistry()

	for _, name := range []string{"relaxed", "sequence_only"} {
		p, _ := reg.Get(name)
		cfg := config.Default()
		_ = p.Apply(&cfg)
		cfg.WindowSize = 10
		cfg.Seed = 999
		cfg.HasSeed = true
		cfg.MaxBacktrackAttempts = 50000

		gen, err := generator.New(cfg)
		if err != nil {
			panic(err)
		}
		result := gen.Generate("ATGCGATCGT", 60)
		fmt.Printf("%s: %s\n", name, result.Outcome)
	}
	// Output:
	// relaxed: success
	// sequence_only: success
}

// ExampleGenerator_Generate_primerDesign grows a forward and a reverse
// primer to typical PCR length from short anchor sequences.
func ExampleGenerator_Generate_primerDesign() {
	reg, _ := profile.NewRegistry()
	p, _ := reg.Get("sequence_only")

	cfg := config.Default()
	_ = p.Apply(&cfg)
	cfg.WindowSize = 10
	cfg.Seed = 123
	cfg.HasSeed = true
	cfg.MaxBacktrackAttempts = 50000

	gen, err := generator.New(cfg)
	if err != nil {
		panic(err)
	}

	primers := []struct {
		name    string
		initial string
	}{
		{"forward", "ATGCGAT"},
		{"reverse", "CGATCGT"},
	}
	for _, pr := range primers {
		result := gen.Generate(pr.initial, 25)
		fmt.Printf("%s: %s (%d bp)\n", pr.name, result.Outcome, len(result.Sequence))
	}
	// Output:
	// forward: success (25 bp)
	// reverse: success (25 bp)
}
