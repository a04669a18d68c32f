package validation_test

import (
	"fmt"

	"github.com/miskiewiczm/dna-generator/internal/validation"
)

// ExampleValidator_IsWindowValid checks two windows against a custom rule
// set built directly from rule values.
func ExampleValidator_IsWindowValid() {
	v, err := validation.New(
		validation.GCContentRule{Min: 0.40, Max: 0.60},
		validation.HomopolymerRule{MaxRun: 4},
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(v.IsWindowValid([]byte("ATGCCATGGCATTGCA")))
	fmt.Println(v.IsWindowValid([]byte("AAAAAGC")))
	// Output:
	// true
	// false
}

// ExampleValidator_FailingRule reports which rule rejected a window.
func ExampleValidator_FailingRule() {
	v, err := validation.New(
		validation.GCContentRule{Min: 0.40, Max: 0.60},
		validation.HomopolymerRule{MaxRun: 4},
	)
	if err != nil {
		panic(err)
	}

	kind, _ := v.FailingRule([]byte("AAAAAGC"))
	fmt.Println(kind)
	// Output:
	// gc_content
}
