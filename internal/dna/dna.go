// Package dna defines the four-letter nucleotide alphabet and the shared
// sequence helpers used by the validation rules and the search engine.
//
// Sequences are handled as []byte of uppercase A/T/G/C throughout the
// codebase. Normalization happens exactly once, at the API boundary
// (generator.Generate / CLI input) - everything below that boundary may
// assume a normalized sequence.
package dna

import (
	"fmt"
	"strings"
)

// Alphabet is the nucleotide alphabet in canonical order. The order matters:
// frontier stacks are created in this order and deterministic runs depend on
// it staying stable.
var Alphabet = []byte{'A', 'T', 'G', 'C'}

// InputError reports a malformed input sequence.
type InputError struct {
	Parameter string
	Value     string
	Message   string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s (%s=%q)", e.Parameter, e.Message, e.Parameter, e.Value)
}

// Normalize uppercases a raw sequence string, strips surrounding whitespace,
// and verifies every symbol belongs to the alphabet.
func Normalize(raw string) ([]byte, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return nil, &InputError{Parameter: "sequence", Value: raw, Message: "sequence is empty"}
	}
	seq := []byte(s)
	for i, b := range seq {
		if !IsBase(b) {
			return nil, &InputError{
				Parameter: "sequence",
				Value:     raw,
				Message:   fmt.Sprintf("invalid symbol %q at position %d", string(b), i),
			}
		}
	}
	return seq, nil
}

// IsBase reports whether b is one of A/T/G/C.
func IsBase(b byte) bool {
	return b == 'A' || b == 'T' || b == 'G' || b == 'C'
}

// IsGC reports whether b belongs to the GC subset of the alphabet.
func IsGC(b byte) bool {
	return b == 'G' || b == 'C'
}

// GCCount returns the number of G/C symbols in seq.
func GCCount(seq []byte) int {
	n := 0
	for _, b := range seq {
		if IsGC(b) {
			n++
		}
	}
	return n
}

// GCFraction returns the fraction of G/C symbols in seq, or 0 for an empty
// sequence.
func GCFraction(seq []byte) float64 {
	if len(seq) == 0 {
		return 0
	}
	return float64(GCCount(seq)) / float64(len(seq))
}

// Complement returns the Watson-Crick complement of a single base.
func Complement(b byte) byte {
	switch b {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'G':
		return 'C'
	case 'C':
		return 'G'
	}
	return b
}

// ReverseComplement returns the reverse complement of seq as a new slice.
func ReverseComplement(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		out[len(seq)-1-i] = Complement(b)
	}
	return out
}
