package dna

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	seq, err := Normalize("atgc")
	require.NoError(t, err)
	assert.Equal(t, []byte("ATGC"), seq)

	seq, err = Normalize("  ATGC\n")
	require.NoError(t, err)
	assert.Equal(t, []byte("ATGC"), seq)
}

func TestNormalize_Empty(t *testing.T) {
	_, err := Normalize("   ")
	require.Error(t, err)

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "sequence", inputErr.Parameter)
}

func TestNormalize_InvalidSymbol(t *testing.T) {
	_, err := Normalize("ATXC")
	require.Error(t, err)

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Contains(t, inputErr.Message, "position 2")
}

func TestGCFraction(t *testing.T) {
	assert.Equal(t, 0.0, GCFraction(nil))
	assert.Equal(t, 0.5, GCFraction([]byte("ATGC")))
	assert.Equal(t, 1.0, GCFraction([]byte("GGCC")))
	assert.Equal(t, 0.0, GCFraction([]byte("ATAT")))
}

func TestGCCount(t *testing.T) {
	assert.Equal(t, 0, GCCount([]byte("ATAT")))
	assert.Equal(t, 3, GCCount([]byte("GCGAT")))
}

func TestComplement(t *testing.T) {
	assert.Equal(t, byte('T'), Complement('A'))
	assert.Equal(t, byte('A'), Complement('T'))
	assert.Equal(t, byte('C'), Complement('G'))
	assert.Equal(t, byte('G'), Complement('C'))
}

func TestReverseComplement(t *testing.T) {
	assert.Equal(t, []byte("GCAT"), ReverseComplement([]byte("ATGC")))

	// Input slice is not mutated.
	in := []byte("AATT")
	out := ReverseComplement(in)
	assert.Equal(t, []byte("AATT"), in)
	assert.Equal(t, []byte("AATT"), out)
}

func TestAlphabetOrder(t *testing.T) {
	// Deterministic runs depend on this order staying stable.
	assert.Equal(t, []byte{'A', 'T', 'G', 'C'}, Alphabet)
}
