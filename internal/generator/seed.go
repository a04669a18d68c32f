package generator

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// deriveSeed produces a stable seed from the generation parameters, used
// when deterministic mode is requested without an explicit seed. Same
// inputs, same seed, so "deterministic without a seed" is still
// reproducible.
func deriveSeed(initial []byte, targetLength, windowSize int, minGC, maxGC float64) int64 {
	h := sha256.New()
	h.Write(initial)
	fmt.Fprintf(h, "|%d_%d_%.2f_%.2f", targetLength, windowSize, minGC, maxGC)
	sum := h.Sum(nil)
	return int64(binary.BigEndian.Uint64(sum[:8]) & (1<<63 - 1))
}
