package sketch

import (
	"errors"
	"math"
)

var (
	// ErrBadSignatureSize indicates a non-positive MinHash signature size.
	ErrBadSignatureSize = errors.New("sketch: signature size must be positive")
	// ErrSignatureMismatch indicates Similarity was called on sketches of
	// differing signature sizes.
	ErrSignatureMismatch = errors.New("sketch: signature sizes differ")
)

// MinHash estimates Jaccard similarity between sets: signature slot i
// holds the minimum of hash function i over all added elements, and the
// fraction of agreeing slots between two sketches estimates
// |A∩B| / |A∪B|.
type MinHash struct {
	mins []uint64
}

// NewMinHash returns an empty sketch with the given signature size.
// Larger signatures reduce estimation error (stddev ≈ 1/√size).
func NewMinHash(size int) (*MinHash, error) {
	if size <= 0 {
		return nil, ErrBadSignatureSize
	}
	m := &MinHash{mins: make([]uint64, size)}
	for i := range m.mins {
		m.mins[i] = math.MaxUint64
	}

	return m, nil
}

// Add folds one set element into the signature.
func (m *MinHash) Add(data []byte) {
	base := hashSeed(data, 0)
	for i := range m.mins {
		// Derive hash i from the base without rehashing the input.
		h := splitmix(base + uint64(i)*0x9E3779B97F4A7C15)
		if h < m.mins[i] {
			m.mins[i] = h
		}
	}
}

// Signature returns a copy of the current signature.
func (m *MinHash) Signature() []uint64 {
	out := make([]uint64, len(m.mins))
	copy(out, m.mins)

	return out
}

// Similarity estimates the Jaccard index of the sets behind m and other.
func (m *MinHash) Similarity(other *MinHash) (float64, error) {
	if len(m.mins) != len(other.mins) {
		return 0, ErrSignatureMismatch
	}
	agree := 0
	for i := range m.mins {
		if m.mins[i] == other.mins[i] {
			agree++
		}
	}

	return float64(agree) / float64(len(m.mins)), nil
}
