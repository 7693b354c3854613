package sketch

import (
	"errors"
	"math"
)

var (
	// ErrBadSizing indicates a non-positive expected count or a
	// false-positive rate outside (0, 1).
	ErrBadSizing = errors.New("sketch: expected count must be positive and fp rate in (0, 1)")
	// ErrCounterUnderflow indicates Remove was called for an item whose
	// counters were already zero somewhere (item was never added, or
	// removed twice).
	ErrCounterUnderflow = errors.New("sketch: counting bloom underflow")
)

// Bloom is a classic Bloom filter: k hash functions over a bit array.
// Contains never reports false for an added item; absent items may test
// true at roughly the configured rate.
type Bloom struct {
	bits []uint64
	m    uint64 // number of bits
	k    int
	n    uint64 // items added
}

// NewBloom sizes a filter for expectedN items at the given false-positive
// rate using the standard optimum: m = -n·ln(p)/ln(2)², k = m/n·ln(2).
func NewBloom(expectedN int, fpRate float64) (*Bloom, error) {
	if expectedN <= 0 || fpRate <= 0 || fpRate >= 1 {
		return nil, ErrBadSizing
	}
	m := uint64(math.Ceil(-float64(expectedN) * math.Log(fpRate) / (math.Ln2 * math.Ln2)))
	if m == 0 {
		m = 64
	}
	k := int(math.Round(float64(m) / float64(expectedN) * math.Ln2))
	if k < 1 {
		k = 1
	}

	return &Bloom{
		bits: make([]uint64, (m+63)/64),
		m:    m,
		k:    k,
	}, nil
}

// Add inserts data.
func (b *Bloom) Add(data []byte) {
	h1 := hashSeed(data, 0)
	h2 := splitmix(h1) | 1 // odd step for double hashing
	for i := 0; i < b.k; i++ {
		pos := (h1 + uint64(i)*h2) % b.m
		b.bits[pos/64] |= 1 << (pos % 64)
	}
	b.n++
}

// Contains reports whether data may have been added. False means
// definitely absent.
func (b *Bloom) Contains(data []byte) bool {
	h1 := hashSeed(data, 0)
	h2 := splitmix(h1) | 1
	for i := 0; i < b.k; i++ {
		pos := (h1 + uint64(i)*h2) % b.m
		if b.bits[pos/64]&(1<<(pos%64)) == 0 {
			return false
		}
	}

	return true
}

// Count returns the number of Add calls.
func (b *Bloom) Count() uint64 { return b.n }

// CountingBloom replaces the bit array with 8-bit counters so items can be
// removed. Counters saturate at 255 rather than overflow; a saturated cell
// is never decremented back below the saturation point reliably, so heavy
// duplicate insertion degrades Remove accuracy, not Contains safety.
type CountingBloom struct {
	cells []uint8
	m     uint64
	k     int
	n     uint64
}

// NewCountingBloom sizes the counter array exactly like NewBloom sizes
// bits.
func NewCountingBloom(expectedN int, fpRate float64) (*CountingBloom, error) {
	b, err := NewBloom(expectedN, fpRate)
	if err != nil {
		return nil, err
	}

	return &CountingBloom{
		cells: make([]uint8, b.m),
		m:     b.m,
		k:     b.k,
	}, nil
}

// Add inserts data.
func (c *CountingBloom) Add(data []byte) {
	h1 := hashSeed(data, 0)
	h2 := splitmix(h1) | 1
	for i := 0; i < c.k; i++ {
		pos := (h1 + uint64(i)*h2) % c.m
		if c.cells[pos] < math.MaxUint8 {
			c.cells[pos]++
		}
	}
	c.n++
}

// Contains reports whether data may have been added.
func (c *CountingBloom) Contains(data []byte) bool {
	h1 := hashSeed(data, 0)
	h2 := splitmix(h1) | 1
	for i := 0; i < c.k; i++ {
		if c.cells[(h1+uint64(i)*h2)%c.m] == 0 {
			return false
		}
	}

	return true
}

// Remove deletes one occurrence of data. Removing an item that is not
// present returns ErrCounterUnderflow and leaves the filter unchanged.
func (c *CountingBloom) Remove(data []byte) error {
	h1 := hashSeed(data, 0)
	h2 := splitmix(h1) | 1
	// Verify all cells first so a failed remove has no side effects.
	for i := 0; i < c.k; i++ {
		if c.cells[(h1+uint64(i)*h2)%c.m] == 0 {
			return ErrCounterUnderflow
		}
	}
	for i := 0; i < c.k; i++ {
		c.cells[(h1+uint64(i)*h2)%c.m]--
	}
	c.n--

	return nil
}

// Count returns the net number of Add calls minus successful Removes.
func (c *CountingBloom) Count() uint64 { return c.n }
