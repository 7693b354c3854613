package sketch

import "errors"

var (
	// ErrNoKeys indicates BuildXor8 was called with an empty key set.
	ErrNoKeys = errors.New("sketch: xor filter needs at least one key")
	// ErrDuplicateKeys indicates peeling failed repeatedly, which for
	// reasonable inputs means the key set contains duplicates.
	ErrDuplicateKeys = errors.New("sketch: xor filter construction failed (duplicate keys?)")
)

// Xor8 is an immutable membership filter with 8-bit fingerprints: built
// once over a key set, it answers Contains with no false negatives and a
// false-positive rate of about 1/256 (≈ 0.39%).
//
// Construction implements the standard 3-wise XOR peeling: each key maps
// to three slots in three equal thirds of the table; keys are peeled in
// reverse order so each can fix its own slot's fingerprint.
type Xor8 struct {
	seed         uint64
	fingerprints []uint8
	blockLen     uint32
}

// BuildXor8 constructs a filter over keys (hashed as byte strings).
// Duplicate keys make construction impossible and are reported as an
// error.
func BuildXor8(keys [][]byte) (*Xor8, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	// Capacity factor 1.23 plus padding, per the reference construction.
	capacity := uint32(32 + 123*uint64(len(keys))/100)
	capacity = (capacity + 2) / 3 * 3
	blockLen := capacity / 3

	hashes := make([]uint64, len(keys))
	// Retry with fresh seeds until the 3-partite graph peels completely.
	for attempt := 0; attempt < 64; attempt++ {
		seed := splitmix(uint64(attempt)*0x9E3779B97F4A7C15 + 1)
		for i, k := range keys {
			hashes[i] = hashSeed(k, seed)
		}
		f, ok := peelXor8(hashes, seed, blockLen)
		if ok {
			return &Xor8{seed: seed, fingerprints: f, blockLen: blockLen}, nil
		}
	}

	return nil, ErrDuplicateKeys
}

// slot returns the hash's slot in third b of the table.
func xorSlot(h uint64, b int, blockLen uint32) uint32 {
	r := uint32(h >> (21 * b)) // three rotations of the hash
	if b == 2 {
		r = uint32(h>>42) ^ uint32(h)
	}

	return r%blockLen + uint32(b)*blockLen
}

func xorFingerprint(h uint64) uint8 {
	fp := uint8(h ^ (h >> 32))
	if fp == 0 {
		fp = 1
	}

	return fp
}

// peelXor8 attempts the peel-and-assign pass for one seed.
func peelXor8(hashes []uint64, seed uint64, blockLen uint32) ([]uint8, bool) {
	tableLen := int(blockLen * 3)
	// Per-slot XOR of incident hashes and degree counts.
	xorAgg := make([]uint64, tableLen)
	degree := make([]int, tableLen)
	for _, h := range hashes {
		for b := 0; b < 3; b++ {
			s := xorSlot(h, b, blockLen)
			xorAgg[s] ^= h
			degree[s]++
		}
	}

	// Peel: repeatedly remove slots of degree 1, stacking (hash, slot).
	type assignment struct {
		hash uint64
		slot uint32
	}
	stack := make([]assignment, 0, len(hashes))
	queue := make([]uint32, 0, tableLen)
	for s := 0; s < tableLen; s++ {
		if degree[s] == 1 {
			queue = append(queue, uint32(s))
		}
	}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if degree[s] != 1 {
			continue
		}
		h := xorAgg[s]
		stack = append(stack, assignment{hash: h, slot: s})
		for b := 0; b < 3; b++ {
			o := xorSlot(h, b, blockLen)
			xorAgg[o] ^= h
			degree[o]--
			if degree[o] == 1 {
				queue = append(queue, o)
			}
		}
	}
	if len(stack) != len(hashes) {
		return nil, false
	}

	// Assign in reverse peel order: each key sets its own slot so the
	// three-way XOR equals its fingerprint.
	fingerprints := make([]uint8, tableLen)
	for i := len(stack) - 1; i >= 0; i-- {
		a := stack[i]
		fp := xorFingerprint(a.hash)
		for b := 0; b < 3; b++ {
			o := xorSlot(a.hash, b, blockLen)
			if o != a.slot {
				fp ^= fingerprints[o]
			}
		}
		fingerprints[a.slot] = fp
	}

	return fingerprints, true
}

// Contains reports whether key may be in the built set. Built keys always
// test true.
func (x *Xor8) Contains(key []byte) bool {
	h := hashSeed(key, x.seed)
	fp := xorFingerprint(h)
	got := x.fingerprints[xorSlot(h, 0, x.blockLen)] ^
		x.fingerprints[xorSlot(h, 1, x.blockLen)] ^
		x.fingerprints[xorSlot(h, 2, x.blockLen)]

	return fp == got
}
