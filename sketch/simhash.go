package sketch

import "math/bits"

// SimHash fingerprints a token multiset into 64 bits: each token votes its
// hash bits up or down per position, and the sign of each column becomes
// the fingerprint bit. Similar documents yield fingerprints at small
// Hamming distance.
func SimHash(tokens [][]byte) uint64 {
	var votes [64]int
	for _, tok := range tokens {
		h := hashSeed(tok, 0)
		for b := 0; b < 64; b++ {
			if h&(1<<b) != 0 {
				votes[b]++
			} else {
				votes[b]--
			}
		}
	}
	var fp uint64
	for b := 0; b < 64; b++ {
		if votes[b] > 0 {
			fp |= 1 << b
		}
	}

	return fp
}

// HammingDistance counts differing bit positions between two fingerprints.
func HammingDistance(a, b uint64) int {
	return bits.OnesCount64(a ^ b)
}
