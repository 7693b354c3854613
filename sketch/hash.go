package sketch

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// hashSeed computes the seed-th hash of data by prefixing an 8-byte seed
// block, giving independent functions from one xxHash core.
func hashSeed(data []byte, seed uint64) uint64 {
	var d xxhash.Digest
	d.Reset()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	_, _ = d.Write(buf[:])
	_, _ = d.Write(data)

	return d.Sum64()
}

// splitmix distributes a 64-bit value into well-mixed bits; used to derive
// auxiliary hashes without touching the input again.
func splitmix(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB

	return x ^ (x >> 31)
}
