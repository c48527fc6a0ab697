package scan

// Deterministic sampling. The index-th element of a stream is the first
// eight bytes of Keccak-256(seed || index) reduced mod p, so the stream is
// index-addressable: workers claim disjoint index ranges with no shared
// state, and two runs with equal seeds classify equal elements.

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// sampleAt returns the index-th sampled element of [0, p) for seed.
func sampleAt(seed, index, p uint64) uint64 {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], seed)
	binary.BigEndian.PutUint64(buf[8:], index)

	d := sha3.NewLegacyKeccak256()
	d.Write(buf[:])
	sum := d.Sum(nil)

	return binary.BigEndian.Uint64(sum[:8]) % p
}
