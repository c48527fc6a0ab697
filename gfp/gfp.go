// Package gfp implements prime-field arithmetic over GF(p) for word-size
// moduli: modular exponentiation, quadratic-residue classification via
// Euler's criterion, and modular square roots via Tonelli-Shanks.
//
// Values are canonical representatives in [0, p). Every product is widened
// through its 128-bit intermediate, so results are exact for any 64-bit
// modulus. All functions are pure and safe for concurrent use.
package gfp

import "math/bits"

// MulMod returns (x * y) mod m. The product is taken through 128 bits, so
// the reduction is exact for any operands. Panics if m == 0.
func MulMod(x, y, m uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return bits.Rem64(hi, lo, m)
}

// AddMod returns (x + y) mod m. Panics if m == 0.
func AddMod(x, y, m uint64) uint64 {
	x %= m
	y %= m
	s := x + y
	// A single conditional subtraction restores canonical form; s < x
	// detects the sum wrapping past 2^64.
	if s >= m || s < x {
		s -= m
	}
	return s
}

// PowMod returns base^exponent mod modulus by repeated squaring, consuming
// the exponent from its least significant bit. An exponent of 0 yields
// 1 mod modulus. Panics if modulus == 0.
func PowMod(base, exponent, modulus uint64) uint64 {
	if modulus == 0 {
		panic("gfp: modulus must be positive")
	}
	result := uint64(1) % modulus
	base %= modulus
	for exponent > 0 {
		if exponent&1 == 1 {
			result = MulMod(result, base, modulus)
		}
		base = MulMod(base, base, modulus)
		exponent >>= 1
	}
	return result
}

// Legendre returns the Euler criterion value n^((p-1)/2) mod p for an odd
// prime p: 0 when p divides n, 1 when n is a nonzero quadratic residue,
// and p-1 when n is a non-residue.
func Legendre(n, p uint64) uint64 {
	n %= p
	if n == 0 {
		return 0
	}
	return PowMod(n, (p-1)/2, p)
}

// NonResidue returns the smallest z >= 2 that is a quadratic non-residue
// modulo the odd prime p. Half of the nonzero elements of GF(p) are
// non-residues, so the linear scan stays short.
func NonResidue(p uint64) uint64 {
	for z := uint64(2); z < p; z++ {
		if Legendre(z, p) != 1 {
			return z
		}
	}
	panic("gfp: no quadratic non-residue below modulus")
}
