// Package gfp256 mirrors package gfp at 256-bit width: modular
// exponentiation, Euler's criterion, and Tonelli-Shanks square roots for
// moduli up to 2^256, on uint256's fixed-width arithmetic.
//
// Conventions carry over from gfp where the types allow. Values are
// canonical representatives in [0, p), arguments are never mutated, and
// results are freshly allocated. Where gfp returns (value, ok), this
// package returns nil for "no root", the way big-field square roots are
// usually signalled. MulMod and AddMod reduce through wide intermediates
// inside uint256, so products never truncate.
package gfp256

import "github.com/holiman/uint256"

var (
	one = uint256.NewInt(1)
	two = uint256.NewInt(2)
)

// PowMod returns base^exponent mod modulus by repeated squaring, consuming
// the exponent from its least significant bit. An exponent of 0 yields
// 1 mod modulus. Panics if modulus is zero.
func PowMod(base, exponent, modulus *uint256.Int) *uint256.Int {
	if modulus.IsZero() {
		panic("gfp256: modulus must be positive")
	}
	result := new(uint256.Int).SetOne()
	result.Mod(result, modulus)
	b := new(uint256.Int).Mod(base, modulus)
	e := new(uint256.Int).Set(exponent)
	for !e.IsZero() {
		if e[0]&1 == 1 {
			result.MulMod(result, b, modulus)
		}
		b.MulMod(b, b, modulus)
		e.Rsh(e, 1)
	}
	return result
}

// Legendre returns the Euler criterion value n^((p-1)/2) mod p for an odd
// prime p: 0 when p divides n, 1 for a nonzero quadratic residue, and p-1
// for a non-residue.
func Legendre(n, p *uint256.Int) *uint256.Int {
	a := new(uint256.Int).Mod(n, p)
	if a.IsZero() {
		return new(uint256.Int)
	}
	e := new(uint256.Int).SubUint64(p, 1)
	e.Rsh(e, 1)
	return PowMod(a, e, p)
}

// NonResidue returns the smallest z >= 2 that is a quadratic non-residue
// modulo the odd prime p.
func NonResidue(p *uint256.Int) *uint256.Int {
	z := uint256.NewInt(2)
	for ; z.Lt(p); z.AddUint64(z, 1) {
		if !Legendre(z, p).Eq(one) {
			return z
		}
	}
	panic("gfp256: no quadratic non-residue below modulus")
}
