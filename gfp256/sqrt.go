package gfp256

import "github.com/holiman/uint256"

// SqrtMod returns a square root of n modulo the odd prime p, or nil when n
// is a quadratic non-residue. The control flow matches gfp.SqrtMod: a
// direct answer mod 2, a single exponentiation for p ≡ 3 mod 4, and the
// Tonelli-Shanks descent otherwise. Panics on an even modulus greater
// than 2. Deterministic: the same (n, p) always yields the same root.
func SqrtMod(n, p *uint256.Int) *uint256.Int {
	if p.Eq(two) {
		return new(uint256.Int).Mod(n, two)
	}
	if p[0]&1 == 0 {
		panic("gfp256: modulus must be an odd prime")
	}
	a := new(uint256.Int).Mod(n, p)
	if a.IsZero() {
		return new(uint256.Int)
	}
	if !Legendre(a, p).Eq(one) {
		return nil
	}

	// For p ≡ 3 mod 4: sqrt(n) = n^((p+1)/4).
	if p[0]&3 == 3 {
		e := new(uint256.Int).AddUint64(p, 1)
		e.Rsh(e, 2)
		return PowMod(a, e, p)
	}

	// Factor p-1 = q * 2^s with q odd.
	q := new(uint256.Int).SubUint64(p, 1)
	s := uint(0)
	for q[0]&1 == 0 {
		q.Rsh(q, 1)
		s++
	}

	z := NonResidue(p)
	c := PowMod(z, q, p)
	e := new(uint256.Int).AddUint64(q, 1)
	e.Rsh(e, 1)
	r := PowMod(a, e, p)
	t := PowMod(a, q, p)
	m := s

	// Same invariant as the word-size walk: r^2 ≡ t*n (mod p) at every
	// head, and m strictly decreases.
	for !t.Eq(one) {
		i, t2 := uint(0), new(uint256.Int).Set(t)
		for !t2.Eq(one) {
			t2.MulMod(t2, t2, p)
			i++
			if i == m {
				// Reachable only when p is not an odd prime.
				return nil
			}
		}
		b := PowMod(c, new(uint256.Int).Lsh(one, m-i-1), p)
		b2 := new(uint256.Int).MulMod(b, b, p)
		r.MulMod(r, b, p)
		t.MulMod(t, b2, p)
		c = b2
		m = i
	}
	return r
}

// RecoverY returns a y with y^2 = x^3 + a*x + b (mod p), or nil when the
// right-hand side is a non-residue and no point on the short-Weierstrass
// curve has this abscissa.
func RecoverY(x, a, b, p *uint256.Int) *uint256.Int {
	xr := new(uint256.Int).Mod(x, p)
	rhs := new(uint256.Int).MulMod(xr, xr, p)
	rhs.MulMod(rhs, xr, p)
	ax := new(uint256.Int).MulMod(a, xr, p)
	rhs.AddMod(rhs, ax, p)
	bm := new(uint256.Int).Mod(b, p)
	rhs.AddMod(rhs, bm, p)
	return SqrtMod(rhs, p)
}
