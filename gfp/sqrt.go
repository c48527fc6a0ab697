package gfp

// Modular square roots via Tonelli-Shanks.
//
// For p ≡ 3 mod 4 the root is a single exponentiation. For p ≡ 1 mod 4 the
// general algorithm factors p-1 = q * 2^s with q odd and walks the root
// candidate down the 2-adic tower, shrinking the order of the defect term
// on every pass.

// SqrtMod returns a square root of n modulo the odd prime p, with ok false
// when n is a quadratic non-residue and no root exists. The result is
// canonical in [0, p); the other root is its negation. For p == 2 every
// element is its own square, so n mod 2 is returned directly. Panics on an
// even modulus greater than 2.
//
// The algorithm is deterministic: the same (n, p) always yields the same
// root.
func SqrtMod(n, p uint64) (uint64, bool) {
	if p == 2 {
		return n % 2, true
	}
	if p%2 == 0 {
		panic("gfp: modulus must be an odd prime")
	}
	n %= p
	if n == 0 {
		return 0, true
	}
	if Legendre(n, p) != 1 {
		return 0, false
	}

	// For p ≡ 3 mod 4: sqrt(n) = n^((p+1)/4).
	if p%4 == 3 {
		return PowMod(n, (p+1)/4, p), true
	}

	// Factor p-1 = q * 2^s with q odd.
	q, s := p-1, uint64(0)
	for q%2 == 0 {
		q >>= 1
		s++
	}

	z := NonResidue(p)
	c := PowMod(z, q, p)
	r := PowMod(n, (q+1)/2, p)
	t := PowMod(n, q, p)
	m := s

	// Invariant at every head: r^2 ≡ t*n (mod p), c has order 2^m. Each
	// pass multiplies a correction into r that halves the defect, and m
	// strictly decreases, so the loop terminates.
	for t != 1 {
		i, t2 := uint64(0), t
		for t2 != 1 {
			t2 = MulMod(t2, t2, p)
			i++
			if i == m {
				// Reachable only when p is not an odd prime; no
				// root is certifiable.
				return 0, false
			}
		}
		b := PowMod(c, uint64(1)<<(m-i-1), p)
		b2 := MulMod(b, b, p)
		r = MulMod(r, b, p)
		t = MulMod(t, b2, p)
		c = b2
		m = i
	}
	return r, true
}

// SqrtModBoth returns both square roots of n modulo the odd prime p in
// ascending order, with ok false when no root exists. For n ≡ 0 the roots
// coincide and the pair is (0, 0); mod 2 the pair may likewise coincide.
func SqrtModBoth(n, p uint64) (uint64, uint64, bool) {
	r, ok := SqrtMod(n, p)
	if !ok {
		return 0, 0, false
	}
	if r == 0 {
		return 0, 0, true
	}
	r2 := p - r
	if r2 < r {
		r, r2 = r2, r
	}
	return r, r2, true
}

// RecoverY returns a y with y^2 = x^3 + a*x + b (mod p), recovering the
// missing ordinate of a short-Weierstrass point from its abscissa. ok is
// false when the right-hand side is a non-residue, meaning no point on the
// curve has this x.
func RecoverY(x, a, b, p uint64) (uint64, bool) {
	x %= p
	rhs := MulMod(MulMod(x, x, p), x, p)
	rhs = AddMod(rhs, MulMod(a, x, p), p)
	rhs = AddMod(rhs, b, p)
	return SqrtMod(rhs, p)
}
