package gfp

import (
	"math/big"
	"testing"
)

// fuzzPrimes is a spread of odd primes across both dispatch paths and both
// ends of the word range; fuzz inputs index into it.
var fuzzPrimes = [...]uint64{
	3, 5, 7, 13, 17, 97, 193, 257, 65537,
	primeBil, prime32, prime61, prime63, prime64, primeGL,
}

// FuzzSqrtMod feeds arbitrary field elements to the root finder over a
// rotating set of primes. Found roots must square back to the input, missing
// roots must coincide with a non-residue Legendre value, and everything must
// be deterministic.
func FuzzSqrtMod(f *testing.F) {
	f.Add(uint64(0), uint8(0))
	f.Add(uint64(4), uint8(3))
	f.Add(uint64(2), uint8(4))
	f.Add(uint64(123456789), uint8(9))
	f.Add(uint64(1)<<63, uint8(13))
	f.Add(uint64(0xdeadbeefcafebabe), uint8(14))

	f.Fuzz(func(t *testing.T, n uint64, pick uint8) {
		p := fuzzPrimes[int(pick)%len(fuzzPrimes)]

		r, ok := SqrtMod(n, p)
		if ok {
			if r >= p {
				t.Fatalf("SqrtMod(%d, %d) = %d, out of range", n, p, r)
			}
			if MulMod(r, r, p) != n%p {
				t.Fatalf("SqrtMod(%d, %d) = %d does not square back", n, p, r)
			}
		} else if l := Legendre(n, p); l != p-1 {
			t.Fatalf("SqrtMod(%d, %d) found no root, but Legendre = %d", n, p, l)
		}

		// Determinism.
		r2, ok2 := SqrtMod(n, p)
		if r != r2 || ok != ok2 {
			t.Fatalf("SqrtMod(%d, %d) not deterministic", n, p)
		}

		// The paired form must agree with the single root.
		lo, hi, bok := SqrtModBoth(n, p)
		if bok != ok {
			t.Fatalf("SqrtModBoth(%d, %d) disagrees on existence", n, p)
		}
		if ok && n%p != 0 {
			if lo != r && hi != r {
				t.Fatalf("SqrtModBoth(%d, %d) = (%d, %d) misses root %d", n, p, lo, hi, r)
			}
			if AddMod(lo, hi, p) != 0 {
				t.Fatalf("SqrtModBoth(%d, %d) = (%d, %d), roots do not sum to 0", n, p, lo, hi)
			}
		}
	})
}

// FuzzPowMod cross-checks the word-size exponentiation against math/big.
func FuzzPowMod(f *testing.F) {
	f.Add(uint64(2), uint64(10), uint64(1000))
	f.Add(uint64(3), uint64(5), uint64(7))
	f.Add(uint64(0), uint64(0), uint64(7))
	f.Add(uint64(5), uint64(3), uint64(1))
	f.Add(uint64(1)<<63, uint64(1)<<63, uint64(prime64))

	f.Fuzz(func(t *testing.T, base, exp, mod uint64) {
		if mod == 0 {
			return
		}
		want := new(big.Int).Exp(
			new(big.Int).SetUint64(base),
			new(big.Int).SetUint64(exp),
			new(big.Int).SetUint64(mod))
		if got := PowMod(base, exp, mod); got != want.Uint64() {
			t.Fatalf("PowMod(%d, %d, %d) = %d, want %s", base, exp, mod, got, want)
		}
	})
}

// FuzzMulMod cross-checks the widening multiply-reduce against math/big.
func FuzzMulMod(f *testing.F) {
	f.Add(uint64(7), uint64(8), uint64(5))
	f.Add(uint64(1)<<63, uint64(2), uint64(prime64))
	f.Add(^uint64(0), ^uint64(0), uint64(primeGL))

	f.Fuzz(func(t *testing.T, x, y, m uint64) {
		if m == 0 {
			return
		}
		want := new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
		want.Mod(want, new(big.Int).SetUint64(m))
		if got := MulMod(x, y, m); got != want.Uint64() {
			t.Fatalf("MulMod(%d, %d, %d) = %d, want %s", x, y, m, got, want)
		}
	})
}

// FuzzIsPrime cross-checks the deterministic Miller-Rabin against
// math/big's ProbablyPrime, which is exact below 2^64.
func FuzzIsPrime(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(2))
	f.Add(uint64(561))
	f.Add(uint64(3215031751))
	f.Add(uint64(prime64))

	f.Fuzz(func(t *testing.T, n uint64) {
		want := new(big.Int).SetUint64(n).ProbablyPrime(0)
		if got := IsPrime(n); got != want {
			t.Fatalf("IsPrime(%d) = %v, big.ProbablyPrime = %v", n, got, want)
		}
	})
}
