package gfp

// mrBases is the Miller-Rabin witness set {2..37}: the first twelve primes
// are a complete witness set for every n below 3.3 * 10^24, comfortably
// past 2^64, so the test is exact rather than probabilistic.
var mrBases = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime reports whether n is prime. Deterministic over the full uint64
// range. Intended as a boundary check for callers handing a modulus to the
// root finder; the kernel itself never validates its moduli.
func IsPrime(n uint64) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0:
		return false
	}

	// n-1 = d * 2^r with d odd.
	d, r := n-1, uint64(0)
	for d%2 == 0 {
		d >>= 1
		r++
	}

witness:
	for _, a := range mrBases {
		if a%n == 0 {
			continue
		}
		x := PowMod(a, d, n)
		if x == 1 || x == n-1 {
			continue
		}
		for j := uint64(1); j < r; j++ {
			x = MulMod(x, x, n)
			if x == n-1 {
				continue witness
			}
		}
		return false
	}
	return true
}
