package gfp256

// Tests for the 256-bit field primitives: exponentiation cross-checked
// against math/big and against the word-size kernel, Euler's criterion
// tables, and the non-residue scan.

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"

	"github.com/modroot/modroot/gfp"
)

// Named moduli used across the package tests.
var (
	// secp256k1 base field, 3 mod 4.
	secpP = uint256.MustFromHex("0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	// BLS12-381 scalar field, 1 mod 4 with 2-adicity 32.
	blsR = uint256.MustFromHex("0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001")
	// Curve25519 base field 2^255 - 19, 1 mod 4.
	p25519 = uint256.MustFromHex("0x7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed")
)

func TestPowModVectors(t *testing.T) {
	cases := []struct {
		base, exp, mod, want uint64
	}{
		{2, 10, 1000, 24},
		{3, 5, 7, 5},
		{2, 0, 7, 1},
		{5, 3, 1, 0},
	}
	for _, c := range cases {
		got := PowMod(uint256.NewInt(c.base), uint256.NewInt(c.exp), uint256.NewInt(c.mod))
		if !got.Eq(uint256.NewInt(c.want)) {
			t.Errorf("PowMod(%d, %d, %d) = %s, want %d", c.base, c.exp, c.mod, got, c.want)
		}
	}
}

func TestPowModMatchesBigInt(t *testing.T) {
	base := uint256.MustFromHex("0xdeadbeefcafebabe123456789abcdef0fedcba9876543210aabbccddeeff0011")
	exp := uint256.MustFromHex("0x123456789abcdef0deadbeefcafebabe")
	for _, p := range []*uint256.Int{secpP, blsR, p25519} {
		got := PowMod(base, exp, p)
		want := new(big.Int).Exp(base.ToBig(), exp.ToBig(), p.ToBig())
		if got.ToBig().Cmp(want) != 0 {
			t.Errorf("PowMod mod %s = %s, want %s", p, got, want.String())
		}
	}
}

func TestPowModFermat(t *testing.T) {
	// a^(p-1) ≡ 1 mod p for nonzero a.
	a := uint256.NewInt(123456789)
	for _, p := range []*uint256.Int{secpP, blsR, p25519} {
		e := new(uint256.Int).SubUint64(p, 1)
		if got := PowMod(a, e, p); !got.Eq(one) {
			t.Errorf("a^(p-1) mod %s = %s, want 1", p, got)
		}
	}
}

func TestPowModMatchesWordKernel(t *testing.T) {
	// The 256-bit walk must agree with the word-size one on word-size
	// inputs.
	cases := [][3]uint64{
		{2, 1000, 1000000007},
		{123456789, 987654321, 18446744073709551557},
		{3, 1 << 40, 18446744069414584321},
	}
	for _, c := range cases {
		want := gfp.PowMod(c[0], c[1], c[2])
		got := PowMod(uint256.NewInt(c[0]), uint256.NewInt(c[1]), uint256.NewInt(c[2]))
		if !got.IsUint64() || got.Uint64() != want {
			t.Errorf("PowMod(%d, %d, %d) = %s, want %d", c[0], c[1], c[2], got, want)
		}
	}
}

func TestPowModDoesNotMutateArguments(t *testing.T) {
	base := uint256.NewInt(12345)
	exp := uint256.NewInt(678)
	mod := uint256.NewInt(99991)
	b0, e0, m0 := base.Clone(), exp.Clone(), mod.Clone()
	PowMod(base, exp, mod)
	if !base.Eq(b0) || !exp.Eq(e0) || !mod.Eq(m0) {
		t.Error("PowMod mutated one of its arguments")
	}
}

func TestPowModZeroModulusPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("PowMod with modulus 0 did not panic")
		}
	}()
	PowMod(uint256.NewInt(2), uint256.NewInt(3), new(uint256.Int))
}

func TestLegendreTableMod7(t *testing.T) {
	p := uint256.NewInt(7)
	cases := []struct{ n, want uint64 }{
		{0, 0}, {1, 1}, {2, 1}, {3, 6}, {4, 1}, {5, 6}, {6, 6},
	}
	for _, c := range cases {
		got := Legendre(uint256.NewInt(c.n), p)
		if !got.Eq(uint256.NewInt(c.want)) {
			t.Errorf("Legendre(%d, 7) = %s, want %d", c.n, got, c.want)
		}
	}
}

func TestLegendreMinusOne(t *testing.T) {
	// -1 is a non-residue mod secp256k1's p (3 mod 4) and a residue mod
	// BLS12-381's r (1 mod 4).
	nsecp := new(uint256.Int).SubUint64(secpP, 1)
	if got := Legendre(nsecp, secpP); !got.Eq(nsecp) {
		t.Errorf("Legendre(-1, secpP) = %s, want p-1", got)
	}
	nbls := new(uint256.Int).SubUint64(blsR, 1)
	if got := Legendre(nbls, blsR); !got.Eq(one) {
		t.Errorf("Legendre(-1, blsR) = %s, want 1", got)
	}
}

func TestLegendreOfSquares(t *testing.T) {
	v := uint256.MustFromHex("0x123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")
	for _, p := range []*uint256.Int{secpP, blsR, p25519} {
		sq := new(uint256.Int).MulMod(v, v, p)
		if got := Legendre(sq, p); !got.Eq(one) {
			t.Errorf("Legendre(v^2, %s) = %s, want 1", p, got)
		}
	}
}

func TestNonResidueKnown(t *testing.T) {
	cases := []struct{ p, want uint64 }{
		{3, 2}, {5, 2}, {7, 3}, {11, 2}, {13, 2}, {17, 3},
	}
	for _, c := range cases {
		got := NonResidue(uint256.NewInt(c.p))
		if !got.Eq(uint256.NewInt(c.want)) {
			t.Errorf("NonResidue(%d) = %s, want %d", c.p, got, c.want)
		}
	}
}

func TestNonResidueLargeModuli(t *testing.T) {
	for _, p := range []*uint256.Int{secpP, blsR, p25519} {
		z := NonResidue(p)
		l := Legendre(z, p)
		want := new(uint256.Int).SubUint64(p, 1)
		if !l.Eq(want) {
			t.Errorf("NonResidue(%s) = %s, but Legendre = %s", p, z, l)
		}
	}
}
