// Command modroot computes square roots in prime fields GF(p).
//
// Usage:
//
//	modroot -n <value> -p <modulus> [flags]
//
// Values are decimal or 0x-prefixed hex, up to 256 bits. Inputs that fit a
// machine word take the native kernel; anything wider takes the 256-bit
// path. A single wide operand promotes both.
//
// Flags:
//
//	-n          field element whose root is wanted (required)
//	-p          odd prime modulus (required)
//	-both       print both roots r and p-r
//	-legendre   print the Euler criterion value instead of a root
//	-check      verify the modulus is prime before computing
//	-json       machine-readable output
//	-q          print the bare value only
//	-version    print version and exit
//
// Exit codes: 0 answer printed, 1 no root exists, 2 bad input.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/holiman/uint256"

	"github.com/modroot/modroot/gfp"
	"github.com/modroot/modroot/gfp256"
)

// Build-time version info, overridable with ldflags:
//
//	go build -ldflags "-X main.version=v0.2.0 -X main.commit=abc1234"
var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the actual entry point, returning an exit code. Accepts CLI
// arguments (without the program name) so it can be tested in isolation.
func run(args []string) int {
	opts, exit, code := parseFlags(args)
	if exit {
		return code
	}

	n64, nWide, err := parseFieldValue(opts.n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "modroot: bad -n: %v\n", err)
		return 2
	}
	p64, pWide, err := parseFieldValue(opts.p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "modroot: bad -p: %v\n", err)
		return 2
	}

	if nWide == nil && pWide == nil {
		return solveWord(opts, n64, p64)
	}
	// One wide operand promotes both to the 256-bit path.
	if nWide == nil {
		nWide = uint256.NewInt(n64)
	}
	if pWide == nil {
		pWide = uint256.NewInt(p64)
	}
	return solveWide(opts, nWide, pWide)
}

// solveWord answers for operands that fit the native word kernel.
func solveWord(opts options, n, p uint64) int {
	if p == 0 {
		fmt.Fprintln(os.Stderr, "modroot: modulus must be positive")
		return 2
	}
	if p != 2 && p%2 == 0 {
		fmt.Fprintf(os.Stderr, "modroot: modulus %s is even\n", opts.p)
		return 2
	}
	if opts.check && !gfp.IsPrime(p) {
		fmt.Fprintf(os.Stderr, "modroot: modulus %s is not prime\n", opts.p)
		return 2
	}

	if opts.legendre {
		return emitLegendre(opts, strconv.FormatUint(gfp.Legendre(n, p), 10))
	}

	if opts.both {
		lo, hi, ok := gfp.SqrtModBoth(n, p)
		if !ok {
			return emitNoRoot(opts)
		}
		return emitRoots(opts, strconv.FormatUint(lo, 10), strconv.FormatUint(hi, 10))
	}

	r, ok := gfp.SqrtMod(n, p)
	if !ok {
		return emitNoRoot(opts)
	}
	return emitRoot(opts, strconv.FormatUint(r, 10))
}

// solveWide answers on the 256-bit path.
func solveWide(opts options, n, p *uint256.Int) int {
	if p.IsZero() {
		fmt.Fprintln(os.Stderr, "modroot: modulus must be positive")
		return 2
	}
	if p[0]&1 == 0 {
		fmt.Fprintf(os.Stderr, "modroot: modulus %s is even\n", opts.p)
		return 2
	}
	if opts.check && !p.ToBig().ProbablyPrime(0) {
		fmt.Fprintf(os.Stderr, "modroot: modulus %s is not prime\n", opts.p)
		return 2
	}

	if opts.legendre {
		return emitLegendre(opts, gfp256.Legendre(n, p).Dec())
	}

	r := gfp256.SqrtMod(n, p)
	if r == nil {
		return emitNoRoot(opts)
	}
	if opts.both {
		other := new(uint256.Int)
		if !r.IsZero() {
			other.Sub(p, r)
		}
		lo, hi := r, other
		if hi.Lt(lo) {
			lo, hi = hi, lo
		}
		return emitRoots(opts, lo.Dec(), hi.Dec())
	}
	return emitRoot(opts, r.Dec())
}

// rootResult is the -json shape for root queries.
type rootResult struct {
	N     string `json:"n"`
	P     string `json:"p"`
	Found bool   `json:"found"`
	Root  string `json:"root,omitempty"`
	Other string `json:"other_root,omitempty"`
}

// legendreResult is the -json shape for -legendre queries.
type legendreResult struct {
	N        string `json:"n"`
	P        string `json:"p"`
	Legendre string `json:"legendre"`
}

func emitRoot(opts options, root string) int {
	switch {
	case opts.jsonOut:
		writeJSON(rootResult{N: opts.n, P: opts.p, Found: true, Root: root})
	case opts.quiet:
		fmt.Println(root)
	default:
		fmt.Printf("sqrt(%s) mod %s = %s\n", opts.n, opts.p, root)
	}
	return 0
}

func emitRoots(opts options, lo, hi string) int {
	switch {
	case opts.jsonOut:
		writeJSON(rootResult{N: opts.n, P: opts.p, Found: true, Root: lo, Other: hi})
	case opts.quiet:
		fmt.Println(lo, hi)
	default:
		fmt.Printf("sqrt(%s) mod %s = %s, %s\n", opts.n, opts.p, lo, hi)
	}
	return 0
}

func emitNoRoot(opts options) int {
	switch {
	case opts.jsonOut:
		writeJSON(rootResult{N: opts.n, P: opts.p, Found: false})
	case opts.quiet:
	default:
		fmt.Fprintf(os.Stderr, "modroot: %s is not a quadratic residue mod %s\n", opts.n, opts.p)
	}
	return 1
}

func emitLegendre(opts options, v string) int {
	switch {
	case opts.jsonOut:
		writeJSON(legendreResult{N: opts.n, P: opts.p, Legendre: v})
	case opts.quiet:
		fmt.Println(v)
	default:
		fmt.Printf("legendre(%s | %s) = %s\n", opts.n, opts.p, v)
	}
	return 0
}

func writeJSON(v any) {
	if err := json.NewEncoder(os.Stdout).Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "modroot: %v\n", err)
	}
}
