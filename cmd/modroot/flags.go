package main

import (
	"flag"
	"fmt"
	"os"

	goethmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
)

// options holds the parsed command line.
type options struct {
	n        string
	p        string
	both     bool
	legendre bool
	check    bool
	jsonOut  bool
	quiet    bool
}

// parseFlags parses CLI arguments into options. Returns the options, whether
// the caller should exit immediately, and the exit code.
func parseFlags(args []string) (options, bool, int) {
	var opts options
	fs := flag.NewFlagSet("modroot", flag.ContinueOnError)
	fs.StringVar(&opts.n, "n", "", "field element, decimal or 0x-hex")
	fs.StringVar(&opts.p, "p", "", "odd prime modulus, decimal or 0x-hex")
	fs.BoolVar(&opts.both, "both", false, "print both roots")
	fs.BoolVar(&opts.legendre, "legendre", false, "print the Euler criterion value instead of a root")
	fs.BoolVar(&opts.check, "check", false, "verify the modulus is prime before computing")
	fs.BoolVar(&opts.jsonOut, "json", false, "machine-readable output")
	fs.BoolVar(&opts.quiet, "q", false, "print the bare value only")
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return opts, true, 2
	}
	if *showVersion {
		fmt.Printf("modroot %s (commit %s)\n", version, commit)
		return opts, true, 0
	}
	if opts.n == "" || opts.p == "" {
		fmt.Fprintln(os.Stderr, "modroot: both -n and -p are required")
		fs.Usage()
		return opts, true, 2
	}
	return opts, false, 0
}

// parseFieldValue reads a decimal or 0x-prefixed hex integer of up to 256
// bits. A nil *uint256.Int means the value fits in the returned uint64.
func parseFieldValue(s string) (uint64, *uint256.Int, error) {
	if s == "" {
		return 0, nil, fmt.Errorf("empty value")
	}
	if v, ok := goethmath.ParseUint64(s); ok {
		return v, nil, nil
	}

	var z *uint256.Int
	var err error
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		z, err = uint256.FromHex("0x" + s[2:])
	} else {
		z, err = uint256.FromDecimal(s)
	}
	if err != nil {
		return 0, nil, fmt.Errorf("not a decimal or 0x-hex integer of at most 256 bits: %q", s)
	}
	return 0, z, nil
}
