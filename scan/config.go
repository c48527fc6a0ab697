package scan

import (
	"fmt"
	"runtime"

	"github.com/modroot/modroot/gfp"
)

// Config controls a single census run.
type Config struct {
	// P is the odd prime modulus whose field is scanned.
	P uint64

	// Limit restricts an exhaustive scan to [0, Limit). Zero means the
	// whole field [0, P). Ignored in sampling mode.
	Limit uint64

	// Samples switches to sampling mode when nonzero: that many
	// deterministically derived elements are classified instead of an
	// exhaustive range.
	Samples uint64

	// Seed selects the sample stream. Runs with equal seeds classify
	// equal elements.
	Seed uint64

	// Workers is the number of concurrent classifiers. Zero means one
	// per CPU.
	Workers int
}

// DefaultConfig returns the baseline configuration: exhaustive scan over
// the whole field, one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Validate checks the configuration before a run. The primality check is
// the boundary guard the kernel itself omits: a composite modulus would
// not crash the census, but its tallies would certify nothing.
func (c *Config) Validate() error {
	if c.P < 3 {
		return fmt.Errorf("scan: modulus %d too small, need an odd prime >= 3", c.P)
	}
	if c.P%2 == 0 {
		return fmt.Errorf("scan: modulus %d is even", c.P)
	}
	if !gfp.IsPrime(c.P) {
		return fmt.Errorf("scan: modulus %d is not prime", c.P)
	}
	if c.Limit > c.P {
		return fmt.Errorf("scan: limit %d exceeds modulus %d", c.Limit, c.P)
	}
	if c.Workers < 0 {
		return fmt.Errorf("scan: negative worker count %d", c.Workers)
	}
	return nil
}
