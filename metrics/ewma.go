// Package metrics provides throughput metering for the census tools:
// exponentially weighted moving averages over the Unix load-average
// windows, fed through a Meter. The field kernels have no metrics; only
// long-running scans report progress.
package metrics

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// tickInterval is how often rates decay. Meters tick lazily on access, so
// no background goroutine is needed.
const tickInterval = 5 * time.Second

// EWMA is an exponentially weighted moving average over a fixed window.
// Safe for concurrent use.
type EWMA struct {
	alpha     float64
	uncounted atomic.Int64

	mu     sync.Mutex
	rate   float64
	primed bool
}

// NewEWMA creates an average whose weight decays over the given window:
// alpha = 1 - exp(-tick/window).
func NewEWMA(window time.Duration) *EWMA {
	return &EWMA{
		alpha: 1 - math.Exp(-tickInterval.Seconds()/window.Seconds()),
	}
}

// Update adds n events to the pending sample.
func (e *EWMA) Update(n int64) {
	e.uncounted.Add(n)
}

// Tick folds the pending sample into the rate, decaying the previous
// value. The first tick primes the average with the instantaneous rate.
func (e *EWMA) Tick() {
	instant := float64(e.uncounted.Swap(0)) / tickInterval.Seconds()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.primed {
		e.rate += e.alpha * (instant - e.rate)
	} else {
		e.rate = instant
		e.primed = true
	}
}

// Rate returns the averaged rate in events per second.
func (e *EWMA) Rate() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rate
}
