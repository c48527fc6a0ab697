package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Meter tracks how fast a scan is consuming field elements: a running
// count plus 1-, 5-, and 15-minute moving rates.
type Meter struct {
	count  atomic.Int64
	rate1  *EWMA
	rate5  *EWMA
	rate15 *EWMA
	start  time.Time

	mu       sync.Mutex
	lastTick time.Time
}

// NewMeter creates a Meter; its mean rate is measured from this moment.
func NewMeter() *Meter {
	now := time.Now()
	return &Meter{
		rate1:    NewEWMA(time.Minute),
		rate5:    NewEWMA(5 * time.Minute),
		rate15:   NewEWMA(15 * time.Minute),
		start:    now,
		lastTick: now,
	}
}

// Mark records n processed elements.
func (m *Meter) Mark(n int64) {
	m.count.Add(n)
	m.rate1.Update(n)
	m.rate5.Update(n)
	m.rate15.Update(n)
	m.tickIfNeeded()
}

// tickIfNeeded catches the averages up to the present, one tick interval
// at a time.
func (m *Meter) tickIfNeeded() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for now.Sub(m.lastTick) >= tickInterval {
		m.rate1.Tick()
		m.rate5.Tick()
		m.rate15.Tick()
		m.lastTick = m.lastTick.Add(tickInterval)
	}
}

// Count returns the total number of elements recorded.
func (m *Meter) Count() int64 {
	return m.count.Load()
}

// Rate1 returns the 1-minute moving rate in elements per second.
func (m *Meter) Rate1() float64 {
	m.tickIfNeeded()
	return m.rate1.Rate()
}

// Rate5 returns the 5-minute moving rate in elements per second.
func (m *Meter) Rate5() float64 {
	m.tickIfNeeded()
	return m.rate5.Rate()
}

// Rate15 returns the 15-minute moving rate in elements per second.
func (m *Meter) Rate15() float64 {
	m.tickIfNeeded()
	return m.rate15.Rate()
}

// RateMean returns the mean rate since the meter was created.
func (m *Meter) RateMean() float64 {
	elapsed := time.Since(m.start).Seconds()
	if elapsed == 0 {
		return 0
	}
	return float64(m.count.Load()) / elapsed
}

// Elapsed returns the time since the meter was created.
func (m *Meter) Elapsed() time.Duration {
	return time.Since(m.start)
}
