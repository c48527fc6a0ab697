package metrics

import (
	"math"
	"testing"
	"time"
)

func TestEWMAFirstTick(t *testing.T) {
	e := NewEWMA(time.Minute)

	// Before any tick, rate is 0.
	if r := e.Rate(); r != 0 {
		t.Errorf("initial rate = %f, want 0", r)
	}

	// 100 events over one 5-second tick: 20 per second.
	e.Update(100)
	e.Tick()
	if r := e.Rate(); math.Abs(r-20.0) > 0.001 {
		t.Errorf("rate after first tick = %f, want 20", r)
	}
}

func TestEWMADecay(t *testing.T) {
	e := NewEWMA(time.Minute)
	e.Update(100)
	e.Tick()
	initial := e.Rate()

	// No new events: the rate must decay but stay positive.
	e.Tick()
	decayed := e.Rate()
	if decayed >= initial {
		t.Errorf("rate did not decay: initial=%f, decayed=%f", initial, decayed)
	}
	if decayed <= 0 {
		t.Errorf("rate not positive after one decay: %f", decayed)
	}
}

func TestEWMAWindowOrdering(t *testing.T) {
	// After the same quiet period, a wider window retains more of the old
	// rate than a narrower one.
	narrow := NewEWMA(time.Minute)
	wide := NewEWMA(15 * time.Minute)
	for _, e := range []*EWMA{narrow, wide} {
		e.Update(100)
		e.Tick()
		e.Tick()
		e.Tick()
	}
	if narrow.Rate() >= wide.Rate() {
		t.Errorf("narrow window %f should decay below wide window %f",
			narrow.Rate(), wide.Rate())
	}
}

func TestEWMASteadyState(t *testing.T) {
	// A steady feed converges toward the instantaneous rate.
	e := NewEWMA(time.Minute)
	for i := 0; i < 60; i++ {
		e.Update(100)
		e.Tick()
	}
	if r := e.Rate(); math.Abs(r-20.0) > 0.5 {
		t.Errorf("steady-state rate = %f, want about 20", r)
	}
}
