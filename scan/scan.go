// Package scan runs a parallel residue census over GF(p).
//
// Every element of a range (or of a deterministic sample stream) is
// classified as zero, quadratic residue, or non-residue; for each residue
// the square root is recomputed and squared back. A full-field census is
// the empirical cross-check on the kernel: every claimed root must verify,
// and the residue/non-residue split must come out exactly even.
package scan

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/modroot/modroot/gfp"
	"github.com/modroot/modroot/log"
	"github.com/modroot/modroot/metrics"
)

// chunkSize is the number of elements a worker claims at a time. Large
// enough that channel traffic is noise next to the modular arithmetic.
const chunkSize = 4096

// progressEvery is how often a running census logs its position.
const progressEvery = 5 * time.Second

// Report is the outcome of one census.
type Report struct {
	P           uint64  `json:"p"`
	Mod4        uint64  `json:"p_mod_4"`
	Sampled     bool    `json:"sampled"`
	Seed        uint64  `json:"seed,omitempty"`
	Scanned     uint64  `json:"scanned"`
	Zeros       uint64  `json:"zeros"`
	Residues    uint64  `json:"residues"`
	NonResidues uint64  `json:"non_residues"`
	Verified    uint64  `json:"roots_verified"`
	Mismatches  uint64  `json:"mismatches"`
	EvenSplit   bool    `json:"even_split"`
	ElapsedMS   int64   `json:"elapsed_ms"`
	Rate        float64 `json:"rate_per_sec"`
}

// tally holds per-worker counts. Workers accumulate locally and merge at
// join, so the hot loop shares nothing.
type tally struct {
	zeros       uint64
	residues    uint64
	nonResidues uint64
	verified    uint64
	mismatches  uint64
}

func (t *tally) merge(o tally) {
	t.zeros += o.zeros
	t.residues += o.residues
	t.nonResidues += o.nonResidues
	t.verified += o.verified
	t.mismatches += o.mismatches
}

func (t *tally) total() uint64 {
	return t.zeros + t.residues + t.nonResidues
}

// classify buckets one element n < p and, for residues, proves the root by
// squaring it back.
func classify(n, p uint64, t *tally) {
	switch gfp.Legendre(n, p) {
	case 0:
		t.zeros++
	case 1:
		t.residues++
		r, ok := gfp.SqrtMod(n, p)
		if ok && gfp.MulMod(r, r, p) == n {
			t.verified++
		} else {
			t.mismatches++
		}
	default:
		t.nonResidues++
	}
}

// span is a half-open index range [start, end).
type span struct {
	start uint64
	end   uint64
}

// Run executes the census described by cfg and returns its report. The
// context cancels a long scan between chunks; a cancelled run returns the
// context error instead of a partial report.
func Run(ctx context.Context, cfg Config, lg *log.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if lg == nil {
		lg = log.Default()
	}
	lg = lg.Module("scan")

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	sampled := cfg.Samples > 0
	total := cfg.Limit
	if sampled {
		total = cfg.Samples
	} else if total == 0 {
		total = cfg.P
	}

	mode := "exhaustive"
	if sampled {
		mode = "sampled"
	}
	lg.Info("census started",
		"p", cfg.P, "mode", mode, "total", total, "workers", workers)

	meter := metrics.NewMeter()

	jobs := make(chan span, workers*2)
	results := make(chan tally, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var local tally
			for sp := range jobs {
				for i := sp.start; i < sp.end; i++ {
					n := i
					if sampled {
						n = sampleAt(cfg.Seed, i, cfg.P)
					}
					classify(n, cfg.P, &local)
				}
				meter.Mark(int64(sp.end - sp.start))
			}
			results <- local
		}()
	}

	progressDone := make(chan struct{})
	go func() {
		tick := time.NewTicker(progressEvery)
		defer tick.Stop()
		for {
			select {
			case <-progressDone:
				return
			case <-tick.C:
				lg.Info("census progress",
					"scanned", meter.Count(), "total", total,
					"rate", fmt.Sprintf("%.0f/s", meter.Rate1()))
			}
		}
	}()

	// Feed chunks until the range is exhausted or the context fires.
	// Workers drain whatever was already queued before exiting.
	var fed uint64
	var ctxErr error
feed:
	for fed < total {
		end := fed + chunkSize
		if end < fed || end > total {
			end = total
		}
		select {
		case jobs <- span{start: fed, end: end}:
			fed = end
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(results)
	close(progressDone)

	var sum tally
	for part := range results {
		sum.merge(part)
	}

	if ctxErr != nil {
		lg.Warn("census cancelled", "scanned", sum.total(), "total", total)
		return nil, ctxErr
	}

	full := !sampled && (cfg.Limit == 0 || cfg.Limit == cfg.P)
	rep := &Report{
		P:           cfg.P,
		Mod4:        cfg.P % 4,
		Sampled:     sampled,
		Scanned:     sum.total(),
		Zeros:       sum.zeros,
		Residues:    sum.residues,
		NonResidues: sum.nonResidues,
		Verified:    sum.verified,
		Mismatches:  sum.mismatches,
		EvenSplit:   full && sum.zeros == 1 && sum.residues == sum.nonResidues,
		ElapsedMS:   meter.Elapsed().Milliseconds(),
		Rate:        meter.RateMean(),
	}
	if sampled {
		rep.Seed = cfg.Seed
	}

	lg.Info("census finished",
		"scanned", rep.Scanned, "residues", rep.Residues,
		"non_residues", rep.NonResidues, "verified", rep.Verified,
		"mismatches", rep.Mismatches,
		"elapsed", meter.Elapsed().Round(time.Millisecond))
	if rep.Mismatches > 0 {
		lg.Error("census found unverifiable roots", "count", rep.Mismatches)
	}
	return rep, nil
}
