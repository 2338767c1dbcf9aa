package rejection

import (
	"sync"

	"github.com/dsprenkels/dilithium-aborts-distributions/internal/enumerate"
)

// CountOpts configures one full-space enumeration run.
type CountOpts struct {
	Variant Variant
	// OnlyAttempt restricts counting to acceptances from attempt 1 or 2;
	// 0 counts all acceptances.
	OnlyAttempt int
	// Workers is the number of goroutines the mask space is partitioned
	// across. Values below 2 run serially.
	Workers int
}

// Count walks every mask tuple in (-Gamma1, Gamma1]^4, accumulates the
// weighted acceptance counts per tuple, and returns the merged distribution.
// The mask space is partitioned by Y1 across workers; because merging is
// point-wise addition, the partition does not affect the result.
func Count(p Params, opts CountOpts) *Counter {
	lo, hi := -p.Gamma1+1, p.Gamma1

	if opts.Workers < 2 {
		dst := NewCounter()
		for y1 := lo; y1 <= hi; y1++ {
			accumulateY1(dst, p, opts, y1)
		}
		return dst
	}

	workers := opts.Workers
	if n := hi - lo + 1; workers > n {
		workers = n
	}
	partials := make([]*Counter, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		partials[w] = NewCounter()
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for y1 := lo + w; y1 <= hi; y1 += workers {
				accumulateY1(partials[w], p, opts, y1)
			}
		}(w)
	}
	wg.Wait()

	dst := NewCounter()
	for _, part := range partials {
		dst.Merge(part)
	}
	return dst
}

// accumulateY1 covers the slice of the mask space with a fixed first-attempt
// Y1 coordinate.
func accumulateY1(dst *Counter, p Params, opts CountOpts, y1 int) {
	enumerate.Box(-p.Gamma1+1, p.Gamma1, 3, func(pt []int) {
		m := Masks{Y1: y1, Y2: pt[0], Y1p: pt[1], Y2p: pt[2]}
		Accumulate(dst, p, opts.Variant, m, opts.OnlyAttempt)
	})
}
