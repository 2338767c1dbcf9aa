package oracle

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"

	"github.com/dsprenkels/dilithium-aborts-distributions/rejection"
)

// Simulator replays one signing variant against concrete oracles, sampling
// mask tuples at random instead of enumerating them. Each accepted
// signature is counted once, un-weighted.
type Simulator struct {
	Params  rejection.Params
	Variant rejection.Variant

	first  *Oracle
	second *Oracle
	prng   *utils.KeyedPRNG
}

// NewSimulator derives the per-attempt oracles and the mask sampler from a
// textual label, so a simulator is fully deterministic given its label.
func NewSimulator(p rejection.Params, v rejection.Variant, label string) (*Simulator, error) {
	key := sha3.Sum256([]byte("dilithium-aborts/masks|" + label))
	prng, err := utils.NewKeyedPRNG(key[:])
	if err != nil {
		return nil, fmt.Errorf("mask prng: %w", err)
	}
	return &Simulator{
		Params:  p,
		Variant: v,
		first:   New(label+"|attempt-1", p.Beta),
		second:  New(label+"|attempt-2", p.Beta),
		prng:    prng,
	}, nil
}

// Run performs the given number of signing trials and returns the counts of
// accepted signatures. The support of the result is contained in the support
// of the exhaustive distribution for the same parameters and variant.
func (s *Simulator) Run(trials int) *rejection.Counter {
	dst := rejection.NewCounter()
	one := big.NewInt(1)
	lo, hi := -s.Params.Gamma1+1, s.Params.Gamma1
	for i := 0; i < trials; i++ {
		m := rejection.Masks{
			Y1:  sampleBounded(s.prng, lo, hi),
			Y2:  sampleBounded(s.prng, lo, hi),
			Y1p: sampleBounded(s.prng, lo, hi),
			Y2p: sampleBounded(s.prng, lo, hi),
		}
		c1, c2 := s.first.Challenges(m.Y1, m.Y2)

		// The second attempt queries the oracle at whichever mask pair
		// the retry actually signs with: the z-trick keeps Y2 when z1
		// alone failed, every other retry uses the fresh pair.
		var cp1, cp2 int
		if s.Variant == rejection.ZTrick && !s.Params.InBounds(m.Y1+c1) {
			cp1, cp2 = s.second.Challenges(m.Y1p, m.Y2)
		} else {
			cp1, cp2 = s.second.Challenges(m.Y1p, m.Y2p)
		}

		ch := rejection.Challenges{C1: c1, C2: c2, Cp1: cp1, Cp2: cp2}
		sig, _, ok := rejection.Evaluate(s.Params, s.Variant, m, ch)
		if !ok {
			continue
		}
		dst.Add(sig, one)
	}
	return dst
}
