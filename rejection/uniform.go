package rejection

import "math/big"

// Mismatch identifies the first counter entry whose count diverges from the
// baseline during a uniformity check.
type Mismatch struct {
	Sig      Signature
	Count    *big.Int
	Baseline *big.Int
}

// IsUniform reports whether every signature in the counter carries the same
// count, i.e. whether the output distribution is independent of the masks.
// The first entry in sorted key order serves as the baseline and the first
// divergence is returned. An empty counter is trivially uniform: there is no
// counter-example. The exploratory programs this consolidates disagreed on
// the empty case; the policy here is deliberate and pinned by a test.
func (c *Counter) IsUniform() (bool, *Mismatch) {
	sigs := c.Signatures()
	if len(sigs) == 0 {
		return true, nil
	}
	baseline := c.counts[sigs[0]]
	for _, sig := range sigs[1:] {
		if n := c.counts[sig]; n.Cmp(baseline) != 0 {
			return false, &Mismatch{
				Sig:      sig,
				Count:    new(big.Int).Set(n),
				Baseline: new(big.Int).Set(baseline),
			}
		}
	}
	return true, nil
}
