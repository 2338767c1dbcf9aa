package rejection

import (
	"math/big"
	"sort"
)

// Counter maps accepted signatures to the number of random-oracle
// programmings that produce them. Absent keys count as zero. Counts are
// arbitrary precision: the programming weights grow as OrdBSq^(OrdY-2) and
// overflow any fixed-width integer once Gamma1 passes single digits.
type Counter struct {
	counts map[Signature]*big.Int
}

// NewCounter returns an empty counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[Signature]*big.Int)}
}

// Add accumulates weight into the entry for sig, creating the entry at zero
// first. The weight is copied, never retained.
func (c *Counter) Add(sig Signature, weight *big.Int) {
	if n, ok := c.counts[sig]; ok {
		n.Add(n, weight)
		return
	}
	c.counts[sig] = new(big.Int).Set(weight)
}

// Merge adds every entry of other into c point-wise. Merging is commutative
// and associative, so partial counters can be combined in any order.
func (c *Counter) Merge(other *Counter) {
	for sig, n := range other.counts {
		c.Add(sig, n)
	}
}

// Get returns a copy of the count for sig; absent keys are zero.
func (c *Counter) Get(sig Signature) *big.Int {
	if n, ok := c.counts[sig]; ok {
		return new(big.Int).Set(n)
	}
	return new(big.Int)
}

// Len is the number of distinct accepted signatures.
func (c *Counter) Len() int { return len(c.counts) }

// Signatures returns every key in ascending (Z1, Z2, C1, C2) order.
func (c *Counter) Signatures() []Signature {
	sigs := make([]Signature, 0, len(c.counts))
	for sig := range c.counts {
		sigs = append(sigs, sig)
	}
	sort.Slice(sigs, func(i, j int) bool { return sigs[i].less(sigs[j]) })
	return sigs
}

// Counts returns a deep copy of the underlying mapping.
func (c *Counter) Counts() map[Signature]*big.Int {
	out := make(map[Signature]*big.Int, len(c.counts))
	for sig, n := range c.counts {
		out[sig] = new(big.Int).Set(n)
	}
	return out
}

// Total returns the sum of all counts.
func (c *Counter) Total() *big.Int {
	total := new(big.Int)
	for _, n := range c.counts {
		total.Add(total, n)
	}
	return total
}
