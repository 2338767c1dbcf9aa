package rejection

import (
	"math/big"
	"sort"
)

// Ratio is one GCD-normalized count value together with the number of
// signatures that carry it.
type Ratio struct {
	Value       *big.Int
	Occurrences int
}

// GCD returns the greatest common divisor of all counts, or zero for an
// empty counter.
func (c *Counter) GCD() *big.Int {
	gcd := new(big.Int)
	for _, n := range c.counts {
		gcd.GCD(nil, nil, gcd, n)
	}
	return gcd
}

// Ratios divides every count by the collective GCD and returns the distinct
// quotients in ascending order with their multiplicities. A uniform counter
// yields the single ratio 1; the quotient profile of a non-uniform counter
// shows how the counts split. Returns nil for an empty counter.
func (c *Counter) Ratios() []Ratio {
	if len(c.counts) == 0 {
		return nil
	}
	gcd := c.GCD()
	byValue := make(map[string]*Ratio)
	for _, n := range c.counts {
		q := new(big.Int).Quo(n, gcd)
		k := q.String()
		if r, ok := byValue[k]; ok {
			r.Occurrences++
			continue
		}
		byValue[k] = &Ratio{Value: q, Occurrences: 1}
	}
	out := make([]Ratio, 0, len(byValue))
	for _, r := range byValue {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value.Cmp(out[j].Value) < 0 })
	return out
}
