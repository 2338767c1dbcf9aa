package rejection

import (
	"math/big"
	"testing"
)

func TestCounterAddDefaultsToZero(t *testing.T) {
	c := NewCounter()
	sig := Signature{Z1: 1, Z2: -1, C1: 0, C2: 2}
	if got := c.Get(sig); got.Sign() != 0 {
		t.Fatalf("absent key = %s, want 0", got)
	}
	c.Add(sig, big.NewInt(5))
	c.Add(sig, big.NewInt(7))
	if got := c.Get(sig); got.Cmp(big.NewInt(12)) != 0 {
		t.Fatalf("count = %s, want 12", got)
	}
}

func TestCounterAddCopiesWeight(t *testing.T) {
	c := NewCounter()
	w := big.NewInt(3)
	c.Add(Signature{}, w)
	w.SetInt64(1000)
	if got := c.Get(Signature{}); got.Cmp(big.NewInt(3)) != 0 {
		t.Fatalf("count = %s, want 3 (weight must be copied)", got)
	}
}

func TestMergeCommutativeAssociative(t *testing.T) {
	a, b, c := NewCounter(), NewCounter(), NewCounter()
	s1 := Signature{Z1: 0, Z2: 0, C1: 0, C2: 0}
	s2 := Signature{Z1: 1, Z2: 0, C1: -1, C2: 0}
	a.Add(s1, big.NewInt(2))
	b.Add(s1, big.NewInt(3))
	b.Add(s2, big.NewInt(4))
	c.Add(s2, big.NewInt(5))

	// (a + b) + c
	left := NewCounter()
	left.Merge(a)
	left.Merge(b)
	left.Merge(c)

	// c + (b + a)
	right := NewCounter()
	right.Merge(c)
	right.Merge(b)
	right.Merge(a)

	assertEqualCounters(t, left, right)
	if got := left.Get(s1); got.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("s1 = %s, want 5", got)
	}
	if got := left.Get(s2); got.Cmp(big.NewInt(9)) != 0 {
		t.Errorf("s2 = %s, want 9", got)
	}
}

func TestSignaturesSorted(t *testing.T) {
	c := NewCounter()
	one := big.NewInt(1)
	c.Add(Signature{Z1: 1, Z2: 0, C1: 0, C2: 0}, one)
	c.Add(Signature{Z1: -1, Z2: 2, C1: 0, C2: 0}, one)
	c.Add(Signature{Z1: -1, Z2: 0, C1: 1, C2: 0}, one)
	c.Add(Signature{Z1: -1, Z2: 0, C1: 0, C2: 0}, one)
	sigs := c.Signatures()
	for i := 1; i < len(sigs); i++ {
		if !sigs[i-1].less(sigs[i]) {
			t.Fatalf("keys out of order at %d: %+v >= %+v", i, sigs[i-1], sigs[i])
		}
	}
}
