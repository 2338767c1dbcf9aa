package oracle

import "testing"

func TestOracleIsAFunction(t *testing.T) {
	o := New("test", 2)
	for y1 := -3; y1 <= 4; y1++ {
		for y2 := -3; y2 <= 4; y2++ {
			c1, c2 := o.Challenges(y1, y2)
			r1, r2 := o.Challenges(y1, y2)
			if c1 != r1 || c2 != r2 {
				t.Fatalf("query (%d, %d): (%d, %d) then (%d, %d)", y1, y2, c1, c2, r1, r2)
			}
		}
	}
}

func TestOracleDeterministicAcrossInstances(t *testing.T) {
	a := New("same-label", 3)
	b := New("same-label", 3)
	for y1 := -2; y1 <= 2; y1++ {
		a1, a2 := a.Challenges(y1, -y1)
		b1, b2 := b.Challenges(y1, -y1)
		if a1 != b1 || a2 != b2 {
			t.Fatalf("instances disagree at (%d, %d)", y1, -y1)
		}
	}
}

func TestOracleChallengesInRange(t *testing.T) {
	const beta = 2
	o := New("range", beta)
	for y1 := -6; y1 <= 7; y1++ {
		for y2 := -6; y2 <= 7; y2++ {
			c1, c2 := o.Challenges(y1, y2)
			if c1 < -beta || c1 > beta || c2 < -beta || c2 > beta {
				t.Fatalf("challenges (%d, %d) outside [-%d, %d]", c1, c2, beta, beta)
			}
		}
	}
}

func TestOracleLabelsSeparateDomains(t *testing.T) {
	a := New("label-a", 2)
	b := New("label-b", 2)
	same := true
	for y1 := -4; y1 <= 4 && same; y1++ {
		for y2 := -4; y2 <= 4; y2++ {
			a1, a2 := a.Challenges(y1, y2)
			b1, b2 := b.Challenges(y1, y2)
			if a1 != b1 || a2 != b2 {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatalf("oracles with different labels agree on all of [-4, 4]^2")
	}
}
