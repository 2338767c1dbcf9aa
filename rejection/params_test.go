package rejection

import (
	"errors"
	"testing"
)

func TestNewParams(t *testing.T) {
	p, err := NewParams(2, 7)
	if err != nil {
		t.Fatalf("NewParams(2, 7): %v", err)
	}
	if p.OrdB() != 5 || p.OrdBSq() != 25 || p.OrdY() != 14 {
		t.Fatalf("derived orders: OrdB=%d OrdBSq=%d OrdY=%d", p.OrdB(), p.OrdBSq(), p.OrdY())
	}
}

func TestNewParamsRejectsBadInput(t *testing.T) {
	if _, err := NewParams(0, 7); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("beta=0: got %v, want ErrInvalidParams", err)
	}
	if _, err := NewParams(3, 3); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("gamma1=beta: got %v, want ErrInvalidParams", err)
	}
	if _, err := NewParams(3, 2); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("gamma1<beta: got %v, want ErrInvalidParams", err)
	}
}

func TestInBoundsBoundary(t *testing.T) {
	p, _ := NewParams(2, 7) // bound: |z| < 5
	for _, z := range []int{-4, 0, 4} {
		if !p.InBounds(z) {
			t.Errorf("InBounds(%d) = false, want true", z)
		}
	}
	for _, z := range []int{-5, 5, 9} {
		if p.InBounds(z) {
			t.Errorf("InBounds(%d) = true, want false", z)
		}
	}
}

func TestEvaluatePanicsOnBadMask(t *testing.T) {
	p, _ := NewParams(2, 7)
	defer func() {
		if recover() == nil {
			t.Fatalf("no panic for mask outside (-gamma1, gamma1]")
		}
	}()
	Evaluate(p, Vanilla, Masks{Y1: -7, Y2: 0, Y1p: 0, Y2p: 0}, Challenges{})
}

func TestParseVariant(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Variant
	}{
		{"vanilla", Vanilla},
		{"ztrick", ZTrick},
	} {
		got, err := ParseVariant(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseVariant(%q) = %v, %v", tc.in, got, err)
		}
		if got.String() != tc.in {
			t.Errorf("String() = %q, want %q", got.String(), tc.in)
		}
	}
	if _, err := ParseVariant("bogus"); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("ParseVariant(bogus): got %v, want ErrInvalidParams", err)
	}
}
