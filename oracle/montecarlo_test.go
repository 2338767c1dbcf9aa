package oracle

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dsprenkels/dilithium-aborts-distributions/rejection"
)

func TestSimulatorDeterministic(t *testing.T) {
	p, _ := rejection.NewParams(2, 4)
	a, err := NewSimulator(p, rejection.ZTrick, "repro")
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	b, err := NewSimulator(p, rejection.ZTrick, "repro")
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	bigIntCmp := cmp.Comparer(func(x, y *big.Int) bool { return x.Cmp(y) == 0 })
	if diff := cmp.Diff(a.Run(500).Counts(), b.Run(500).Counts(), bigIntCmp); diff != "" {
		t.Fatalf("same label, different counts (-a +b):\n%s", diff)
	}
}

// Every signature the concrete-oracle simulation accepts must lie in the
// support of the exhaustively counted distribution.
func TestSimulatorSupportContainedInExhaustive(t *testing.T) {
	p, _ := rejection.NewParams(2, 4)
	for _, v := range []rejection.Variant{rejection.Vanilla, rejection.ZTrick} {
		exhaustive := rejection.Count(p, rejection.CountOpts{Variant: v, Workers: 2})
		sim, err := NewSimulator(p, v, "support")
		if err != nil {
			t.Fatalf("NewSimulator: %v", err)
		}
		const trials = 2000
		counted := sim.Run(trials)
		if total := counted.Total(); total.Cmp(big.NewInt(trials)) > 0 {
			t.Fatalf("%s: counted %s acceptances out of %d trials", v, total, trials)
		}
		for _, sig := range counted.Signatures() {
			if !p.InBounds(sig.Z1) || !p.InBounds(sig.Z2) {
				t.Fatalf("%s: accepted out-of-bounds signature %+v", v, sig)
			}
			if exhaustive.Get(sig).Sign() == 0 {
				t.Fatalf("%s: simulated signature %+v missing from exhaustive support", v, sig)
			}
		}
	}
}
