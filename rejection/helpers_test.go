package rejection

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var bigIntCmp = cmp.Comparer(func(a, b *big.Int) bool { return a.Cmp(b) == 0 })

func assertEqualCounters(t *testing.T, want, got *Counter) {
	t.Helper()
	if diff := cmp.Diff(want.Counts(), got.Counts(), bigIntCmp); diff != "" {
		t.Fatalf("counters differ (-want +got):\n%s", diff)
	}
}
