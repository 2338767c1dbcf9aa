package rejection

import (
	"fmt"
	"math/big"

	"github.com/dsprenkels/dilithium-aborts-distributions/internal/enumerate"
)

// ProgramWeight returns the number of complete random-oracle programmings
// consistent with one accepted trial. The oracle's table has ordY input
// points with base possible answers each; CaseDistinct pins two entries and
// CaseCollision pins one, leaving base^(ordY-2) respectively base^(ordY-1)
// free choices. CaseInconsistent admits no programming at all.
func ProgramWeight(base, ordY int, pc ProgramCase) *big.Int {
	var free int
	switch pc {
	case CaseDistinct:
		free = ordY - 2
	case CaseCollision:
		free = ordY - 1
	case CaseInconsistent:
		return new(big.Int)
	default:
		panic(fmt.Sprintf("rejection: unknown programming case %d", int(pc)))
	}
	if free < 0 {
		panic(fmt.Sprintf("rejection: oracle domain of %d points cannot hold the queries", ordY))
	}
	return new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(free)), nil)
}

// Accumulate enumerates the full challenge cross product [-Beta, Beta]^4 for
// one mask tuple and adds the programming weight of every accepted trial
// into dst. onlyAttempt restricts counting to trials accepted on that
// attempt (1 or 2); 0 counts all acceptances. Inconsistent programmings are
// skipped outright, never added at weight zero.
func Accumulate(dst *Counter, p Params, v Variant, m Masks, onlyAttempt int) {
	// Two attempts per trial means the oracle answers with challenge
	// pairs, so the weight base is OrdBSq.
	wDistinct := ProgramWeight(p.OrdBSq(), p.OrdY(), CaseDistinct)
	wCollision := ProgramWeight(p.OrdBSq(), p.OrdY(), CaseCollision)

	enumerate.Box(-p.Beta, p.Beta, 4, func(pt []int) {
		ch := Challenges{C1: pt[0], C2: pt[1], Cp1: pt[2], Cp2: pt[3]}
		pc := Classify(m, ch)
		if pc == CaseInconsistent {
			return
		}
		sig, attempt, ok := Evaluate(p, v, m, ch)
		if !ok {
			return
		}
		if onlyAttempt != 0 && attempt != onlyAttempt {
			return
		}
		if pc == CaseDistinct {
			dst.Add(sig, wDistinct)
		} else {
			dst.Add(sig, wCollision)
		}
	})
}
