package rejection

import "fmt"

// Masks is one tuple of first- and second-attempt masking values, each in
// (-Gamma1, Gamma1].
type Masks struct {
	Y1, Y2   int
	Y1p, Y2p int
}

// Challenges is one combination of first- and second-attempt challenge
// pairs, each coordinate in [-Beta, Beta].
type Challenges struct {
	C1, C2   int
	Cp1, Cp2 int
}

// Signature is the accepted output of one trial: the response coordinates
// together with the challenge pair recorded for them.
type Signature struct {
	Z1, Z2 int
	C1, C2 int
}

func (s Signature) less(o Signature) bool {
	if s.Z1 != o.Z1 {
		return s.Z1 < o.Z1
	}
	if s.Z2 != o.Z2 {
		return s.Z2 < o.Z2
	}
	if s.C1 != o.C1 {
		return s.C1 < o.C1
	}
	return s.C2 < o.C2
}

// ProgramCase classifies how the random oracle was programmed for one trial.
// The two attempts of a trial query the oracle at the mask points
// (Y1, Y2) and (Y1p, Y2p); the programming fixes the answers at those points
// to the trial's challenge pairs.
type ProgramCase int

const (
	// CaseDistinct: the two attempts queried the oracle at two distinct
	// mask points, fixing two table entries.
	CaseDistinct ProgramCase = iota
	// CaseCollision: both attempts queried the same point and received
	// the same answer, fixing a single table entry.
	CaseCollision
	// CaseInconsistent: the same point received two different answers.
	// No function behaves like this, so such combinations are excluded
	// from the count entirely.
	CaseInconsistent
)

// Classify determines the programming case of a trial. The case depends only
// on the mask and challenge tuples, not on whether the trial accepts.
func Classify(m Masks, ch Challenges) ProgramCase {
	if m.Y1 != m.Y1p || m.Y2 != m.Y2p {
		return CaseDistinct
	}
	if ch.C1 == ch.Cp1 && ch.C2 == ch.Cp2 {
		return CaseCollision
	}
	return CaseInconsistent
}

// Evaluate simulates one signing trial of at most two attempts. It returns
// the accepted signature, the attempt that produced it (1 or 2), and whether
// the trial accepted at all.
func Evaluate(p Params, v Variant, m Masks, ch Challenges) (Signature, int, bool) {
	p.checkMask(m.Y1)
	p.checkMask(m.Y2)
	p.checkMask(m.Y1p)
	p.checkMask(m.Y2p)

	switch v {
	case Vanilla:
		return evaluateVanilla(p, m, ch)
	case ZTrick:
		return evaluateZTrick(p, m, ch)
	default:
		panic(fmt.Sprintf("rejection: unknown variant %d", int(v)))
	}
}

// evaluateVanilla retries with the fully fresh mask/challenge pair whenever
// either coordinate of the first attempt is rejected. The procedure never
// looks at which coordinate failed.
func evaluateVanilla(p Params, m Masks, ch Challenges) (Signature, int, bool) {
	attempt := 1
	c1, c2 := ch.C1, ch.C2
	z1 := m.Y1 + ch.C1
	z2 := m.Y2 + ch.C2
	if !p.InBounds(z1) || !p.InBounds(z2) {
		attempt = 2
		c1, c2 = ch.Cp1, ch.Cp2
		z1 = m.Y1p + ch.Cp1
		z2 = m.Y2p + ch.Cp2
	}
	if !p.InBounds(z1) || !p.InBounds(z2) {
		return Signature{}, 0, false
	}
	return Signature{Z1: z1, Z2: z2, C1: c1, C2: c2}, attempt, true
}

// evaluateZTrick checks z1 before z2 and performs at most one resample.
func evaluateZTrick(p Params, m Masks, ch Challenges) (Signature, int, bool) {
	attempt := 1
	c1, c2 := ch.C1, ch.C2
	z1 := m.Y1 + ch.C1
	z2 := m.Y2 + ch.C2
	if !p.InBounds(z1) {
		// z1 failed before z2 was looked at: resample z1, keep the mask
		// of z2.
		attempt = 2
		c1, c2 = ch.Cp1, ch.Cp2
		z1 = m.Y1p + ch.Cp1
		z2 = m.Y2 + ch.Cp2
	} else if !p.InBounds(z2) {
		// z1 was already seen, so the retry resamples both masks.
		attempt = 2
		z1 = m.Y1p + ch.Cp1
		z2 = m.Y2p + ch.Cp2
	}
	if !p.InBounds(z1) || !p.InBounds(z2) {
		return Signature{}, 0, false
	}
	return Signature{Z1: z1, Z2: z2, C1: c1, C2: c2}, attempt, true
}
