package rejection

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is returned when a parameter set violates its contract.
var ErrInvalidParams = errors.New("invalid parameters")

// Params fixes the rejection bound Beta and the mask half-range Gamma1 for
// one enumeration run. Masks range over (-Gamma1, Gamma1], challenges over
// [-Beta, Beta], and a response coordinate z is acceptable iff
// |z| < Gamma1-Beta.
type Params struct {
	Beta   int
	Gamma1 int
}

// NewParams validates that Beta >= 1 and Gamma1 > Beta.
func NewParams(beta, gamma1 int) (Params, error) {
	if beta < 1 {
		return Params{}, fmt.Errorf("%w: beta (%d) must be >= 1", ErrInvalidParams, beta)
	}
	if gamma1 <= beta {
		return Params{}, fmt.Errorf("%w: gamma1 (%d) must be > beta (%d)", ErrInvalidParams, gamma1, beta)
	}
	return Params{Beta: beta, Gamma1: gamma1}, nil
}

// OrdB is the size of the challenge domain [-Beta, Beta].
func (p Params) OrdB() int { return 2*p.Beta + 1 }

// OrdBSq is the size of the challenge-pair domain.
func (p Params) OrdBSq() int {
	o := p.OrdB()
	return o * o
}

// OrdY is the size of the domain of one mask coordinate, (-Gamma1, Gamma1].
func (p Params) OrdY() int { return 2 * p.Gamma1 }

// InBounds reports whether a response coordinate survives rejection.
func (p Params) InBounds(z int) bool {
	if z < 0 {
		z = -z
	}
	return z < p.Gamma1-p.Beta
}

// checkMask panics when y lies outside (-Gamma1, Gamma1]. Masks come from
// the enumeration itself, so an out-of-range value is a programmer error,
// never data.
func (p Params) checkMask(y int) {
	if y <= -p.Gamma1 || y > p.Gamma1 {
		panic(fmt.Sprintf("rejection: mask %d outside (-%d, %d]", y, p.Gamma1, p.Gamma1))
	}
}
