package rejection

import "fmt"

// Variant selects which signing loop the evaluator simulates.
type Variant int

const (
	// Vanilla resamples both coordinates together when an attempt aborts.
	Vanilla Variant = iota
	// ZTrick resamples only the first coordinate when it alone failed,
	// keeping the mask of the coordinate that was not yet rejected.
	ZTrick
)

// String returns the name used by drivers and reports.
func (v Variant) String() string {
	switch v {
	case Vanilla:
		return "vanilla"
	case ZTrick:
		return "ztrick"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant maps a driver-facing name back to its Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "vanilla":
		return Vanilla, nil
	case "ztrick":
		return ZTrick, nil
	}
	return 0, fmt.Errorf("%w: unknown variant %q", ErrInvalidParams, s)
}
