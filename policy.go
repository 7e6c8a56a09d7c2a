package libq

import "github.com/thesyncim/libq/internal/xmath"

// Policy is the behavior a Q-format selects for a boundary condition:
// overflow (component C/D results outside the destination range) or
// underflow (a non-zero value truncated to zero by normalisation).
// Policies are resolved per-descriptor, never per-call.
type Policy int

const (
	// PolicyIgnore silently wraps or truncates.
	PolicyIgnore Policy = iota
	// PolicySaturate clamps to the nearest representable bound.
	PolicySaturate
	// PolicyRaise surfaces a *Error to the caller.
	PolicyRaise
)

func (p Policy) String() string {
	switch p {
	case PolicyIgnore:
		return "ignore"
	case PolicySaturate:
		return "saturate"
	case PolicyRaise:
		return "raise"
	default:
		return "unknown"
	}
}

// PolicyTag is the compile-time handle for a Policy, used as a type
// parameter on format shapes so that the policy is baked into the format
// type rather than threaded through every call.
type PolicyTag interface {
	Policy() Policy
}

// Ignore is a PolicyTag selecting PolicyIgnore.
type Ignore struct{}

// Policy implements PolicyTag.
func (Ignore) Policy() Policy { return PolicyIgnore }

// Saturate is a PolicyTag selecting PolicySaturate.
type Saturate struct{}

// Policy implements PolicyTag.
func (Saturate) Policy() Policy { return PolicySaturate }

// Raise is a PolicyTag selecting PolicyRaise.
type Raise struct{}

// Policy implements PolicyTag.
func (Raise) Policy() Policy { return PolicyRaise }

// applyOverflow resolves an out-of-range stored integer against the
// format's overflow policy, returning the value to actually store.
func applyOverflow(op string, d Descriptor, stored int64) (int64, error) {
	lo, hi := d.Bounds()
	if stored >= lo && stored <= hi {
		return stored, nil
	}
	switch d.Overflow {
	case PolicyIgnore:
		return wrapToBits(stored, d), nil
	case PolicySaturate:
		return xmath.Clamp(stored, lo, hi), nil
	case PolicyRaise:
		return 0, raise(op, ErrOverflow, stored)
	default:
		return 0, raise(op, ErrOverflow, stored)
	}
}

// applyUnderflow resolves a normalisation that truncated a non-zero value
// to zero, against the format's underflow policy.
func applyUnderflow(op string, d Descriptor, original int64) (int64, error) {
	switch d.Underflow {
	case PolicyIgnore, PolicySaturate:
		return 0, nil
	case PolicyRaise:
		return 0, raise(op, ErrUnderflow, original)
	default:
		return 0, raise(op, ErrUnderflow, original)
	}
}

// wrapToBits truncates stored to the two's-complement width implied by
// d's significant bits, used by the ignore policy.
func wrapToBits(stored int64, d Descriptor) int64 {
	bits := uint(d.bits())
	if d.Signed {
		bits++
	}
	if bits >= 64 {
		return stored
	}
	mask := (int64(1) << bits) - 1
	v := stored & mask
	if d.Signed {
		sign := int64(1) << (bits - 1)
		v = (v ^ sign) - sign
	}
	return v
}
