// errors.go defines the error kinds raised by the overflow/underflow policy
// surface (component E) and by domain checks in the elementary functions.

package libq

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. A *Error returned by any operation under the
// Raise policy always unwraps to exactly one of these via errors.Is.
var (
	// ErrOverflow indicates an arithmetic result fell outside the
	// representable range of the destination Q-format.
	ErrOverflow = errors.New("libq: overflow")

	// ErrUnderflow indicates a non-zero real value was coerced to zero
	// by normalisation into a narrower fractional width.
	ErrUnderflow = errors.New("libq: underflow")

	// ErrDomain indicates an argument outside the mathematical domain of
	// an elementary function (log of a non-positive value, asin/acos of
	// |x|>1, acosh of x<1, atanh of |x|>=1). Domain errors are always
	// raised regardless of the format's policy; there is no sensible
	// default value.
	ErrDomain = errors.New("libq: domain error")

	// ErrDivisionByZero indicates a division whose denominator stored
	// integer is zero.
	ErrDivisionByZero = errors.New("libq: division by zero")
)

// Error carries a sentinel kind plus the stored-integer context that
// triggered it, so callers can log or compare without string matching.
type Error struct {
	Kind  error  // one of the Err* sentinels above
	Op    string // operation name, e.g. "Add", "Log", "Wrap"
	Value int64  // the stored integer that violated the kind, if any
}

func (e *Error) Error() string {
	return fmt.Sprintf("libq: %s: %v (stored=%d)", e.Op, e.Kind, e.Value)
}

func (e *Error) Unwrap() error { return e.Kind }

func raise(op string, kind error, stored int64) error {
	return &Error{Kind: kind, Op: op, Value: stored}
}
