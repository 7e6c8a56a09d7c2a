package libq

import "github.com/thesyncim/libq/internal/xmath"

// promote.go implements the type-promotion algebra: given the
// Descriptors of the operands of +, -, *, / (and of an elementary
// function's single argument), compute the Descriptor of the result that
// preserves range and maximises precision while staying within hostBits.

// sumDescriptor computes the uncapped result Descriptor of a+b or a-b,
// without applying the Closed/Expandable rule.
func sumDescriptor(a, b Descriptor) Descriptor {
	return Descriptor{
		IntBits:   xmath.Max(a.IntBits, b.IntBits) + 1,
		FracBits:  xmath.Max(a.FracBits, b.FracBits),
		ScaleExp:  xmath.Min(a.ScaleExp, b.ScaleExp),
		Signed:    a.Signed || b.Signed,
		Overflow:  a.Overflow,
		Underflow: a.Underflow,
	}
}

// productDescriptor computes the uncapped result Descriptor of a*b.
func productDescriptor(a, b Descriptor) Descriptor {
	return Descriptor{
		IntBits:   a.IntBits + b.IntBits,
		FracBits:  a.FracBits + b.FracBits,
		ScaleExp:  a.ScaleExp + b.ScaleExp,
		Signed:    a.Signed || b.Signed,
		Overflow:  a.Overflow,
		Underflow: a.Underflow,
	}
}

// quotientDescriptor computes the uncapped result Descriptor of a/b.
func quotientDescriptor(a, b Descriptor) Descriptor {
	return Descriptor{
		IntBits:   a.IntBits + b.IntBits,
		FracBits:  a.FracBits + (b.IntBits - b.FracBits),
		ScaleExp:  a.ScaleExp - b.ScaleExp,
		Signed:    a.Signed || b.Signed,
		Overflow:  a.Overflow,
		Underflow: a.Underflow,
	}
}

// PromoteSum computes the result Descriptor of a+b or a-b.
//
// n = max(n_A, n_B) + 1, f = max(f_A, f_B), e = min(e_A, e_B). If no host
// integer of the resulting width exists the operation is closed and
// degenerates to A (the left operand).
func PromoteSum(a, b Descriptor) Descriptor {
	result := sumDescriptor(a, b)
	if !result.expandable() {
		return a
	}
	return result
}

// PromoteProduct computes the result Descriptor of a*b.
//
// n = n_A + n_B, f = f_A + f_B, e = e_A + e_B.
func PromoteProduct(a, b Descriptor) Descriptor {
	result := productDescriptor(a, b)
	if !result.expandable() {
		return a
	}
	return result
}

// PromoteQuotient computes the result Descriptor of a/b.
//
// n = n_A + n_B (plus one sign bit if signed, already accounted for by
// requiredWidth), f = f_A + (n_B - f_B), e = e_A - e_B.
func PromoteQuotient(a, b Descriptor) Descriptor {
	result := quotientDescriptor(a, b)
	if !result.expandable() {
		return a
	}
	return result
}

// FuncKind classifies how an elementary function's result Descriptor is
// derived from its argument's Descriptor.
type FuncKind int

const (
	// FuncSameFormat covers sin, cos, tan, asin, acos, atan: the result
	// format equals the input format exactly.
	FuncSameFormat FuncKind = iota
	// FuncLogPromoted covers log, log2, log10, sinh, cosh, tanh, asinh,
	// acosh, atanh: n grows by ceil(log2(n_A+f_A)), f and signedness
	// unchanged.
	FuncLogPromoted
	// FuncExpPromoted covers exp: same growth rule as FuncLogPromoted,
	// but the result is always unsigned.
	FuncExpPromoted
	// FuncSqrtPromoted covers sqrt: n <- ceil(n_A/2)+1, f unchanged.
	FuncSqrtPromoted
)

// PromoteFunc computes the result Descriptor of applying an elementary
// function of the given kind to an argument of Descriptor a.
func PromoteFunc(kind FuncKind, a Descriptor) Descriptor {
	switch kind {
	case FuncSameFormat:
		return a

	case FuncLogPromoted, FuncExpPromoted:
		terms := a.bits()
		result := Descriptor{
			IntBits:   a.IntBits + ceilLog2(terms),
			FracBits:  a.FracBits,
			ScaleExp:  a.ScaleExp,
			Signed:    a.Signed,
			Overflow:  a.Overflow,
			Underflow: a.Underflow,
		}
		if kind == FuncExpPromoted {
			result.Signed = false
		}
		return result

	case FuncSqrtPromoted:
		return Descriptor{
			IntBits:   ceilDiv2(a.IntBits) + 1,
			FracBits:  a.FracBits,
			ScaleExp:  a.ScaleExp,
			Signed:    a.Signed,
			Overflow:  a.Overflow,
			Underflow: a.Underflow,
		}

	default:
		return a
	}
}
