package libq

import "math"

// arith.go implements the arithmetic core: normalisation between
// formats, and Add/Sub/Mul/Div/Neg over Number[F]. Every operation names
// its destination format as an explicit type parameter R; the promotion
// algebra in promote.go computes the natural result format, the value is
// produced in that format, and then normalized into whatever R the
// caller asked for (which is most often, but need not be, the natural
// promoted format — a caller may deliberately narrow, trading range for
// a known destination width).

// normalize implements normalisation between formats: given a stored
// integer at scale (from.FracBits, from.ScaleExp), produce the stored
// integer representing the same real value at scale (to.FracBits,
// to.ScaleExp), applying to's overflow/underflow policy.
func normalize(op string, stored int64, from, to Descriptor) (int64, error) {
	shift := (to.FracBits + to.ScaleExp) - (from.FracBits + from.ScaleExp)
	if shift >= 0 {
		neg := stored < 0
		hi, lo := shiftLeft128(0, absUint64(stored), uint(shift))
		return resolveMagnitude(op, neg, hi, lo, to)
	}

	shift = -shift
	if shift >= 63 {
		if stored != 0 {
			return applyUnderflow(op, to, stored)
		}
		return 0, nil
	}
	divisor := int64(1) << uint(shift)
	result := stored / divisor // Go's / truncates toward zero: the required rounding rule
	if stored != 0 && result == 0 {
		return applyUnderflow(op, to, stored)
	}
	return applyOverflow(op, to, result)
}

// resolveMagnitude casts an unsigned 128-bit magnitude hi:lo (with sign
// neg) into d's stored integer, consulting d's overflow policy both when
// the magnitude doesn't fit in 64 bits at all and, via applyOverflow,
// when it fits in 64 bits but not in d's own narrower bit width.
func resolveMagnitude(op string, neg bool, hi, lo uint64, d Descriptor) (int64, error) {
	if hi == 0 && lo <= uint64(math.MaxInt64) {
		v := int64(lo)
		if neg {
			v = -v
		}
		return applyOverflow(op, d, v)
	}

	switch d.Overflow {
	case PolicySaturate:
		loBound, hiBound := d.Bounds()
		if neg {
			return loBound, nil
		}
		return hiBound, nil
	case PolicyIgnore:
		bitsW := uint(d.bits())
		if d.Signed {
			bitsW++
		}
		var masked uint64 = lo
		if bitsW < 64 {
			masked = lo & ((uint64(1) << bitsW) - 1)
		}
		v := int64(masked)
		if d.Signed && bitsW < 64 && bitsW > 0 {
			sign := int64(1) << (bitsW - 1)
			v = (v ^ sign) - sign
		}
		if neg {
			v = wrapToBits(-v, d)
		}
		return v, nil
	default:
		sentinel := int64(1)
		if neg {
			sentinel = -1
		}
		return 0, raise(op, ErrOverflow, sentinel)
	}
}

// Add computes x+y, producing a Number in the caller-chosen format R.
func Add[A, B, R Format](x Number[A], y Number[B]) (Number[R], error) {
	return addOrSub[A, B, R]("Add", x, y, 1)
}

// Sub computes x-y, producing a Number in the caller-chosen format R.
func Sub[A, B, R Format](x Number[A], y Number[B]) (Number[R], error) {
	return addOrSub[A, B, R]("Sub", x, y, -1)
}

func addOrSub[A, B, R Format](op string, x Number[A], y Number[B], ySign int64) (Number[R], error) {
	descA := descriptorOf[A]()
	descB := descriptorOf[B]()
	promoted := PromoteSum(descA, descB)

	xs, err := normalize(op, x.stored, descA, promoted)
	if err != nil {
		return Number[R]{}, err
	}
	ys, err := normalize(op, y.stored, descB, promoted)
	if err != nil {
		return Number[R]{}, err
	}

	sum, err := applyOverflow(op, promoted, xs+ySign*ys)
	if err != nil {
		return Number[R]{}, err
	}
	out, err := normalize(op, sum, promoted, descriptorOf[R]())
	return Number[R]{stored: out}, err
}

// Mul computes x*y, producing a Number in the caller-chosen format R.
func Mul[A, B, R Format](x Number[A], y Number[B]) (Number[R], error) {
	descA := descriptorOf[A]()
	descB := descriptorOf[B]()
	raw := productDescriptor(descA, descB)

	neg, hi, lo := widenMul64(x.stored, y.stored)

	promoted := raw
	if !raw.expandable() {
		// Closed: keep the left operand's format, right-shifting the
		// full-precision product by the right operand's fractional
		// bits before storing.
		promoted = descA
		hi, lo = shiftRight128(hi, lo, uint(descB.FracBits))
	}

	stored, err := resolveMagnitude("Mul", neg, hi, lo, promoted)
	if err != nil {
		return Number[R]{}, err
	}
	out, err := normalize("Mul", stored, promoted, descriptorOf[R]())
	return Number[R]{stored: out}, err
}

// Div computes x/y, producing a Number in the caller-chosen format R.
func Div[A, B, R Format](x Number[A], y Number[B]) (Number[R], error) {
	descA := descriptorOf[A]()
	descB := descriptorOf[B]()
	raw := quotientDescriptor(descA, descB)

	promoted := raw
	if !raw.expandable() {
		promoted = descA
	}

	if y.stored == 0 {
		return Number[R]{}, raise("Div", ErrDivisionByZero, x.stored)
	}

	// Shifting the numerator by descB.IntBits produces the quotient
	// already scaled at raw's own fractional width (f_A + n_B - f_B):
	// the same natural, un-narrowed scale Mul's raw product sits at
	// before its own closed-path rescale.
	shift := uint(descB.IntBits)
	neg := (x.stored < 0) != (y.stored < 0)
	hi, lo := shiftLeft128(0, absUint64(x.stored), shift)
	denom := absUint64(y.stored)

	if hi >= denom {
		// The shifted numerator's high word still exceeds the
		// denominator: the true quotient does not fit in 64 bits. This
		// can only arise when n_A + f_A + n_B >= 64 and the denominator
		// is small; resolve it via the policy.
		switch promoted.Overflow {
		case PolicySaturate:
			loBound, hiBound := promoted.Bounds()
			bound := hiBound
			if neg {
				bound = loBound
			}
			out, err := normalize("Div", bound, promoted, descriptorOf[R]())
			return Number[R]{stored: out}, err
		case PolicyIgnore:
			hi %= denom
		default:
			return Number[R]{}, raise("Div", ErrOverflow, x.stored)
		}
	}

	quo, _ := div128by64(hi, lo, denom)
	if quo > uint64(math.MaxInt64) {
		quo = uint64(math.MaxInt64)
	}
	stored := int64(quo)
	if neg {
		stored = -stored
	}

	// Rescale from raw's natural fractional width down to promoted's
	// (a no-op when the quotient is expandable and promoted == raw; the
	// same shift Mul's closed path applies explicitly, here handled
	// generically — and ScaleExp-correctly — by normalize).
	stored, err := normalize("Div", stored, raw, promoted)
	if err != nil {
		return Number[R]{}, err
	}
	out, err := normalize("Div", stored, promoted, descriptorOf[R]())
	return Number[R]{stored: out}, err
}

// Neg computes -x. At the signed minimum, negation consults the
// overflow policy rather than silently wrapping.
func Neg[F Format](x Number[F]) (Number[F], error) {
	d := descriptorOf[F]()
	lo, hi := d.Bounds()
	if d.Signed && x.stored == lo {
		switch d.Overflow {
		case PolicySaturate:
			return Number[F]{stored: hi}, nil
		case PolicyRaise:
			return Number[F]{}, raise("Neg", ErrOverflow, x.stored)
		default:
			return Number[F]{stored: x.stored}, nil
		}
	}
	return Number[F]{stored: -x.stored}, nil
}
