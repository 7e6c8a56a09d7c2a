package cordic

import (
	"math"
	"math/bits"
)

// hyperbolic.go implements the hyperbolic/exponential elementary
// functions: exp, ln, sinh, cosh, tanh, asinh, acosh, atanh, sqrt. Base
// conversions for log2/log10 are linear rescalings of ln and are left
// to the root package, which multiplies ln by a cached fixed-point
// log2(e) or log10(e).

// SinhCosh returns sinh(z) and cosh(z) for z f-scaled, as
// (e^z - e^-z)/2 and (e^z + e^-z)/2.
func SinhCosh(z int64, f int) (sinh, cosh int64) {
	ep, em := Exp(z, f), Exp(-z, f)
	return (ep - em) / 2, (ep + em) / 2
}

// Exp returns e^z for z f-scaled. z is split as k*ln2 + r with
// |r| <= ln2/2; e^r = cosh(r) + sinh(r) comes from hyperbolic rotation
// starting at the gain-compensated unit vector, and the 2^k factor is a
// shift. A result too large for int64 saturates to math.MaxInt64.
func Exp(z int64, f int) int64 {
	ln2 := int64(math.Round(math.Ln2 * scaleOf(f)))
	k := z / ln2
	r := z - k*ln2
	if r > ln2/2 {
		k, r = k+1, r-ln2
	} else if r < -ln2/2 {
		k, r = k-1, r+ln2
	}
	x0 := int64(math.Round(ForWidth(f).InvKHyp * scaleOf(f)))
	x, y, _ := Rotate(Hyperbolic, x0, 0, r, f)
	v := x + y
	if k < 0 {
		return v >> uint(-k)
	}
	if bits.Len64(uint64(v))+int(k) >= 63 {
		return math.MaxInt64
	}
	return v << uint(k)
}

// Tanh returns tanh(z), f-scaled.
func Tanh(z int64, f int) int64 {
	sinh, cosh := SinhCosh(z, f)
	return divFixed(sinh, cosh, f)
}

// Atanh returns atanh(x) for |x| < 1, f-scaled, via
// atanh(x) = (ln(1+x) - ln(1-x)) / 2.
func Atanh(x int64, f int) int64 {
	one := oneScaled(f)
	return (Ln(one+x, f) - Ln(one-x, f)) / 2
}

// Ln returns ln(m) for m > 0, f-scaled. m is split as 2^k * m' with m'
// in [1, 2), and ln(m') = 2*atanh((m'-1)/(m'+1)) comes from hyperbolic
// vectoring on the pair (m'+1, m'-1).
func Ln(m int64, f int) int64 {
	one := oneScaled(f)
	k := bits.Len64(uint64(m)) - 1 - f
	if k > 0 {
		m >>= uint(k)
	} else {
		m <<= uint(-k)
	}
	ln2 := int64(math.Round(math.Ln2 * scaleOf(f)))
	_, _, z := Vector(Hyperbolic, m+one, m-one, 0, f)
	return int64(k)*ln2 + 2*z
}

// Sqrt returns sqrt(m) for m >= 0, f-scaled. m is split as 4^k * m'
// with m' in [1/2, 2); sqrt(m') comes from the identity
// sqrt((m'+1/4)^2 - (m'-1/4)^2) = sqrt(m'), evaluated with hyperbolic
// vectoring and its gain compensated by a fixed-point InvKHyp, and the
// result is shifted by k.
func Sqrt(m int64, f int) int64 {
	if m <= 0 {
		return 0
	}
	k := (bits.Len64(uint64(m)) - f) >> 1
	if k > 0 {
		m >>= uint(2 * k)
	} else {
		m <<= uint(-2 * k)
	}
	quarter := oneScaled(f) / 4
	invK := int64(math.Round(ForWidth(f).InvKHyp * scaleOf(f)))
	x, _, _ := Vector(Hyperbolic, m+quarter, m-quarter, 0, f)
	s := mulFixed(x, invK, f)
	if k > 0 {
		return s << uint(k)
	}
	return s >> uint(-k)
}

// Asinh returns asinh(x), f-scaled, via ln(x + sqrt(x^2+1)).
func Asinh(x int64, f int) int64 {
	one := oneScaled(f)
	return Ln(x+Sqrt(mulFixed(x, x, f)+one, f), f)
}

// Acosh returns acosh(x) for x >= 1, f-scaled, via ln(x + sqrt(x^2-1)).
func Acosh(x int64, f int) int64 {
	one := oneScaled(f)
	return Ln(x+Sqrt(mulFixed(x, x, f)-one, f), f)
}
