package libq

import "math"

// constants.go exposes the per-format mathematical constants: each is just a
// real literal run through New[F], so their accuracy is whatever F's
// construction rounding gives — no transcendental evaluation needed.

// E returns Euler's number in format F.
func E[F Format]() Number[F] { return mustConst[F](math.E) }

// Ln2 returns ln(2) in format F.
func Ln2[F Format]() Number[F] { return mustConst[F](math.Ln2) }

// Ln10 returns ln(10) in format F.
func Ln10[F Format]() Number[F] { return mustConst[F](math.Ln10) }

// Log2E returns log2(e) in format F.
func Log2E[F Format]() Number[F] { return mustConst[F](math.Log2E) }

// Log10E returns log10(e) in format F.
func Log10E[F Format]() Number[F] { return mustConst[F](math.Log10E) }

// Log10Two returns log10(2) in format F.
func Log10Two[F Format]() Number[F] { return mustConst[F](math.Log10E * math.Ln2) }

// Pi returns pi in format F.
func Pi[F Format]() Number[F] { return mustConst[F](math.Pi) }

// TwoPi returns 2*pi in format F.
func TwoPi[F Format]() Number[F] { return mustConst[F](2 * math.Pi) }

// HalfPi returns pi/2 in format F.
func HalfPi[F Format]() Number[F] { return mustConst[F](math.Pi / 2) }

// QuarterPi returns pi/4 in format F.
func QuarterPi[F Format]() Number[F] { return mustConst[F](math.Pi / 4) }

// InvPi returns 1/pi in format F.
func InvPi[F Format]() Number[F] { return mustConst[F](1 / math.Pi) }

// TwoOverPi returns 2/pi in format F.
func TwoOverPi[F Format]() Number[F] { return mustConst[F](2 / math.Pi) }

// TwoOverSqrtPi returns 2/sqrt(pi) in format F.
func TwoOverSqrtPi[F Format]() Number[F] { return mustConst[F](2 / math.SqrtPi) }

// Sqrt2 returns sqrt(2) in format F.
func Sqrt2[F Format]() Number[F] { return mustConst[F](math.Sqrt2) }

// InvSqrt2 returns 1/sqrt(2) in format F.
func InvSqrt2[F Format]() Number[F] { return mustConst[F](1 / math.Sqrt2) }

// TwoSqrt2 returns 2*sqrt(2) in format F.
func TwoSqrt2[F Format]() Number[F] { return mustConst[F](2 * math.Sqrt2) }

// ScalingFactor returns F's external scaling exponent value, 2^-e, as a
// Number[F].
func ScalingFactor[F Format]() Number[F] {
	d := descriptorOf[F]()
	return mustConst[F](d.ScalingFactor())
}

func mustConst[F Format](x float64) Number[F] {
	// A format too narrow to hold a named mathematical constant at all
	// is a configuration error the caller must fix, not a recoverable
	// runtime condition, whatever F's overflow policy.
	d := descriptorOf[F]()
	if s := d.FromReal(x); s < d.Least() || s > d.Largest() {
		panic(raise("Const", ErrOverflow, s))
	}
	v, err := New[F](x)
	if err != nil {
		panic(err)
	}
	return v
}
