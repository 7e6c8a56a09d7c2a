package libq

// limits.go is the numeric_limits-equivalent surface: a read-only
// report of a format's static properties, in the vocabulary of Go's
// math package rather than C++'s <limits>.
type Limits struct {
	IsBounded    bool
	IsExact      bool
	IsInteger    bool
	IsModulo     bool
	IsSigned     bool
	HasInfinity  bool
	HasNaN       bool
	HasDenorm    bool
	RoundsToZero bool // round_style == toward_zero
	Digits       int  // n+f
	Digits10     int  // base-10 approximation of Digits
	Radix        int
	MaxExponent  int // n
	MinExponent  int // f
	RoundError   float64
}

// LimitsOf reports the numeric_limits surface of format F.
func LimitsOf[F Format]() Limits {
	d := descriptorOf[F]()
	return Limits{
		IsBounded:    true,
		IsExact:      false,
		IsInteger:    false,
		IsModulo:     true,
		IsSigned:     d.Signed,
		HasInfinity:  false,
		HasNaN:       false,
		HasDenorm:    false,
		RoundsToZero: true,
		Digits:       d.bits(),
		Digits10:     int(float64(d.bits()) * log10(2)),
		Radix:        2,
		MaxExponent:  d.IntBits,
		MinExponent:  d.FracBits,
		RoundError:   0.5,
	}
}

// Min returns the smallest representable Number of F.
func Min[F Format]() Number[F] {
	d := descriptorOf[F]()
	return Number[F]{stored: d.Least()}
}

// Max returns the largest representable Number of F.
func Max[F Format]() Number[F] {
	d := descriptorOf[F]()
	return Number[F]{stored: d.Largest()}
}
