package libq

// number.go implements the fixed-point value carrier: a thin,
// immutable wrapper around a single stored integer. Number[F] never
// retains floating-point state; every conversion back to float64 is
// computed on demand from the stored integer and F's Descriptor.
type Number[F Format] struct {
	stored int64
}

// Describe returns the Descriptor of this value's format.
func (Number[F]) Describe() Descriptor { return descriptorOf[F]() }

// Value returns the underlying stored integer.
func (v Number[F]) Value() int64 { return v.stored }

// Float returns the value's represented real, stored*2^-f*2^-e.
func (v Number[F]) Float() float64 {
	return descriptorOf[F]().ToReal(v.stored)
}

// Float32 is Float narrowed to float32.
func (v Number[F]) Float32() float32 { return float32(v.Float()) }

// New constructs a Number[F] from a real literal, rounding to the
// nearest representable value (half away from zero) and
// applying F's overflow policy if the rounded value is out of range.
func New[F Format](x float64) (Number[F], error) {
	d := descriptorOf[F]()
	stored := d.FromReal(x)
	stored, err := applyOverflow("New", d, stored)
	if err != nil {
		return Number[F]{}, err
	}
	return Number[F]{stored: stored}, nil
}

// FromInt constructs a Number[F] from an integer, shifted into the
// format's fractional position.
func FromInt[F Format](k int64) (Number[F], error) {
	d := descriptorOf[F]()
	stored, err := applyOverflow("FromInt", d, k<<uint(d.FracBits))
	if err != nil {
		return Number[F]{}, err
	}
	return Number[F]{stored: stored}, nil
}

// Wrap constructs a Number[F] directly from a pre-computed stored
// integer, without rescaling. It raises overflow if stored falls outside
// F's representable bounds.
func Wrap[F Format](stored int64) (Number[F], error) {
	d := descriptorOf[F]()
	stored, err := applyOverflow("Wrap", d, stored)
	if err != nil {
		return Number[F]{}, err
	}
	return Number[F]{stored: stored}, nil
}

// MustWrap is Wrap without the error return, for use with stored
// integers already known to be in range (e.g. table-driven test setup).
// It panics if the value is out of range.
func MustWrap[F Format](stored int64) Number[F] {
	v, err := Wrap[F](stored)
	if err != nil {
		panic(err)
	}
	return v
}

// Zero returns the additive identity of F.
func Zero[F Format]() Number[F] { return Number[F]{} }

// One returns the multiplicative identity of F, i.e. wrap(scale).
func One[F Format]() Number[F] {
	d := descriptorOf[F]()
	return Number[F]{stored: int64(d.Scale())}
}

// Epsilon returns wrap(1), the smallest positive step of F.
func Epsilon[F Format]() Number[F] { return Number[F]{stored: 1} }

// Convert renormalizes v into format R, applying R's overflow/underflow
// policy.
func Convert[F, R Format](v Number[F]) (Number[R], error) {
	from := descriptorOf[F]()
	to := descriptorOf[R]()
	stored, err := normalize("Convert", v.stored, from, to)
	if err != nil {
		return Number[R]{}, err
	}
	return Number[R]{stored: stored}, nil
}

// Cmp compares two values of the same format, returning -1, 0, or 1.
func Cmp[F Format](a, b Number[F]) int {
	switch {
	case a.stored < b.stored:
		return -1
	case a.stored > b.stored:
		return 1
	default:
		return 0
	}
}

// Less reports whether a < b.
func Less[F Format](a, b Number[F]) bool { return a.stored < b.stored }

// LessOrEqual reports whether a <= b.
func LessOrEqual[F Format](a, b Number[F]) bool { return a.stored <= b.stored }

// Greater reports whether a > b.
func Greater[F Format](a, b Number[F]) bool { return a.stored > b.stored }

// GreaterOrEqual reports whether a >= b.
func GreaterOrEqual[F Format](a, b Number[F]) bool { return a.stored >= b.stored }

// Equal reports whether a == b.
func Equal[F Format](a, b Number[F]) bool { return a.stored == b.stored }

// NotEqual reports whether a != b.
func NotEqual[F Format](a, b Number[F]) bool { return a.stored != b.stored }
