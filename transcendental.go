package libq

import (
	"math"
	"sync"

	"github.com/thesyncim/libq/internal/cordic"
)

// transcendental.go wires Number[F]'s elementary functions to the
// CORDIC engine in internal/cordic. Component B's promotion table
// (PromoteFunc) supplies the natural result descriptor, evaluated under
// the argument's own policy; the CORDIC kernels themselves run directly
// on x's stored integer rescaled to strip any external scaling
// exponent, iterating F's own fractional width rather than a fixed
// working width, so precision tracks the caller's chosen format the
// same way Add/Sub/Mul/Div track it through promote.go.

// descaleToFracOnly strips d's external scaling exponent from stored,
// leaving a plain integer at d.FracBits fractional bits with no
// external scale applied — the representation internal/cordic operates
// on. For ScaleExp == 0 (every format this library predefines) it is a
// no-op.
func descaleToFracOnly(stored int64, scaleExp int) int64 {
	switch {
	case scaleExp == 0:
		return stored
	case scaleExp < 0:
		neg := stored < 0
		hi, lo := shiftLeft128(0, absUint64(stored), uint(-scaleExp))
		v := int64(lo)
		if hi != 0 || lo > uint64(math.MaxInt64) {
			v = math.MaxInt64
		}
		if neg {
			v = -v
		}
		return v
	default:
		divisor := int64(1) << uint(scaleExp)
		return stored / divisor
	}
}

// rescaleFromFracOnly reapplies scaleExp to an engine-scale integer, the
// inverse of descaleToFracOnly.
func rescaleFromFracOnly(stored int64, scaleExp int) int64 {
	return descaleToFracOnly(stored, -scaleExp)
}

// oneEngine is the engine-scale (descaled, f-fractional-bit) integer
// representing the real value 1.0.
func oneEngine(f int) int64 { return int64(1) << uint(f) }

// mulFixedAtF multiplies two integers scaled at f fractional bits,
// producing their product at the same f-bit scale, via the 128-bit
// widen/shift primitives of widen.go rather than a floating-point
// multiply.
func mulFixedAtF(a, b int64, f int) int64 {
	neg, hi, lo := widenMul64(a, b)
	hi, lo = shiftRight128(hi, lo, uint(f))
	v := int64(lo)
	if hi != 0 || lo > uint64(math.MaxInt64) {
		v = math.MaxInt64
	}
	if neg {
		v = -v
	}
	return v
}

// logConstMu guards the per-width log2(e)/log10(e) constant caches
// below, built once per fractional width the same way
// internal/cordic's angle tables are.
var (
	logConstMu  sync.RWMutex
	log2ECache  = map[int]int64{}
	log10ECache = map[int]int64{}
)

func log2EAtFrac(f int) int64 {
	logConstMu.RLock()
	v, ok := log2ECache[f]
	logConstMu.RUnlock()
	if ok {
		return v
	}
	logConstMu.Lock()
	defer logConstMu.Unlock()
	if v, ok := log2ECache[f]; ok {
		return v
	}
	v = roundHalfAwayFromZero(math.Log2E * pow2(f))
	log2ECache[f] = v
	return v
}

func log10EAtFrac(f int) int64 {
	logConstMu.RLock()
	v, ok := log10ECache[f]
	logConstMu.RUnlock()
	if ok {
		return v
	}
	logConstMu.Lock()
	defer logConstMu.Unlock()
	if v, ok := log10ECache[f]; ok {
		return v
	}
	v = roundHalfAwayFromZero(math.Log10E * pow2(f))
	log10ECache[f] = v
	return v
}

// promoteAndNormalize applies promoted's overflow policy to an
// already-computed engine-scale result v, then normalizes into the
// caller-chosen R, mirroring how Add/Sub/Mul/Div finish against their
// own promoted descriptor.
func promoteAndNormalize[R Format](op string, promoted Descriptor, v int64) (Number[R], error) {
	stored, err := applyOverflow(op, promoted, v)
	if err != nil {
		return Number[R]{}, err
	}
	out, err := normalize(op, stored, promoted, descriptorOf[R]())
	return Number[R]{stored: out}, err
}

// Sin returns sin(x), per FuncSameFormat promotion.
func Sin[F, R Format](x Number[F]) (Number[R], error) {
	d := descriptorOf[F]()
	promoted := PromoteFunc(FuncSameFormat, d)
	z := descaleToFracOnly(x.stored, d.ScaleExp)
	sin, _ := cordic.SinCos(z, d.FracBits)
	v := rescaleFromFracOnly(sin, promoted.ScaleExp)
	return promoteAndNormalize[R]("Sin", promoted, v)
}

// Cos returns cos(x), per FuncSameFormat promotion.
func Cos[F, R Format](x Number[F]) (Number[R], error) {
	d := descriptorOf[F]()
	promoted := PromoteFunc(FuncSameFormat, d)
	z := descaleToFracOnly(x.stored, d.ScaleExp)
	_, cos := cordic.SinCos(z, d.FracBits)
	v := rescaleFromFracOnly(cos, promoted.ScaleExp)
	return promoteAndNormalize[R]("Cos", promoted, v)
}

// Tan returns tan(x), per FuncSameFormat promotion.
func Tan[F, R Format](x Number[F]) (Number[R], error) {
	d := descriptorOf[F]()
	promoted := PromoteFunc(FuncSameFormat, d)
	z := descaleToFracOnly(x.stored, d.ScaleExp)
	t := cordic.Tan(z, d.FracBits)
	v := rescaleFromFracOnly(t, promoted.ScaleExp)
	return promoteAndNormalize[R]("Tan", promoted, v)
}

// Asin returns asin(x) for x in [-1, 1], per FuncSameFormat promotion.
func Asin[F, R Format](x Number[F]) (Number[R], error) {
	d := descriptorOf[F]()
	z := descaleToFracOnly(x.stored, d.ScaleExp)
	one := oneEngine(d.FracBits)
	if z < -one || z > one {
		return Number[R]{}, raise("Asin", ErrDomain, x.stored)
	}
	promoted := PromoteFunc(FuncSameFormat, d)
	v := cordic.Asin(z, d.FracBits)
	v = rescaleFromFracOnly(v, promoted.ScaleExp)
	return promoteAndNormalize[R]("Asin", promoted, v)
}

// Acos returns acos(x) for x in [-1, 1], per FuncSameFormat promotion.
func Acos[F, R Format](x Number[F]) (Number[R], error) {
	d := descriptorOf[F]()
	z := descaleToFracOnly(x.stored, d.ScaleExp)
	one := oneEngine(d.FracBits)
	if z < -one || z > one {
		return Number[R]{}, raise("Acos", ErrDomain, x.stored)
	}
	promoted := PromoteFunc(FuncSameFormat, d)
	v := cordic.Acos(z, d.FracBits)
	v = rescaleFromFracOnly(v, promoted.ScaleExp)
	return promoteAndNormalize[R]("Acos", promoted, v)
}

// Atan returns atan(x), per FuncSameFormat promotion.
func Atan[F, R Format](x Number[F]) (Number[R], error) {
	d := descriptorOf[F]()
	promoted := PromoteFunc(FuncSameFormat, d)
	z := descaleToFracOnly(x.stored, d.ScaleExp)
	v := cordic.Atan(z, d.FracBits)
	v = rescaleFromFracOnly(v, promoted.ScaleExp)
	return promoteAndNormalize[R]("Atan", promoted, v)
}

// Sinh returns sinh(x), per FuncLogPromoted promotion.
func Sinh[F, R Format](x Number[F]) (Number[R], error) {
	d := descriptorOf[F]()
	promoted := PromoteFunc(FuncLogPromoted, d)
	z := descaleToFracOnly(x.stored, d.ScaleExp)
	sinh, _ := cordic.SinhCosh(z, d.FracBits)
	v := rescaleFromFracOnly(sinh, promoted.ScaleExp)
	return promoteAndNormalize[R]("Sinh", promoted, v)
}

// Cosh returns cosh(x), per FuncLogPromoted promotion.
func Cosh[F, R Format](x Number[F]) (Number[R], error) {
	d := descriptorOf[F]()
	promoted := PromoteFunc(FuncLogPromoted, d)
	z := descaleToFracOnly(x.stored, d.ScaleExp)
	_, cosh := cordic.SinhCosh(z, d.FracBits)
	v := rescaleFromFracOnly(cosh, promoted.ScaleExp)
	return promoteAndNormalize[R]("Cosh", promoted, v)
}

// Tanh returns tanh(x), per FuncLogPromoted promotion.
func Tanh[F, R Format](x Number[F]) (Number[R], error) {
	d := descriptorOf[F]()
	promoted := PromoteFunc(FuncLogPromoted, d)
	z := descaleToFracOnly(x.stored, d.ScaleExp)
	v := cordic.Tanh(z, d.FracBits)
	v = rescaleFromFracOnly(v, promoted.ScaleExp)
	return promoteAndNormalize[R]("Tanh", promoted, v)
}

// Asinh returns asinh(x), per FuncLogPromoted promotion.
func Asinh[F, R Format](x Number[F]) (Number[R], error) {
	d := descriptorOf[F]()
	promoted := PromoteFunc(FuncLogPromoted, d)
	z := descaleToFracOnly(x.stored, d.ScaleExp)
	v := cordic.Asinh(z, d.FracBits)
	v = rescaleFromFracOnly(v, promoted.ScaleExp)
	return promoteAndNormalize[R]("Asinh", promoted, v)
}

// Acosh returns acosh(x) for x >= 1, per FuncLogPromoted promotion.
func Acosh[F, R Format](x Number[F]) (Number[R], error) {
	d := descriptorOf[F]()
	z := descaleToFracOnly(x.stored, d.ScaleExp)
	one := oneEngine(d.FracBits)
	if z < one {
		return Number[R]{}, raise("Acosh", ErrDomain, x.stored)
	}
	promoted := PromoteFunc(FuncLogPromoted, d)
	v := cordic.Acosh(z, d.FracBits)
	v = rescaleFromFracOnly(v, promoted.ScaleExp)
	return promoteAndNormalize[R]("Acosh", promoted, v)
}

// Atanh returns atanh(x) for x in (-1, 1), per FuncLogPromoted promotion.
func Atanh[F, R Format](x Number[F]) (Number[R], error) {
	d := descriptorOf[F]()
	z := descaleToFracOnly(x.stored, d.ScaleExp)
	one := oneEngine(d.FracBits)
	if z <= -one || z >= one {
		return Number[R]{}, raise("Atanh", ErrDomain, x.stored)
	}
	promoted := PromoteFunc(FuncLogPromoted, d)
	v := cordic.Atanh(z, d.FracBits)
	v = rescaleFromFracOnly(v, promoted.ScaleExp)
	return promoteAndNormalize[R]("Atanh", promoted, v)
}

// Exp returns e^x, per FuncExpPromoted promotion (the promoted
// descriptor is always unsigned; a negative result, which cannot occur
// for a real exponential, would be caught by that descriptor's bounds).
func Exp[F, R Format](x Number[F]) (Number[R], error) {
	d := descriptorOf[F]()
	promoted := PromoteFunc(FuncExpPromoted, d)
	z := descaleToFracOnly(x.stored, d.ScaleExp)
	v := cordic.Exp(z, d.FracBits)
	v = rescaleFromFracOnly(v, promoted.ScaleExp)
	return promoteAndNormalize[R]("Exp", promoted, v)
}

// Log returns ln(x) for x > 0, per FuncLogPromoted promotion.
func Log[F, R Format](x Number[F]) (Number[R], error) {
	d := descriptorOf[F]()
	z := descaleToFracOnly(x.stored, d.ScaleExp)
	if z <= 0 {
		return Number[R]{}, raise("Log", ErrDomain, x.stored)
	}
	promoted := PromoteFunc(FuncLogPromoted, d)
	v := cordic.Ln(z, d.FracBits)
	v = rescaleFromFracOnly(v, promoted.ScaleExp)
	return promoteAndNormalize[R]("Log", promoted, v)
}

// Log2 returns log2(x) for x > 0, per FuncLogPromoted promotion.
func Log2[F, R Format](x Number[F]) (Number[R], error) {
	d := descriptorOf[F]()
	z := descaleToFracOnly(x.stored, d.ScaleExp)
	if z <= 0 {
		return Number[R]{}, raise("Log2", ErrDomain, x.stored)
	}
	promoted := PromoteFunc(FuncLogPromoted, d)
	ln := cordic.Ln(z, d.FracBits)
	v := mulFixedAtF(ln, log2EAtFrac(d.FracBits), d.FracBits)
	v = rescaleFromFracOnly(v, promoted.ScaleExp)
	return promoteAndNormalize[R]("Log2", promoted, v)
}

// Log10 returns log10(x) for x > 0, per FuncLogPromoted promotion.
func Log10[F, R Format](x Number[F]) (Number[R], error) {
	d := descriptorOf[F]()
	z := descaleToFracOnly(x.stored, d.ScaleExp)
	if z <= 0 {
		return Number[R]{}, raise("Log10", ErrDomain, x.stored)
	}
	promoted := PromoteFunc(FuncLogPromoted, d)
	ln := cordic.Ln(z, d.FracBits)
	v := mulFixedAtF(ln, log10EAtFrac(d.FracBits), d.FracBits)
	v = rescaleFromFracOnly(v, promoted.ScaleExp)
	return promoteAndNormalize[R]("Log10", promoted, v)
}

// Sqrt returns sqrt(x) for x >= 0, per FuncSqrtPromoted promotion.
func Sqrt[F, R Format](x Number[F]) (Number[R], error) {
	d := descriptorOf[F]()
	z := descaleToFracOnly(x.stored, d.ScaleExp)
	if z < 0 {
		return Number[R]{}, raise("Sqrt", ErrDomain, x.stored)
	}
	promoted := PromoteFunc(FuncSqrtPromoted, d)
	v := cordic.Sqrt(z, d.FracBits)
	v = rescaleFromFracOnly(v, promoted.ScaleExp)
	return promoteAndNormalize[R]("Sqrt", promoted, v)
}
