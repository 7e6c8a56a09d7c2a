package libq

import "math/bits"

// widen.go provides the 128-bit-intermediate multiply, shift, and divide
// primitives the arithmetic core needs to promote products and quotients
// without losing bits mid-computation. No library in the retrieval pack
// offers 128-bit integer semantics for Go (the closest analog,
// onflow-fixed-point's fix192/raw64 type, hand-rolls the same carry
// arithmetic over math/bits primitives); math/bits.Mul64/Div64 are the
// standard library's own 64x64->128 and 128/64 primitives and are used
// here the same way.

// widenMul64 returns the signed 128-bit product of a and b as a
// sign/magnitude pair (neg, hi, lo), hi:lo being the unsigned magnitude.
func widenMul64(a, b int64) (neg bool, hi, lo uint64) {
	neg = (a < 0) != (b < 0)
	ua := absUint64(a)
	ub := absUint64(b)
	hi, lo = bits.Mul64(ua, ub)
	return neg, hi, lo
}

// shiftLeft128 shifts the unsigned 128-bit value hi:lo left by n bits
// (0 <= n <= 127), discarding bits that overflow past bit 127.
func shiftLeft128(hi, lo uint64, n uint) (hi2, lo2 uint64) {
	switch {
	case n == 0:
		return hi, lo
	case n < 64:
		hi2 = hi<<n | lo>>(64-n)
		lo2 = lo << n
		return hi2, lo2
	case n < 128:
		return lo << (n - 64), 0
	default:
		return 0, 0
	}
}

// shiftRight128 shifts the unsigned 128-bit value hi:lo right by n bits
// (0 <= n <= 127), truncating (no rounding).
func shiftRight128(hi, lo uint64, n uint) (hi2, lo2 uint64) {
	switch {
	case n == 0:
		return hi, lo
	case n < 64:
		lo2 = lo>>n | hi<<(64-n)
		hi2 = hi >> n
		return hi2, lo2
	case n < 128:
		return 0, hi >> (n - 64)
	default:
		return 0, 0
	}
}

// fitsUint64 reports whether the unsigned 128-bit value hi:lo fits in 64
// bits (i.e. hi == 0).
func fitsUint64(hi, lo uint64) bool { return hi == 0 }

// div128by64 divides the unsigned 128-bit dividend hi:lo by the 64-bit
// divisor y, returning the quotient and remainder. The quotient must fit
// in 64 bits (hi < y), which the caller (Div) checks before calling.
func div128by64(hi, lo, y uint64) (quo, rem uint64) {
	return bits.Div64(hi, lo, y)
}

func absUint64(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1 // avoids overflow at math.MinInt64
	}
	return uint64(x)
}
