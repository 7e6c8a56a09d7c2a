package cordic

import "math/bits"

// fixed.go holds the small set of overflow-safe fixed-point primitives
// the elementary functions need to build their initial vectors (mostly
// squaring and one division for tan). Mirrors the widening technique of
// the root package's widen.go; duplicated rather than imported to keep
// this package free of a dependency on its own caller.

// mulFixed multiplies two f-scaled fixed values and returns the
// f-scaled product, widening through the full 128-bit intermediate so
// squaring a near-unity operand never overflows before the descale.
func mulFixed(a, b int64, f int) int64 {
	neg := (a < 0) != (b < 0)
	ua, ub := absInt64(a), absInt64(b)
	hi, lo := bits.Mul64(ua, ub)
	hi, lo = shiftRight128(hi, lo, f)
	if hi != 0 {
		// Out of int64 range for this engine's intended operand sizes
		// (CORDIC inputs here are always pre-reduced to a bounded
		// range); saturate rather than wrap.
		if neg {
			return -1 << 63
		}
		return 1<<63 - 1
	}
	v := int64(lo)
	if neg {
		return -v
	}
	return v
}

// divFixed divides two f-scaled fixed values and returns the f-scaled
// quotient.
func divFixed(a, b int64, f int) int64 {
	if b == 0 {
		if a >= 0 {
			return 1<<63 - 1
		}
		return -1 << 63
	}
	neg := (a < 0) != (b < 0)
	ua, ub := absInt64(a), absInt64(b)
	hi, lo := shiftLeft128(0, ua, f)
	q, _ := bits.Div64(hi, lo, ub)
	v := int64(q)
	if neg {
		return -v
	}
	return v
}

func shiftLeft128(hi, lo uint64, n int) (outHi, outLo uint64) {
	if n == 0 {
		return hi, lo
	}
	if n >= 64 {
		return lo << uint(n-64), 0
	}
	return hi<<uint(n) | lo>>uint(64-n), lo << uint(n)
}

func shiftRight128(hi, lo uint64, n int) (outHi, outLo uint64) {
	if n == 0 {
		return hi, lo
	}
	if n >= 64 {
		return 0, hi >> uint(n-64)
	}
	return hi >> uint(n), lo>>uint(n) | hi<<uint(64-n)
}

func absInt64(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1 // avoids overflow at math.MinInt64
	}
	return uint64(x)
}
