package libq

import "math"

// log10 wraps math.Log10 so format.go's dynamic_range_db stays free of a
// direct math import list creep as more helpers are added here.
func log10(x float64) float64 { return math.Log10(x) }

// roundHalfAwayFromZero implements the real->fixed construction rounding
// rule: round to nearest, ties away from zero.
func roundHalfAwayFromZero(x float64) int64 {
	if x >= 0 {
		return int64(math.Floor(x + 0.5))
	}
	return int64(math.Ceil(x - 0.5))
}

// ceilLog2 returns ceil(log2(n)) for n >= 1.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	bits := 0
	v := n - 1
	for v > 0 {
		v >>= 1
		bits++
	}
	return bits
}

// ceilDiv2 returns ceil(n/2).
func ceilDiv2(n int) int {
	return (n + 1) / 2
}
