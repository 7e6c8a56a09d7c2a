package cordic

import "math"

// trig.go implements the circular elementary functions: sin, cos, tan,
// asin, acos, atan. Every argument and result is an f-scaled int64;
// callers (the root package) own descaling into a Descriptor's native
// representation.

func scaleOf(f int) float64 { return math.Ldexp(1, f) }

func piScaled(f int) int64     { return int64(math.Round(math.Pi * scaleOf(f))) }
func twoPiScaled(f int) int64  { return int64(math.Round(2 * math.Pi * scaleOf(f))) }
func halfPiScaled(f int) int64 { return int64(math.Round(math.Pi / 2 * scaleOf(f))) }
func oneScaled(f int) int64    { return int64(math.Round(scaleOf(f))) }

// reduceAngle folds z into [-pi, pi]; SinCos then reflects the outer
// half of that range into [-pi/2, pi/2] before rotating.
func reduceAngle(z int64, f int) int64 {
	twoPi := twoPiScaled(f)
	pi := piScaled(f)
	z %= twoPi
	if z > pi {
		z -= twoPi
	} else if z < -pi {
		z += twoPi
	}
	return z
}

// SinCos returns sin(z) and cos(z) for angle z in radians, f-scaled.
func SinCos(z int64, f int) (sin, cos int64) {
	z = reduceAngle(z, f)
	pi := piScaled(f)
	halfPi := halfPiScaled(f)

	// CORDIC's circular rotation only converges for angles in
	// [-pi/2, pi/2]; fold the outer half of [-pi, pi] in using the
	// standard reflection identities.
	negateCos := false
	switch {
	case z > halfPi:
		z = pi - z
		negateCos = true
	case z < -halfPi:
		z = -pi - z
		negateCos = true
	}

	t := ForWidth(f)
	x0 := int64(math.Round(t.InvKCirc * scaleOf(f)))
	x, y, _ := Rotate(Circular, x0, 0, z, f)
	if negateCos {
		x = -x
	}
	return y, x
}

// Tan returns tan(z) for angle z in radians, f-scaled.
func Tan(z int64, f int) int64 {
	sin, cos := SinCos(z, f)
	return divFixed(sin, cos, f)
}

// Atan2 returns the angle, f-scaled, of the vector (x, y) via the
// circular vectoring recurrence — CORDIC vectoring computes this angle
// directly, with no division step. A vector with x < 0 is first
// reflected into the right half-plane, where vectoring converges.
func Atan2(y, x int64, f int) int64 {
	if x < 0 {
		a := Atan2(y, -x, f)
		if y < 0 {
			return -piScaled(f) - a
		}
		return piScaled(f) - a
	}
	_, _, z := Vector(Circular, x, y, 0, f)
	return z
}

// Atan returns atan(x), f-scaled.
func Atan(x int64, f int) int64 {
	return Atan2(x, oneScaled(f), f)
}

// Asin returns asin(x), f-scaled, using the identity
// asin(x) = atan2(x, sqrt(1 - x^2)).
func Asin(x int64, f int) int64 {
	one := oneScaled(f)
	comp := Sqrt(one-mulFixed(x, x, f), f)
	return Atan2(x, comp, f)
}

// Acos returns acos(x), f-scaled, using the identity
// acos(x) = atan2(sqrt(1 - x^2), x).
func Acos(x int64, f int) int64 {
	one := oneScaled(f)
	comp := Sqrt(one-mulFixed(x, x, f), f)
	return Atan2(comp, x, f)
}
