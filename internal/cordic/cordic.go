package cordic

// Mode selects the coordinate system of a CORDIC evaluation: Circular
// matches the trigonometric family, Hyperbolic matches the exponential
// and logarithmic family.
type Mode int

const (
	Circular Mode = iota
	Hyperbolic
)

// m returns the mode's signed metric constant used throughout the
// unified recurrence: +1 for circular, -1 for hyperbolic.
func (md Mode) m() int64 {
	if md == Hyperbolic {
		return -1
	}
	return 1
}

// schedule returns the sequence of iteration indices to run, in order.
// Circular iterations run i = 0..f-1 once each. Hyperbolic iterations
// run i = 1..f, with the convergence-critical indices (4, 13, 40, ...)
// repeated, matching the table built for K_hyp in lut.go.
func (md Mode) schedule(f int) []int {
	if md == Circular {
		s := make([]int, f)
		for i := range s {
			s[i] = i
		}
		return s
	}
	return repeatedIndices(f)
}

func (md Mode) angle(t *Tables, i int) int64 {
	if md == Circular {
		return t.Arctan[i]
	}
	return t.Arctanh[i-1]
}

// Rotate runs the rotation-mode recurrence: z is driven toward zero by
// successive micro-rotations, and x, y accumulate the rotated vector.
// Used for sin/cos (circular, z = angle) and sinh/cosh/exp (hyperbolic,
// z = argument).
func Rotate(mode Mode, x, y, z int64, f int) (outX, outY, outZ int64) {
	t := ForWidth(f)
	metric := mode.m()
	for _, i := range mode.schedule(f) {
		sigma := int64(1)
		if z < 0 {
			sigma = -1
		}
		alpha := mode.angle(t, i)
		nx := x - metric*sigma*(y>>uint(i))
		ny := y + sigma*(x>>uint(i))
		nz := z - sigma*alpha
		x, y, z = nx, ny, nz
	}
	return x, y, z
}

// Vector runs the vectoring-mode recurrence: y is driven toward zero,
// and x, z accumulate the vector's magnitude and angle. Used for
// atan2 (circular) and ln/sqrt (hyperbolic).
func Vector(mode Mode, x, y, z int64, f int) (outX, outY, outZ int64) {
	t := ForWidth(f)
	metric := mode.m()
	for _, i := range mode.schedule(f) {
		sigma := int64(1)
		if y > 0 {
			sigma = -1
		}
		alpha := mode.angle(t, i)
		nx := x - metric*sigma*(y>>uint(i))
		ny := y + sigma*(x>>uint(i))
		nz := z - sigma*alpha
		x, y, z = nx, ny, nz
	}
	return x, y, z
}
