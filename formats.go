package libq

// This file hand-instantiates the Shape/Format combinations exercised by
// the library's own tests and by cmd/libqdemo: one small marker type per
// (n, f, e, signedness) tuple actually used, composed with a policy pair
// via Fmt. Callers with a format this file doesn't name define their own
// Shape the same way.

type shape10_20 struct{}

func (shape10_20) IntBits() int   { return 10 }
func (shape10_20) FracBits() int  { return 20 }
func (shape10_20) ScaleExp() int  { return 0 }
func (shape10_20) Signed() bool   { return true }

type shape11_20 struct{} // the PromoteSum result of two Q(10,20) operands

func (shape11_20) IntBits() int  { return 11 }
func (shape11_20) FracBits() int { return 20 }
func (shape11_20) ScaleExp() int { return 0 }
func (shape11_20) Signed() bool  { return true }

type shape5_10 struct{}

func (shape5_10) IntBits() int  { return 5 }
func (shape5_10) FracBits() int { return 10 }
func (shape5_10) ScaleExp() int { return 0 }
func (shape5_10) Signed() bool  { return true }

type shape8_24 struct{}

func (shape8_24) IntBits() int  { return 8 }
func (shape8_24) FracBits() int { return 24 }
func (shape8_24) ScaleExp() int { return 0 }
func (shape8_24) Signed() bool  { return true }

type shapeU4_28 struct{}

func (shapeU4_28) IntBits() int  { return 4 }
func (shapeU4_28) FracBits() int { return 28 }
func (shapeU4_28) ScaleExp() int { return 0 }
func (shapeU4_28) Signed() bool  { return false }

type shape3_28 struct{} // three integer bits: enough headroom for pi, required by sin/cos range reduction

func (shape3_28) IntBits() int  { return 3 }
func (shape3_28) FracBits() int { return 28 }
func (shape3_28) ScaleExp() int { return 0 }
func (shape3_28) Signed() bool  { return true }

// Q10_20 is a signed Q(10,20) format; overflow and underflow saturate.
type Q10_20 = Fmt[shape10_20, Saturate, Saturate]

// Q10_20Raise is Q10_20 with both policies set to raise, used where a
// caller wants to observe the exact ULP at which an operation fails.
type Q10_20Raise = Fmt[shape10_20, Raise, Raise]

// Q11_20Raise is the natural PromoteSum destination for two Q10_20
// operands (n grows by one bit).
type Q11_20Raise = Fmt[shape11_20, Raise, Raise]

// Q5_10Raise is a signed Q(5,10) format with overflow=raise, narrow
// enough to exercise overflow raising with small operands.
type Q5_10Raise = Fmt[shape5_10, Raise, Raise]

// Q8_24 is a signed Q(8,24) format; both policies saturate. Its 24
// fractional bits give the elementary-function tests the precision their
// error bounds require.
type Q8_24 = Fmt[shape8_24, Saturate, Saturate]

// UQ4_28Raise is an unsigned Q(4,28) format with overflow=raise, used to
// exercise overflow raising on an unsigned format near its own maximum.
type UQ4_28Raise = Fmt[shapeU4_28, Raise, Raise]

// Q3_28 is a signed format with three integer bits, giving it the
// headroom needed to represent pi for sin/cos range reduction.
type Q3_28 = Fmt[shape3_28, Saturate, Saturate]
