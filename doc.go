// Package libq implements generic fixed-point arithmetic for numerical
// algorithms that must run identically in floating-point or in any
// user-chosen Q-format fixed-point representation.
//
// A Q-format is described by an integer-bit count, a fractional-bit
// count, an external scaling exponent, and an overflow/underflow policy
// pair, all resolved at compile time through the Format interface. Values
// of a given format are held in Number[F]; arithmetic and the elementary
// functions are free functions parameterized over the operand and result
// formats so that the type-promotion rules of the algebra are visible at
// every call site.
//
// # Q-formats
//
// A format is any type implementing Format; Shape supplies the integer
// and fractional bit counts plus the scaling exponent, and a pair of
// PolicyTag type parameters supplies the overflow and underflow
// behavior. See Fmt and the predefined shapes in formats.go.
//
// # Promotion
//
// PromoteSum, PromoteProduct, PromoteQuotient, and PromoteFunc compute
// the Descriptor of an operation's result from its operand Descriptors.
// Add, Sub, Mul, and Div apply those rules and then normalize into
// whatever destination format the caller names, raising overflow or
// underflow per that destination's policy.
//
// # Elementary functions
//
// Sin, Cos, Tan, Asin, Acos, Atan, Exp, Log, Log2, Log10, Sinh, Cosh,
// Tanh, Asinh, Acosh, Atanh, and Sqrt are evaluated with the CORDIC
// engine in internal/cordic, using only shifts, adds, and table lookups
// over the operand's stored integer.
//
// # Policies
//
// Overflow and underflow are each one of Ignore, Saturate, or Raise,
// selected per format and not per call. Raise surfaces an *Error with
// one of the Err* sentinel kinds; Ignore and Saturate never fail.
package libq
