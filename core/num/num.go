// Package num provides a precision-bounded real number abstraction with
// interchangeable realizations: native float64, binary arbitrary precision
// (math/big, mantissa bits) and decimal arbitrary precision (db47h/decimal,
// decimal digits). Estimator algorithms are written once against Field and
// Value and work with any realization.
package num

import "math/rand"

// Value is a real number bounded to the precision of the Field that created
// it. Operations never modify their operands; each returns a fresh Value.
// Values from different Fields must not be mixed.
type Value interface {
	Add(Value) Value
	Sub(Value) Value
	Mul(Value) Value
	Quo(Value) Value
	Neg() Value
	// PowInt returns the value raised to a non-negative integer power.
	PowInt(k uint) Value
	Sqrt() Value
	// Cmp returns -1, 0 or +1 depending on whether the value is less
	// than, equal to or greater than y.
	Cmp(y Value) int
	// Text renders the value as a fixed-point decimal with the number of
	// fractional digits implied by the field's precision.
	Text() string
}

// Field creates Values sharing one precision. The precision is fixed at
// construction; there is no process-wide precision state.
type Field interface {
	FromInt(v int64) Value
	// FromRatio returns p/q. q must be non-zero.
	FromRatio(p, q int64) Value
	// Uniform draws the next value in [0, 1) from rng at the field's
	// precision. Equal rng states yield equal values.
	Uniform(rng *rand.Rand) Value
}

// powInt raises x to the k-th power by binary exponentiation. one must be
// the multiplicative identity of x's field.
func powInt(x, one Value, k uint) Value {
	z := one
	for k > 0 {
		if k&1 == 1 {
			z = z.Mul(x)
		}
		x = x.Mul(x)
		k >>= 1
	}
	return z
}
