// Package series evaluates truncated arctangent power series, the building
// block of Machin-like pi formulas.
package series

import "picalc-core/num"

// AtanRecip returns the partial sum of the first terms terms of the power
// series for atan(1/b), b ≥ 2:
//
//	atan(x) = x - x³/3 + x⁵/5 - x⁷/7 + ...
//
// The running term starts at x = 1/b and advances by a single division by
// -b², which folds the alternating sign into the divisor and avoids a
// separate multiply-and-negate per iteration. The odd denominator advances
// by adding 2. With terms == 1 the result is exactly 1/b.
func AtanRecip(f num.Field, b int64, terms int) num.Value {
	sum := f.FromRatio(1, b)
	term := sum
	minusB2 := f.FromInt(b).PowInt(2).Neg()
	denom := f.FromInt(1)
	two := f.FromInt(2)
	for i := 1; i < terms; i++ {
		denom = denom.Add(two)
		term = term.Quo(minusB2)
		sum = sum.Add(term.Quo(denom))
	}
	return sum
}

// Atan returns the partial sum of the atan power series for a general
// argument x, |x| ≤ 1. The running term is advanced by multiplying by x²
// with an explicit sign toggle each iteration.
func Atan(f num.Field, x num.Value, terms int) num.Value {
	sum := x
	term := x
	x2 := x.PowInt(2)
	denom := f.FromInt(1)
	two := f.FromInt(2)
	neg := true
	for i := 1; i < terms; i++ {
		denom = denom.Add(two)
		term = term.Mul(x2)
		t := term.Quo(denom)
		if neg {
			t = t.Neg()
		}
		sum = sum.Add(t)
		neg = !neg
	}
	return sum
}
