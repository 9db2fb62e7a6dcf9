// Package machin approximates pi with Machin-like formulas: integer-weighted
// sums of arctangents of reciprocal integers, evaluated as truncated power
// series and scaled by 4.
package machin

import (
	"picalc-core/num"
	"picalc-core/series"
)

// A formula is a list of integer-weighted reciprocal arctangent terms whose
// sum equals pi/4.
type formula []struct {
	coef  int64
	recip int64
}

// Machin's formula: pi/4 = 4·atan(1/5) − atan(1/239).
var classic = formula{
	{4, 5},
	{-1, 239},
}

// A six-term Machin-like formula that gains more digits per series term
// than classic, at a higher cost per term:
//
//	pi/4 = 183·atan(1/239) + 32·atan(1/1023) − 68·atan(1/5832)
//	     + 12·atan(1/110443) − 12·atan(1/4841182) − 100·atan(1/6826318)
var fast = formula{
	{183, 239},
	{32, 1023},
	{-68, 5832},
	{12, 110443},
	{-12, 4841182},
	{-100, 6826318},
}

// Classic approximates pi with Machin's two-term formula, evaluating each
// arctangent as a partial sum of terms series terms.
func Classic(f num.Field, terms int) num.Value { return eval(f, classic, terms) }

// Fast approximates pi with the six-term formula.
func Fast(f num.Field, terms int) num.Value { return eval(f, fast, terms) }

func eval(f num.Field, fm formula, terms int) num.Value {
	sum := f.FromInt(0)
	for _, t := range fm {
		a := series.AtanRecip(f, t.recip, terms)
		sum = sum.Add(a.Mul(f.FromInt(t.coef)))
	}
	return sum.Mul(f.FromInt(4))
}
