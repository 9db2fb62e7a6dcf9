// Package quadrature estimates pi by numerically integrating the quarter
// circle y = √(1−x²) over [0,1].
package quadrature

import "picalc-core/num"

// Trapezoid applies the trapezoid rule with n uniform intervals of width
// δ = 1/n. Interior points x = δ, 2δ, …, (n−1)δ carry weight 1; the
// boundary contributes 0.5, the average of f(0)=1 and f(1)=0 each weighted
// one half. The loop is driven by an integer counter so accumulation drift
// can never pull x = 1 into the sum. The scaled total is δ·total·4.
//
// With n = 1 there are no interior points and the result is exactly 2.
func Trapezoid(f num.Field, n int64) num.Value {
	delta := f.FromRatio(1, n)
	one := f.FromInt(1)
	total := f.FromInt(0)
	x := delta
	for i := int64(1); i < n; i++ {
		total = total.Add(one.Sub(x.PowInt(2)).Sqrt())
		x = x.Add(delta)
	}
	total = total.Add(f.FromRatio(1, 2))
	return total.Mul(delta).Mul(f.FromInt(4))
}
