// Package montecarlo estimates pi by uniform sampling of the unit square.
package montecarlo

import (
	"math/rand"

	"picalc-core/num"
)

// Seed is the fixed seed of the sampling stream. Runs with equal trial
// counts are reproducible within one realization.
const Seed = 2895720909174927

// Estimate draws trials points uniformly from [-1,1)×[-1,1) and returns
// 4·(inside/trials), where inside counts points with x²+y² < 1. The random
// stream lives for exactly one call.
func Estimate(f num.Field, trials int64) num.Value {
	rng := rand.New(rand.NewSource(Seed))
	one := f.FromInt(1)
	two := f.FromInt(2)
	var inside int64
	for i := int64(0); i < trials; i++ {
		x := f.Uniform(rng).Mul(two).Sub(one)
		y := f.Uniform(rng).Mul(two).Sub(one)
		if x.Mul(x).Add(y.Mul(y)).Cmp(one) < 0 {
			inside++
		}
	}
	return f.FromRatio(inside, trials).Mul(f.FromInt(4))
}
