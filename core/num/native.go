package num

import (
	"math"
	"math/rand"
	"strconv"
)

// nativeDigits is the number of fractional digits printed by the native
// realization, matching the fixed-precision surface's output format.
const nativeDigits = 36

// Native returns the fixed-width realization backed by float64.
func Native() Field { return nativeField{} }

type nativeField struct{}

func (nativeField) FromInt(v int64) Value      { return native(v) }
func (nativeField) FromRatio(p, q int64) Value { return native(float64(p) / float64(q)) }

func (nativeField) Uniform(rng *rand.Rand) Value { return native(rng.Float64()) }

type native float64

func (x native) Add(y Value) Value { return x + y.(native) }
func (x native) Sub(y Value) Value { return x - y.(native) }
func (x native) Mul(y Value) Value { return x * y.(native) }
func (x native) Quo(y Value) Value { return x / y.(native) }
func (x native) Neg() Value        { return -x }

func (x native) PowInt(k uint) Value { return powInt(x, native(1), k) }

func (x native) Sqrt() Value { return native(math.Sqrt(float64(x))) }

func (x native) Cmp(y Value) int {
	switch d := float64(x - y.(native)); {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

func (x native) Text() string {
	return strconv.FormatFloat(float64(x), 'f', nativeDigits, 64)
}
