package num

import (
	"math/rand"
	"strings"

	"github.com/db47h/decimal"
)

// Decimal returns the arbitrary-precision realization backed by
// db47h/decimal with a significand of prec decimal digits.
func Decimal(prec uint) Field { return decField{prec: prec} }

type decField struct{ prec uint }

func (f decField) new() *decimal.Decimal { return new(decimal.Decimal).SetPrec(f.prec) }

func (f decField) FromInt(v int64) Value {
	return dec{x: f.new().SetInt64(v), prec: f.prec}
}

func (f decField) FromRatio(p, q int64) Value {
	z := f.new().SetInt64(p)
	z.Quo(z, f.new().SetInt64(q))
	return dec{x: z, prec: f.prec}
}

// Uniform draws prec decimal digits and parses them as 0.d₁d₂…dₚ.
func (f decField) Uniform(rng *rand.Rand) Value {
	var sb strings.Builder
	sb.Grow(int(f.prec) + 2)
	sb.WriteString("0.")
	for i := uint(0); i < f.prec; i++ {
		sb.WriteByte(byte('0' + rng.Intn(10)))
	}
	z, ok := f.new().SetString(sb.String())
	if !ok {
		panic("num: invalid uniform literal")
	}
	return dec{x: z, prec: f.prec}
}

type dec struct {
	x    *decimal.Decimal
	prec uint
}

func (x dec) new() *decimal.Decimal { return new(decimal.Decimal).SetPrec(x.prec) }

func (x dec) Add(y Value) Value { return dec{x.new().Add(x.x, y.(dec).x), x.prec} }
func (x dec) Sub(y Value) Value { return dec{x.new().Sub(x.x, y.(dec).x), x.prec} }
func (x dec) Mul(y Value) Value { return dec{x.new().Mul(x.x, y.(dec).x), x.prec} }
func (x dec) Quo(y Value) Value { return dec{x.new().Quo(x.x, y.(dec).x), x.prec} }
func (x dec) Neg() Value        { return dec{x.new().Neg(x.x), x.prec} }

func (x dec) PowInt(k uint) Value {
	return powInt(x, dec{x.new().SetInt64(1), x.prec}, k)
}

func (x dec) Sqrt() Value { return dec{x.new().Sqrt(x.x), x.prec} }

func (x dec) Cmp(y Value) int { return x.x.Cmp(y.(dec).x) }

func (x dec) Text() string { return x.x.Text('f', int(x.prec)) }
