package num

import (
	"math"
	"math/big"
	"math/rand"
)

// Binary returns the arbitrary-precision realization backed by big.Float
// with a mantissa of prec bits. Every Value it creates, and every result
// derived from those Values, carries this precision.
func Binary(prec uint) Field { return binaryField{prec: prec} }

type binaryField struct{ prec uint }

func (f binaryField) new() *big.Float { return new(big.Float).SetPrec(f.prec) }

func (f binaryField) FromInt(v int64) Value {
	return binary{x: f.new().SetInt64(v), prec: f.prec}
}

func (f binaryField) FromRatio(p, q int64) Value {
	z := f.new().SetInt64(p)
	z.Quo(z, f.new().SetInt64(q))
	return binary{x: z, prec: f.prec}
}

// Uniform assembles prec random mantissa bits into m and returns m·2^−prec.
func (f binaryField) Uniform(rng *rand.Rand) Value {
	words := (f.prec + 63) / 64
	m := new(big.Int)
	for i := uint(0); i < words; i++ {
		m.Lsh(m, 64)
		m.Or(m, new(big.Int).SetUint64(rng.Uint64()))
	}
	m.Rsh(m, words*64-f.prec)
	z := f.new().SetInt(m)
	z.SetMantExp(z, -int(f.prec))
	return binary{x: z, prec: f.prec}
}

type binary struct {
	x    *big.Float
	prec uint
}

func (x binary) new() *big.Float { return new(big.Float).SetPrec(x.prec) }

func (x binary) Add(y Value) Value { return binary{x.new().Add(x.x, y.(binary).x), x.prec} }
func (x binary) Sub(y Value) Value { return binary{x.new().Sub(x.x, y.(binary).x), x.prec} }
func (x binary) Mul(y Value) Value { return binary{x.new().Mul(x.x, y.(binary).x), x.prec} }
func (x binary) Quo(y Value) Value { return binary{x.new().Quo(x.x, y.(binary).x), x.prec} }
func (x binary) Neg() Value        { return binary{x.new().Neg(x.x), x.prec} }

func (x binary) PowInt(k uint) Value {
	return powInt(x, binary{x.new().SetInt64(1), x.prec}, k)
}

func (x binary) Sqrt() Value { return binary{x.new().Sqrt(x.x), x.prec} }

func (x binary) Cmp(y Value) int { return x.x.Cmp(y.(binary).x) }

// Text prints as many fractional digits as the mantissa can support,
// the decimal equivalent of GMP's full-precision %.Ff.
func (x binary) Text() string {
	digits := int(float64(x.prec) * math.Ln2 / math.Ln10)
	return x.x.Text('f', digits)
}
