package field

import (
	"github.com/consensys/gnark-crypto/field/goldilocks"
)

const (
	// GoldilocksModulus is 2^64 - 2^32 + 1.
	GoldilocksModulus = 0xFFFFFFFF00000001
	// GoldilocksMaxLogOrder is the 2-adicity of the Goldilocks field.
	GoldilocksMaxLogOrder = 32

	goldilocksGenerator = 7
)

// Goldilocks is an element of the prime field of order 2^64 - 2^32 + 1.
type Goldilocks goldilocks.Element

var (
	goldilocksHalf  Goldilocks
	goldilocksRoots [GoldilocksMaxLogOrder + 1]Goldilocks
)

func init() {
	var z Goldilocks

	two := z.SetUint64(2)
	goldilocksHalf, _ = two.Inv()

	// 7 generates the multiplicative group,
	// so 7^((p-1)/2^32) has order exactly 2^32.
	goldilocksRoots[GoldilocksMaxLogOrder] = z.SetUint64(goldilocksGenerator).exp((GoldilocksModulus - 1) >> GoldilocksMaxLogOrder)
	for i := GoldilocksMaxLogOrder; i > 0; i-- {
		goldilocksRoots[i-1] = goldilocksRoots[i].Mul(goldilocksRoots[i])
	}
}

// exp returns x^e.
func (x Goldilocks) exp(e uint64) Goldilocks {
	r := x.One()
	for e > 0 {
		if e&1 == 1 {
			r = r.Mul(x)
		}
		x = x.Mul(x)
		e >>= 1
	}
	return r
}

// Add returns x + y.
func (x Goldilocks) Add(y Goldilocks) Goldilocks {
	var z goldilocks.Element
	z.Add((*goldilocks.Element)(&x), (*goldilocks.Element)(&y))
	return Goldilocks(z)
}

// Sub returns x - y.
func (x Goldilocks) Sub(y Goldilocks) Goldilocks {
	var z goldilocks.Element
	z.Sub((*goldilocks.Element)(&x), (*goldilocks.Element)(&y))
	return Goldilocks(z)
}

// Neg returns -x.
func (x Goldilocks) Neg() Goldilocks {
	var z goldilocks.Element
	z.Neg((*goldilocks.Element)(&x))
	return Goldilocks(z)
}

// Mul returns x * y.
func (x Goldilocks) Mul(y Goldilocks) Goldilocks {
	var z goldilocks.Element
	z.Mul((*goldilocks.Element)(&x), (*goldilocks.Element)(&y))
	return Goldilocks(z)
}

// Inv returns 1/x.
func (x Goldilocks) Inv() (Goldilocks, error) {
	if x.IsZero() {
		return Goldilocks{}, ErrInversionOfZero
	}
	var z goldilocks.Element
	z.Inverse((*goldilocks.Element)(&x))
	return Goldilocks(z), nil
}

// Equal reports whether x == y.
func (x Goldilocks) Equal(y Goldilocks) bool {
	return (*goldilocks.Element)(&x).Equal((*goldilocks.Element)(&y))
}

// IsZero reports whether x == 0.
func (x Goldilocks) IsZero() bool {
	return (*goldilocks.Element)(&x).IsZero()
}

// Zero returns 0.
func (Goldilocks) Zero() Goldilocks {
	return Goldilocks{}
}

// One returns 1.
func (Goldilocks) One() Goldilocks {
	var z goldilocks.Element
	z.SetOne()
	return Goldilocks(z)
}

// Half returns 1/2.
func (Goldilocks) Half() Goldilocks {
	return goldilocksHalf
}

// SetUint64 returns v mod p.
func (Goldilocks) SetUint64(v uint64) Goldilocks {
	var z goldilocks.Element
	z.SetUint64(v)
	return Goldilocks(z)
}

// Root returns a primitive 2^logN-th root of unity.
func (Goldilocks) Root(logN int) (Goldilocks, error) {
	if logN < 0 || logN > GoldilocksMaxLogOrder {
		return Goldilocks{}, rootUnavailable(logN, GoldilocksMaxLogOrder)
	}
	return goldilocksRoots[logN], nil
}

// MaxLogOrder returns GoldilocksMaxLogOrder.
func (Goldilocks) MaxLogOrder() int {
	return GoldilocksMaxLogOrder
}

// String returns the decimal representation of x.
func (x Goldilocks) String() string {
	return (*goldilocks.Element)(&x).String()
}
