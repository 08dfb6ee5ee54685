package field

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
)

// FrMaxLogOrder is the 2-adicity of the BN254 scalar field.
const FrMaxLogOrder = 28

// Fr is an element of the BN254 scalar field.
type Fr fr.Element

var frHalf = func() Fr {
	var two, h fr.Element
	two.SetUint64(2)
	h.Inverse(&two)
	return Fr(h)
}()

// NewFr returns v as an element of Fr.
func NewFr(v fr.Element) Fr {
	return Fr(v)
}

// Element returns x as a gnark-crypto element.
func (x Fr) Element() fr.Element {
	return fr.Element(x)
}

// Add returns x + y.
func (x Fr) Add(y Fr) Fr {
	var z fr.Element
	z.Add((*fr.Element)(&x), (*fr.Element)(&y))
	return Fr(z)
}

// Sub returns x - y.
func (x Fr) Sub(y Fr) Fr {
	var z fr.Element
	z.Sub((*fr.Element)(&x), (*fr.Element)(&y))
	return Fr(z)
}

// Neg returns -x.
func (x Fr) Neg() Fr {
	var z fr.Element
	z.Neg((*fr.Element)(&x))
	return Fr(z)
}

// Mul returns x * y.
func (x Fr) Mul(y Fr) Fr {
	var z fr.Element
	z.Mul((*fr.Element)(&x), (*fr.Element)(&y))
	return Fr(z)
}

// Inv returns 1/x.
func (x Fr) Inv() (Fr, error) {
	if x.IsZero() {
		return Fr{}, ErrInversionOfZero
	}
	var z fr.Element
	z.Inverse((*fr.Element)(&x))
	return Fr(z), nil
}

// Equal reports whether x == y.
func (x Fr) Equal(y Fr) bool {
	return (*fr.Element)(&x).Equal((*fr.Element)(&y))
}

// IsZero reports whether x == 0.
func (x Fr) IsZero() bool {
	return (*fr.Element)(&x).IsZero()
}

// Zero returns 0.
func (Fr) Zero() Fr {
	return Fr{}
}

// One returns 1.
func (Fr) One() Fr {
	return Fr(fr.One())
}

// Half returns 1/2.
func (Fr) Half() Fr {
	return frHalf
}

// SetUint64 returns v as an element of Fr.
func (Fr) SetUint64(v uint64) Fr {
	var z fr.Element
	z.SetUint64(v)
	return Fr(z)
}

// Root returns a primitive 2^logN-th root of unity.
// It is the generator gnark-crypto's fft package uses for domains of that size.
func (Fr) Root(logN int) (Fr, error) {
	if logN < 0 || logN > FrMaxLogOrder {
		return Fr{}, rootUnavailable(logN, FrMaxLogOrder)
	}
	g, err := fft.Generator(uint64(1) << logN)
	if err != nil {
		return Fr{}, rootUnavailable(logN, FrMaxLogOrder)
	}
	return Fr(g), nil
}

// MaxLogOrder returns FrMaxLogOrder.
func (Fr) MaxLogOrder() int {
	return FrMaxLogOrder
}

// String returns the decimal representation of x.
func (x Fr) String() string {
	return (*fr.Element)(&x).String()
}
