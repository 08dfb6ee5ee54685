package field

import (
	"strconv"

	"github.com/sp301415/ringo-rhizomes/num"
	"github.com/tuneinsight/lattigo/v6/ring"
)

const (
	// Prio2Modulus is 4095 * 2^20 + 1.
	Prio2Modulus = 4293918721
	// Prio2MaxLogOrder is the 2-adicity of the Prio2 field.
	Prio2MaxLogOrder = 20
)

// Prio2 is an element of the 32-bit prime field used by Prio v2.
// The value is always kept reduced in [0, Prio2Modulus).
type Prio2 uint64

var (
	prio2BRedConstant = ring.GenBRedConstant(Prio2Modulus)
	prio2Roots        [Prio2MaxLogOrder + 1]Prio2
)

func init() {
	exp1 := uint64(Prio2Modulus-1) >> Prio2MaxLogOrder
	exp2 := uint64(1) << (Prio2MaxLogOrder - 1)

	var g uint64
	for x := uint64(2); x < Prio2Modulus; x++ {
		g = num.ModExp(x, exp1, Prio2Modulus)
		if num.ModExp(g, exp2, Prio2Modulus) != 1 {
			break
		}
	}

	prio2Roots[Prio2MaxLogOrder] = Prio2(g)
	for i := Prio2MaxLogOrder; i > 0; i-- {
		prio2Roots[i-1] = prio2Roots[i].Mul(prio2Roots[i])
	}
}

// Add returns x + y.
func (x Prio2) Add(y Prio2) Prio2 {
	z := x + y
	if z >= Prio2Modulus {
		z -= Prio2Modulus
	}
	return z
}

// Sub returns x - y.
func (x Prio2) Sub(y Prio2) Prio2 {
	if x >= y {
		return x - y
	}
	return x + Prio2Modulus - y
}

// Neg returns -x.
func (x Prio2) Neg() Prio2 {
	if x == 0 {
		return 0
	}
	return Prio2Modulus - x
}

// Mul returns x * y.
func (x Prio2) Mul(y Prio2) Prio2 {
	return Prio2(ring.BRed(uint64(x), uint64(y), Prio2Modulus, prio2BRedConstant))
}

// Inv returns 1/x.
func (x Prio2) Inv() (Prio2, error) {
	if x == 0 {
		return 0, ErrInversionOfZero
	}
	return Prio2(num.ModExp(uint64(x), Prio2Modulus-2, Prio2Modulus)), nil
}

// Equal reports whether x == y.
func (x Prio2) Equal(y Prio2) bool {
	return x == y
}

// IsZero reports whether x == 0.
func (x Prio2) IsZero() bool {
	return x == 0
}

// Zero returns 0.
func (Prio2) Zero() Prio2 {
	return 0
}

// One returns 1.
func (Prio2) One() Prio2 {
	return 1
}

// Half returns 1/2.
func (Prio2) Half() Prio2 {
	return (Prio2Modulus + 1) >> 1
}

// SetUint64 returns v mod p.
func (Prio2) SetUint64(v uint64) Prio2 {
	return Prio2(v % Prio2Modulus)
}

// Root returns a primitive 2^logN-th root of unity.
func (Prio2) Root(logN int) (Prio2, error) {
	if logN < 0 || logN > Prio2MaxLogOrder {
		return 0, rootUnavailable(logN, Prio2MaxLogOrder)
	}
	return prio2Roots[logN], nil
}

// MaxLogOrder returns Prio2MaxLogOrder.
func (Prio2) MaxLogOrder() int {
	return Prio2MaxLogOrder
}

// String returns the decimal representation of x.
func (x Prio2) String() string {
	return strconv.FormatUint(uint64(x), 10)
}
