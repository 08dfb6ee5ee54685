// Package field defines the finite field interfaces used by the rhizomes
// algorithms, along with a few concrete NTT-friendly fields.
package field

import (
	"errors"
	"fmt"
)

var (
	// ErrInversionOfZero is returned when inverting the additive identity.
	ErrInversionOfZero = errors.New("inversion of zero")
	// ErrRootUnavailable is returned when the field has no primitive root
	// of unity of the requested order.
	ErrRootUnavailable = errors.New("root of unity unavailable")
)

// Element is an element of a finite field.
//
// Elements are values: every operation returns a new element
// and leaves its operands unchanged.
// Distinguished constants are read off any value, typically the zero value:
//
//	var z E
//	one := z.One()
type Element[E any] interface {
	comparable
	fmt.Stringer

	// Add returns x + y.
	Add(y E) E
	// Sub returns x - y.
	Sub(y E) E
	// Neg returns -x.
	Neg() E
	// Mul returns x * y.
	Mul(y E) E
	// Inv returns 1/x, or ErrInversionOfZero.
	Inv() (E, error)
	// Equal reports whether x == y.
	Equal(y E) bool
	// IsZero reports whether x == 0.
	IsZero() bool

	// Zero returns the additive identity.
	Zero() E
	// One returns the multiplicative identity.
	One() E
	// Half returns 1/2.
	Half() E
	// SetUint64 returns v reduced into the field.
	SetUint64(v uint64) E
}

// NTTFriendly is an element of a field with large 2-adic multiplicative subgroup.
type NTTFriendly[E any] interface {
	Element[E]

	// Root returns a primitive 2^logN-th root of unity.
	// Roots of different orders are consistent,
	// that is, Root(k)^2 == Root(k-1).
	Root(logN int) (E, error)
	// MaxLogOrder returns the largest k such that Root(k) exists.
	MaxLogOrder() int
}

// rootUnavailable wraps ErrRootUnavailable with the requested order.
func rootUnavailable(logN, maxLogN int) error {
	return fmt.Errorf("order 2^%d (max 2^%d): %w", logN, maxLogN, ErrRootUnavailable)
}
