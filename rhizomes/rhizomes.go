// Package rhizomes implements evaluation of polynomials in the Lagrange basis
// over the powers of a root of unity, without converting to coefficients.
//
// A polynomial of size N is given by its values at roots[0], ..., roots[N-1],
// where roots[i] = w_n^i for a primitive n-th root of unity w_n and N <= n.
// Values beyond N are implicitly zero.
//
// Reference:
// Faz-Hernandez, "Rhizomes and the Roots of Efficiency -- Improving Prio."
package rhizomes

import (
	"errors"
	"fmt"

	"github.com/sp301415/ringo-rhizomes/field"
	"github.com/sp301415/ringo-rhizomes/num"
)

// ErrDomainSize is returned when a size is not a power of two,
// or when a buffer or root table is smaller than required.
var ErrDomainSize = errors.New("invalid domain size")

// InvPow2 returns 1/n, where n must be a power of two.
// It is computed from the field's 1/2, without a generic inversion.
func InvPow2[E field.Element[E]](n int) (E, error) {
	var z E
	if !num.IsPowerOfTwo(n) {
		return z, fmt.Errorf("%d is not a power of two: %w", n, ErrDomainSize)
	}

	half := z.Half()
	x := z.One()
	for i := num.Log2(n); i > 0; i-- {
		x = x.Mul(half)
	}
	return x, nil
}

// LagrangeWeight returns 1 / prod_{j <= m, j != i} (roots[i] - roots[j]).
func LagrangeWeight[E field.Element[E]](m, i int, roots []E) (E, error) {
	var z E
	if i < 0 || i > m || m >= len(roots) {
		return z, fmt.Errorf("weight (%d, %d) over %d roots: %w", m, i, len(roots), ErrDomainSize)
	}

	w := z.One()
	for j := 0; j <= m; j++ {
		if j != i {
			w = w.Mul(roots[i].Sub(roots[j]))
		}
	}
	return w.Inv()
}

// checkRoots validates a root table.
func checkRoots[E any](roots []E) error {
	if !num.IsPowerOfTwo(len(roots)) {
		return fmt.Errorf("root table of size %d: %w", len(roots), ErrDomainSize)
	}
	return nil
}

// checkPoly validates a polynomial against a root table.
func checkPoly[E any](poly, roots []E) error {
	if !num.IsPowerOfTwo(len(poly)) || len(poly) > len(roots) {
		return fmt.Errorf("polynomial of size %d over %d roots: %w", len(poly), len(roots), ErrDomainSize)
	}
	return nil
}
