package rhizomes

import (
	"fmt"

	"github.com/sp301415/ringo-rhizomes/field"
	"github.com/sp301415/ringo-rhizomes/ntt"
)

// HornerEval evaluates a polynomial given by its coefficients at x.
func HornerEval[E field.Element[E]](coeffs []E, x E) E {
	y := x.Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y.Mul(x).Add(coeffs[i])
	}
	return y
}

// PolyEvalMonomial evaluates a polynomial given in the Lagrange basis at x,
// by converting it to the monomial basis with an inverse transform
// and evaluating with Horner's method.
//
// It is the baseline PolyEvalRhizomes is compared against.
func PolyEvalMonomial[E field.NTTFriendly[E]](values []E, x E, tr ntt.Transform[E]) (E, error) {
	var z E

	n := len(values)
	nInv, err := InvPow2[E](n)
	if err != nil {
		return z, fmt.Errorf("monomial evaluation: %w", err)
	}

	coeffs := make([]E, n)
	if err := tr.NTT(coeffs, values, n); err != nil {
		return z, err
	}
	ntt.InvFinish(coeffs, n, nInv)

	return HornerEval(coeffs, x), nil
}
