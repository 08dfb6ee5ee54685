package rhizomes

import (
	"github.com/sp301415/ringo-rhizomes/field"
)

// PolyEvalRhizomes evaluates a polynomial given in the Lagrange basis at x.
// len(poly) must be a power of two not larger than len(roots).
//
// This is the implementation of Algorithm 6.
func PolyEvalRhizomes[E field.Element[E]](poly, roots []E, x E) (E, error) {
	var z E
	if err := checkRoots(roots); err != nil {
		return z, err
	}
	if err := checkPoly(poly, roots); err != nil {
		return z, err
	}

	n := len(poly)
	l := z.One()
	u := poly[0]
	d := roots[0].Sub(x)
	for i := 1; i < n; i++ {
		l = l.Mul(d)
		d = roots[i].Sub(x)
		u = u.Mul(d).Add(l.Mul(roots[i]).Mul(poly[i]))
	}

	for i := n; i < len(roots); i++ {
		u = u.Mul(roots[i].Sub(x))
	}

	if len(roots) > 1 {
		numRootsInv, err := InvPow2[E](len(roots))
		if err != nil {
			return z, err
		}
		u = u.Mul(numRootsInv.Neg())
	}

	return u, nil
}

// PolyEvalRhizomesBatched evaluates several polynomials given in the Lagrange basis at x.
// Polynomials may have different sizes, each a power of two not larger than len(roots).
//
// This is the implementation of Algorithm 7.
func PolyEvalRhizomesBatched[E field.Element[E]](polys [][]E, roots []E, x E) ([]E, error) {
	var z E
	if err := checkRoots(roots); err != nil {
		return nil, err
	}
	for _, poly := range polys {
		if err := checkPoly(poly, roots); err != nil {
			return nil, err
		}
	}

	u := make([]E, len(polys))
	for j, poly := range polys {
		u[j] = poly[0]
	}

	l := z.One()
	d := roots[0].Sub(x)
	for i := 1; i < len(roots); i++ {
		l = l.Mul(d)
		d = roots[i].Sub(x)
		t := l.Mul(roots[i])
		for j, poly := range polys {
			u[j] = u[j].Mul(d)
			if i < len(poly) {
				u[j] = u[j].Add(t.Mul(poly[i]))
			}
		}
	}

	if len(roots) > 1 {
		numRootsInv, err := InvPow2[E](len(roots))
		if err != nil {
			return nil, err
		}
		numRootsInv = numRootsInv.Neg()
		for j := range u {
			u[j] = u[j].Mul(numRootsInv)
		}
	}

	return u, nil
}

// PolyMultiEvalRhizomesBatched evaluates a polynomial given in the Lagrange basis
// at every point of xInOut, overwriting each point with its evaluation.
//
// This is Algorithm 6, with poly[i] * roots[i] shared across points.
func PolyMultiEvalRhizomesBatched[E field.Element[E]](xInOut, poly, roots []E) error {
	if err := checkRoots(roots); err != nil {
		return err
	}
	if err := checkPoly(poly, roots); err != nil {
		return err
	}

	zs := weightedValues(poly, roots)
	numRootsInv, err := InvPow2[E](len(roots))
	if err != nil {
		return err
	}
	numRootsInv = numRootsInv.Neg()

	for j := range xInOut {
		xInOut[j] = evalWeighted(zs, poly[0], roots, xInOut[j], numRootsInv)
	}

	return nil
}

// weightedValues returns poly[i] * roots[i].
func weightedValues[E field.Element[E]](poly, roots []E) []E {
	zs := make([]E, len(poly))
	for i := range poly {
		zs[i] = poly[i].Mul(roots[i])
	}
	return zs
}

// evalWeighted runs the recurrence of PolyEvalRhizomes with precomputed zs.
// u0 is poly[0], and numRootsInvNeg is -1/len(roots).
func evalWeighted[E field.Element[E]](zs []E, u0 E, roots []E, x, numRootsInvNeg E) E {
	l := x.One()
	u := u0
	d := roots[0].Sub(x)
	for i := 1; i < len(zs); i++ {
		l = l.Mul(d)
		d = roots[i].Sub(x)
		u = u.Mul(d).Add(l.Mul(zs[i]))
	}

	for i := len(zs); i < len(roots); i++ {
		u = u.Mul(roots[i].Sub(x))
	}

	if len(roots) > 1 {
		u = u.Mul(numRootsInvNeg)
	}

	return u
}
