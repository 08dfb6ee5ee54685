package rhizomes

import (
	"fmt"

	"github.com/sp301415/ringo-rhizomes/field"
	"github.com/sp301415/ringo-rhizomes/ntt"
	"github.com/sp301415/ringo-rhizomes/num"
)

// ExtendDimensionOne returns the value at roots[k] of the polynomial of degree < k
// whose values at roots[0], ..., roots[k-1] are given, where k = len(values) < len(roots)
// and len(roots) is a power of two.
func ExtendDimensionOne[E field.Element[E]](values, roots []E) (E, error) {
	var z E
	if err := checkRoots(roots); err != nil {
		return z, err
	}

	k, n := len(values), len(roots)
	if k >= n {
		return z, fmt.Errorf("extending %d values over %d roots: %w", k, n, ErrDomainSize)
	}

	y := z.Zero()
	if k == n-1 {
		// sum_i p(w^i) w^i = 0 when deg p < n-1,
		// so p(w^(n-1)) = sum_{i < n-1} p(w^i) w^(i+1+n/2).
		offset := 1 + n>>1
		for i := 0; i < k; i++ {
			y = y.Add(values[i].Mul(roots[(i+offset)%n]))
		}
		return y, nil
	}

	for i := 0; i < k; i++ {
		w, err := LagrangeWeight(k, i, roots)
		if err != nil {
			return z, err
		}
		y = y.Add(values[i].Mul(w))
	}

	wk, err := LagrangeWeight(k, k, roots)
	if err != nil {
		return z, err
	}
	wkInv, err := wk.Inv()
	if err != nil {
		return z, err
	}

	return y.Mul(wkInv.Neg()), nil
}

// ExtendDimensionDouble resamples a polynomial from the n-th roots of unity to the 2n-th roots of unity.
// On input, values[:n] holds the values over the n-th roots;
// on output, values[:2n] holds the values over the 2n-th roots, in natural order.
//
// If the transform fails, values is left in an unspecified state.
func ExtendDimensionDouble[E field.NTTFriendly[E]](values []E, n int, tr ntt.Transform[E]) error {
	if !num.IsPowerOfTwo(n) || len(values) < 2*n {
		return fmt.Errorf("doubling size %d in buffer of length %d: %w", n, len(values), ErrDomainSize)
	}

	nInv, err := InvPow2[E](n)
	if err != nil {
		return err
	}

	coeffs := make([]E, n)
	if err := tr.NTT(coeffs, values[:n], n); err != nil {
		return err
	}
	ntt.InvFinish(coeffs, n, nInv)

	if err := tr.NTTStar(values[n:2*n], coeffs, n); err != nil {
		return err
	}

	return PerfectShuffle(values[:2*n])
}

// PerfectShuffle permutes (a0, ..., am, b0, ..., bm) to (a0, b0, ..., am, bm) in-place.
// len(v) must be a power of two; vectors shorter than four are left unchanged.
func PerfectShuffle[T any](v []T) error {
	if len(v) < 4 {
		return nil
	}
	if !num.IsPowerOfTwo(len(v)) {
		return fmt.Errorf("shuffling %d elements: %w", len(v), ErrDomainSize)
	}

	perfectShuffle(v, 0, len(v))
	return nil
}

// perfectShuffle shuffles v[lo:hi].
// It swaps the second and third quarters, and recurses on both halves.
func perfectShuffle[T any](v []T, lo, hi int) {
	n := hi - lo
	if n < 4 {
		return
	}

	half, quarter := n>>1, n>>2
	for i := lo + quarter; i < lo+half; i++ {
		v[i], v[i+quarter] = v[i+quarter], v[i]
	}

	perfectShuffle(v, lo, lo+half)
	perfectShuffle(v, lo+half, hi)
}
