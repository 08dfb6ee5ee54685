// Package ntt implements Number-Theoretic Transforms over NTT-friendly fields.
package ntt

import (
	"errors"
	"fmt"

	"github.com/sp301415/ringo-rhizomes/field"
	"github.com/sp301415/ringo-rhizomes/num"
)

// ErrSize is returned when the transform size is not a power of two,
// or when a buffer is shorter than the transform size.
var ErrSize = errors.New("invalid transform size")

// Transform computes forward and twisted NTTs of power-of-two size.
// Outputs are in natural order.
type Transform[E field.NTTFriendly[E]] interface {
	// NTT computes out[k] = sum_i in[i] * w_n^(ik).
	NTT(out, in []E, n int) error
	// NTTStar computes out[k] = sum_i in[i] * w_2n^((2k+1)i),
	// that is, the evaluations of in at the odd powers of w_2n.
	NTTStar(out, in []E, n int) error
}

// InvFinish finishes the inverse transform of values computed by a forward NTT.
// After InvFinish, out holds the coefficients whose NTT is the original input.
func InvFinish[E field.Element[E]](out []E, n int, nInv E) {
	out[0] = out[0].Mul(nInv)
	if n == 1 {
		return
	}
	out[n>>1] = out[n>>1].Mul(nInv)
	for i := 1; i < n>>1; i++ {
		out[i], out[n-i] = out[n-i].Mul(nInv), out[i].Mul(nInv)
	}
}

// checkSize validates the arguments of a transform of size n.
func checkSize(outLen, inLen, n int) error {
	if !num.IsPowerOfTwo(n) {
		return fmt.Errorf("size %d is not a power of two: %w", n, ErrSize)
	}
	if outLen < n || inLen < n {
		return fmt.Errorf("buffers of length %d, %d shorter than size %d: %w", outLen, inLen, n, ErrSize)
	}
	return nil
}

// twistedRoot returns a primitive 2n-th root of unity.
func twistedRoot[E field.NTTFriendly[E]](n int) (E, error) {
	var z E
	return z.Root(num.Log2(n) + 1)
}
