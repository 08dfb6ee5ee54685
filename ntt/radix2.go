package ntt

import (
	"github.com/sp301415/ringo-rhizomes/field"
	"github.com/sp301415/ringo-rhizomes/num"
)

// Radix2 is an iterative Cooley-Tukey transform over any NTT-friendly field.
type Radix2[E field.NTTFriendly[E]] struct{}

// NewRadix2 creates a new Radix2 transform.
func NewRadix2[E field.NTTFriendly[E]]() Radix2[E] {
	return Radix2[E]{}
}

// NTT computes the NTT of in and writes it to out.
func (Radix2[E]) NTT(out, in []E, n int) error {
	if err := checkSize(len(out), len(in), n); err != nil {
		return err
	}

	copy(out[:n], in[:n])
	return nttInPlace(out[:n])
}

// NTTStar computes the twisted NTT of in and writes it to out.
func (Radix2[E]) NTTStar(out, in []E, n int) error {
	if err := checkSize(len(out), len(in), n); err != nil {
		return err
	}

	w, err := twistedRoot[E](n)
	if err != nil {
		return err
	}

	wPow := w.One()
	for i := 0; i < n; i++ {
		out[i] = in[i].Mul(wPow)
		wPow = wPow.Mul(w)
	}
	return nttInPlace(out[:n])
}

// nttInPlace computes the NTT of coeffs in-place, in natural order.
func nttInPlace[E field.NTTFriendly[E]](coeffs []E) error {
	var z E

	n := len(coeffs)
	num.BitReverseInPlace(coeffs)

	tw := make([]E, n>>1)
	for logM := 1; 1<<logM <= n; logM++ {
		m := 1 << logM
		t := m >> 1

		w, err := z.Root(logM)
		if err != nil {
			return err
		}
		tw[0] = z.One()
		for j := 1; j < t; j++ {
			tw[j] = tw[j-1].Mul(w)
		}

		for j1 := 0; j1 < n; j1 += m {
			for j := 0; j < t; j++ {
				u := coeffs[j1+j]
				v := coeffs[j1+j+t].Mul(tw[j])
				coeffs[j1+j] = u.Add(v)
				coeffs[j1+j+t] = u.Sub(v)
			}
		}
	}

	return nil
}
