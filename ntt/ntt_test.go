package ntt_test

import (
	"testing"

	"github.com/sp301415/ringo-rhizomes/csprng"
	"github.com/sp301415/ringo-rhizomes/field"
	"github.com/sp301415/ringo-rhizomes/ntt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ntt.Transform[field.Fr]         = (*ntt.FrFFT)(nil)
	_ ntt.Transform[field.Fr]         = ntt.Radix2[field.Fr]{}
	_ ntt.Transform[field.Goldilocks] = ntt.Radix2[field.Goldilocks]{}
	_ ntt.Transform[field.Prio2]      = ntt.Radix2[field.Prio2]{}
)

// naiveEval evaluates coefficients at x with Horner's method.
func naiveEval[E field.Element[E]](coeffs []E, x E) E {
	y := x.Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y.Mul(x).Add(coeffs[i])
	}
	return y
}

func TestRadix2(t *testing.T) {
	t.Run("Fr", func(t *testing.T) { testTransform[field.Fr](t, ntt.NewRadix2[field.Fr]()) })
	t.Run("Goldilocks", func(t *testing.T) { testTransform[field.Goldilocks](t, ntt.NewRadix2[field.Goldilocks]()) })
	t.Run("Prio2", func(t *testing.T) { testTransform[field.Prio2](t, ntt.NewRadix2[field.Prio2]()) })
}

func TestFrFFT(t *testing.T) {
	testTransform[field.Fr](t, ntt.NewFrFFT())

	t.Run("AgreesWithRadix2", func(t *testing.T) {
		us := csprng.NewUniformSamplerWithSeed([]byte("fr-fft"))
		r2 := ntt.NewRadix2[field.Fr]()
		fft := ntt.NewFrFFT()
		for logN := 0; logN <= 8; logN++ {
			n := 1 << logN
			in := csprng.SampleVector[field.Fr](us, n)

			want := make([]field.Fr, n)
			got := make([]field.Fr, n)
			require.NoError(t, r2.NTTStar(want, in, n))
			require.NoError(t, fft.NTTStar(got, in, n))
			assert.Equal(t, want, got, "n: %d", n)
		}
	})
}

func testTransform[E field.NTTFriendly[E]](t *testing.T, tr ntt.Transform[E]) {
	var z E
	us := csprng.NewUniformSamplerWithSeed([]byte("ntt"))

	t.Run("NTT", func(t *testing.T) {
		for logN := 0; logN <= 6; logN++ {
			n := 1 << logN
			in := csprng.SampleVector[E](us, n)
			out := make([]E, n)
			require.NoError(t, tr.NTT(out, in, n))

			w, err := z.Root(logN)
			require.NoError(t, err)
			wPow := z.One()
			for k := 0; k < n; k++ {
				assert.Equal(t, naiveEval(in, wPow), out[k], "n: %d k: %d", n, k)
				wPow = wPow.Mul(w)
			}
		}
	})

	t.Run("NTTStar", func(t *testing.T) {
		for logN := 0; logN <= 6; logN++ {
			n := 1 << logN
			in := csprng.SampleVector[E](us, n)
			out := make([]E, n)
			require.NoError(t, tr.NTTStar(out, in, n))

			w, err := z.Root(logN + 1)
			require.NoError(t, err)
			wPow := w
			for k := 0; k < n; k++ {
				assert.Equal(t, naiveEval(in, wPow), out[k], "n: %d k: %d", n, k)
				wPow = wPow.Mul(w).Mul(w)
			}
		}
	})

	t.Run("InvFinish", func(t *testing.T) {
		for logN := 0; logN <= 6; logN++ {
			n := 1 << logN
			coeffs := csprng.SampleVector[E](us, n)
			values := make([]E, n)
			require.NoError(t, tr.NTT(values, coeffs, n))

			nInv, err := z.SetUint64(uint64(n)).Inv()
			require.NoError(t, err)

			coeffsOut := make([]E, n)
			require.NoError(t, tr.NTT(coeffsOut, values, n))
			ntt.InvFinish(coeffsOut, n, nInv)
			assert.Equal(t, coeffs, coeffsOut, "n: %d", n)
		}
	})

	t.Run("Errors", func(t *testing.T) {
		buf := make([]E, 8)
		assert.ErrorIs(t, tr.NTT(buf, buf[:4], 8), ntt.ErrSize)
		assert.ErrorIs(t, tr.NTT(buf, buf, 6), ntt.ErrSize)
		assert.ErrorIs(t, tr.NTTStar(buf, buf, 0), ntt.ErrSize)
	})
}

func TestRootUnavailable(t *testing.T) {
	var z field.Prio2
	n := 1 << z.MaxLogOrder()
	buf := make([]field.Prio2, n)

	assert.NoError(t, ntt.NewRadix2[field.Prio2]().NTT(buf, buf, n))
	assert.ErrorIs(t, ntt.NewRadix2[field.Prio2]().NTTStar(buf, buf, n), field.ErrRootUnavailable)
}
