package ntt

import (
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
	"github.com/sp301415/ringo-rhizomes/field"
	"github.com/sp301415/ringo-rhizomes/num"
)

// FrFFT is a transform over BN254 scalar field backed by gnark-crypto's FFT.
// Domains are built on first use of each size and cached.
//
// FrFFT is safe for concurrent use.
type FrFFT struct {
	mu      sync.Mutex
	domains map[int]*fft.Domain
}

// NewFrFFT creates a new FrFFT.
func NewFrFFT() *FrFFT {
	return &FrFFT{
		domains: make(map[int]*fft.Domain),
	}
}

// domain returns the cached domain of size n.
func (f *FrFFT) domain(n int) (*fft.Domain, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if d, ok := f.domains[n]; ok {
		return d, nil
	}

	// NewDomain panics on sizes beyond the 2-adicity.
	if _, err := (field.Fr{}).Root(num.Log2(n)); err != nil {
		return nil, err
	}

	d := fft.NewDomain(uint64(n))
	f.domains[n] = d
	return d, nil
}

// NTT computes the NTT of in and writes it to out.
func (f *FrFFT) NTT(out, in []field.Fr, n int) error {
	if err := checkSize(len(out), len(in), n); err != nil {
		return err
	}

	copy(out[:n], in[:n])
	return f.fftInPlace(out[:n])
}

// NTTStar computes the twisted NTT of in and writes it to out.
func (f *FrFFT) NTTStar(out, in []field.Fr, n int) error {
	if err := checkSize(len(out), len(in), n); err != nil {
		return err
	}

	w, err := twistedRoot[field.Fr](n)
	if err != nil {
		return err
	}

	wPow := w.One()
	for i := 0; i < n; i++ {
		out[i] = in[i].Mul(wPow)
		wPow = wPow.Mul(w)
	}
	return f.fftInPlace(out[:n])
}

// fftInPlace evaluates coeffs over the domain of size len(coeffs), in natural order.
func (f *FrFFT) fftInPlace(coeffs []field.Fr) error {
	n := len(coeffs)
	if n == 1 {
		return nil
	}

	d, err := f.domain(n)
	if err != nil {
		return err
	}

	v := make([]fr.Element, n)
	for i := range coeffs {
		v[i] = coeffs[i].Element()
	}
	d.FFT(v, fft.DIF)
	fft.BitReverse(v)
	for i := range coeffs {
		coeffs[i] = field.NewFr(v[i])
	}

	return nil
}
