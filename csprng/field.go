// Package csprng implements samplers of uniform field elements
// for tests, benchmarks and tools.
package csprng

import "github.com/sp301415/ringo-rhizomes/field"

// wordsPerElement is the number of 64-bit words reduced into one element.
// 256 bits leave a negligible bias for every field in this module.
const wordsPerElement = 4

// Source is a source of uniformly random uint64 values.
type Source interface {
	Sample() uint64
}

// SampleElement samples a (statistically close to) uniform element of E.
func SampleElement[E field.Element[E]](s Source) E {
	var z E

	// 2^64 = (2^32)^2
	shift := z.SetUint64(1 << 32)
	shift = shift.Mul(shift)

	x := z.Zero()
	for i := 0; i < wordsPerElement; i++ {
		x = x.Mul(shift).Add(z.SetUint64(s.Sample()))
	}
	return x
}

// SampleVector samples a vector of n uniform elements of E.
func SampleVector[E field.Element[E]](s Source, n int) []E {
	v := make([]E, n)
	for i := range v {
		v[i] = SampleElement[E](s)
	}
	return v
}
