package rhizomes_test

import (
	"fmt"
	"testing"

	"github.com/sp301415/ringo-rhizomes/csprng"
	"github.com/sp301415/ringo-rhizomes/field"
	"github.com/sp301415/ringo-rhizomes/ntt"
	"github.com/sp301415/ringo-rhizomes/rhizomes"
)

var benchSizes = []int{1 << 6, 1 << 10, 1 << 14}

func BenchmarkPolyEval(b *testing.B) {
	b.Run("Fr", func(b *testing.B) { benchmarkPolyEval[field.Fr](b, ntt.NewFrFFT()) })
	b.Run("Goldilocks", func(b *testing.B) { benchmarkPolyEval[field.Goldilocks](b, ntt.NewRadix2[field.Goldilocks]()) })
	b.Run("Prio2", func(b *testing.B) { benchmarkPolyEval[field.Prio2](b, ntt.NewRadix2[field.Prio2]()) })
}

func benchmarkPolyEval[E field.NTTFriendly[E]](b *testing.B, tr ntt.Transform[E]) {
	us := csprng.NewStreamSampler()

	for _, n := range benchSizes {
		poly := csprng.SampleVector[E](us, n)
		x := csprng.SampleElement[E](us)
		roots, err := rhizomes.NthRootPowers[E](n)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("Rhizomes/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				rhizomes.PolyEvalRhizomes(poly, roots, x)
			}
		})

		b.Run(fmt.Sprintf("Monomial/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				rhizomes.PolyEvalMonomial(poly, x, tr)
			}
		})
	}
}

func BenchmarkNthRootPowers(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("Doubling/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				rhizomes.NthRootPowers[field.Goldilocks](n)
			}
		})

		b.Run(fmt.Sprintf("Naive/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				rhizomes.NthRootPowersNaive[field.Goldilocks](n)
			}
		})
	}
}

func BenchmarkExtendDimensionDouble(b *testing.B) {
	us := csprng.NewStreamSampler()
	tr := ntt.NewRadix2[field.Goldilocks]()

	for _, n := range benchSizes {
		poly := csprng.SampleVector[field.Goldilocks](us, n)
		values := make([]field.Goldilocks, 2*n)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(values, poly)
				if err := rhizomes.ExtendDimensionDouble(values, n, tr); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPolyMultiEval(b *testing.B) {
	us := csprng.NewStreamSampler()
	n := 1 << 10
	poly := csprng.SampleVector[field.Fr](us, n)
	points := csprng.SampleVector[field.Fr](us, 64)
	roots, err := rhizomes.NthRootPowers[field.Fr](n)
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]field.Fr, len(points))

	b.Run("Sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			copy(buf, points)
			rhizomes.PolyMultiEvalRhizomesBatched(buf, poly, roots)
		}
	})

	b.Run("Parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			copy(buf, points)
			rhizomes.PolyMultiEvalRhizomesBatchedParallel(buf, poly, roots)
		}
	})
}
