package rhizomes_test

import (
	"sync"
	"testing"

	"github.com/sp301415/ringo-rhizomes/field"
	"github.com/sp301415/ringo-rhizomes/rhizomes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNthRootPowers(t *testing.T) {
	t.Run("Fr", func(t *testing.T) { testNthRootPowers[field.Fr](t) })
	t.Run("Goldilocks", func(t *testing.T) { testNthRootPowers[field.Goldilocks](t) })
	t.Run("Prio2", func(t *testing.T) { testNthRootPowers[field.Prio2](t) })
}

func testNthRootPowers[E field.NTTFriendly[E]](t *testing.T) {
	var z E

	t.Run("Naive", func(t *testing.T) {
		for i := 0; i < 8; i++ {
			want, err := rhizomes.NthRootPowersNaive[E](1 << i)
			require.NoError(t, err)
			got, err := rhizomes.NthRootPowers[E](1 << i)
			require.NoError(t, err)
			assert.Equal(t, want, got, "n: %d", 1<<i)
		}
	})

	t.Run("One", func(t *testing.T) {
		roots, err := rhizomes.NthRootPowers[E](1)
		require.NoError(t, err)
		assert.Equal(t, []E{z.One()}, roots)
	})

	t.Run("Symmetry", func(t *testing.T) {
		for i := 1; i < 10; i++ {
			n := 1 << i
			roots, err := rhizomes.NthRootPowers[E](n)
			require.NoError(t, err)
			half, err := rhizomes.NthRootPowers[E](n >> 1)
			require.NoError(t, err)

			assert.Equal(t, z.One(), roots[0])
			assert.Equal(t, z.One().Neg(), roots[n>>1])
			for j := 0; j < n>>1; j++ {
				assert.Equal(t, roots[j].Neg(), roots[j+n>>1], "n: %d j: %d", n, j)
				assert.Equal(t, half[j], roots[2*j], "n: %d j: %d", n, j)
			}
		}
	})

	t.Run("NotPowerOfTwo", func(t *testing.T) {
		for _, n := range []int{0, 3, 6, 12} {
			_, err := rhizomes.NthRootPowers[E](n)
			assert.ErrorIs(t, err, rhizomes.ErrDomainSize)
		}
	})
}

func TestNthRootPowersRootUnavailable(t *testing.T) {
	var z field.Prio2
	_, err := rhizomes.NthRootPowers[field.Prio2](1 << (z.MaxLogOrder() + 1))
	assert.ErrorIs(t, err, field.ErrRootUnavailable)
}

func TestRootCache(t *testing.T) {
	cache := rhizomes.NewRootCache[field.Goldilocks]()

	small, err := cache.Get(8)
	require.NoError(t, err)
	large, err := cache.Get(256)
	require.NoError(t, err)

	for logN := 0; logN <= 8; logN++ {
		want, err := rhizomes.NthRootPowers[field.Goldilocks](1 << logN)
		require.NoError(t, err)
		got, err := cache.Get(1 << logN)
		require.NoError(t, err)
		assert.Equal(t, want, got, "n: %d", 1<<logN)
	}

	again, err := cache.Get(8)
	require.NoError(t, err)
	assert.Same(t, &small[0], &again[0])

	again, err = cache.Get(256)
	require.NoError(t, err)
	assert.Same(t, &large[0], &again[0])

	_, err = cache.Get(12)
	assert.ErrorIs(t, err, rhizomes.ErrDomainSize)

	t.Run("Concurrent", func(t *testing.T) {
		cache := rhizomes.NewRootCache[field.Fr]()
		want, err := rhizomes.NthRootPowers[field.Fr](64)
		require.NoError(t, err)

		var wg sync.WaitGroup
		got := make([][]field.Fr, 16)
		for i := range got {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				got[i], _ = cache.Get(64)
			}(i)
		}
		wg.Wait()

		for i := range got {
			assert.Equal(t, want, got[i])
		}
	})
}
