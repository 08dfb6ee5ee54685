package num_test

import (
	"math/big"
	"testing"

	"github.com/sp301415/ringo-rhizomes/num"
	"github.com/stretchr/testify/assert"
)

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 1 << 20, 1 << 40} {
		assert.True(t, num.IsPowerOfTwo(n), "n: %d", n)
	}
	for _, n := range []int{-4, 0, 3, 6, 12, 1<<20 + 1} {
		assert.False(t, num.IsPowerOfTwo(n), "n: %d", n)
	}
}

func TestLog2(t *testing.T) {
	assert.Equal(t, 0, num.Log2(1))
	assert.Equal(t, 1, num.Log2(2))
	assert.Equal(t, 1, num.Log2(3))
	assert.Equal(t, 10, num.Log2(1<<10))
	assert.Panics(t, func() { num.Log2(0) })
}

func TestModExp(t *testing.T) {
	q := uint64(0xFFFFFFFF00000001)
	x := uint64(0x123456789ABCDEF0)
	for _, y := range []uint64{0, 1, 2, 17, q - 2} {
		want := big.NewInt(0).Exp(
			big.NewInt(0).SetUint64(x),
			big.NewInt(0).SetUint64(y),
			big.NewInt(0).SetUint64(q),
		)
		assert.Equal(t, want.Uint64(), num.ModExp(x, y, q), "y: %d", y)
	}
}

func TestBitReverseInPlace(t *testing.T) {
	v := []int{0, 1, 2, 3, 4, 5, 6, 7}
	num.BitReverseInPlace(v)
	assert.Equal(t, []int{0, 4, 2, 6, 1, 5, 3, 7}, v)
}
