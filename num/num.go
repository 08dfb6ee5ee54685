// Package num implements various utility functions regarding numeric types.
package num

import "math/bits"

// IsPowerOfTwo reports whether n is an exact power of two.
// Zero and negative values are not powers of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns floor(log2(n)).
// Panics if n is not positive.
func Log2(n int) int {
	if n <= 0 {
		panic("log2 of non-positive integer")
	}
	return bits.Len(uint(n)) - 1
}

// ModExp returns x^y mod q.
func ModExp(x, y, q uint64) uint64 {
	r := uint64(1) % q
	x %= q
	for y > 0 {
		if y&1 == 1 {
			r = ModMul(r, x, q)
		}
		x = ModMul(x, x, q)
		y >>= 1
	}
	return r
}

// ModMul returns x * y mod q.
func ModMul(x, y, q uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return bits.Rem64(hi, lo, q)
}

// BitReverseInPlace reorders v into bit-reversal order in-place.
func BitReverseInPlace[T any](v []T) {
	var bit, j int
	for i := 1; i < len(v); i++ {
		bit = len(v) >> 1
		for j >= bit {
			j -= bit
			bit >>= 1
		}
		j += bit
		if i < j {
			v[i], v[j] = v[j], v[i]
		}
	}
}
