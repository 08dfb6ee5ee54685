package rhizomes

import (
	"fmt"
	"sync"

	"github.com/sp301415/ringo-rhizomes/field"
	"github.com/sp301415/ringo-rhizomes/num"
)

// NthRootPowers returns the powers of the primitive n-th root of unity,
// roots[i] = w_n^i for 0 <= i < n, where n must be a power of two.
//
// The table is built by doubling: the roots of order m are reused for the
// even entries of the table of order 2m, since w_2m^2j = w_m^j,
// and the odd entries take one multiplication each,
// with the upper half obtained by negation, since w_2m^(j+m) = -w_2m^j.
func NthRootPowers[E field.NTTFriendly[E]](n int) ([]E, error) {
	var z E
	if !num.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%d is not a power of two: %w", n, ErrDomainSize)
	}

	roots := make([]E, n)
	roots[0] = z.One()
	if n == 1 {
		return roots, nil
	}

	roots[1] = z.One().Neg()
	for i := 2; i <= num.Log2(n); i++ {
		mid := 1 << (i - 1)
		for j := mid - 1; j > 0; j-- {
			roots[j<<1] = roots[j]
		}

		wn, err := z.Root(i)
		if err != nil {
			return nil, err
		}
		roots[1] = wn
		roots[1+mid] = wn.Neg()

		for j := 3; j < mid; j += 2 {
			roots[j] = wn.Mul(roots[j-1])
			roots[j+mid] = roots[j].Neg()
		}
	}

	return roots, nil
}

// NthRootPowersNaive returns the same table as NthRootPowers,
// by successive multiplications.
func NthRootPowersNaive[E field.NTTFriendly[E]](n int) ([]E, error) {
	var z E
	if !num.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%d is not a power of two: %w", n, ErrDomainSize)
	}

	wn, err := z.Root(num.Log2(n))
	if err != nil {
		return nil, err
	}

	roots := make([]E, n)
	roots[0] = z.One()
	for i := 1; i < n; i++ {
		roots[i] = roots[i-1].Mul(wn)
	}
	return roots, nil
}

// RootCache caches root tables by size.
// A table smaller than the largest cached one is taken as a stride of it,
// since roots[2j] of the table of size 2n equals roots[j] of the table of size n.
//
// RootCache is safe for concurrent use.
// Returned tables are shared and must not be modified.
type RootCache[E field.NTTFriendly[E]] struct {
	mu     sync.RWMutex
	tables map[int][]E
	maxLog int
}

// NewRootCache creates a new, empty RootCache.
func NewRootCache[E field.NTTFriendly[E]]() *RootCache[E] {
	return &RootCache[E]{
		tables: make(map[int][]E),
		maxLog: -1,
	}
}

// Get returns the root table of size n.
func (c *RootCache[E]) Get(n int) ([]E, error) {
	if !num.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%d is not a power of two: %w", n, ErrDomainSize)
	}
	logN := num.Log2(n)

	c.mu.RLock()
	roots, ok := c.tables[logN]
	c.mu.RUnlock()
	if ok {
		return roots, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if roots, ok := c.tables[logN]; ok {
		return roots, nil
	}

	if logN < c.maxLog {
		largest := c.tables[c.maxLog]
		stride := len(largest) / n
		roots = make([]E, n)
		for j := range roots {
			roots[j] = largest[j*stride]
		}
	} else {
		var err error
		if roots, err = NthRootPowers[E](n); err != nil {
			return nil, err
		}
		c.maxLog = logN
	}

	c.tables[logN] = roots
	return roots, nil
}
