package rhizomes

import (
	"runtime"
	"sync"

	"github.com/sp301415/ringo-rhizomes/field"
)

// PolyEvalRhizomesBatchedParallel is a parallel version of PolyEvalRhizomesBatched.
// The shared recurrence is computed once, and polynomials are split across workers.
func PolyEvalRhizomesBatchedParallel[E field.Element[E]](polys [][]E, roots []E, x E) ([]E, error) {
	var z E
	if err := checkRoots(roots); err != nil {
		return nil, err
	}
	for _, poly := range polys {
		if err := checkPoly(poly, roots); err != nil {
			return nil, err
		}
	}

	numRootsInv, err := InvPow2[E](len(roots))
	if err != nil {
		return nil, err
	}
	numRootsInv = numRootsInv.Neg()

	ds := make([]E, len(roots))
	ts := make([]E, len(roots))
	l := z.One()
	ds[0] = roots[0].Sub(x)
	for i := 1; i < len(roots); i++ {
		l = l.Mul(ds[i-1])
		ds[i] = roots[i].Sub(x)
		ts[i] = l.Mul(roots[i])
	}

	u := make([]E, len(polys))
	runParallel(len(polys), func(j int) {
		poly := polys[j]
		uj := poly[0]
		for i := 1; i < len(roots); i++ {
			uj = uj.Mul(ds[i])
			if i < len(poly) {
				uj = uj.Add(ts[i].Mul(poly[i]))
			}
		}
		if len(roots) > 1 {
			uj = uj.Mul(numRootsInv)
		}
		u[j] = uj
	})

	return u, nil
}

// PolyMultiEvalRhizomesBatchedParallel is a parallel version of PolyMultiEvalRhizomesBatched.
// Points are split across workers.
func PolyMultiEvalRhizomesBatchedParallel[E field.Element[E]](xInOut, poly, roots []E) error {
	if err := checkRoots(roots); err != nil {
		return err
	}
	if err := checkPoly(poly, roots); err != nil {
		return err
	}

	zs := weightedValues(poly, roots)
	numRootsInv, err := InvPow2[E](len(roots))
	if err != nil {
		return err
	}
	numRootsInv = numRootsInv.Neg()

	runParallel(len(xInOut), func(j int) {
		xInOut[j] = evalWeighted(zs, poly[0], roots, xInOut[j], numRootsInv)
	})

	return nil
}

// runParallel calls job(0), ..., job(n-1) on min(NumCPU, n) workers.
// Every index is handled by exactly one worker.
func runParallel(n int, job func(i int)) {
	workSize := min(runtime.NumCPU(), n)

	jobChan := make(chan int)
	go func() {
		defer close(jobChan)
		for i := 0; i < n; i++ {
			jobChan <- i
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workSize)
	for w := 0; w < workSize; w++ {
		go func() {
			defer wg.Done()
			for i := range jobChan {
				job(i)
			}
		}()
	}
	wg.Wait()
}
