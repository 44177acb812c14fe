package main

import (
	"sync"

	"github.com/hlatools/glmatch/casetable"
	"github.com/hlatools/glmatch/mismatch"
)

// evaluateAll fans the cases out across workers. Cases are independent, so
// the only coordination needed is writing each result into its own slot of
// the results slice, which preserves case order.
func evaluateAll(cases []*casetable.Case, loci []string, direction mismatch.Direction, homozygousCount, concurrency int) []mismatch.CaseResult {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]mismatch.CaseResult, len(cases))
	concurrencyLimit := make(chan struct{}, concurrency)
	pool := sync.WaitGroup{}

	pool.Add(len(cases))
	for i, c := range cases {
		concurrencyLimit <- struct{}{}

		go func(i int, c *casetable.Case) {
			defer pool.Done()

			counts, err := mismatch.Number(c.RecipientGL, c.DonorGL, loci, direction, homozygousCount)
			results[i] = mismatch.CaseResult{Counts: counts, Err: err}

			<-concurrencyLimit
		}(i, c)
	}
	pool.Wait()

	return results
}
