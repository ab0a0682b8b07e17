package analyze

import (
	"runtime"
	"sync"
)

// WorkItem holds one named wild-type/patient pair ready for analysis.
type WorkItem struct {
	Seq     int
	Name    string
	Wild    string
	Patient string
}

// WorkResult holds the analysis output for a single pair.
type WorkResult struct {
	Seq    int
	Name   string
	Result *Result
	Err    error
}

// ParallelAnalyze analyzes work items using a pool of workers. Each
// pair is analyzed independently; the core touches no shared state, so
// workers need no coordination beyond the channels. Results arrive in
// completion order; use OrderedCollect to consume them in sequence
// order. If workers is 0, runtime.NumCPU() is used.
func (a *Analyzer) ParallelAnalyze(items <-chan WorkItem, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				r, err := a.Analyze(item.Wild, item.Patient)
				results <- WorkResult{
					Seq:    item.Seq,
					Name:   item.Name,
					Result: r,
					Err:    err,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order.
// Out-of-order results are buffered in a pending map and emitted as
// soon as the next expected sequence number is available. Blocks until
// the results channel is closed.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}
