package dft

import (
	"runtime"
	"sync"
)

// WorkerThresholds configures when the Bluestein driver's element-wise
// passes (steps 2 and 4 of §4.4) switch from serial execution to 2 or 4
// goroutines. Both fields are compared with >=, per spec.md §9's
// resolution of the "large path uses >, small path uses >=" open
// question: the off-by-one in the source this is modeled on was
// unintentional, so both paths standardize on >=.
type WorkerThresholds struct {
	Threshold2 int // minimum n to use 2 workers
	Threshold4 int // minimum n to use 4 workers
}

// DefaultWorkerThresholds matches spec.md §6's suggested defaults.
var DefaultWorkerThresholds = WorkerThresholds{Threshold2: 8192, Threshold4: 65536}

// workerCount picks 4, 2, or 1 (serial) workers for a range of length n,
// given a configured cap on the number of workers available (maxWorkers,
// typically runtime.NumCPU()).
func workerCount(n, maxWorkers int, th WorkerThresholds) int {
	if maxWorkers >= 4 && n >= th.Threshold4 {
		return 4
	}
	if maxWorkers >= 2 && n >= th.Threshold2 {
		return 2
	}
	return 1
}

// runChunked partitions [0, n) into contiguous equal chunks, one per
// worker (the last chunk absorbing any remainder), and runs fn over each
// chunk concurrently, returning only once every worker has finished.
// Grounded on the teacher's goroutine/WaitGroup fan-out in
// convolve.go's FastConvolve/FastMultiConvolve, generalized from a fixed
// split into an arbitrary worker count and adapted to report the first
// worker failure as an *InternalError instead of silently ignoring it
// (spec.md §9, "Worker failure").
func runChunked(n, workers int, fn func(lo, hi int) error) error {
	if workers <= 1 || n == 0 {
		if n == 0 {
			return nil
		}
		return fn(0, n)
	}

	chunk := n / workers
	var wg sync.WaitGroup
	errs := make([]error, workers)
	lo := 0
	for w := 0; w < workers; w++ {
		hi := lo + chunk
		if w == workers-1 {
			hi = n
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			errs[w] = fn(lo, hi)
		}(w, lo, hi)
		lo = hi
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return &InternalError{Err: err}
		}
	}
	return nil
}

// bluesteinWorkers caps worker counts at the host's CPU count, mirroring
// the teacher's use of runtime.NumCPU() in convolve.go.
func bluesteinWorkers(n int, th WorkerThresholds) int {
	return workerCount(n, runtime.NumCPU(), th)
}
