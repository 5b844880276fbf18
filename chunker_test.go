package dft

import (
	"errors"
	"testing"
)

func TestWorkerCountThresholds(t *testing.T) {
	th := WorkerThresholds{Threshold2: 100, Threshold4: 1000}
	cases := []struct {
		n, maxWorkers, want int
	}{
		{50, 4, 1},
		{100, 4, 2},
		{999, 4, 2},
		{1000, 4, 4},
		{1000, 2, 2},
		{1000, 1, 1},
		{100, 1, 1},
	}
	for _, c := range cases {
		if got := workerCount(c.n, c.maxWorkers, th); got != c.want {
			t.Errorf("workerCount(%d, %d, %+v) = %d, want %d", c.n, c.maxWorkers, th, got, c.want)
		}
	}
}

func TestRunChunkedCoversRange(t *testing.T) {
	const n = 4999
	seen := make([]bool, n)
	err := runChunked(n, 4, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			seen[i] = true
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("index %d never visited", i)
		}
	}
}

func TestRunChunkedSerialFallback(t *testing.T) {
	var calls int
	err := runChunked(10, 1, func(lo, hi int) error {
		calls++
		if lo != 0 || hi != 10 {
			t.Errorf("serial call got range [%d,%d), want [0,10)", lo, hi)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRunChunkedPropagatesFailure(t *testing.T) {
	inner := errors.New("worker failed")
	err := runChunked(100, 4, func(lo, hi int) error {
		if lo == 0 {
			return inner
		}
		return nil
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	var ie *InternalError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InternalError, got %T: %v", err, err)
	}
}

func TestRunChunkedEmptyRange(t *testing.T) {
	called := false
	err := runChunked(0, 4, func(lo, hi int) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if called {
		t.Error("fn should not be called for an empty range")
	}
}
