package dft

import (
	"math"
	"testing"
)

func TestBluesteinChirpUnitMagnitude(t *testing.T) {
	table := buildBluesteinTable(211)
	for k, z := range table.bk1 {
		mag := math.Hypot(float64(real(z)), float64(imag(z)))
		if !approxEqual(float32(mag), 1, 1e-5) {
			t.Fatalf("bk1[%d] has magnitude %v, want 1", k, mag)
		}
	}
}

// TestBK2MirrorSymmetry is spec.md §3 invariant 6: bk2, before being
// transformed in place, is symmetric about index n_blue.
func TestBK2MirrorSymmetry(t *testing.T) {
	n := 211
	nBlue := nextPow2(2*n - 1)
	table := buildBluesteinTable(n)
	bk2 := bluesteinBK2PreTransform(n, nBlue, table.bk1)
	for k := 1; k < n; k++ {
		if bk2[nBlue-k] != bk2[k] {
			t.Fatalf("bk2[%d] = %v, bk2[%d] = %v, want equal", nBlue-k, bk2[nBlue-k], k, bk2[k])
		}
	}
}

func TestBluesteinImpulse(t *testing.T) {
	for _, n := range []int{211, 257, 509} {
		table := buildBluesteinTable(n)
		buf := make([]float32, n)
		buf[0] = 1
		if err := bluesteinRealForward(n, buf, 0, table, DefaultWorkerThresholds); err != nil {
			t.Fatal(err)
		}
		if !approxEqual(buf[0], 1, 1e-3) {
			t.Fatalf("n=%d: Re[0] = %v, want 1", n, buf[0])
		}
	}
}

func TestBluesteinDC(t *testing.T) {
	table := buildBluesteinTable(211)
	buf := make([]float32, 211)
	var sum float32
	for i := range buf {
		buf[i] = float32(i%7) - 3
		sum += buf[i]
	}
	if err := bluesteinRealForward(211, buf, 0, table, DefaultWorkerThresholds); err != nil {
		t.Fatal(err)
	}
	if !approxEqual(buf[0], sum, 211*1e-3) {
		t.Fatalf("DC = %v, want %v", buf[0], sum)
	}
}

