package dft

import (
	"math"
	"testing"
)

func TestComplexEngineForwardBackwardRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16, 64} {
		e := newComplexEngine(n)
		z := make([]complex64, n)
		for i := range z {
			z[i] = complex(float32(i+1), float32(-i))
		}
		orig := append([]complex64(nil), z...)

		e.forward(z)
		e.backward(z)

		for i := range z {
			scaled := orig[i] * complex(float32(n), 0)
			if math.Abs(float64(real(z[i])-real(scaled))) > 1e-2 ||
				math.Abs(float64(imag(z[i])-imag(scaled))) > 1e-2 {
				t.Fatalf("n=%d, i=%d: backward(forward(x)) = %v, want %v", n, i, z[i], scaled)
			}
		}
	}
}

func TestComplexEngineDCTerm(t *testing.T) {
	n := 8
	e := newComplexEngine(n)
	z := make([]complex64, n)
	var sum complex64
	for i := range z {
		z[i] = complex(float32(i), float32(2*i-3))
		sum += z[i]
	}
	e.forward(z)
	if math.Abs(float64(real(z[0])-real(sum))) > 1e-4 || math.Abs(float64(imag(z[0])-imag(sum))) > 1e-4 {
		t.Fatalf("DC term = %v, want %v", z[0], sum)
	}
}

func TestBitReversalTableIsInvolution(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16, 32} {
		table := bitReversalTable(n)
		// applying the permutation twice returns the original ordering
		z := make([]int, n)
		for i := range z {
			z[i] = i
		}
		e := &complexEngine{n: n, bitrev: table}
		cz := make([]complex64, n)
		for i, v := range z {
			cz[i] = complex(float32(v), 0)
		}
		e.permute(cz)
		e.permute(cz)
		for i, v := range cz {
			if int(real(v)) != i {
				t.Fatalf("n=%d: double permute did not return original ordering at %d: got %v", n, i, v)
			}
		}
	}
}
