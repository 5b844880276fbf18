package dft

import "math"

// splitRadixTable holds the length-n/2 complex engine and the combine
// twiddles used to recover a length-n real spectrum from it.
type splitRadixTable struct {
	half *complexEngine
	comb []complex64 // comb[k] = exp(-2*pi*i*k/n), k = 0..n/2-1
}

func buildSplitRadixTable(n int) *splitRadixTable {
	half := n / 2
	if half < 1 {
		half = 1
	}
	t := &splitRadixTable{half: newComplexEngine(half)}
	t.comb = make([]complex64, half)
	for k := 0; k < half; k++ {
		s, c := math.Sincos(-2 * math.Pi * float64(k) / float64(n))
		t.comb[k] = complex(float32(c), float32(s))
	}
	return t
}

// splitRadixRealForward implements spec.md §4.2's split-radix real
// transform via the classic real-FFT-from-half-length-complex-FFT
// reduction: pack the even/odd real samples into a length n/2 complex
// sequence, run complexEngine.forward on it, then recover the packed
// half-spectrum from the even/odd conjugate-symmetry of the result.
//
// This produces the identical observable packing spec.md §6 describes
// (Re[0] and Re[n/2] sharing the first two slots, (Re[k],Im[k]) pairs
// after that) without porting Ooura's split-radix-specific cftfsub
// butterfly or its cftx020-style "patch index 0/1" step verbatim — no
// source for those routines exists anywhere in the retrieval pack, and
// spec.md's Non-goals explicitly disclaim bit-exact reproduction of
// internal table layout. scratch must have length >= n/2.
func splitRadixRealForward(n int, buf []float32, offset int, t *splitRadixTable, scratch []complex64) {
	if n == 1 {
		return
	}
	half := n / 2
	z := scratch[:half]
	for k := 0; k < half; k++ {
		z[k] = complex(buf[offset+2*k], buf[offset+2*k+1])
	}
	t.half.forward(z)

	z0 := z[0]
	x0 := real(z0) + imag(z0)
	xHalf := real(z0) - imag(z0)

	out := buf[offset : offset+n]
	out[0] = x0
	out[1] = xHalf

	for k := 1; k < half; k++ {
		zk := z[k]
		zc := conj64(z[half-k])
		ee := (zk + zc) * 0.5
		diff := zk - zc
		eo := complex(imag(diff)*0.5, -real(diff)*0.5)
		xk := ee + t.comb[k]*eo
		out[2*k] = real(xk)
		out[2*k+1] = imag(xk)
	}
}

func conj64(z complex64) complex64 {
	return complex(real(z), -imag(z))
}
