package dft

import "math"

// complexEngine is the in-place, power-of-two complex DFT used internally
// by both the split-radix driver (on a length-n/2 complex view of the
// real input) and the Bluestein driver (on the length-n_blue padded
// buffer). It plays the role spec.md treats as the external collaborators
// cftfsub/cftbsub: a radix-2 decimation-in-time butterfly over a
// bit-reversed input, driven by a precomputed root-of-unity table. No
// verbatim source for those routines exists anywhere in the retrieval
// pack (they are Ooura fft4g internals); this engine is grounded instead
// on the teacher's own power-of-two complex FFT (andewx/gofft's
// permutationIndex/permute/fft in fft.go), generalized from complex128 to
// complex64 and split into independent forward/backward passes so
// Bluestein can use both directions of the same table.
type complexEngine struct {
	n       int          // number of complex points, a power of two (n=1 allowed)
	bitrev  []int        // length-n bit-reversal permutation
	twiddle []complex64  // twiddle[k] = exp(-2*pi*i*k/n), length n
}

func newComplexEngine(n int) *complexEngine {
	e := &complexEngine{n: n}
	e.bitrev = bitReversalTable(n)
	e.twiddle = make([]complex64, n)
	for k := 0; k < n; k++ {
		s, c := math.Sincos(-2.0 * math.Pi * float64(k) / float64(n))
		e.twiddle[k] = complex(float32(c), float32(s))
	}
	return e
}

// bitReversalTable builds the bit-inverted index vector used to permute
// the input before the butterfly passes. Ported from the teacher's
// permutationIndex in fft.go.
func bitReversalTable(n int) []int {
	index := make([]int, n)
	for m := 1; m < n; m <<= 1 {
		for i := 0; i < m; i++ {
			index[i] <<= 1
			index[i+m] = index[i] + 1
		}
	}
	return index
}

// permute reorders z according to e's bit-reversal table, in place.
// Ported from the teacher's permute in fft.go.
func (e *complexEngine) permute(z []complex64) {
	n := e.n
	for i := 0; i < n-1; i++ {
		ind := e.bitrev[i]
		for ind < i {
			ind = e.bitrev[ind]
		}
		z[i], z[ind] = z[ind], z[i]
	}
}

// forward computes the unnormalized complex DFT of z in place, using
// exp(-2*pi*i*k*m/n) as the transform kernel. This stands in for
// spec.md's cftfsub.
func (e *complexEngine) forward(z []complex64) {
	e.butterflies(z, false)
}

// backward computes the unnormalized complex inverse DFT of z in place
// (conjugate kernel, no 1/n scaling). This stands in for spec.md's
// cftbsub; forward(backward(z)) == n*z and vice versa.
func (e *complexEngine) backward(z []complex64) {
	e.butterflies(z, true)
}

func (e *complexEngine) butterflies(z []complex64, conj bool) {
	n := e.n
	if n <= 1 {
		return
	}
	e.permute(z)
	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		stride := n / size
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				w := e.twiddle[k*stride]
				if conj {
					w = complex(real(w), -imag(w))
				}
				t := w * z[start+k+half]
				z[start+k+half] = z[start+k] - t
				z[start+k] = z[start+k] + t
			}
		}
	}
}
