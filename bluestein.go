package dft

import "math"

// bluesteinTable holds the chirp tables and the length-n_blue complex
// engine the Bluestein driver runs its three transforms on. bk1 and bk2
// are kept as native complex64 slices rather than the interleaved
// [real, imag, ...] float32 layout spec.md's data model describes for
// them (and rather than the full length-2*n_blue allocation): every
// access the real-forward path makes into bk1 stays within its first n
// complex entries, so only those are materialized. This is the same
// "reimplement as a native record, no observable semantics change"
// license spec.md §9 grants for the factor-table encoding, applied to
// the chirp tables.
//
// Grounded on mjibson/go-dsp/fft's getBluesteinFactors/bluesteinFFT
// (_examples/other_examples/ea97e908_maddyblue-go-dsp__fft-fft.go.go),
// one of the teacher's actual go.mod dependencies, adapted from
// complex128 to complex64 and from a one-shot closure-based FFT to the
// shared complexEngine.
type bluesteinTable struct {
	n      int
	nBlue  int
	engine *complexEngine
	bk1    []complex64 // length n
	bk2    []complex64 // length nBlue, pre-scaled, mirrored, and transformed
}

func buildBluesteinTable(n int) *bluesteinTable {
	nBlue := nextPow2(2*n - 1)
	t := &bluesteinTable{n: n, nBlue: nBlue}
	t.engine = newComplexEngine(nBlue)
	t.bk1 = make([]complex64, n)

	twoN := 2 * n
	s := 0
	for k := 0; k < n; k++ {
		if k > 0 {
			s = (s + 2*k - 1) % twoN
		}
		sn, cs := math.Sincos(math.Pi * float64(s) / float64(n))
		t.bk1[k] = complex(float32(cs), float32(sn))
	}

	t.bk2 = bluesteinBK2PreTransform(n, nBlue, t.bk1)
	t.engine.backward(t.bk2)
	return t
}

// bluesteinBK2PreTransform builds bk2 before it is transformed in place:
// the chirp table scaled by 1/n_blue, mirrored about n_blue per spec.md
// §3 invariant 6. Split out from buildBluesteinTable so the mirror
// symmetry is directly testable before the transform destroys it.
func bluesteinBK2PreTransform(n, nBlue int, bk1 []complex64) []complex64 {
	bk2 := make([]complex64, nBlue)
	inv := complex(float32(1)/float32(nBlue), 0)
	for k := 0; k < n; k++ {
		bk2[k] = bk1[k] * inv
	}
	for k := 1; k < n; k++ {
		bk2[nBlue-k] = bk2[k]
	}
	return bk2
}

// bluesteinRealForward implements spec.md §4.4's six-step chirp-z
// transform: pre-multiply by the chirp (step 2, parallel), convolve via
// the length-n_blue complex engine's backward/forward pair (steps 3 and
// 5), pointwise-multiply by the frequency-domain conjugate chirp (step
// 4, parallel), and extract the packed half-spectrum (step 6, serial).
//
// forward(backward(x)) == n_blue*x for the unnormalized complexEngine
// pair, which exactly cancels the 1/n_blue factor baked into bk2 at
// construction, so no extra normalization is needed here.
func bluesteinRealForward(n int, buf []float32, offset int, t *bluesteinTable, th WorkerThresholds) error {
	nBlue := t.nBlue
	ak := make([]complex64, nBlue)

	step2 := func(lo, hi int) error {
		for k := lo; k < hi; k++ {
			ak[k] = complex(buf[offset+k], 0) * conj64(t.bk1[k])
		}
		return nil
	}
	if err := runChunked(n, bluesteinWorkers(n, th), step2); err != nil {
		return err
	}

	t.engine.backward(ak)

	step4 := func(lo, hi int) error {
		for k := lo; k < hi; k++ {
			ak[k] *= t.bk2[k]
		}
		return nil
	}
	if err := runChunked(nBlue, bluesteinWorkers(nBlue, th), step4); err != nil {
		return err
	}

	t.engine.forward(ak)

	out := buf[offset : offset+n]
	if n%2 == 0 {
		half := n / 2
		x0 := conj64(t.bk1[0]) * ak[0]
		out[0] = real(x0)
		xh := conj64(t.bk1[half]) * ak[half]
		out[1] = real(xh)
		for k := 1; k < half; k++ {
			xk := conj64(t.bk1[k]) * ak[k]
			out[2*k] = real(xk)
			out[2*k+1] = imag(xk)
		}
		return nil
	}

	m := (n - 1) / 2
	x0 := conj64(t.bk1[0]) * ak[0]
	out[0] = real(x0)
	for k := 1; k < m; k++ {
		xk := conj64(t.bk1[k]) * ak[k]
		out[2*k] = real(xk)
		out[2*k+1] = imag(xk)
	}
	xm := conj64(t.bk1[m]) * ak[m]
	out[1] = imag(xm)
	out[2*m] = real(xm)
	return nil
}
