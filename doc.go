// Package dft provides a single-precision, one-dimensional discrete
// Fourier transform engine for real-valued input of arbitrary length.
//
// A Plan is built once for a given length N with New(N) and is immutable
// thereafter; it owns every precomputed twiddle/chirp table needed to run
// the forward transform. Plan.RealForward overwrites a caller-supplied
// buffer in place with the packed half-spectrum of the input (see the
// Plan.RealForward doc for the exact layout).
//
// Depending on N, the plan picks one of three algorithms at construction
// time: a split-radix kernel for powers of two, a mixed-radix Cooley-Tukey
// kernel (factors 2, 3, 4, 5, and a general-radix pass) for lengths whose
// remaining factor after removing 2/3/4/5 stays small, and a Bluestein
// chirp-z kernel for everything else, including large primes. Only the
// forward, unnormalized, real-input transform is implemented; inverse,
// complex-input, and full (non-packed) spectrum variants are out of scope.
package dft
