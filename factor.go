package dft

import "math/bits"

// planKind identifies which of the three kernels a Plan dispatches to.
type planKind int

const (
	splitRadix planKind = iota
	mixedRadix
	bluestein
)

// generalRadixCutoff is the smallest remaining factor, after repeatedly
// dividing by 4, 2, 3, 5, at which Bluestein wins over the general-radix
// pass. The general-radix pass costs O(p^2) per stage; Bluestein costs
// about 3 transforms of length n_blue <= 4n. 211 is the crossover point.
const generalRadixCutoff = 211

// isPow2 reports whether n is a power of two. n must be >= 1.
func isPow2(n int) bool {
	return n&(n-1) == 0
}

// nextPow2 returns the smallest power of two >= n, for n >= 1.
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// classify implements the plan-selection rule of spec.md's "Planner and
// plan selection": divide out factors of 4, then 2, 3, 5 in order; the
// leftover factor decides split_radix/mixed_radix/bluestein.
func classify(n int) planKind {
	if isPow2(n) {
		return splitRadix
	}
	if trailingFactorRemainder(n) >= generalRadixCutoff {
		return bluestein
	}
	return mixedRadix
}

// trailingFactorRemainder computes rem = n after dividing out all factors
// of 4, then all factors of 2, 3 and 5, in that order.
func trailingFactorRemainder(n int) int {
	rem := n
	for rem%4 == 0 {
		rem /= 4
	}
	for _, p := range [3]int{2, 3, 5} {
		for rem%p == 0 {
			rem /= p
		}
	}
	return rem
}

// factorizeMixedRadix fully factors n using the ordered trial divisors
// 4, 2, 3, 5, 7, 9, 11, ... (each trial divisor is retried until it no
// longer divides the remainder, then the next one in the sequence is
// tried). It returns the factor sequence in extraction order, with every
// factor of 2 beyond the first moved to the front, per spec.md §4.3's
// "Factor-list rotation" rule — this keeps the radix-4/radix-2 pass count
// monotone, matching the classic FFTPACK twiddle-table construction.
func factorizeMixedRadix(n int) []int {
	var factors []int
	nl := n
	ntryh := [4]int{4, 2, 3, 5}

	for j, ntry := 0, 0; nl > 1; j++ {
		if j < 4 {
			ntry = ntryh[j]
		} else {
			ntry += 2
		}
		for nl%ntry == 0 {
			nl /= ntry
			if ntry == 2 && len(factors) != 0 {
				// Shift every factor found so far up one slot and place
				// this 2 at the front, exactly as the twiddle builder's
				// ifac[2]=2 insertion does.
				factors = append([]int{2}, factors...)
			} else {
				factors = append(factors, ntry)
			}
		}
	}
	return factors
}
