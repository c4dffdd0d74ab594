// Package scalar provides portable scalar and slice-scan helpers:
// clamping, approximate comparison, power-of-two arithmetic,
// negative-aware modulo, rounding and min/max scans.
package scalar

import (
	"cmp"
	"math"
)

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsPositiveAndBelow reports whether v is at least zero and below limit.
func IsPositiveAndBelow(v, limit int) bool {
	return v >= 0 && v < limit
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// NextPowerOfTwo returns the smallest power of two that is equal to or
// greater than n. Values below one yield 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32

	return n + 1
}

// NegativeAwareModulo performs a modulo operation that copes with a
// negative dividend, always returning a value in [0, divisor).
// The divisor must be greater than zero.
func NegativeAwareModulo(dividend, divisor int) int {
	dividend %= divisor
	if dividend < 0 {
		dividend += divisor
	}

	return dividend
}

// RoundToInt rounds v to the nearest integer, halves away from zero.
func RoundToInt(v float64) int {
	return int(math.Round(v))
}

// FindMinimum scans values and returns the smallest. An empty slice
// yields the zero value.
func FindMinimum[T cmp.Ordered](values []T) T {
	var result T
	if len(values) == 0 {
		return result
	}

	result = values[0]
	for _, v := range values[1:] {
		if v < result {
			result = v
		}
	}

	return result
}

// FindMaximum scans values and returns the largest. An empty slice
// yields the zero value.
func FindMaximum[T cmp.Ordered](values []T) T {
	var result T
	if len(values) == 0 {
		return result
	}

	result = values[0]
	for _, v := range values[1:] {
		if v > result {
			result = v
		}
	}

	return result
}

// FindMinAndMax scans values once and returns the smallest and largest.
// An empty slice yields zero values for both.
func FindMinAndMax[T cmp.Ordered](values []T) (lo, hi T) {
	if len(values) == 0 {
		return lo, hi
	}

	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}
