package scalar

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 10, 0, 5}, // swapped bounds are tolerated
		{0, 0, 0, 0},
	}
	for _, c := range cases {
		if got := Clamp(c.value, c.min, c.max); got != c.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.value, c.min, c.max, got, c.want)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("values within eps should be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Fatal("distant values should not be nearly equal")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Fatal("zero should equal zero with default eps")
	}
}

func TestIsPositiveAndBelow(t *testing.T) {
	if !IsPositiveAndBelow(0, 5) || !IsPositiveAndBelow(4, 5) {
		t.Fatal("in-range values rejected")
	}
	if IsPositiveAndBelow(-1, 5) || IsPositiveAndBelow(5, 5) {
		t.Fatal("out-of-range values accepted")
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, v := range []int{1, 2, 4, 1024} {
		if !IsPowerOfTwo(v) {
			t.Fatalf("IsPowerOfTwo(%d) = false, want true", v)
		}
	}
	for _, v := range []int{0, -2, 3, 1000} {
		if IsPowerOfTwo(v) {
			t.Fatalf("IsPowerOfTwo(%d) = true, want false", v)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := []struct{ n, want int }{
		{-5, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{1000, 1024},
		{1024, 1024},
	}
	for _, c := range cases {
		if got := NextPowerOfTwo(c.n); got != c.want {
			t.Fatalf("NextPowerOfTwo(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestNegativeAwareModulo(t *testing.T) {
	cases := []struct{ dividend, divisor, want int }{
		{7, 3, 1},
		{-1, 3, 2},
		{-3, 3, 0},
		{0, 5, 0},
	}
	for _, c := range cases {
		if got := NegativeAwareModulo(c.dividend, c.divisor); got != c.want {
			t.Fatalf("NegativeAwareModulo(%d, %d) = %d, want %d", c.dividend, c.divisor, got, c.want)
		}
	}
}

func TestRoundToInt(t *testing.T) {
	cases := []struct {
		v    float64
		want int
	}{
		{0.4, 0},
		{0.5, 1},
		{-0.5, -1},
		{2.5, 3},
		{-2.5, -3},
	}
	for _, c := range cases {
		if got := RoundToInt(c.v); got != c.want {
			t.Fatalf("RoundToInt(%v) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestFindMinimumMaximum(t *testing.T) {
	values := []float64{3, -1, 7, 0}
	if got := FindMinimum(values); got != -1 {
		t.Fatalf("FindMinimum = %v, want -1", got)
	}
	if got := FindMaximum(values); got != 7 {
		t.Fatalf("FindMaximum = %v, want 7", got)
	}
	if got := FindMinimum([]int(nil)); got != 0 {
		t.Fatalf("FindMinimum(empty) = %v, want 0", got)
	}
}

func TestFindMinAndMax(t *testing.T) {
	lo, hi := FindMinAndMax([]int{5, 2, 9, 2})
	if lo != 2 || hi != 9 {
		t.Fatalf("FindMinAndMax = (%d, %d), want (2, 9)", lo, hi)
	}

	lo, hi = FindMinAndMax([]int{})
	if lo != 0 || hi != 0 {
		t.Fatalf("FindMinAndMax(empty) = (%d, %d), want (0, 0)", lo, hi)
	}
}

func TestFindMinAndMaxSingle(t *testing.T) {
	lo, hi := FindMinAndMax([]float64{math.Pi})
	if lo != math.Pi || hi != math.Pi {
		t.Fatalf("FindMinAndMax single = (%v, %v)", lo, hi)
	}
}
