package testutil

import (
	"bytes"
	"testing"
)

// RequireBytesEqual fails t if got and want differ in length or content.
func RequireBytesEqual(t *testing.T, got, want []byte) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d (% x), want %d (% x)", len(got), got, len(want), want)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("content mismatch: got % x, want % x", got, want)
	}
}

// RequireAllZero fails t if any byte is non-zero.
func RequireAllZero(t *testing.T, data []byte) {
	t.Helper()
	for i, v := range data {
		if v != 0 {
			t.Fatalf("index %d: got %#02x, want 0", i, v)
		}
	}
}

// Pattern returns n bytes of a deterministic non-repeating-in-place
// pattern, useful for spotting shifted or stale regions.
func Pattern(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i*7 + 1)
	}
	return data
}
