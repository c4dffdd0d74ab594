// Package memblock provides an owned, resizable block of raw bytes with
// bit-level field access and two text serializations: plain hex and a
// self-describing, length-prefixed 6-bit encoding. Block is the building
// block for packing and persisting small binary states as text.
//
// A Block owns its storage exclusively; Copy duplicates the bytes and
// SwapWith exchanges storage in constant time. Region operations clamp to
// valid bounds rather than failing, so callers never need to pre-validate
// offsets. A Block is not safe for concurrent use without external
// synchronization; Pool is safe for concurrent Get/Put.
package memblock
