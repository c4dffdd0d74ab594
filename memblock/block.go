package memblock

import "bytes"

// Block is an owned, resizable, contiguous region of raw bytes.
// The zero value is an empty block ready for use.
type Block struct {
	data []byte
}

// New returns a zero-filled Block of the given size.
// A size below zero is treated as zero.
func New(size int) *Block {
	if size <= 0 {
		return &Block{}
	}
	return &Block{data: make([]byte, size)}
}

// FromBytes returns a new Block holding a copy of src.
// The Block does not alias src; later mutations of either are invisible
// to the other.
func FromBytes(src []byte) *Block {
	b := &Block{}
	if len(src) > 0 {
		b.data = make([]byte, len(src))
		copy(b.data, src)
	}
	return b
}

// Len returns the current number of bytes.
func (b *Block) Len() int {
	return len(b.data)
}

// Bytes returns the underlying byte slice without copying.
// Mutations through the slice are visible to the Block and vice versa;
// the slice is invalidated by any resizing operation.
func (b *Block) Bytes() []byte {
	return b.data
}

// Copy returns a deep copy of the block.
func (b *Block) Copy() *Block {
	return FromBytes(b.data)
}

// ToString interprets the block's contents as text.
func (b *Block) ToString() string {
	return string(b.data)
}

// SetSize resizes the block in place, reusing existing capacity when
// possible. Growing preserves existing bytes; when zeroFill is set the
// newly added region is zeroed, otherwise its contents are unspecified
// (stale bytes from earlier use of the backing array may appear).
// Shrinking truncates. A size of zero or below releases the storage.
func (b *Block) SetSize(newSize int, zeroFill bool) {
	if newSize <= 0 {
		b.data = nil
		return
	}
	oldLen := len(b.data)
	if newSize <= cap(b.data) {
		b.data = b.data[:newSize]
		if zeroFill && newSize > oldLen {
			for i := oldLen; i < newSize; i++ {
				b.data[i] = 0
			}
		}
	} else {
		// A fresh allocation is already zeroed, so zeroFill is
		// satisfied either way.
		grown := make([]byte, newSize)
		copy(grown, b.data)
		b.data = grown
	}
}

// EnsureSize grows the block to at least minSize, behaving like SetSize
// for the grown region. It is a no-op when the block is already large
// enough, which makes repeated calls with the same bound idempotent.
func (b *Block) EnsureSize(minSize int, zeroFill bool) {
	if len(b.data) < minSize {
		b.SetSize(minSize, zeroFill)
	}
}

// SwapWith exchanges the contents of the two blocks in constant time.
// No bytes are copied.
func (b *Block) SwapWith(other *Block) {
	b.data, other.data = other.data, b.data
}

// FillWith sets every byte to value.
func (b *Block) FillWith(value byte) {
	for i := range b.data {
		b.data[i] = value
	}
}

// Append grows the block by len(src) bytes and copies src into the newly
// added tail region. An empty src is a no-op.
func (b *Block) Append(src []byte) {
	if len(src) == 0 {
		return
	}
	oldLen := len(b.data)
	b.SetSize(oldLen+len(src), false)
	copy(b.data[oldLen:], src)
}

// CopyFrom overwrites bytes starting at offset with bytes from src,
// clipped to stay within the current bounds. A negative offset skips the
// leading -offset bytes of src and writes the remainder at offset zero.
// The block's size never changes.
func (b *Block) CopyFrom(src []byte, offset int) {
	if offset < 0 {
		skip := -offset
		if skip >= len(src) {
			return
		}
		src = src[skip:]
		offset = 0
	}
	if offset >= len(b.data) {
		return
	}
	copy(b.data[offset:], src)
}

// CopyTo writes exactly len(dst) bytes into dst, reading from the block
// starting at offset. Requested bytes that fall before offset zero or
// past the block end are written as zero, so the operation is total.
func (b *Block) CopyTo(dst []byte, offset int) {
	if offset < 0 {
		pad := -offset
		if pad > len(dst) {
			pad = len(dst)
		}
		for i := 0; i < pad; i++ {
			dst[i] = 0
		}
		dst = dst[pad:]
		offset = 0
	}
	n := 0
	if offset < len(b.data) {
		n = copy(dst, b.data[offset:])
	}
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// RemoveSection deletes num bytes starting at start, shifting trailing
// bytes left to close the gap. A range reaching or passing the end
// truncates the block at start. Out-of-range values clamp; removal never
// fails.
func (b *Block) RemoveSection(start, num int) {
	if num <= 0 || start >= len(b.data) {
		return
	}
	if start < 0 {
		num += start
		if num <= 0 {
			return
		}
		start = 0
	}
	if start+num >= len(b.data) {
		b.SetSize(start, false)
		return
	}
	copy(b.data[start:], b.data[start+num:])
	b.SetSize(len(b.data)-num, false)
}

// Equal reports whether the two blocks have the same size and contents.
func (b *Block) Equal(other *Block) bool {
	return other != nil && bytes.Equal(b.data, other.data)
}

// Matches reports equality against a foreign byte range without
// constructing a Block.
func (b *Block) Matches(data []byte) bool {
	return bytes.Equal(b.data, data)
}
