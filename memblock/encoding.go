package memblock

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
)

// encodingTable maps 6-bit values to characters of the length-prefixed
// text form; index 0 is '.'. This is not standard base64: alphabet,
// ordering and framing are all specific to this format and must
// round-trip bit-for-bit.
const encodingTable = ".ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+"

// ToHex returns the block's contents as lowercase hexadecimal text.
func (b *Block) ToHex() string {
	return hex.EncodeToString(b.data)
}

// LoadFromHex replaces the block's contents with bytes decoded from hex
// text. Digits are case-insensitive and consumed in pairs; decoding stops
// at the first character that is not a hex digit, and the block is
// truncated to the complete bytes decoded so far. A trailing single digit
// is dropped.
func (b *Block) LoadFromHex(text string) {
	b.EnsureSize(len(text)/2, false)

	count := 0
	for count*2+1 < len(text) {
		hi, ok := hexDigit(text[count*2])
		if !ok {
			break
		}
		lo, ok := hexDigit(text[count*2+1])
		if !ok {
			break
		}
		b.data[count] = hi<<4 | lo
		count++
	}
	b.SetSize(count, false)
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ToBase64Text returns the block encoded as the decimal byte count, a '.'
// separator, and ceil(size*8/6) alphabet characters of 6 bits each, read
// from bit 0 upwards. Decode with LoadFromBase64Text.
func (b *Block) ToBase64Text() string {
	numChars := (len(b.data)*8 + 5) / 6

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString(strconv.Itoa(len(b.data)))
	buf.WriteByte('.')
	for i := 0; i < numChars; i++ {
		buf.WriteByte(encodingTable[b.GetBitRange(i*6, 6)])
	}
	return buf.String()
}

// LoadFromBase64Text replaces the block's contents with bytes decoded
// from text produced by ToBase64Text. The decimal prefix before the first
// '.' gives the byte count; the block is resized to it, zero-filled, and
// each subsequent character's alphabet index is written as a 6-bit field
// at increasing bit offsets.
//
// A missing separator or unparsable prefix fails with ErrMissingSeparator
// or ErrInvalidLengthPrefix and leaves the block unchanged. Characters
// absent from the alphabet are skipped without advancing the bit offset,
// matching the historical behavior of the format so that existing encoded
// data keeps decoding identically.
func (b *Block) LoadFromBase64Text(text string) error {
	dot := strings.IndexByte(text, '.')
	if dot < 0 {
		return ErrMissingSeparator
	}

	size, err := strconv.Atoi(text[:dot])
	if err != nil || size < 0 {
		return fmt.Errorf("%w: %q", ErrInvalidLengthPrefix, text[:dot])
	}

	b.SetSize(size, true)

	pos := 0
	for i := dot + 1; i < len(text); i++ {
		idx := strings.IndexByte(encodingTable, text[i])
		if idx < 0 {
			continue
		}
		b.SetBitRange(pos, 6, uint32(idx))
		pos += 6
	}
	return nil
}
