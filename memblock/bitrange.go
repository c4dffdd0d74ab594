package memblock

// Bit ranges address the block as a contiguous bit string: bit 0 is the
// least-significant bit of byte 0, and bit indices run across byte
// boundaries. Fields are packed little-endian, so the first bit of a
// range is the least-significant bit of the assembled value.

// GetBitRange assembles an integer from numBits bits starting at
// bitStart. At most 32 bits are read; bit positions at or beyond the
// block end read as zero.
func (b *Block) GetBitRange(bitStart, numBits int) uint32 {
	if bitStart < 0 || numBits <= 0 {
		return 0
	}
	if numBits > 32 {
		numBits = 32
	}

	var res uint32
	byteIdx := bitStart >> 3
	offsetInByte := bitStart & 7
	bitsSoFar := 0

	for numBits > 0 && byteIdx < len(b.data) {
		bitsThisTime := numBits
		if avail := 8 - offsetInByte; bitsThisTime > avail {
			bitsThisTime = avail
		}
		fieldMask := byte((uint32(1)<<bitsThisTime - 1) << offsetInByte)
		res |= uint32((b.data[byteIdx]&fieldMask)>>offsetInByte) << bitsSoFar

		bitsSoFar += bitsThisTime
		numBits -= bitsThisTime
		byteIdx++
		offsetInByte = 0
	}
	return res
}

// SetBitRange writes the low numBits bits of value into the range
// starting at bitStart. At most 32 bits are written; writing stops
// silently once the byte index reaches the block end. The block is never
// resized.
func (b *Block) SetBitRange(bitStart, numBits int, value uint32) {
	if bitStart < 0 || numBits <= 0 {
		return
	}
	if numBits > 32 {
		numBits = 32
	}

	byteIdx := bitStart >> 3
	offsetInByte := bitStart & 7

	for numBits > 0 && byteIdx < len(b.data) {
		bitsThisTime := numBits
		if avail := 8 - offsetInByte; bitsThisTime > avail {
			bitsThisTime = avail
		}
		fieldMask := byte((uint32(1)<<bitsThisTime - 1) << offsetInByte)
		b.data[byteIdx] = (b.data[byteIdx] &^ fieldMask) | (byte(value<<offsetInByte) & fieldMask)

		value >>= bitsThisTime
		numBits -= bitsThisTime
		byteIdx++
		offsetInByte = 0
	}
}
