package zflate

// bitReader consumes a byte slice at bit granularity, LSB-first within each
// byte, the way DEFLATE packs its bit fields.
type bitReader struct {
	byteStream    []byte // The compressed input; never modified.
	offset        int    // The next unread byte in byteStream.
	bitBuffer     uint64 // Bits read from the stream but not yet consumed.
	bitBufferSize uint8  // Number of valid bits in bitBuffer; byte-granular fills keep it under 40.
}

// newBitReader returns a bitReader positioned at offset in data.
func newBitReader(data []byte, offset int) *bitReader {
	return &bitReader{byteStream: data, offset: offset}
}

// fill reads whole bytes from the stream into the bit buffer until at least
// numberOfBits are buffered. Up to 7 extra bits may end up buffered; they
// stay for the next call. Returns ErrOutOfData when the stream runs out
// before numberOfBits are available.
func (r *bitReader) fill(numberOfBits uint8) error {
	for r.bitBufferSize < numberOfBits {
		if r.offset >= len(r.byteStream) {
			return ErrOutOfData
		}

		r.bitBuffer |= uint64(r.byteStream[r.offset]) << r.bitBufferSize
		r.bitBufferSize += 8
		r.offset++
	}

	return nil
}

// getValue consumes numberOfBits bits and returns them with the first bit
// read in the least-significant position. numberOfBits must be 0..32;
// 0 is a no-op returning 0.
func (r *bitReader) getValue(numberOfBits uint8) (uint32, error) {
	if numberOfBits > 32 {
		return 0, ErrValueOutOfBounds
	}

	if numberOfBits == 0 {
		return 0, nil
	}

	if err := r.fill(numberOfBits); err != nil {
		return 0, err
	}

	value := uint32(r.bitBuffer & (uint64(1)<<numberOfBits - 1))

	r.bitBuffer >>= numberOfBits
	r.bitBufferSize -= numberOfBits

	return value, nil
}

// alignToByte discards buffered bits up to the next byte boundary. Whole
// buffered bytes are kept: the discard count is bitBufferSize modulo 8.
func (r *bitReader) alignToByte() {
	skipBits := r.bitBufferSize & 0x07

	r.bitBuffer >>= skipBits
	r.bitBufferSize -= skipBits
}

// byteOffset returns the offset of the next unconsumed byte, rewinding past
// whole bytes that sit unread in the bit buffer.
func (r *bitReader) byteOffset() int {
	return r.offset - int(r.bitBufferSize/8)
}

// remainingBytes reports how many unconsumed bytes are left, counting whole
// bytes still held in the bit buffer.
func (r *bitReader) remainingBytes() int {
	return len(r.byteStream) - r.byteOffset()
}

// readBytes copies n raw bytes from the current byte position into dst and
// drops any buffered bits. Used for stored blocks, which restart at a byte
// boundary.
func (r *bitReader) readBytes(dst []byte, n int) error {
	offset := r.byteOffset()
	if n > len(r.byteStream)-offset {
		return ErrOutOfData
	}

	copy(dst[:n], r.byteStream[offset:offset+n])

	r.offset = offset + n
	r.bitBuffer = 0
	r.bitBufferSize = 0

	return nil
}
