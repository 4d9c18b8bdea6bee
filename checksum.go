package zflate

// adlerModulo is the largest prime below 65536 (RFC 1950).
// adlerChunkSize is the most bytes the two running sums can absorb before
// the upper word could overflow 32 bits, so reduction happens per chunk.
const (
	adlerModulo    = 65521
	adlerChunkSize = 5552
)

// Adler32 computes the zlib Adler-32 checksum of data, continuing from
// initial. The zlib trailer uses initial 1 per RFC 1950; pass 0 to checksum
// a buffer from scratch the way the standalone tooling does.
func Adler32(data []byte, initial uint32) uint32 {
	lowerWord := initial & 0xffff
	upperWord := (initial >> 16) & 0xffff

	for len(data) > 0 {
		chunk := data
		if len(chunk) > adlerChunkSize {
			chunk = chunk[:adlerChunkSize]
		}

		for _, b := range chunk {
			lowerWord += uint32(b)
			upperWord += lowerWord
		}

		lowerWord %= adlerModulo
		upperWord %= adlerModulo

		data = data[len(chunk):]
	}

	return (upperWord << 16) | lowerWord
}
