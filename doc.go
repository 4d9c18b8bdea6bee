/*
Package zflate implements DEFLATE (RFC 1951) decompression with zlib
(RFC 1950) framing.

Input is a whole in-memory buffer: a 2-byte zlib header, one or more DEFLATE
blocks (stored, fixed Huffman or dynamic Huffman), and a trailing big-endian
Adler-32 over the decoded output. Bit fields are packed LSB-first within each
byte; Huffman codes are canonical, rebuilt from per-symbol code lengths.
LZ77 back-references copy from earlier positions in the output buffer, byte
by byte so that overlapping runs expand correctly.

Use Decompress(src, outLen, opts) with nil for default (strict Adler-32
verification). Use DecompressRaw(src, outLen) for a raw DEFLATE stream
without the zlib header and checksum. Use LenientOptions() for producers
known to write bad trailers. Adler32 is exported for callers that checksum
buffers themselves.

Only decompression is implemented; the caller supplies the output capacity
and receives exactly the decoded bytes.

# Examples

Decompress a zlib stream with default options:

	out, err := zflate.Decompress(encoded, expectedLen, nil)
	if err != nil {
		return err
	}

Decompress a raw DEFLATE stream:

	out, err := zflate.DecompressRaw(encoded, expectedLen)
	if err != nil {
		return err
	}

Decompress but ignore a known-bad Adler-32 trailer:

	out, err := zflate.Decompress(encoded, expectedLen, zflate.LenientOptions())

Checksum a buffer from scratch (the zlib trailer itself starts at 1):

	sum := zflate.Adler32(data, 0)
*/
package zflate
