package zflate

// DEFLATE (RFC 1951) and zlib (RFC 1950) format constants.
const (
	MaxCodeSize        = 15    // Maximum Huffman code length in bits.
	MaxLiteralCodes    = 288   // Literal/length alphabet size (286 used, 2 reserved).
	MaxDistanceCodes   = 30    // Distance alphabet size.
	PreCodes           = 19    // Code-length (pre-code) alphabet size.
	EndOfBlock         = 256   // Literal symbol that terminates a compressed block.
	MaxWindowSize      = 32768 // Largest back-reference window zlib allows.
	CompressionDeflate = 8     // zlib compression method nibble for deflate.
)

// Block types from the 3-bit block header.
const (
	blockTypeUncompressed   = 0
	blockTypeHuffmanFixed   = 1
	blockTypeHuffmanDynamic = 2
	blockTypeReserved       = 3
)

// Order in which the 3-bit pre-code lengths are stored in a dynamic block.
var codeSizesSequence = [PreCodes]uint8{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// Base values and extra-bit counts for length codes 257..285.
var literalCodesBase = [29]uint16{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var literalCodesExtraBits = [29]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// Base values and extra-bit counts for distance codes 0..29.
var distanceCodesBase = [30]uint16{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
	257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193,
	12289, 16385, 24577,
}

var distanceCodesExtraBits = [30]uint8{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}
