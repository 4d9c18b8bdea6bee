package zflate

import (
	"encoding/binary"
	"fmt"
)

// Decompress decompresses a zlib-framed DEFLATE stream (RFC 1950) into a new
// buffer of capacity outLen and returns the decoded bytes. The trailing
// Adler-32 is verified unless opts disables it. Options nil means
// DefaultOptions (strict verification).
func Decompress(src []byte, outLen int, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if outLen < 0 {
		return nil, ErrNegativeOutLen
	}

	headerSize, err := readZlibHeader(src)
	if err != nil {
		return nil, err
	}

	reader := newBitReader(src, headerSize)
	out := make([]byte, outLen)

	decoded, err := decodeBlocks(reader, out)
	if err != nil {
		return nil, err
	}

	// The trailer starts at the next byte boundary after the last block;
	// whole bytes sitting unread in the bit buffer belong to it.
	trailerOffset := reader.byteOffset()
	if len(src)-trailerOffset < 4 {
		return nil, ErrOutOfData
	}

	storedChecksum := binary.BigEndian.Uint32(src[trailerOffset:])

	if opts.VerifyChecksum {
		calculatedChecksum := Adler32(out[:decoded], 1)
		if storedChecksum != calculatedChecksum {
			return nil, fmt.Errorf("%w: stored=0x%08x calculated=0x%08x",
				ErrChecksumMismatch, storedChecksum, calculatedChecksum)
		}
	}

	return out[:decoded], nil
}

// DecompressRaw decompresses a raw DEFLATE stream (RFC 1951, no zlib header
// or checksum) into a new buffer of capacity outLen.
func DecompressRaw(src []byte, outLen int) ([]byte, error) {
	if outLen < 0 {
		return nil, ErrNegativeOutLen
	}

	reader := newBitReader(src, 0)
	out := make([]byte, outLen)

	decoded, err := decodeBlocks(reader, out)
	if err != nil {
		return nil, err
	}

	return out[:decoded], nil
}

// readZlibHeader validates the 2-byte RFC 1950 header and returns the offset
// of the first DEFLATE block. Preset dictionaries are rejected: there is no
// dictionary to apply.
func readZlibHeader(data []byte) (int, error) {
	if len(data) < 2 {
		return 0, ErrOutOfData
	}

	compressionMethod := data[0] & 0x0f
	compressionInformation := data[0] >> 4
	flags := data[1]

	if compressionMethod != CompressionDeflate {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedCompressionMethod, compressionMethod)
	}

	if flags&0x20 != 0 {
		return 0, fmt.Errorf("%w: preset dictionary", ErrUnsupportedValue)
	}

	windowSize := 1 << (compressionInformation + 8)
	if windowSize > MaxWindowSize {
		return 0, fmt.Errorf("%w: compression window size %d", ErrUnsupportedValue, windowSize)
	}

	return 2, nil
}

// decodeBlocks iterates DEFLATE blocks until the final-block flag, writing
// decoded bytes into out from the start, and returns the decoded byte count.
// Fixed Huffman trees are built lazily on the first fixed block and reused
// for the rest of this call.
func decodeBlocks(reader *bitReader, out []byte) (int, error) {
	var fixedLiteralsTree, fixedDistancesTree *huffmanTree

	offset := 0

	for {
		value, err := reader.getValue(3)
		if err != nil {
			return 0, err
		}

		lastBlock := value&0x01 != 0
		blockType := value >> 1

		switch blockType {
		case blockTypeUncompressed:
			offset, err = readStoredBlock(reader, out, offset)

		case blockTypeHuffmanFixed:
			if fixedLiteralsTree == nil {
				fixedLiteralsTree, fixedDistancesTree, err = buildFixedTrees()
				if err != nil {
					return 0, err
				}
			}

			offset, err = decodeHuffman(reader, fixedLiteralsTree, fixedDistancesTree, out, offset)

		case blockTypeHuffmanDynamic:
			var literalsTree, distancesTree *huffmanTree

			literalsTree, distancesTree, err = buildDynamicTrees(reader)
			if err == nil {
				offset, err = decodeHuffman(reader, literalsTree, distancesTree, out, offset)
			}

		default:
			err = fmt.Errorf("%w: reserved block type", ErrUnsupportedValue)
		}

		if err != nil {
			return 0, err
		}

		if lastBlock {
			return offset, nil
		}
	}
}

// readStoredBlock copies an uncompressed block verbatim. The block restarts
// at a byte boundary: a 16-bit size, its one's complement, then the raw
// bytes.
func readStoredBlock(reader *bitReader, out []byte, offset int) (int, error) {
	reader.alignToByte()

	value, err := reader.getValue(32)
	if err != nil {
		return 0, err
	}

	blockSize := int(value & 0xffff)
	blockSizeCopy := int((value >> 16) ^ 0xffff)

	if blockSize != blockSizeCopy {
		return 0, fmt.Errorf("%w: %d != %d", ErrValueMismatch, blockSize, blockSizeCopy)
	}

	if blockSize == 0 {
		return offset, nil
	}

	if blockSize > reader.remainingBytes() {
		return 0, ErrOutOfData
	}

	if offset+blockSize > len(out) {
		return 0, fmt.Errorf("%w: stored block of %d bytes at offset %d", ErrInsufficientSpace, blockSize, offset)
	}

	if err := reader.readBytes(out[offset:], blockSize); err != nil {
		return 0, err
	}

	return offset + blockSize, nil
}

// buildFixedTrees builds the literal and distance trees with the code sizes
// RFC 1951 fixes: 8 bits for literals 0..143 and 280..287, 9 bits for
// 144..255, 7 bits for 256..279, 5 bits for every distance code.
func buildFixedTrees() (*huffmanTree, *huffmanTree, error) {
	var codeSizes [MaxLiteralCodes + MaxDistanceCodes]uint8

	for symbol := range codeSizes {
		switch {
		case symbol < 144:
			codeSizes[symbol] = 8
		case symbol < 256:
			codeSizes[symbol] = 9
		case symbol < 280:
			codeSizes[symbol] = 7
		case symbol < MaxLiteralCodes:
			codeSizes[symbol] = 8
		default:
			codeSizes[symbol] = 5
		}
	}

	literalsTree := newHuffmanTree(MaxLiteralCodes, MaxCodeSize)
	if err := literalsTree.build(codeSizes[:MaxLiteralCodes]); err != nil {
		return nil, nil, err
	}

	distancesTree := newHuffmanTree(MaxDistanceCodes, MaxCodeSize)
	if err := distancesTree.build(codeSizes[MaxLiteralCodes:]); err != nil {
		return nil, nil, err
	}

	return literalsTree, distancesTree, nil
}

// buildDynamicTrees reads the code-length table embedded in a dynamic block
// and builds its literal and distance trees. A 19-symbol pre-code tree,
// transmitted as 3-bit lengths in codeSizesSequence order, encodes the real
// per-symbol code sizes with run-length escapes: 16 repeats the previous
// size 3..6 times, 17 emits 3..10 zeros, 18 emits 11..138 zeros.
func buildDynamicTrees(reader *bitReader) (*huffmanTree, *huffmanTree, error) {
	value, err := reader.getValue(14)
	if err != nil {
		return nil, nil, err
	}

	numberOfLiteralCodes := int(value&0x1f) + 257
	numberOfDistanceCodes := int((value>>5)&0x1f) + 1
	numberOfPreCodes := int(value>>10) + 4

	if numberOfLiteralCodes > 286 {
		return nil, nil, fmt.Errorf("%w: %d literal codes", ErrValueOutOfBounds, numberOfLiteralCodes)
	}

	if numberOfDistanceCodes > MaxDistanceCodes {
		return nil, nil, fmt.Errorf("%w: %d distance codes", ErrValueOutOfBounds, numberOfDistanceCodes)
	}

	var preCodeSizes [PreCodes]uint8

	for index := 0; index < numberOfPreCodes; index++ {
		value, err = reader.getValue(3)
		if err != nil {
			return nil, nil, err
		}

		preCodeSizes[codeSizesSequence[index]] = uint8(value)
	}

	preCodesTree := newHuffmanTree(PreCodes, MaxCodeSize)
	if err := preCodesTree.build(preCodeSizes[:]); err != nil {
		return nil, nil, err
	}

	numberOfCodeSizes := numberOfLiteralCodes + numberOfDistanceCodes
	codeSizes := make([]uint8, numberOfCodeSizes)

	index := 0
	for index < numberOfCodeSizes {
		symbol, err := preCodesTree.getSymbol(reader)
		if err != nil {
			return nil, nil, err
		}

		if symbol < 16 {
			codeSizes[index] = uint8(symbol)
			index++

			continue
		}

		var codeSize uint8
		var timesToRepeat int

		switch symbol {
		case 16:
			if index == 0 {
				return nil, nil, fmt.Errorf("%w: repeat code with no previous code size", ErrValueOutOfBounds)
			}

			codeSize = codeSizes[index-1]

			value, err = reader.getValue(2)
			if err != nil {
				return nil, nil, err
			}

			timesToRepeat = int(value) + 3

		case 17:
			value, err = reader.getValue(3)
			if err != nil {
				return nil, nil, err
			}

			timesToRepeat = int(value) + 3

		case 18:
			value, err = reader.getValue(7)
			if err != nil {
				return nil, nil, err
			}

			timesToRepeat = int(value) + 11

		default:
			return nil, nil, fmt.Errorf("%w: pre-code symbol %d", ErrInvalidSymbol, symbol)
		}

		if timesToRepeat > numberOfCodeSizes-index {
			return nil, nil, fmt.Errorf("%w: repeat of %d at code size %d", ErrValueOutOfBounds, timesToRepeat, index)
		}

		for ; timesToRepeat > 0; timesToRepeat-- {
			codeSizes[index] = codeSize
			index++
		}
	}

	if codeSizes[EndOfBlock] == 0 {
		return nil, nil, ErrMissingEndOfBlockCode
	}

	literalsTree := newHuffmanTree(numberOfLiteralCodes, MaxCodeSize)
	if err := literalsTree.build(codeSizes[:numberOfLiteralCodes]); err != nil {
		return nil, nil, err
	}

	distancesTree := newHuffmanTree(numberOfDistanceCodes, MaxCodeSize)
	if err := distancesTree.build(codeSizes[numberOfLiteralCodes:]); err != nil {
		return nil, nil, err
	}

	return literalsTree, distancesTree, nil
}

// decodeHuffman decodes one compressed block into out starting at offset and
// returns the new offset. Symbols below 256 are literal bytes, 256 ends the
// block, 257..285 start a length/distance back-reference into the already
// decoded output.
func decodeHuffman(reader *bitReader, literalsTree, distancesTree *huffmanTree, out []byte, offset int) (int, error) {
	for {
		symbol, err := literalsTree.getSymbol(reader)
		if err != nil {
			return 0, err
		}

		if symbol < EndOfBlock {
			if offset >= len(out) {
				return 0, fmt.Errorf("%w: literal at offset %d", ErrInsufficientSpace, offset)
			}

			out[offset] = byte(symbol)
			offset++

			continue
		}

		if symbol == EndOfBlock {
			return offset, nil
		}

		if symbol >= 286 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidSymbol, symbol)
		}

		lengthCode := symbol - 257

		extraBits, err := reader.getValue(literalCodesExtraBits[lengthCode])
		if err != nil {
			return 0, err
		}

		compressionSize := int(literalCodesBase[lengthCode]) + int(extraBits)

		symbol, err = distancesTree.getSymbol(reader)
		if err != nil {
			return 0, err
		}

		extraBits, err = reader.getValue(distanceCodesExtraBits[symbol])
		if err != nil {
			return 0, err
		}

		compressionOffset := int(distanceCodesBase[symbol]) + int(extraBits)

		if compressionOffset > offset {
			return 0, fmt.Errorf("%w: distance %d at offset %d", ErrValueOutOfBounds, compressionOffset, offset)
		}

		if offset+compressionSize > len(out) {
			return 0, fmt.Errorf("%w: back-reference of %d bytes at offset %d", ErrInsufficientSpace, compressionSize, offset)
		}

		// Source and destination overlap when the distance is shorter than
		// the length (RLE-like runs); each written byte must be visible to
		// the next read, so copy one byte at a time.
		for ; compressionSize > 0; compressionSize-- {
			out[offset] = out[offset-compressionOffset]
			offset++
		}
	}
}
