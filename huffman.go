package zflate

// huffmanTree is a canonical Huffman decode table: per-length code counts
// plus the symbols ordered by (code length, symbol index). Codes never have
// to be stored; the canonical construction re-derives them while decoding.
type huffmanTree struct {
	maxCodeSize    uint8
	codeSizeCounts [MaxCodeSize + 1]int
	symbols        []uint16
}

// newHuffmanTree returns an empty tree for an alphabet of numberOfSymbols
// codes of at most maxCodeSize bits. build must be called before getSymbol.
func newHuffmanTree(numberOfSymbols int, maxCodeSize uint8) *huffmanTree {
	return &huffmanTree{
		maxCodeSize: maxCodeSize,
		symbols:     make([]uint16, numberOfSymbols),
	}
}

// build fills the decode table from per-symbol code sizes. A size of 0 means
// the symbol does not occur. Sizes above maxCodeSize are rejected with
// ErrInvalidCodeLengths. An under- or over-subscribed set of sizes is not
// rejected here; getSymbol reports ErrCorruptedCode when such a code is hit.
func (t *huffmanTree) build(codeSizes []uint8) error {
	for i := range t.codeSizeCounts {
		t.codeSizeCounts[i] = 0
	}

	for _, codeSize := range codeSizes {
		if codeSize > t.maxCodeSize {
			return ErrInvalidCodeLengths
		}

		t.codeSizeCounts[codeSize]++
	}

	// Zero-size entries carry no code.
	t.codeSizeCounts[0] = 0

	// First symbol index per code size, cumulative over ascending sizes.
	var symbolOffsets [MaxCodeSize + 2]int
	for codeSize := uint8(1); codeSize <= t.maxCodeSize; codeSize++ {
		symbolOffsets[codeSize+1] = symbolOffsets[codeSize] + t.codeSizeCounts[codeSize]
	}

	// Canonical order: symbols grouped by code size, ascending symbol index
	// within each group.
	for symbol, codeSize := range codeSizes {
		if codeSize == 0 {
			continue
		}

		t.symbols[symbolOffsets[codeSize]] = uint16(symbol) // #nosec G115 -- alphabet is at most 288 symbols
		symbolOffsets[codeSize]++
	}

	return nil
}

// getSymbol decodes one symbol, pulling a bit at a time from r. The
// candidate code grows MSB-first while the canonical first-code value is
// tracked per length; a match within the current length's count range
// identifies the symbol. Consuming maxCodeSize bits without a match means
// the stream carries a code the table does not describe.
func (t *huffmanTree) getSymbol(r *bitReader) (uint16, error) {
	code := 0
	firstCode := 0
	firstIndex := 0

	for codeSize := uint8(1); codeSize <= t.maxCodeSize; codeSize++ {
		bit, err := r.getValue(1)
		if err != nil {
			return 0, err
		}

		code |= int(bit)

		count := t.codeSizeCounts[codeSize]
		if code-firstCode < count {
			return t.symbols[firstIndex+code-firstCode], nil
		}

		firstIndex += count
		firstCode = (firstCode + count) << 1
		code <<= 1
	}

	return 0, ErrCorruptedCode
}
