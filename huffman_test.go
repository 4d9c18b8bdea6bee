package zflate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHuffmanCanonicalAssignment(t *testing.T) {
	// Lengths {A:2, B:1, C:3, D:3} must yield the canonical codes
	// B=0, A=10, C=110, D=111.
	codeSizes := []uint8{2, 1, 3, 3}

	tree := newHuffmanTree(len(codeSizes), MaxCodeSize)
	require.NoError(t, tree.build(codeSizes))

	codes := []struct {
		symbol uint16
		code   uint32
		bits   uint8
	}{
		{1, 0b0, 1},
		{0, 0b10, 2},
		{2, 0b110, 3},
		{3, 0b111, 3},
	}

	for _, c := range codes {
		w := &bitWriter{}
		w.writeCode(c.code, c.bits)

		symbol, err := tree.getSymbol(newBitReader(w.flush(), 0))
		require.NoError(t, err)
		require.Equal(t, c.symbol, symbol)
	}

	// The same codes decode back to back from one stream.
	w := &bitWriter{}
	w.writeCode(0b111, 3)
	w.writeCode(0b0, 1)
	w.writeCode(0b10, 2)
	w.writeCode(0b110, 3)

	r := newBitReader(w.flush(), 0)
	for _, want := range []uint16{3, 1, 0, 2} {
		symbol, err := tree.getSymbol(r)
		require.NoError(t, err)
		require.Equal(t, want, symbol)
	}
}

func TestHuffmanFixedLiteralCodes(t *testing.T) {
	literalsTree, distancesTree, err := buildFixedTrees()
	require.NoError(t, err)

	// Spot-check the RFC 1951 fixed code table boundaries.
	codes := []struct {
		symbol uint16
		code   uint32
		bits   uint8
	}{
		{0, 0x30, 8},
		{143, 0xbf, 8},
		{144, 0x190, 9},
		{255, 0x1ff, 9},
		{256, 0x00, 7},
		{279, 0x17, 7},
		{280, 0xc0, 8},
		{287, 0xc7, 8},
	}

	for _, c := range codes {
		w := &bitWriter{}
		w.writeCode(c.code, c.bits)

		symbol, err := literalsTree.getSymbol(newBitReader(w.flush(), 0))
		require.NoError(t, err)
		require.Equal(t, c.symbol, symbol)
	}

	for distance := uint16(0); distance < MaxDistanceCodes; distance++ {
		w := &bitWriter{}
		w.writeCode(uint32(distance), 5)

		symbol, err := distancesTree.getSymbol(newBitReader(w.flush(), 0))
		require.NoError(t, err)
		require.Equal(t, distance, symbol)
	}
}

func TestHuffmanBuildRejectsOversizeLength(t *testing.T) {
	tree := newHuffmanTree(2, MaxCodeSize)
	require.ErrorIs(t, tree.build([]uint8{16, 1}), ErrInvalidCodeLengths)
}

func TestHuffmanIncompleteCode(t *testing.T) {
	// Only code 0 exists; an all-ones stream never matches and must stop
	// after maxCodeSize bits instead of reading past the table.
	tree := newHuffmanTree(1, MaxCodeSize)
	require.NoError(t, tree.build([]uint8{1}))

	_, err := tree.getSymbol(newBitReader([]byte{0xff, 0xff}, 0))
	require.ErrorIs(t, err, ErrCorruptedCode)
}

func TestHuffmanGetSymbolOutOfData(t *testing.T) {
	tree := newHuffmanTree(4, MaxCodeSize)
	require.NoError(t, tree.build([]uint8{2, 2, 2, 2}))

	_, err := tree.getSymbol(newBitReader(nil, 0))
	require.ErrorIs(t, err, ErrOutOfData)
}
