package zflate

import (
	"hash/adler32"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdler32KnownVector(t *testing.T) {
	data := []byte{
		0x78, 0xda, 0xbd, 0x59, 0x6d, 0x8f, 0xdb, 0xb8,
		0x11, 0xfe, 0x7c, 0xfa, 0x15, 0xc4, 0x7e, 0xb9,
	}

	require.Equal(t, uint32(0x5101098c), Adler32(data, 0))
}

func TestAdler32InitialValue(t *testing.T) {
	// RFC 1950 checksums start at 1.
	require.Equal(t, uint32(1), Adler32(nil, 1))
	require.Equal(t, uint32(0x00420042), Adler32([]byte("A"), 1))
}

func TestAdler32MatchesStdlib(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	// Sizes straddle the 5552-byte reduction chunk.
	for _, size := range []int{0, 1, 16, 5551, 5552, 5553, 100000} {
		data := make([]byte, size)
		_, err := rnd.Read(data)
		require.NoError(t, err)

		require.Equalf(t, adler32.Checksum(data), Adler32(data, 1), "size=%d", size)
	}
}

func TestAdler32Resumes(t *testing.T) {
	data := []byte("split checksum input, two halves")
	half := len(data) / 2

	whole := Adler32(data, 1)
	resumed := Adler32(data[half:], Adler32(data[:half], 1))

	require.Equal(t, whole, resumed)
}
