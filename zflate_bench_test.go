package zflate

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"fmt"
	"testing"
)

var benchInput = bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), 512)

func benchZlibCompress(b *testing.B, data []byte, level int) []byte {
	b.Helper()

	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		b.Fatal(err)
	}
	if _, err := zw.Write(data); err != nil {
		b.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		b.Fatal(err)
	}

	return buf.Bytes()
}

func BenchmarkDecompress(b *testing.B) {
	enc := benchZlibCompress(b, benchInput, zlib.DefaultCompression)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decompress(enc, len(benchInput), nil)
	}
}

func BenchmarkDecompressLevels(b *testing.B) {
	levels := []int{zlib.NoCompression, zlib.BestSpeed, zlib.DefaultCompression, zlib.BestCompression}
	for _, level := range levels {
		enc := benchZlibCompress(b, benchInput, level)
		b.Run(fmt.Sprintf("Level=%d", level), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = Decompress(enc, len(benchInput), nil)
			}
		})
	}
}

func BenchmarkDecompressRaw(b *testing.B) {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		b.Fatal(err)
	}
	if _, err := fw.Write(benchInput); err != nil {
		b.Fatal(err)
	}
	if err := fw.Close(); err != nil {
		b.Fatal(err)
	}
	enc := buf.Bytes()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DecompressRaw(enc, len(benchInput))
	}
}

func BenchmarkAdler32(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchInput)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Adler32(benchInput, 1)
	}
}
