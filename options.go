package zflate

// Options configures Decompress and DecompressRaw behavior.
type Options struct {
	// VerifyChecksum: if true, Decompress returns an error when the trailing
	// Adler-32 does not match the decoded output. If false, mismatch is
	// ignored (lenient mode for producers known to write bad trailers).
	VerifyChecksum bool
}

// DefaultOptions returns options for default behavior: strict checksum verification.
func DefaultOptions() *Options {
	return &Options{
		VerifyChecksum: true,
	}
}

// LenientOptions returns options that decode the stream but ignore a
// mismatching Adler-32 trailer.
func LenientOptions() *Options {
	return &Options{
		VerifyChecksum: false,
	}
}
