package compress

// NoOpCompressor is the identity codec, used for the fbrb payload section
// when the archive's zipped flag is 0.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-operation compressor that passes data
// through unchanged.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged.
//
// Note: the returned slice shares the input's underlying memory. Callers
// must not mutate the input after calling this if they still hold the
// result.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
