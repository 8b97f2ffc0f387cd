package fbrb

import "github.com/frankelstner/fbassets/internal/options"

// Options controls Pack's output.
type Options struct {
	// CompressionLevel is the gzip level (0-9) applied to the payload
	// stream. 0 disables payload compression entirely (the archive's
	// zipped flag is cleared and the payload is stored raw); the
	// directory blob is always gzipped at level 1 regardless of this
	// setting.
	CompressionLevel int
	// TempFileStaging is recorded by WithTempFileStaging but Pack does
	// not read it: the payload stream is always accumulated in memory,
	// whatever its value. It has no effect on the output bytes.
	TempFileStaging bool
}

// Option configures Pack.
type Option = options.Option[*Options]

func defaultOptions() *Options {
	return &Options{CompressionLevel: 1}
}

// WithCompressionLevel sets the payload gzip level (0-9). 0 disables
// payload compression.
func WithCompressionLevel(level int) Option {
	return options.NoError(func(o *Options) {
		o.CompressionLevel = level
	})
}

// WithTempFileStaging sets Options.TempFileStaging. Pack does not read
// that field; the payload stream is not staged through a temporary file.
func WithTempFileStaging(enabled bool) Option {
	return options.NoError(func(o *Options) {
		o.TempFileStaging = enabled
	})
}
