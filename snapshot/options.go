// SPDX-License-Identifier: MIT
// Package: lvmorse/snapshot
//
// options.go — functional options for Encode.

package snapshot

// Options configures Encode.
type Options struct {
	Compression Compression
	Codec       CodecID
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns zstd compression and the go-json codec.
func DefaultOptions() Options {
	return Options{Compression: CompressionZSTD, Codec: CodecGoJSON}
}

// WithCompression selects the body compression. Panics on an unknown value.
func WithCompression(c Compression) Option {
	if c > CompressionZSTD {
		panic("snapshot: WithCompression(unknown)")
	}
	return func(o *Options) { o.Compression = c }
}

// WithCodec selects the body codec. Panics on an unknown value.
func WithCodec(id CodecID) Option {
	if _, ok := byID(id); !ok {
		panic("snapshot: WithCodec(unknown)")
	}
	return func(o *Options) { o.Codec = id }
}
