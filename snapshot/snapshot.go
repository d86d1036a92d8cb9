// SPDX-License-Identifier: MIT
// Package: lvmorse/snapshot
//
// snapshot.go — Encode and Decode.

package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/lvmorse/mesh"
	"github.com/katalvlaran/lvmorse/morse"
)

// Version is the current format version.
const Version uint8 = 1

const headerSize = 16

// MaxRawSize bounds the decoded body a header may announce.
const MaxRawSize = 1 << 30

var magic = [4]byte{'L', 'V', 'M', 'C'}

// header is the fixed-size snapshot prefix.
type header struct {
	Version     uint8
	Compression Compression
	Codec       CodecID
	RawSize     uint32
	BodySize    uint32
}

func (h header) marshal() []byte {
	b := make([]byte, headerSize)
	copy(b[0:4], magic[:])
	b[4] = h.Version
	b[5] = uint8(h.Compression)
	b[6] = uint8(h.Codec)
	binary.LittleEndian.PutUint32(b[8:], h.RawSize)
	binary.LittleEndian.PutUint32(b[12:], h.BodySize)
	return b
}

func parseHeader(b []byte) (header, error) {
	if !bytes.Equal(b[0:4], magic[:]) {
		return header{}, ErrBadMagic
	}
	h := header{
		Version:     b[4],
		Compression: Compression(b[5]),
		Codec:       CodecID(b[6]),
		RawSize:     binary.LittleEndian.Uint32(b[8:]),
		BodySize:    binary.LittleEndian.Uint32(b[12:]),
	}
	if h.Version == 0 || h.Version > Version {
		return header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if h.Compression > CompressionZSTD {
		return header{}, fmt.Errorf("%w: %d", ErrUnknownCompression, b[5])
	}
	if h.RawSize > MaxRawSize || h.BodySize > MaxRawSize {
		return header{}, fmt.Errorf("%w: header announces raw=%d body=%d bytes", ErrCorrupt, h.RawSize, h.BodySize)
	}
	return h, nil
}

// Encode writes c to w.
//
// Steps:
//  1. Flatten the complex into a document.
//  2. Encode it with the selected codec.
//  3. Compress and write header + body.
func Encode(w io.Writer, c *morse.Complex, opts ...Option) error {
	if w == nil || c == nil || c.Mesh == nil {
		return ErrNilInput
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	codec, _ := byID(cfg.Codec)

	raw, err := codec.Marshal(toDocument(c))
	if err != nil {
		return fmt.Errorf("snapshot: %s marshal: %w", codec.Name(), err)
	}
	if len(raw) > MaxRawSize {
		return fmt.Errorf("%w: body of %d bytes", ErrCorrupt, len(raw))
	}
	body, applied, err := compress(raw, cfg.Compression)
	if err != nil {
		return err
	}

	h := header{
		Version:     Version,
		Compression: applied,
		Codec:       cfg.Codec,
		RawSize:     uint32(len(raw)),
		BodySize:    uint32(len(body)),
	}
	if _, err := w.Write(h.marshal()); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("snapshot: write body: %w", err)
	}
	return nil
}

// Decode reads a snapshot from r and attaches it to m.
//
// Errors: ErrBadMagic, ErrUnsupportedVersion, ErrUnknownCompression,
// ErrUnknownCodec, ErrCorrupt, ErrMeshMismatch, or a morse invariant error
// from Validate.
func Decode(r io.Reader, m *mesh.Mesh) (*morse.Complex, error) {
	if r == nil || m == nil {
		return nil, ErrNilInput
	}

	// 1) Header.
	hb := make([]byte, headerSize)
	if _, err := io.ReadFull(r, hb); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrCorrupt, err)
	}
	h, err := parseHeader(hb)
	if err != nil {
		return nil, err
	}
	codec, ok := byID(h.Codec)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCodec, uint8(h.Codec))
	}

	// 2) Body. The buffer grows with the bytes actually read, never from the
	// announced size alone.
	body, err := io.ReadAll(io.LimitReader(r, int64(h.BodySize)))
	if err != nil {
		return nil, fmt.Errorf("%w: body: %v", ErrCorrupt, err)
	}
	if len(body) != int(h.BodySize) {
		return nil, fmt.Errorf("%w: body: %d of %d bytes", ErrCorrupt, len(body), h.BodySize)
	}
	raw, err := decompress(body, h.Compression, int(h.RawSize))
	if err != nil {
		return nil, err
	}

	// 3) Document.
	var d document
	if err := codec.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, codec.Name(), err)
	}
	c, err := fromDocument(&d, m)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return c, nil
}
