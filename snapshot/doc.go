// SPDX-License-Identifier: MIT

// Package snapshot persists Morse complexes.
//
// Format (little endian):
//
//	[0:4]   magic "LVMC"
//	[4]     format version (1)
//	[5]     compression (0 none, 1 LZ4, 2 zstd)
//	[6]     codec (0 encoding/json, 1 go-json)
//	[7]     reserved, zero
//	[8:12]  uncompressed body size
//	[12:16] stored body size
//	[16:]   body
//
// The body is the codec encoding of a flat document: critical cell indices,
// paths, separatrices and the reduction state. The mesh itself is not
// stored; Decode re-attaches the complex to a caller-supplied mesh, checks
// that the cell counts match, rebuilds back references and validates the
// result.
//
// When compression does not shrink the body it is stored raw and the header
// says so.
package snapshot
