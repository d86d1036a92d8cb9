// SPDX-License-Identifier: MIT
// Package: lvmorse/snapshot
//
// errors.go — sentinel errors.

package snapshot

import "errors"

var (
	// ErrNilInput indicates a nil complex, mesh, reader or writer.
	ErrNilInput = errors.New("snapshot: nil input")

	// ErrBadMagic indicates data that is not a snapshot.
	ErrBadMagic = errors.New("snapshot: bad magic")

	// ErrUnsupportedVersion indicates a snapshot written by a newer format.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported format version")

	// ErrUnknownCompression indicates an unknown compression byte.
	ErrUnknownCompression = errors.New("snapshot: unknown compression")

	// ErrUnknownCodec indicates an unknown codec byte.
	ErrUnknownCodec = errors.New("snapshot: unknown codec")

	// ErrCorrupt indicates a truncated body or a size mismatch.
	ErrCorrupt = errors.New("snapshot: corrupt data")

	// ErrMeshMismatch indicates a snapshot decoded against a different mesh.
	ErrMeshMismatch = errors.New("snapshot: mesh does not match snapshot")
)
