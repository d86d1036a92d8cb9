// SPDX-License-Identifier: MIT
// Package: lvmorse/morse
//
// types.go — critical cell records, paths and separatrices.

package morse

import "github.com/katalvlaran/lvmorse/mesh"

// Path is an alternating sequence of cell indices along a V-path. The
// dimension of each entry follows from its position (see package doc).
// Paths are never modified after creation; splicing allocates new ones.
type Path []uint32

// First returns the starting cell index.
func (p Path) First() uint32 { return p[0] }

// Last returns the terminal cell index.
func (p Path) Last() uint32 { return p[len(p)-1] }

// CritVertex is a minimum.
type CritVertex struct {
	Index uint32
	Value float64
	// Saddles maps a connected saddle to the connection multiplicity.
	Saddles map[uint32]int
}

// CritEdge is a saddle.
type CritEdge struct {
	Index uint32
	Key   mesh.Key
	// Minima maps a connected minimum to the V-paths [saddle, ..., minimum].
	Minima map[uint32][]Path
	// Maxima maps a connected maximum to the connection multiplicity.
	Maxima map[uint32]int
}

// CritFace is a maximum.
type CritFace struct {
	Index uint32
	Key   mesh.Key
	// Saddles maps a connected saddle to the V-paths [maximum, ..., saddle].
	Saddles map[uint32][]Path
}

// MinimumMultiplicity returns the number of paths from the saddle to min.
func (e *CritEdge) MinimumMultiplicity(min uint32) int { return len(e.Minima[min]) }

// Separatrix is a connection destroyed by a cancellation, kept for ridge and
// valley extraction. Dimension 1 runs saddle→minimum, dimension 2 runs
// maximum→saddle.
type Separatrix struct {
	Origin      mesh.CellID
	Destination mesh.CellID
	Dimension   int
	Path        Path
	// Persistence is the mean scalar value along Path.
	Persistence float64
}

// Kind distinguishes separatrix families.
type Kind int

const (
	// KindAll selects both families.
	KindAll Kind = iota
	// KindMaximal selects maximum→saddle lines (ridges).
	KindMaximal
	// KindMinimal selects saddle→minimum lines (valleys).
	KindMinimal
)

// Matches reports whether s belongs to the family.
func (k Kind) Matches(s *Separatrix) bool {
	switch k {
	case KindMaximal:
		return s.Dimension == 2
	case KindMinimal:
		return s.Dimension == 1
	default:
		return true
	}
}
