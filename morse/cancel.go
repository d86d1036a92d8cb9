// SPDX-License-Identifier: MIT
// Package: lvmorse/morse
//
// cancel.go — transactional saddle/extremum cancellation.
//
// Contract:
//   • Only a connection of multiplicity exactly 1 can be cancelled.
//   • Every connection of the cancelled saddle is recorded as a Separatrix
//     before it is destroyed.
//   • Survivors are reconnected through the cancelled pair:
//       minimum case: path(s′→min) + reverse(interior(saddle→min)) + path(saddle→m′)
//       maximum case: path(M′→saddle) + reverse(interior(max→saddle)) + path(max→s′)
//     When both sides carry two paths only the pairs (0,0) and (1,1) are
//     kept, so a connection never holds more than two paths.
//   • All new paths are computed before the complex is modified; on error
//     the complex is unchanged.

package morse

import (
	"slices"

	"github.com/katalvlaran/lvmorse/mesh"
)

// splice is one planned reconnection.
type splice struct {
	saddle, extremum uint32
	paths            []Path
}

// CancelMinimum cancels saddle against the minimum min.
//
// Errors: ErrUnknownCell, ErrNotConnected, ErrLoopCancellation,
// ErrMultiplicityOverflow, ErrEulerDrift.
//
// Complexity: O(Σ spliced path lengths).
func (c *Complex) CancelMinimum(saddle, min uint32) error {
	e, ok := c.Edges[saddle]
	if !ok {
		return invariantf(mesh.EdgeID(saddle), ErrUnknownCell, "saddle is not critical")
	}
	v, ok := c.Vertices[min]
	if !ok {
		return invariantf(mesh.VertexID(min), ErrUnknownCell, "minimum is not critical")
	}
	conn := e.Minima[min]
	switch {
	case len(conn) == 0:
		return invariantf(mesh.EdgeID(saddle), ErrNotConnected, "no path to v%d", min)
	case len(conn) > 1:
		return invariantf(mesh.EdgeID(saddle), ErrLoopCancellation, "%d paths to v%d", len(conn), min)
	}
	path := conn[0]
	inverted := reversedInterior(path)

	// 1) Plan: every surviving saddle of min × every other minimum of saddle.
	newMinima := make([]uint32, 0, 1)
	for _, m := range sortedKeys(e.Minima) {
		if m != min {
			newMinima = append(newMinima, m)
		}
	}
	newSaddles := make([]uint32, 0, len(v.Saddles))
	for _, s := range sortedKeys(v.Saddles) {
		if s != saddle {
			newSaddles = append(newSaddles, s)
		}
	}
	var plan []splice
	for _, s := range newSaddles {
		sp := c.Edges[s]
		for _, m := range newMinima {
			ps := combine(sp.Minima[min], inverted, e.Minima[m])
			if len(ps) == 0 {
				continue
			}
			if len(sp.Minima[m])+len(ps) > 2 {
				return invariantf(mesh.EdgeID(s), ErrMultiplicityOverflow, "splice to v%d", m)
			}
			plan = append(plan, splice{saddle: s, extremum: m, paths: ps})
		}
	}
	before := c.EulerCharacteristic()

	// 2) Record destroyed connections.
	for _, f := range sortedKeys(e.Maxima) {
		for _, p := range c.Faces[f].Saddles[saddle] {
			c.Separatrices = append(c.Separatrices,
				newSeparatrix(c.Mesh, 2, mesh.FaceID(f), mesh.EdgeID(saddle), p))
		}
		delete(c.Faces[f].Saddles, saddle)
	}
	c.Separatrices = append(c.Separatrices,
		newSeparatrix(c.Mesh, 1, mesh.EdgeID(saddle), mesh.VertexID(min), path))

	// 3) Detach min from its surviving saddles and saddle from its other minima.
	for _, s := range newSaddles {
		delete(c.Edges[s].Minima, min)
	}
	for _, m := range newMinima {
		delete(c.Vertices[m].Saddles, saddle)
	}

	// 4) Apply splices.
	for _, sp := range plan {
		ed := c.Edges[sp.saddle]
		ed.Minima[sp.extremum] = append(slices.Clip(ed.Minima[sp.extremum]), sp.paths...)
		c.Vertices[sp.extremum].Saddles[sp.saddle] += len(sp.paths)
	}

	// 5) Remove the pair.
	delete(c.Edges, saddle)
	delete(c.Vertices, min)

	if after := c.EulerCharacteristic(); after != before {
		return invariantf(mesh.EdgeID(saddle), ErrEulerDrift, "χ %d → %d", before, after)
	}
	return nil
}

// CancelMaximum cancels saddle against the maximum max.
//
// Errors: ErrUnknownCell, ErrNotConnected, ErrLoopCancellation,
// ErrMultiplicityOverflow, ErrEulerDrift.
//
// Complexity: O(Σ spliced path lengths).
func (c *Complex) CancelMaximum(saddle, max uint32) error {
	e, ok := c.Edges[saddle]
	if !ok {
		return invariantf(mesh.EdgeID(saddle), ErrUnknownCell, "saddle is not critical")
	}
	f, ok := c.Faces[max]
	if !ok {
		return invariantf(mesh.FaceID(max), ErrUnknownCell, "maximum is not critical")
	}
	conn := f.Saddles[saddle]
	switch {
	case len(conn) == 0:
		return invariantf(mesh.EdgeID(saddle), ErrNotConnected, "no path from f%d", max)
	case len(conn) > 1:
		return invariantf(mesh.EdgeID(saddle), ErrLoopCancellation, "%d paths from f%d", len(conn), max)
	}
	path := conn[0]
	inverted := reversedInterior(path)

	// 1) Plan: every other maximum of saddle × every surviving saddle of max.
	newMaxima := make([]uint32, 0, 1)
	for _, m := range sortedKeys(e.Maxima) {
		if m != max {
			newMaxima = append(newMaxima, m)
		}
	}
	newSaddles := make([]uint32, 0, len(f.Saddles))
	for _, s := range sortedKeys(f.Saddles) {
		if s != saddle {
			newSaddles = append(newSaddles, s)
		}
	}
	var plan []splice
	for _, m := range newMaxima {
		fm := c.Faces[m]
		for _, s := range newSaddles {
			ps := combine(fm.Saddles[saddle], inverted, f.Saddles[s])
			if len(ps) == 0 {
				continue
			}
			if len(fm.Saddles[s])+len(ps) > 2 {
				return invariantf(mesh.FaceID(m), ErrMultiplicityOverflow, "splice to e%d", s)
			}
			plan = append(plan, splice{saddle: s, extremum: m, paths: ps})
		}
	}
	before := c.EulerCharacteristic()

	// 2) Record destroyed connections.
	for _, m := range sortedKeys(e.Minima) {
		for _, p := range e.Minima[m] {
			c.Separatrices = append(c.Separatrices,
				newSeparatrix(c.Mesh, 1, mesh.EdgeID(saddle), mesh.VertexID(m), p))
		}
		delete(c.Vertices[m].Saddles, saddle)
	}
	c.Separatrices = append(c.Separatrices,
		newSeparatrix(c.Mesh, 2, mesh.FaceID(max), mesh.EdgeID(saddle), path))

	// 3) Detach saddle from its other maxima and max from its surviving saddles.
	for _, m := range newMaxima {
		delete(c.Faces[m].Saddles, saddle)
	}
	for _, s := range newSaddles {
		delete(c.Edges[s].Maxima, max)
	}

	// 4) Apply splices.
	for _, sp := range plan {
		fm := c.Faces[sp.extremum]
		fm.Saddles[sp.saddle] = append(slices.Clip(fm.Saddles[sp.saddle]), sp.paths...)
		c.Edges[sp.saddle].Maxima[sp.extremum] += len(sp.paths)
	}

	// 5) Remove the pair.
	delete(c.Edges, saddle)
	delete(c.Faces, max)

	if after := c.EulerCharacteristic(); after != before {
		return invariantf(mesh.EdgeID(saddle), ErrEulerDrift, "χ %d → %d", before, after)
	}
	return nil
}

// reversedInterior returns p[1:len(p)-1] reversed, as a fresh slice.
func reversedInterior(p Path) Path {
	if len(p) <= 2 {
		return nil
	}
	out := slices.Clone(p[1 : len(p)-1])
	slices.Reverse(out)
	return out
}

// combine splices every head with every tail through mid. Two heads and two
// tails yield only the diagonal pairs.
func combine(heads []Path, mid Path, tails []Path) []Path {
	if len(heads) == 2 && len(tails) == 2 {
		return []Path{join(heads[0], mid, tails[0]), join(heads[1], mid, tails[1])}
	}
	out := make([]Path, 0, len(heads)*len(tails))
	for _, h := range heads {
		for _, t := range tails {
			out = append(out, join(h, mid, t))
		}
	}
	return out
}

func join(a, b, c Path) Path {
	out := make(Path, 0, len(a)+len(b)+len(c))
	out = append(out, a...)
	out = append(out, b...)
	return append(out, c...)
}
