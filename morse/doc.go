// SPDX-License-Identifier: MIT

// Package morse holds the Morse complex extracted from a gradient field and
// the cancellation splice that simplifies it.
//
// Model:
//
//   - Complex is an arena. It owns every critical cell record, keyed by the
//     mesh index of the cell. Cross links are indices, never pointers.
//   - A critical edge (saddle) stores, per connected minimum, the list of
//     V-paths reaching it, and per connected maximum the multiplicity.
//     A critical face (maximum) stores, per connected saddle, the V-paths.
//     A critical vertex (minimum) stores, per connected saddle, the
//     multiplicity. Multiplicity is the number of stored paths and never
//     exceeds 2 on a 2-manifold.
//   - A Path alternates dimensions. A saddle→minimum path is
//     [edge, vertex, edge, ..., vertex]; a maximum→saddle path is
//     [face, edge, face, ..., edge]. Even positions hold the higher dimension.
//
// Extract traces every path by depth-first search from each critical edge
// and face through the matching. CancelMinimum and CancelMaximum remove one
// saddle/extremum pair, reconnect the survivors by splicing paths and record
// the destroyed connections as Separatrix values. A cancellation is planned
// completely before the complex is touched and the Euler characteristic is
// checked afterwards.
//
// Errors:
//
//   - ErrPathNotTerminating, ErrLoopCancellation, ErrEulerDrift,
//     ErrMultiplicityOverflow and ErrInvariant are reported inside an
//     *InvariantError naming the offending cell.
//   - ErrNotConnected and ErrUnknownCell report caller mistakes.
package morse
