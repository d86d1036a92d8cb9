// SPDX-License-Identifier: MIT

// Package homology computes mod-2 Betti numbers of a Morse complex with the
// pair-cells algorithm and exposes the resulting persistence pairs.
//
// The chain complex is the Morse complex itself: the boundary of a saddle
// is the set of minima it reaches an odd number of times, the boundary of a
// maximum the set of saddles it reaches an odd number of times.
//
// Algorithm (per dimension p = 1, 2, cells in ascending key order):
//
//  1. Start from the boundary of σ.
//  2. While the boundary is non-empty, take its youngest cell τ (highest
//     key). If τ is unpaired, pair (τ, σ) and stop; otherwise add the
//     reduced boundary of τ's partner (mod 2) and repeat.
//
// Unpaired cells are homology generators; their count per dimension is the
// Betti vector. Boundaries are roaring bitmaps over key ranks, so the
// youngest cell is the bitmap maximum and mod-2 addition is XOR.
//
// Complexity: O(n³) worst case for n critical cells; near-linear on reduced
// complexes.
package homology
