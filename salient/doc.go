// SPDX-License-Identifier: MIT

// Package salient extracts salient edges (ridges and valleys) of a surface
// from the separatrices recorded while reducing a Morse complex.
//
// Each separatrix carries a persistence (mean scalar value along its path).
// Points double-thresholds them:
//
//	– every vertex of a separatrix with persistence > high is strong;
//	– every vertex of a separatrix with persistence in (low, high] is weak;
//	– weak vertices adjacent to a strong vertex become strong, repeatedly
//	  (hysteresis, as in Canny edge detection).
//
// Components splits a point set into mesh-connected pieces, e.g. one piece
// per ridge line.
//
// Point sets are roaring bitmaps over vertex indices, so they plug straight
// into reduce.WithSalientPoints.
package salient
