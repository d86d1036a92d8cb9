// SPDX-License-Identifier: MIT
// Package: lvmorse/mesh
//
// perturb.go — loader-side perturbation of duplicated scalar values.

package mesh

// Perturb makes duplicated values distinct in place. Scanning vertices in
// index order, each vertex whose original value v still has c > 1 pending
// occurrences is shifted to v + (c-1)*eps and the pending count drops by one.
// The last occurrence keeps its original value.
//
// The shift is not re-checked against other values; New still rejects any
// collision that survives.
//
// Complexity: O(V) time, O(U) space for U distinct values.
func Perturb(values []float64, eps float64) {
	counts := make(map[float64]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	for i, v := range values {
		if c := counts[v]; c > 1 {
			values[i] = v + float64(c-1)*eps
			counts[v] = c - 1
		}
	}
}
