// SPDX-License-Identifier: MIT
// Package: lvmorse/builder
//
// validators.go — parameter checks shared by constructors.

package builder

// validateMin ensures that every value in got is ≥ min.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: ErrTooFewVertices".
//
// Complexity: O(len(got)) time, O(1) space.
func validateMin(method string, min int, got ...int) error {
	for _, g := range got {
		if g < min {
			return builderErrorf(method, "parameter must be ≥ %d, got %d: %w", min, g, ErrTooFewVertices)
		}
	}

	return nil
}
