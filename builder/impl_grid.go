// SPDX-License-Identifier: MIT
// Package: lvmorse/builder
//
// impl_grid.go — implementation of Grid(rows, cols) and Torus(rows, cols).
//
// Canonical model:
//   • rows×cols lattice of vertices, index = r*cols + c (row-major).
//   • Each lattice quad (r,c) is split along its "\" diagonal into
//       T1 = [(r,c), (r,c+1), (r+1,c+1)]
//       T2 = [(r,c), (r+1,c+1), (r+1,c)]
//   • Grid embeds (r,c) at (r, c, 0); the result is a disc with border.
//   • Torus wraps both directions and embeds on a torus of radii (R, r).
//
// Complexity:
//   • Time: O(rows*cols). Space: O(rows*cols).
//
// Determinism:
//   • Vertices row-major; quads row-major; T1 before T2.

package builder

import "math"

// Grid returns a Constructor for a planar rows×cols vertex lattice.
// Requires rows, cols ≥ MinGridDim.
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) (*Surface, error) {
		if err := validateMin(MethodGrid, MinGridDim, rows, cols); err != nil {
			return nil, err
		}

		s := &Surface{
			Points:    make([]Point, 0, rows*cols),
			Triangles: make([][3]uint32, 0, 2*(rows-1)*(cols-1)),
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				s.Points = append(s.Points, Point{float64(r), float64(c), 0})
			}
		}
		idx := func(r, c int) uint32 { return uint32(r*cols + c) }
		for r := 0; r+1 < rows; r++ {
			for c := 0; c+1 < cols; c++ {
				s.Triangles = append(s.Triangles,
					[3]uint32{idx(r, c), idx(r, c+1), idx(r+1, c+1)},
					[3]uint32{idx(r, c), idx(r+1, c+1), idx(r+1, c)},
				)
			}
		}

		return s, nil
	}
}

// Torus returns a Constructor for a rows×cols lattice wrapped in both
// directions. Requires rows, cols ≥ MinTorusDim.
func Torus(rows, cols int) Constructor {
	return func(cfg builderConfig) (*Surface, error) {
		if err := validateMin(MethodTorus, MinTorusDim, rows, cols); err != nil {
			return nil, err
		}

		s := &Surface{
			Points:    make([]Point, 0, rows*cols),
			Triangles: make([][3]uint32, 0, 2*rows*cols),
		}
		for r := 0; r < rows; r++ {
			u := 2 * math.Pi * float64(r) / float64(rows)
			for c := 0; c < cols; c++ {
				v := 2 * math.Pi * float64(c) / float64(cols)
				ring := cfg.major + cfg.minor*math.Cos(v)
				s.Points = append(s.Points, Point{
					ring * math.Cos(u),
					ring * math.Sin(u),
					cfg.minor * math.Sin(v),
				})
			}
		}
		idx := func(r, c int) uint32 { return uint32((r%rows)*cols + c%cols) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				s.Triangles = append(s.Triangles,
					[3]uint32{idx(r, c), idx(r, c+1), idx(r+1, c+1)},
					[3]uint32{idx(r, c), idx(r+1, c+1), idx(r+1, c)},
				)
			}
		}

		return s, nil
	}
}
