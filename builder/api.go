// SPDX-License-Identifier: MIT
// Package: lvmorse/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildMesh(con, bopts...). Resolves cfg, runs the
//     constructor, samples the scalar field, hands the result to mesh.New.
//   - All public factories are implemented in impl_*.go.
//   - Determinism: same constructor/options/seed ⇒ identical meshes.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmorse/mesh"
)

// Surface is an embedded triangulation before a scalar field is attached.
type Surface struct {
	// Points holds one position per vertex.
	Points []Point
	// Triangles references Points by index.
	Triangles [][3]uint32
}

// Constructor produces a Surface from the resolved builderConfig.
// Constructors MUST validate parameters early, return sentinel errors and
// emit vertices and triangles in a documented, stable order.
type Constructor func(cfg builderConfig) (*Surface, error)

// BuildSurface resolves bopts and runs con without sampling a field.
func BuildSurface(con Constructor, bopts ...BuilderOption) (*Surface, error) {
	if con == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", MethodBuildMesh, ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	return con(cfg)
}

// BuildMesh runs con, samples the configured scalar field at every vertex
// (plus tieBreak*index) and builds a validated mesh.Mesh.
//
// Errors:
//   - constructor sentinels (ErrTooFewVertices, ErrOptionViolation);
//   - ErrNeedRandSource from stochastic fields without an RNG;
//   - ErrConstructFailed wrapping the mesh.New error otherwise.
//
// Complexity: O(V log V + F) dominated by mesh.New.
func BuildMesh(con Constructor, bopts ...BuilderOption) (*mesh.Mesh, error) {
	if con == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", MethodBuildMesh, ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	// 1) Topology + embedding.
	s, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildMesh, err)
	}

	// 2) Scalar field in vertex index order (RNG draws are reproducible).
	values := make([]float64, len(s.Points))
	for i, p := range s.Points {
		v, err := cfg.field(p, i, cfg.rng)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildMesh, err)
		}
		values[i] = v + cfg.tieBreak*float64(i)
	}

	// 3) Validation is delegated to mesh.New.
	m, err := mesh.New(values, s.Triangles, cfg.meshOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", MethodBuildMesh, ErrConstructFailed, err)
	}

	return m, nil
}
