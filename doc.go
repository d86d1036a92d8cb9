// SPDX-License-Identifier: MIT

// Package lvmorse computes discrete Morse complexes of scalar functions on
// triangulated surfaces and simplifies them by persistence.
//
// 🚀 What is lvmorse?
//
//	A pure-Go pipeline that turns a mesh with one value per vertex into:
//		• a lower-star gradient field (gradient)
//		• a Morse complex of minima, saddles and maxima joined by V-paths (morse)
//		• persistence-guided simplifications of that complex (reduce)
//		• mod-2 Betti numbers and a persistence diagram (homology)
//		• salient ridge and valley lines (salient)
//		• compressed snapshots of any complex (snapshot)
//
// The Morse type ties the stages together for one mesh and caches every
// intermediate result, so reductions at several thresholds share one
// gradient field and one base complex.
//
// Subpackages:
//
//	mesh/      — cells, keys and loader-side validation
//	builder/   — deterministic fixture surfaces (grid, torus, spheres) + fields
//	gradient/  — lower-star gradient field
//	morse/     — Morse complex arena, extraction and cancellation splice
//	reduce/    — cancellation queue and reducer
//	homology/  — pair-cells Betti numbers
//	salient/   — double-threshold salient edges
//	snapshot/  — binary header + JSON body, LZ4/zstd
//	logging/   — slog wrapper
//
// Quick example:
//
//	m, _ := mesh.New(values, triangles, mesh.WithPerturbation())
//	mc, _ := lvmorse.New(m)
//	red, _ := mc.Reduce(ctx, 0.05)
//	fmt.Println(red.Counts())
package lvmorse
