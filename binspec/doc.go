// SPDX-License-Identifier: MIT
// Package: histbin/binspec
//
// Package binspec decodes declarative YAML binning declarations into binning
// builder calls.
//
// A declaration names a kind and the arguments of the matching builder:
//
//	mode: permissive          # optional: strict (default) | permissive
//	kind: product
//	operands:
//	  - {kind: linear, min: 0, max: 10, n: 5, label: "q0 [GeV]"}
//	  - {kind: log10, min: 0.1, max: 100, n: 3, label: Q2}
//	  - {kind: edges, edges: [0, 1, 2.5, 5], label: pT}
//	  - kind: tensor
//	    axes: [{min: 0, max: 1, n: 2, label: x}, {min: 0, max: 1, n: 2, label: y}]
//	  - kind: boxes
//	    labels: [a, b]
//	    boxes: [[[0, 1], [0, 1]], [[1, 2], [0, 2]]]
//
// Kinds map to builders as follows:
//
//	linear  → binning.LinSpace
//	log     → binning.LogSpace, or binning.LogSpaceBase when base is set
//	log10   → binning.Log10Space
//	tensor  → binning.LinSpaceND
//	edges   → binning.Contiguous
//	boxes   → binning.FromExtents
//	product → binning.Product over operands
//
// Validate checks structure only; numeric constraints (min < max, sorted
// edges, non-overlapping boxes) are left to the builders, whose sentinel
// errors pass through Build wrapped with the declaration path.
// Unknown YAML fields are rejected.
package binspec
