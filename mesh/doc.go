// Package mesh defines the canonical in-memory representation every
// meshtal format is reduced to, and the particle/geometry/format
// enumerations that describe it.
//
// What: Mesh holds bin edges for up to five axes (i, j, k, energy, time),
// a flat Voxel array in canonical packed order, and the index arithmetic
// needed to move between that order and MCNP's own cell-index order.
// Geometry distinguishes Rectangular from Cylindrical (spherical is
// unsupported). Particle is a closed, bug-compatible enumeration of MCNP
// particle designators. Point/PointKind/BoundaryTreatment locate the
// voxel nearest an arbitrary spatial point.
//
// Why: every downstream component (the meshtal reader, the VTK emitter,
// the weight-window model, the MAGIC generator) needs exactly one
// agreed-upon voxel ordering and coordinate system regardless of which of
// six textual layouts the data arrived in.
//
// Complexity: index conversions are O(1); reductions over a voxel slice
// are O(n).
package mesh
