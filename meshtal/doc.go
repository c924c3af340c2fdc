// Package meshtal reads MCNP "meshtal" mesh-tally output files into the
// canonical mesh.Mesh model.
//
// What: a two-pass streaming reader. Pass one scans the file for
// "Mesh Tally Number" markers and classifies each tally's geometry and
// textual layout (mesh.Format); pass two streams the file a second time,
// dispatching each line to the sub-parser for the tally currently being
// read (column, matrix, or cell-under-voxel) and appending voxels in
// canonical packed order.
//
// Why: MCNP can emit the same underlying tally data in six different
// textual shapes depending on the FMESH card and installed patches; this
// package's job is to erase that difference before any other component
// sees the data.
//
// Errors: a failure while parsing a tally's lines in pass two is returned
// as *ReadError carrying the tally id and line number; pass-one
// classification, missing-tally and voxel-count failures are returned as
// plain wrapped errors. Every error wraps a sentinel (this package's, or
// mesh's for index-invariant failures), so errors.Is works on all of
// them. Negative CuV values are logged via internal/ntlog and coerced to
// zero, and broken exponents are repaired silently; neither fails the
// read.
package meshtal
