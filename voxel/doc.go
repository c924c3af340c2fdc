// Package voxel defines the single-cell data type every mesh in this
// module is built from, plus the group-label sum type used to index mesh
// energy and time axes.
//
// A Voxel carries a dense ordinal index, a tallied scalar result, and a
// relative uncertainty. Its arithmetic operators propagate uncertainty
// the way the reader and the MAGIC generator both require: addition and
// subtraction combine absolute uncertainty in quadrature and renormalise
// to a relative figure; multiplication and division combine relative
// uncertainty in quadrature directly. See Voxel's method docs for the
// exact formulas.
package voxel
