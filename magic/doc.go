// Package magic implements the MAGIC global weight window generation
// method: a flux mesh tally is turned into a weight window mesh by
// normalising each energy/time group to its own peak voxel, then applying
// a configurable softening (de-tuning) power and an error-based cutoff.
//
// It also implements BUDE (Build Up Density Extrapolation), a mesh
// combination technique for approximating a detector response behind
// shielding denser than a void-streaming calculation can directly model:
// a reduced-density run, an uncollided-flux run, and a void run combine
// into one extrapolated mesh.
package magic
