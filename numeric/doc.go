// Package numeric provides the small numeric and slice helpers every
// other package in this module builds on: fortran-compatible scientific
// formatting, safe reductions over float slices, and the three flavours of
// bin search the mesh and reader packages rely on.
//
// What: Sci formats a float as a zero-padded-exponent scientific string
// matching MCNP's own fixed-width output; TryMin/TryMax are total-order
// reductions that never panic on NaN/Inf; FindBinInclusive/
// FindBinExclusive/FindBinAverage locate a value's bin within an ascending
// edge slice under three different inclusivity rules.
//
// Why: MCNP text output and the WWINP format both use fixed-width,
// zero-padded scientific notation that Go's own formatting verbs do not
// produce directly, and bin lookup recurs throughout the reader, the mesh
// model, and the MAGIC generator with rule differences that matter (see
// each function's doc comment).
//
// Errors: every fallible function returns a sentinel from this package's
// error set; callers are expected to wrap with additional context via
// fmt.Errorf("...: %w", err).
package numeric
