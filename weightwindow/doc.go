// Package weightwindow represents and serialises MCNP mesh-based global
// variance reduction data: WWINP, WWOUT, and WWONE files.
//
// A WeightWindow holds one full set of weight windows for a single mesh
// geometry and particle type. Field names follow the FORTRAN variable
// names from the MCNP manual appendices (nfx, ncx, x0, ...) rather than
// more readable Go names, since that correspondence is the entire point
// of the struct: anyone cross-referencing the manual while debugging a
// file needs the names to line up.
//
// Multiple particle types share one file by writing a combined header
// followed by each particle's block 3 in turn; see WriteMultiParticle.
package weightwindow
