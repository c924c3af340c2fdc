// Package ntools is a post-processing toolkit for MCNP mesh-tally
// output: reading meshtal files into an in-memory mesh, converting them
// to VTK for visualisation, and deriving WWINP weight windows from a
// forward flux tally with the MAGIC method.
//
// The toolkit is organized as a set of focused subpackages rather than
// one flat namespace:
//
//	numeric/      — shared numerics (binning, search, comparison helpers)
//	voxel/        — the Voxel type and its error arithmetic
//	mesh/         — the canonical in-memory mesh model, geometry, particles
//	meshtal/      — meshtal text-format reader (COL, matrix, and CuV layouts)
//	vtk/          — rectilinear and unstructured VTK document conversion
//	weightwindow/ — the WWINP model, Fortran-formatted I/O
//	magic/        — MAGIC weight-window generation and BUDE density scaling
//	mctal/        — MCTAL single-dump tally file reader
//	fispact/      — FISPACT-II JSON inventory reader
//	iaea/         — IAEA Live Chart of Nuclides decay-data client
//	posvol/       — UKAEA Cell-under-Voxel posvol binary reader/writer
//
// Each subpackage can be imported independently; this root package holds
// no exported API of its own.
//
//	go get github.com/repositony/ntools-go
package ntools
