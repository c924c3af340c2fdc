// Package mctal reads MCNP MCTAL files: the single-dump text export of
// every standard F tally, TMESH tally, and KCODE criticality result in a
// RUNTAPE. Unlike the fixed-width fortran look of a WWINP file, a MCTAL
// file only requires its numeric items to be blank-delimited and in the
// right order - column position is not significant.
//
// The primary entry point is Mctal and ReadFile:
//
//	m, err := mctal.ReadFile("/path/to/file.m")
//	tally, ok := m.GetTally(104)
//
// Four data blocks are recognised, in any order after the header:
// Header (run metadata), Tally (standard F tallies), Tmesh (superimposed
// mesh tallies, a.k.a. "Mesh Tally Type A"), and Kcode (criticality
// cycle results). Note that TMESH tallies are written to the MCTAL file
// while FMESH tallies are not - FMESH output belongs to the meshtal
// reader instead.
package mctal
