// Package vtk converts mesh voxel data into VTK-readable documents for
// plotting in ParaView or Visit.
//
// Rectangular meshes map directly onto a VTK rectilinear grid: the i/j/k
// bin edges become the grid's three coordinate axes, and each voxel is one
// grid cell.
//
// Cylindrical meshes have no native VTK representation, so this package
// builds an explicit unstructured grid instead: every r/z/theta voxel is
// expanded into an hexahedral (or, for the innermost ring, wedge) cell with
// verticies computed from the mesh's origin, axis and reference vectors.
// Increasing the Resolution option subdivides each theta bin further to
// round off the resulting polygon.
package vtk
