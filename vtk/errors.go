package vtk

import "errors"

// ErrUnsupportedGeometry is returned when a Mesh reports a Geometry value
// this package does not know how to convert.
var ErrUnsupportedGeometry = errors.New("vtk: unsupported mesh geometry")

// ErrEmptyMesh is returned when converting a mesh with no voxels.
var ErrEmptyMesh = errors.New("vtk: mesh has no voxels")
