package weightwindow

import "errors"

// ErrNoGeometryMatch is returned when WriteMultiParticle is left with no
// weight window set that shares the first set's mesh geometry.
var ErrNoGeometryMatch = errors.New("weightwindow: no weight windows with matching geometry")

// ErrEmptySet is returned when WriteMultiParticle is given an empty slice.
var ErrEmptySet = errors.New("weightwindow: empty weight window set")

// ErrIndexOutOfBounds reports a cell or voxel index outside the mesh's
// bin counts. The index conversion methods on WeightWindow do not check
// bounds and do not return it.
var ErrIndexOutOfBounds = errors.New("weightwindow: index out of bounds")
