package voxel

import "errors"

// ErrNegativeError is returned when a Voxel is constructed with a negative
// relative error, which is never valid.
var ErrNegativeError = errors.New("voxel: error must be >= 0")
