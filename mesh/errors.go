package mesh

import "errors"

var (
	// ErrVoxelCountMismatch is returned when a Mesh's voxel slice length
	// disagrees with the product of its bin counts.
	ErrVoxelCountMismatch = errors.New("mesh: voxel count does not match bin counts")
	// ErrIndexOutOfBounds is returned by index conversions given
	// coordinates outside the mesh's bin counts.
	ErrIndexOutOfBounds = errors.New("mesh: index out of bounds")
	// ErrEmptyMesh is returned by reductions (Maximum/Minimum/Average)
	// over an empty voxel slice.
	ErrEmptyMesh = errors.New("mesh: no voxels to reduce")
	// ErrUnknownParticle is returned by TryFromDesignator, the strict
	// particle conversion, given an unrecognised designator.
	ErrUnknownParticle = errors.New("mesh: unrecognised particle designator")
	// ErrUnsupportedGeometry is returned for spherical geometry, which
	// this module does not support.
	ErrUnsupportedGeometry = errors.New("mesh: unsupported geometry")
	// ErrGeometryMismatch is returned by Point lookups when the point's
	// coordinate kind does not match the mesh's geometry.
	ErrGeometryMismatch = errors.New("mesh: point coordinate kind does not match mesh geometry")
	// ErrPointOutOfBounds is returned when a point lies outside every
	// mesh axis' edge range under the requested boundary treatment.
	ErrPointOutOfBounds = errors.New("mesh: point lies outside the mesh")
)
