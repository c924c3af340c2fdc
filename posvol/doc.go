// Package posvol reads UKAEA Cell-under-Voxel (CuV) posvol binaries.
//
// An MCR2S CuV run samples every sub-voxel region of a coarse mesh and
// records the dominant cell found inside it by volume. A resolution of
// 5x5x5 on the CuV IDUM card, for example, breaks every voxel into 125
// sub-voxel samples.
//
// The binary layout is two unformatted Fortran records:
//
//	<block byte length><6 dimension int32s><block byte length>
//	<block byte length><cell int32 for every sub-voxel><block byte length>
//
// Dimensions carries the sample resolution (res_x, res_y, res_z) and
// the number of mesh bounds in each axis (n_x, n_y, n_z = iints/jints/kints + 1).
package posvol
