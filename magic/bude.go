package magic

import (
	"github.com/repositony/ntools-go/mesh"
	"github.com/repositony/ntools-go/voxel"
)

// ExtrapolateDensity implements BUDE (Build Up Density Extrapolation): a
// technique for approximating the flux behind shielding denser than a
// void-streaming calculation can directly model.
//
// vd is the void-streaming (reduced-geometry) run, rd is the
// reduced-density run of the real geometry, and uc is the uncollided-flux
// run of the real geometry. gamma is a buildup tuning exponent and ratio
// is the actual-to-reduced density ratio. All three meshes must share the
// same voxel layout.
func ExtrapolateDensity(vd, rd, uc *mesh.Mesh, gamma, ratio float64) (*mesh.Mesh, error) {
	if len(rd.Voxels) != len(uc.Voxels) || len(uc.Voxels) != len(vd.Voxels) {
		return nil, ErrGroupCountMismatch
	}

	buildup := buildupFlux(rd, uc, gamma, ratio)
	return forwardFlux(buildup, uc, vd, ratio), nil
}

// buildupFlux normalises the reduced-density run against the uncollided
// run, then raises it to gamma*ratio.
func buildupFlux(reducedDensity, uncollided *mesh.Mesh, gamma, densityRatio float64) *mesh.Mesh {
	buildup := reducedDensity.Clone()
	factor := gamma * densityRatio

	for i := range buildup.Voxels {
		buildup.Voxels[i] = buildup.Voxels[i].Div(uncollided.Voxels[i]).Powf(factor)
	}
	return buildup
}

// forwardFlux combines the buildup mesh with the uncollided and void
// meshes into the final extrapolated flux.
func forwardFlux(buildup, uncollided, void *mesh.Mesh, densityRatio float64) *mesh.Mesh {
	forward := buildup.Clone()

	for i := range forward.Voxels {
		bu := buildup.Voxels[i]
		uc := uncollided.Voxels[i]
		vd := void.Voxels[i]

		forward.Voxels[i] = voxelForwardFlux(bu, uc, vd, densityRatio)
	}
	return forward
}

func voxelForwardFlux(bu, uc, vd voxel.Voxel, densityRatio float64) voxel.Voxel {
	ratioFlux := uc.Div(vd).Powf(densityRatio)
	return ratioFlux.Mul(bu).Mul(vd)
}
