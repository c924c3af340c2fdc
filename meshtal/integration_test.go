package meshtal_test

import (
	"os"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/repositony/ntools-go/meshtal"
)

func TestMeshtalIntegration(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "meshtal end-to-end scenarios")
}

var _ = ginkgo.Describe("scenario 1: COL rectangular 2x3x4", func() {
	var path string

	ginkgo.BeforeEach(func() {
		path = writeFixtureGinkgo(colFixture)
	})

	ginkgo.It("reduces to the documented maximum/minimum/average", func() {
		meshes, err := meshtal.ReadMeshtal(path)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(meshes).To(gomega.HaveLen(1))

		m := meshes[0]
		gomega.Expect(m.Voxels).To(gomega.HaveLen(24))

		max, err := m.Maximum()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(max).To(gomega.Equal(23.0))

		min, err := m.Minimum()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(min).To(gomega.Equal(0.0))

		avg, err := m.AverageResult()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(avg).To(gomega.Equal(11.5))
	})
})

// jkFixture is scenario 2: a JK matrix rendering of scenario 1's same
// 2x3x4 rectangular shape, single energy/time group. Voxel order after
// parsing must equal scenario 1's COL order: result equals the voxel's
// own packed index.
const jkFixture = `Mesh Tally Number 15
    neutron mesh tally.

         X direction: 0.00E+00 1.00E+00 2.00E+00
         Y direction: 0.00E+00 1.00E+00 2.00E+00 3.00E+00
         Z direction: 0.00E+00 1.00E+00 2.00E+00 3.00E+00 4.00E+00
    Energy bin boundaries: 0.00E+00 1.00E+36

Energy Bin: 0.00E+00 - 1.00E+36 MeV
Time Bin: Total
  X bin: 0.00 - 1.00
    Tally Results:  Y (across) by Z (down)
               0.50       1.50       2.50
      0.50  0.00000E+00 4.00000E+00 8.00000E+00
      1.50  1.00000E+00 5.00000E+00 9.00000E+00
      2.50  2.00000E+00 6.00000E+00 1.00000E+01
      3.50  3.00000E+00 7.00000E+00 1.10000E+01
    Relative Errors
               0.50       1.50       2.50
      0.50  1.00000E-01 1.00000E-01 1.00000E-01
      1.50  1.00000E-01 1.00000E-01 1.00000E-01
      2.50  1.00000E-01 1.00000E-01 1.00000E-01
      3.50  1.00000E-01 1.00000E-01 1.00000E-01
  X bin: 1.00 - 2.00
    Tally Results:  Y (across) by Z (down)
               0.50       1.50       2.50
      0.50  1.20000E+01 1.60000E+01 2.00000E+01
      1.50  1.30000E+01 1.70000E+01 2.10000E+01
      2.50  1.40000E+01 1.80000E+01 2.20000E+01
      3.50  1.50000E+01 1.90000E+01 2.30000E+01
    Relative Errors
               0.50       1.50       2.50
      0.50  1.00000E-01 1.00000E-01 1.00000E-01
      1.50  1.00000E-01 1.00000E-01 1.00000E-01
      2.50  1.00000E-01 1.00000E-01 1.00000E-01
      3.50  1.00000E-01 1.00000E-01 1.00000E-01
`

var _ = ginkgo.Describe("scenario 2: JK rectangular 2x3x4 parity with COL", func() {
	var path string

	ginkgo.BeforeEach(func() {
		path = writeFixtureGinkgo(jkFixture)
	})

	ginkgo.It("reproduces scenario 1's voxel order and statistics", func() {
		meshes, err := meshtal.ReadMeshtal(path)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(meshes).To(gomega.HaveLen(1))

		m := meshes[0]
		gomega.Expect(m.Voxels).To(gomega.HaveLen(24))
		for idx, v := range m.Voxels {
			gomega.Expect(v.Index).To(gomega.Equal(idx))
			gomega.Expect(v.Result).To(gomega.Equal(float64(idx)))
		}

		max, err := m.Maximum()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(max).To(gomega.Equal(23.0))

		min, err := m.Minimum()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(min).To(gomega.Equal(0.0))

		avg, err := m.AverageResult()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(avg).To(gomega.Equal(11.5))
	})
})

// cuvVoidFillFixture is scenario 3: a CUV rectangular tally with
// Void_Record=off and mcpv=[1,0,1] across three voxels (I=3, J=K=1).
// Only voxels 0 and 2 have material cells and appear in the input; voxel
// 1 is void and must be filled in with a zero result/error.
const cuvVoidFillFixture = `Mesh Tally Number 34
    neutron mesh tally.

         X direction: 0.00E+00 1.00E+00 2.00E+00 3.00E+00
         Y direction: 0.00E+00 1.00E+00
         Z direction: 0.00E+00 1.00E+00
    Energy bin boundaries: 0.00E+00 1.00E+36
Void_Record=off
Number_of_material_cells_per_voxel   1   0   1
  Energy     Cell Mat  Density     Volume      X      Y      Z      Result   Rel Error
 1.00E+36  1.00E+36   10   5  8.00000E+00  1.00000E+00  0.000  0.000  0.000  1.00000E+00  1.00000E-01
 1.00E+36  1.00E+36   12   5  8.00000E+00  1.00000E+00  2.000  0.000  0.000  3.00000E+00  1.00000E-01
`

var _ = ginkgo.Describe("scenario 3: CUV rectangular with Void_Record=off and mcpv=[1,0,1]", func() {
	var path string

	ginkgo.BeforeEach(func() {
		path = writeFixtureGinkgo(cuvVoidFillFixture)
	})

	ginkgo.It("fills the void voxel with a zero result and keeps the parsed voxels", func() {
		meshes, err := meshtal.ReadMeshtal(path)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(meshes).To(gomega.HaveLen(1))

		m := meshes[0]
		gomega.Expect(m.Voxels).To(gomega.HaveLen(3))

		gomega.Expect(m.Voxels[0].Index).To(gomega.Equal(0))
		gomega.Expect(m.Voxels[0].Result).To(gomega.Equal(1.0))
		gomega.Expect(m.Voxels[0].Error).To(gomega.BeNumerically("~", 0.1, 1e-9))

		gomega.Expect(m.Voxels[1].Index).To(gomega.Equal(1))
		gomega.Expect(m.Voxels[1].Result).To(gomega.Equal(0.0))
		gomega.Expect(m.Voxels[1].Error).To(gomega.Equal(0.0))

		gomega.Expect(m.Voxels[2].Index).To(gomega.Equal(2))
		gomega.Expect(m.Voxels[2].Result).To(gomega.Equal(3.0))
		gomega.Expect(m.Voxels[2].Error).To(gomega.BeNumerically("~", 0.1, 1e-9))
	})
})

// writeFixtureGinkgo mirrors writeFixture but without a *testing.T, since
// Ginkgo's BeforeEach runs outside a table-driven test function.
func writeFixtureGinkgo(content string) string {
	dir := ginkgo.GinkgoT().TempDir()
	path := dir + "/meshtal"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		ginkgo.Fail(err.Error())
	}
	return path
}
