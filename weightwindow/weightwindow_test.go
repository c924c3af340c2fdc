package weightwindow_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repositony/ntools-go/weightwindow"
)

func sampleWW() *weightwindow.WeightWindow {
	w := weightwindow.New()
	w.Nfx, w.Nfy, w.Nfz = 2, 3, 4
	w.Ncx, w.Ncy, w.Ncz = 2, 3, 4
	w.E = []float64{100.0}
	w.T = []float64{}
	w.Weights = make([]float64, 24)
	for i := range w.Weights {
		w.Weights[i] = float64(i) / 24
	}
	return w
}

func TestScale(t *testing.T) {
	w := &weightwindow.WeightWindow{Weights: []float64{0.2, 0.15, 0.4}}
	w.Scale(2.0)
	assert.Equal(t, []float64{0.4, 0.3, 0.8}, w.Weights)
}

func TestNonAnaloguePercentage(t *testing.T) {
	w := &weightwindow.WeightWindow{Weights: []float64{0.2, 0.15, 0.0, 0.0}}
	assert.Equal(t, 50.0, w.NonAnaloguePercentage())
}

func TestEtijkRoundTrip(t *testing.T) {
	w := sampleWW()
	for idx := 0; idx < 24; idx++ {
		e, tt, i, j, k := w.CellIndexToEtijk(idx)
		back := (((e*w.Nt+tt)*w.Ncz+k)*w.Ncy+j)*w.Ncx + i
		assert.Equal(t, idx, back)
		assert.Equal(t, w.EtijkToVoxelIndex(e, tt, i, j, k), w.CellIndexToVoxelIndex(idx))
	}
}

func TestWriteSingleParticle(t *testing.T) {
	w := sampleWW()
	path := filepath.Join(t.TempDir(), "wwout")
	require.NoError(t, weightwindow.WriteSingleParticle(w, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(content), "\n"))
}

func TestWriteMultiParticleDedupsAndSorts(t *testing.T) {
	photon := sampleWW()
	photon.Particle = 2
	photon.E = []float64{200.0}
	neutron := sampleWW()
	neutron.Particle = 1
	dup := sampleWW()
	dup.Particle = 1

	path := filepath.Join(t.TempDir(), "wwout_np")
	err := weightwindow.WriteMultiParticle([]*weightwindow.WeightWindow{photon, neutron, dup}, path, false)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, content)

	// ni=2 after dropping the duplicate neutron set, then one ne per particle.
	text := string(content)
	assert.True(t, strings.HasPrefix(text, "         1         1         2        10\n         1         1\n"))

	// neutron's block 3 (E=100) is written before photon's (E=200).
	neutronAt := strings.Index(text, "1.00000e+02")
	photonAt := strings.Index(text, "2.00000e+02")
	require.True(t, neutronAt >= 0 && photonAt >= 0)
	assert.Less(t, neutronAt, photonAt)
}

func TestWriteMultiParticleEmptySet(t *testing.T) {
	err := weightwindow.WriteMultiParticle(nil, filepath.Join(t.TempDir(), "x"), false)
	assert.ErrorIs(t, err, weightwindow.ErrEmptySet)
}
