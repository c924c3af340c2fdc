package fispact_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repositony/ntools-go/fispact"
)

const sampleJSON = `{
	"run_data": {"run_name": "test", "flux_name": "n/a", "timestamp": "now"},
	"inventory_data": [
		{
			"irradiation_time": 100, "cooling_time": 0, "flux": 1.0,
			"total_atoms": 10, "total_activity": 100, "alpha_activity": 0,
			"beta_activity": 90, "gamma_activity": 10, "total_mass": 0.002,
			"total_heat": 0.5, "alpha_heat": 0, "beta_heat": 0.4, "gamma_heat": 0.1,
			"ingestion_dose": 1.0, "inhalation_dose": 2.0,
			"dose_rate": {"type": "Point source", "distance": 1.0, "mass": 1.0, "dose": 0.05},
			"gamma_spectrum": {"boundaries": [0.1, 1.0], "values": [5.0]},
			"nuclides": [
				{"element": "co", "isotope": 60, "state": "", "half_life": 1.6e8,
				 "zai": 270600, "atoms": 5, "grams": 1.0, "activity": 90,
				 "alpha_activity": 0, "beta_activity": 80, "gamma_activity": 10,
				 "heat": 0.4, "alpha_heat": 0, "beta_heat": 0.3, "gamma_heat": 0.1,
				 "dose": 0.04, "ingestion": 0.5, "inhalation": 1.0},
				{"element": "h", "isotope": 3, "state": "", "half_life": 0,
				 "zai": 10030, "atoms": 5, "grams": 0.5, "activity": 10,
				 "alpha_activity": 0, "beta_activity": 10, "gamma_activity": 0,
				 "heat": 0.1, "alpha_heat": 0, "beta_heat": 0.1, "gamma_heat": 0,
				 "dose": 0.01, "ingestion": 0.5, "inhalation": 1.0}
			]
		}
	]
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := t.TempDir() + "/results.json"
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))
	return path
}

func TestReadJSONConvertsMassToGrams(t *testing.T) {
	inv, err := fispact.ReadJSON(writeSample(t))
	require.NoError(t, err)
	require.Len(t, inv.Intervals, 1)
	// 0.002 kg -> 2 g
	assert.InDelta(t, 2.0, inv.Intervals[0].Mass, 1e-9)
}

func TestReadJSONParsesDoseRate(t *testing.T) {
	inv, err := fispact.ReadJSON(writeSample(t))
	require.NoError(t, err)

	dose := inv.Intervals[0].Dose
	assert.Equal(t, 0.05, dose.Rate)
	assert.False(t, dose.Kind.Contact)
	assert.Equal(t, 1.0, dose.Kind.Distance)
}

func TestInventoryListsAndNames(t *testing.T) {
	inv, err := fispact.ReadJSON(writeSample(t))
	require.NoError(t, err)

	assert.Equal(t, []float64{100}, inv.ActivityList())
	assert.Equal(t, []string{"Co", "H"}, inv.ElementNames())
	assert.Contains(t, inv.NuclideNames(), "Co60")
	assert.Contains(t, inv.NuclideNames(), "H3")
}

func TestIntervalFilteringAndSorting(t *testing.T) {
	inv, err := fispact.ReadJSON(writeSample(t))
	require.NoError(t, err)
	iv := &inv.Intervals[0]

	stable := iv.FilterByStability(fispact.StabilityStable)
	require.Len(t, stable, 1)
	assert.Equal(t, "H3", stable[0].Name())

	n := iv.FindNuclide("co60")
	require.NotNil(t, n)
	assert.Equal(t, "Co60", n.Name())

	iv.SortDescending(fispact.SortByActivity)
	assert.Equal(t, "Co60", iv.Nuclides[0].Name())
}

func TestApplyNormalisationScalesActivity(t *testing.T) {
	inv, err := fispact.ReadJSON(writeSample(t))
	require.NoError(t, err)
	iv := &inv.Intervals[0]

	iv.ApplyNormalisation(2.0)
	assert.Equal(t, 200.0, iv.Activity)
	assert.Equal(t, 180.0, iv.Nuclides[0].Activity)
}

func TestInventoryStubsReturnNotImplemented(t *testing.T) {
	inv, err := fispact.ReadJSON(writeSample(t))
	require.NoError(t, err)

	assert.ErrorIs(t, inv.NuclideTransient(), fispact.ErrNotImplemented)
	assert.ErrorIs(t, inv.NearestInterval(), fispact.ErrNotImplemented)
	assert.ErrorIs(t, inv.NormaliseFlux(), fispact.ErrNotImplemented)
}
