package mctal_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repositony/ntools-go/mctal"
)

const fixture = `mcnp6.mp   6     10/14/1066 22:31:17     2         1296681       281135206
 Four uranium cans in air and aluminum
ntal     2
    1    4
tally    1    0    0    0
npar 1
1
f    3
901 902 903
e    2
1.0 10.0
tfc 1 3 0 0 0 0 0 2 0
1000 0.5 0.1 12.3
vals
1.0 0.1 2.0 0.2 3.0 0.3 4.0 0.4 5.0 0.5 6.0 0.6
tally    4    0    0    0
npar 1
1
f    1
500
vals
10.0 0.05
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := t.TempDir() + "/mctal"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFileHeader(t *testing.T) {
	path := writeFixture(t, fixture)

	m, err := mctal.ReadFile(path)
	require.NoError(t, err)

	h := m.GetHeader()
	assert.Equal(t, "mcnp6.mp", h.Code)
	assert.Equal(t, "6", h.Version)
	assert.True(t, strings.Contains(h.Date, "10/14/1066"))
	assert.Equal(t, "Four uranium cans in air and aluminum", h.Message)
	assert.Equal(t, uint32(2), h.Dump)
	assert.Equal(t, uint64(1296681), h.NParticles)
	assert.Equal(t, uint64(281135206), h.NRandom)
	assert.Equal(t, []uint32{1, 4}, h.TallyNumbers)
	assert.True(t, h.TallyExists(4))
	assert.False(t, h.TallyExists(99))
}

func TestReadFileTallies(t *testing.T) {
	path := writeFixture(t, fixture)

	m, err := mctal.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, m.Tallies, 2)

	tally, ok := m.GetTally(1)
	require.True(t, ok)
	assert.Equal(t, []float64{901, 902, 903}, tally.RegionBins.Values)
	assert.Equal(t, []float64{1.0, 10.0}, tally.EnergyBins.Values)
	assert.Equal(t, 6, tally.NExpectedResults())
	require.Len(t, tally.Results, 6)
	assert.Equal(t, 1.0, tally.Results[0].Value)
	assert.Equal(t, 0.1, tally.Results[0].Error)

	assert.Equal(t, uint32(1), tally.Tfc.NRecords)
	require.Len(t, tally.Tfc.Results, 1)
	assert.Equal(t, uint64(1000), tally.Tfc.Results[0].Nps)

	results := tally.FindResult(902)
	require.Len(t, results, 2)
	assert.Equal(t, 3.0, results[0].Value)

	_, ok = m.GetTally(99)
	assert.False(t, ok)
}

func TestReadFileSecondTally(t *testing.T) {
	path := writeFixture(t, fixture)

	m, err := mctal.ReadFile(path)
	require.NoError(t, err)

	tally, ok := m.GetTally(4)
	require.True(t, ok)
	require.Len(t, tally.Results, 1)
	assert.Equal(t, 10.0, tally.Results[0].Value)
	assert.Equal(t, 0.05, tally.Results[0].Error)
}

func TestKcodeResultRoundTrip(t *testing.T) {
	values := make([]float64, 19)
	for i := range values {
		values[i] = float64(i)
	}
	result, err := mctal.NewKcodeResult(values)
	require.NoError(t, err)
	assert.Equal(t, values, result.ToSlice())

	_, err = mctal.NewKcodeResult(values[:5])
	assert.ErrorIs(t, err, mctal.ErrUnexpectedKcodeValues)
}

func TestTmeshGeometryNames(t *testing.T) {
	assert.Equal(t, "Cylindrical", mctal.TmeshCylindrical.LongName())
	assert.Equal(t, "Cyl", mctal.TmeshCylindrical.ShortName())
	assert.Equal(t, "RZT", mctal.TmeshCylindrical.String())
	assert.Equal(t, "Rectangular", mctal.TmeshRectangular.LongName())
}
