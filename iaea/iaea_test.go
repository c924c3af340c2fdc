package iaea_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repositony/ntools-go/iaea"
)

func TestParseNuclide(t *testing.T) {
	cases := []struct {
		in      string
		symbol  string
		isotope uint16
		excited bool
		level   uint8
	}{
		{"Co", "co", 0, false, 0},
		{"Co60", "co", 60, false, 0},
		{"Co-60", "co", 60, false, 0},
		{"eu152m2", "eu", 152, true, 2},
		{"eu152m", "eu", 152, true, 1},
	}

	for _, c := range cases {
		n, err := iaea.ParseNuclide(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.symbol, n.Symbol, c.in)
		assert.Equal(t, c.isotope, n.Isotope, c.in)
		assert.Equal(t, c.excited, n.State.Excited, c.in)
		if c.excited {
			assert.Equal(t, c.level, n.State.Level, c.in)
		}
	}
}

func TestParseNuclideRejectsGarbage(t *testing.T) {
	_, err := iaea.ParseNuclide("123-???")
	assert.ErrorIs(t, err, iaea.ErrFailedParseNuclide)
}

func TestNuclideNameAndQueryName(t *testing.T) {
	n, err := iaea.ParseNuclide("eu152m2")
	require.NoError(t, err)

	assert.Equal(t, "Eu152", n.Name())
	assert.Equal(t, "Eu152m2", n.NameWithState())

	query, err := n.QueryName()
	require.NoError(t, err)
	assert.Equal(t, "152eu", query)
}

func TestNuclideQueryNameRejectsElementOnly(t *testing.T) {
	n, err := iaea.ParseNuclide("Co")
	require.NoError(t, err)

	_, err = n.QueryName()
	assert.ErrorIs(t, err, iaea.ErrInvalidNuclideQuery)
}

func TestRadTypeQuerySymbolRoundTrip(t *testing.T) {
	rads := []iaea.RadType{
		iaea.RadAlpha, iaea.RadBetaPlus, iaea.RadBetaMinus,
		iaea.RadGamma, iaea.RadElectron, iaea.RadXray,
	}
	for _, rad := range rads {
		parsed, err := iaea.ParseRadType(rad.QuerySymbol())
		require.NoError(t, err)
		assert.Equal(t, rad, parsed)
	}
}

func TestParseRadTypeRejectsUnknown(t *testing.T) {
	_, err := iaea.ParseRadType("zz")
	assert.ErrorIs(t, err, iaea.ErrCouldNotInferRadType)
}

const gammaCSV = `energy,unc_en,intensity,unc_i,start_level_energy,end_level_energy,multipolarity,mixing_ratio,unc_mr,conversion_coeff,unc_cc,p_z,p_n,p_symbol,p_energy,unc_pe,jp,half_life_sec,unc_hls,decay,decay_%,unc_d,q,unc_q,d_z,d_n,d_symbol
1173.228,3,99.85,3,2505.748,1332.501,E2,,,0.0017,,27,33,Co,0,0,5+,166340000,600,B-,100,,2823.9,0.4,28,32,Ni
1332.492,4,99.9826,6,1332.501,0,E2,,,0.0012,,27,33,Co,0,0,5+,166340000,600,B-,100,,2823.9,0.4,28,32,Ni
`

func TestFetchNuclideRecordsDecodesCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	doer := NewMockHTTPDoer(ctrl)
	doer.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
		assert.Contains(t, req.URL.String(), "nuclides=60co")
		assert.Contains(t, req.URL.String(), "rad_types=g")
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(gammaCSV)),
		}, nil
	})

	records, err := iaea.FetchNuclideRecords(context.Background(), "Co60", iaea.RadGamma, iaea.FetchOptions{Client: doer})
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.NotNil(t, records[0].Energy)
	assert.InDelta(t, 1173.228, *records[0].Energy, 1e-6)

	gamma, ok := records[0].Special.(iaea.Gamma)
	require.True(t, ok)
	require.NotNil(t, gamma.Multipolarity)
	assert.Equal(t, "E2", *gamma.Multipolarity)

	require.NotNil(t, records[0].ParentSymbol)
	assert.Equal(t, "Co", *records[0].ParentSymbol)
	assert.Nil(t, records[0].UncDecay)
}

func TestFetchRawCSVPropagatesBadStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	doer := NewMockHTTPDoer(ctrl)
	doer.EXPECT().Do(gomock.Any()).Return(&http.Response{
		StatusCode: http.StatusInternalServerError,
		Body:       io.NopCloser(strings.NewReader("")),
	}, nil)

	_, err := iaea.FetchRawCSV(context.Background(), "Co60", iaea.RadGamma, iaea.FetchOptions{Client: doer})
	assert.ErrorIs(t, err, iaea.ErrUnexpectedStatus)
}

func TestSaveAndLoadAllRoundTrip(t *testing.T) {
	dir := t.TempDir()

	energy := 661.657
	data := map[string]iaea.RecordSet{
		"Cs137": {{Energy: &energy, Special: iaea.Gamma{}}},
	}

	require.NoError(t, iaea.SaveAll(dir, iaea.RadGamma, data))

	loaded, err := iaea.LoadAll(dir, iaea.RadGamma)
	require.NoError(t, err)
	require.Contains(t, loaded, "Cs137")
	require.Len(t, loaded["Cs137"], 1)
	assert.InDelta(t, 661.657, *loaded["Cs137"][0].Energy, 1e-6)

	records, ok, err := iaea.LoadNuclideRecords(dir, "cs137", iaea.RadGamma)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, records, 1)

	nuclides, err := iaea.LoadAvailableNuclides(dir, iaea.RadGamma)
	require.NoError(t, err)
	require.Len(t, nuclides, 1)
	assert.Equal(t, "Cs137", nuclides[0].Name())
}

func TestLoadManyNuclideRecordsFiltersUnknown(t *testing.T) {
	dir := t.TempDir()

	e1, e2 := 661.657, 1274.537
	data := map[string]iaea.RecordSet{
		"Cs137": {{Energy: &e1}},
		"Na22":  {{Energy: &e2}},
	}
	require.NoError(t, iaea.SaveAll(dir, iaea.RadGamma, data))

	found, err := iaea.LoadManyNuclideRecords(dir, []string{"cs137", "xx999"}, iaea.RadGamma)
	require.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Contains(t, found, "Cs137")
}
