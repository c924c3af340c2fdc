package iaea

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/repositony/ntools-go/internal/ntlog"
)

// iaeaAPI is the base URL for the IAEA chart-of-nuclides decay data
// endpoint.
const iaeaAPI = "https://nds.iaea.org/relnsd/v1/data?"

// HTTPDoer is satisfied by *http.Client; requests are abstracted behind
// this interface so fetch calls can be driven by a generated mock in
// tests instead of a live network connection.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// FetchOptions configures a nuclide data request.
type FetchOptions struct {
	// Client performs the HTTP request; defaults to http.DefaultClient.
	Client HTTPDoer
	// CacheDir, if set, causes PrefetchCSV to save the raw response
	// under a uuid-named file in this directory. The Load* functions do
	// not read these files; they read datasets written by SaveAll.
	CacheDir string
}

func (o FetchOptions) client() HTTPDoer {
	if o.Client != nil {
		return o.Client
	}
	return http.DefaultClient
}

// FetchRawCSV returns the unaltered CSV body the IAEA API responds with
// for a "decay_rads" query against the given nuclide and radiation type.
func FetchRawCSV(ctx context.Context, nuclide string, rad RadType, opts FetchOptions) (string, error) {
	n, err := ParseNuclide(nuclide)
	if err != nil {
		return "", err
	}
	queryName, err := n.QueryName()
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%sfields=decay_rads&nuclides=%s&rad_types=%s", iaeaAPI, queryName, rad.QuerySymbol())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := opts.client().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	csvText := string(body)

	// Both max_energy and mean_energy share the "unc_me" column name in
	// beta- responses; disambiguate the first occurrence.
	if rad == RadBetaMinus {
		csvText = strings.Replace(csvText, "unc_me", "unc_mean", 1)
	}
	return csvText, nil
}

// FetchNuclideRecords fetches and decodes every decay record for the
// given nuclide and radiation type.
func FetchNuclideRecords(ctx context.Context, nuclide string, rad RadType, opts FetchOptions) (RecordSet, error) {
	raw, err := FetchRawCSV(ctx, nuclide, rad, opts)
	if err != nil {
		return nil, err
	}
	return decodeCSV(raw, rad)
}

// PrefetchCSV fetches raw CSV and saves it to a uuid-named file inside
// opts.CacheDir, returning the path written. The random name avoids
// collisions between repeated queries for the same nuclide/radiation
// pair without needing any shared index file.
func PrefetchCSV(ctx context.Context, nuclide string, rad RadType, opts FetchOptions) (string, error) {
	raw, err := FetchRawCSV(ctx, nuclide, rad, opts)
	if err != nil {
		return "", err
	}
	if opts.CacheDir == "" {
		return "", fmt.Errorf("iaea: PrefetchCSV requires FetchOptions.CacheDir")
	}
	name := uuid.NewString() + ".csv"
	path := filepath.Join(opts.CacheDir, name)
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		return "", err
	}
	ntlog.Infof("cached %s decay data for %s at %s", rad.QuerySymbol(), nuclide, path)
	return path, nil
}

func decodeCSV(raw string, rad RadType) (RecordSet, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idx := columnIndex(rows[0])
	out := make(RecordSet, 0, len(rows)-1)
	for _, row := range rows[1:] {
		out = append(out, parseRecord(row, idx, rad))
	}
	return out, nil
}

func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	return idx
}

func field(row []string, idx map[string]int, name string) (string, bool) {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return "", false
	}
	value := strings.TrimSpace(row[i])
	if value == "" {
		return "", false
	}
	return value, true
}

func fieldFloat(row []string, idx map[string]int, name string) *float64 {
	v, ok := field(row, idx, name)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func fieldInt(row []string, idx map[string]int, name string) *int {
	v, ok := field(row, idx, name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func fieldStr(row []string, idx map[string]int, name string) *string {
	v, ok := field(row, idx, name)
	if !ok {
		return nil
	}
	return &v
}

func parseRecord(row []string, idx map[string]int, rad RadType) Record {
	r := Record{
		Energy:       fieldFloat(row, idx, "energy"),
		UncEnergy:    fieldFloat(row, idx, "unc_en"),
		Intensity:    fieldFloat(row, idx, "intensity"),
		UncIntensity: fieldFloat(row, idx, "unc_i"),
		HalfLifeSec:  fieldFloat(row, idx, "half_life_sec"),
		UncHalfLife:  fieldFloat(row, idx, "unc_hls"),
		Decay:        fieldStr(row, idx, "decay"),
		DecayPct:     fieldFloat(row, idx, "decay_%"),
		UncDecay:     fieldFloat(row, idx, "unc_d"),
		Jp:           fieldStr(row, idx, "jp"),
		Q:            fieldFloat(row, idx, "q"),
		UncQ:         fieldFloat(row, idx, "unc_q"),

		ParentSymbol: fieldStr(row, idx, "p_symbol"),
		ParentZ:      fieldInt(row, idx, "p_z"),
		ParentN:      fieldInt(row, idx, "p_n"),
		ParentEnergy: fieldFloat(row, idx, "p_energy"),
		UncParentE:   fieldFloat(row, idx, "unc_pe"),

		DaughterSymbol: fieldStr(row, idx, "d_symbol"),
		DaughterZ:      fieldInt(row, idx, "d_z"),
		DaughterN:      fieldInt(row, idx, "d_n"),
	}

	switch rad {
	case RadGamma:
		r.Special = newGamma(row, idx)
	case RadAlpha:
		r.Special = newAlpha(row, idx)
	case RadBetaMinus:
		r.Special = newBetaMinus(row, idx)
	case RadBetaPlus:
		r.Special = newBetaPlus(row, idx)
	case RadElectron:
		r.Special = newElectron(row, idx)
	case RadXray:
		r.Special = newXray(row, idx)
	}
	return r
}

func newGamma(row []string, idx map[string]int) Gamma {
	return Gamma{
		StartLevelEnergy:   fieldFloat(row, idx, "start_level_energy"),
		EndLevelEnergy:     fieldFloat(row, idx, "end_level_energy"),
		Multipolarity:      fieldStr(row, idx, "multipolarity"),
		MixingRatio:        fieldFloat(row, idx, "mixing_ratio"),
		UncMixingRatio:     fieldFloat(row, idx, "unc_mr"),
		ConversionCoeff:    fieldFloat(row, idx, "conversion_coeff"),
		UncConversionCoeff: fieldFloat(row, idx, "unc_cc"),
	}
}

func newAlpha(row []string, idx map[string]int) Alpha {
	return Alpha{HinderanceFactor: fieldFloat(row, idx, "hinderance_factor")}
}

func newBetaMinus(row []string, idx map[string]int) BetaMinus {
	return BetaMinus{
		MaxEnergy:  fieldFloat(row, idx, "max_energy"),
		UncMaxE:    fieldFloat(row, idx, "unc_me"),
		MeanEnergy: fieldFloat(row, idx, "mean_energy"),
		UncMeanE:   fieldFloat(row, idx, "unc_mean"),
	}
}

func newBetaPlus(row []string, idx map[string]int) BetaPlus {
	return BetaPlus{
		MaxEnergy: fieldFloat(row, idx, "max_energy"),
		UncMaxE:   fieldFloat(row, idx, "unc_max_e"),
		ECpct:     fieldFloat(row, idx, "ec_%"),
	}
}

func newElectron(row []string, idx map[string]int) Electron {
	return Electron{Shell: fieldStr(row, idx, "shell")}
}

func newXray(row []string, idx map[string]int) Xray {
	return Xray{Origin: fieldStr(row, idx, "origin")}
}
