package iaea

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"sort"

	"github.com/repositony/ntools-go/internal/ntlog"
)

func init() {
	gob.Register(Gamma{})
	gob.Register(Alpha{})
	gob.Register(BetaMinus{})
	gob.Register(BetaPlus{})
	gob.Register(Electron{})
	gob.Register(Xray{})
}

// cacheFileName returns the on-disk name used for a radiation type's
// pre-fetched dataset, mirroring the original per-type binary files.
func cacheFileName(rad RadType) string {
	switch rad {
	case RadAlpha:
		return "alpha.bin"
	case RadBetaPlus:
		return "betaplus.bin"
	case RadBetaMinus:
		return "betaminus.bin"
	case RadGamma:
		return "gamma.bin"
	case RadElectron:
		return "electron.bin"
	case RadXray:
		return "xray.bin"
	default:
		return "unknown.bin"
	}
}

// SaveAll gob-encodes a nuclide-name-keyed dataset to <dir>/<rad>.bin, so
// it can later be read back with LoadAll without hitting the network.
func SaveAll(dir string, rad RadType, data map[string]RecordSet) error {
	path := filepath.Join(dir, cacheFileName(rad))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(data); err != nil {
		return err
	}
	ntlog.Infof("wrote %d cached nuclides to %s", len(data), path)
	return nil
}

// LoadAll reads a dataset previously written by SaveAll from <dir>/<rad>.bin.
// The returned map is keyed by nuclide name, e.g. "Co60", with every
// RecordSet the IAEA API returned for that nuclide at fetch time.
func LoadAll(dir string, rad RadType) (map[string]RecordSet, error) {
	path := filepath.Join(dir, cacheFileName(rad))
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data := make(map[string]RecordSet)
	if err := gob.NewDecoder(f).Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}

// LoadAvailableNuclides returns every nuclide present in a cached dataset,
// sorted by element symbol, then by isotope number.
func LoadAvailableNuclides(dir string, rad RadType) ([]Nuclide, error) {
	data, err := LoadAll(dir, rad)
	if err != nil {
		return nil, err
	}

	nuclides := make([]Nuclide, 0, len(data))
	for name := range data {
		n, err := ParseNuclide(name)
		if err != nil {
			continue
		}
		nuclides = append(nuclides, n)
	}
	sort.Slice(nuclides, func(i, j int) bool {
		if nuclides[i].Symbol != nuclides[j].Symbol {
			return nuclides[i].Symbol < nuclides[j].Symbol
		}
		return nuclides[i].Isotope < nuclides[j].Isotope
	})
	return nuclides, nil
}

// LoadNuclideRecords returns the cached RecordSet for a single nuclide,
// or (nil, false, nil) if the dataset has no entry for it.
func LoadNuclideRecords(dir string, nuclide string, rad RadType) (RecordSet, bool, error) {
	n, err := ParseNuclide(nuclide)
	if err != nil {
		return nil, false, err
	}

	data, err := LoadAll(dir, rad)
	if err != nil {
		return nil, false, err
	}

	records, ok := data[n.Name()]
	return records, ok, nil
}

// LoadManyNuclideRecords is the bulk form of LoadNuclideRecords, returning
// a nuclide-name-keyed map of only the requested nuclides found in the
// cached dataset.
func LoadManyNuclideRecords(dir string, nuclides []string, rad RadType) (map[string]RecordSet, error) {
	data, err := LoadAll(dir, rad)
	if err != nil {
		return nil, err
	}

	out := make(map[string]RecordSet, len(nuclides))
	for _, raw := range nuclides {
		n, err := ParseNuclide(raw)
		if err != nil {
			continue
		}
		if records, ok := data[n.Name()]; ok {
			out[n.Name()] = records
		}
	}
	return out, nil
}
