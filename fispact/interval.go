package fispact

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// DoseKind distinguishes a contact dose from a point-source dose at a
// recorded distance.
type DoseKind struct {
	Contact  bool
	Distance float64 // metres, only meaningful when !Contact
}

// Dose is the sample's total dose rate and how it was approximated.
// FISPACT-II writes this as a "dose_rate" dictionary with a "type",
// "distance", "mass", and "dose" field; Rate/Kind collapse that down to
// what is actually useful (the sample mass there is redundant with
// Interval.Mass).
type Dose struct {
	Rate float64
	Kind DoseKind
}

type rawDose struct {
	Kind     string  `json:"type"`
	Distance float64 `json:"distance"`
	Dose     float64 `json:"dose"`
}

// UnmarshalJSON implements the original's custom "dose_rate" deserialiser.
func (d *Dose) UnmarshalJSON(data []byte) error {
	var raw rawDose
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Rate = raw.Dose
	switch strings.ToLower(raw.Kind) {
	case "contact":
		d.Kind = DoseKind{Contact: true}
	case "point source":
		d.Kind = DoseKind{Distance: raw.Distance}
	default:
		return fmt.Errorf("%w: %q", ErrUnrecognisedDoseKind, raw.Kind)
	}
	return nil
}

// Spectrum is a predicted gamma-line histogram: arbitrary bin Edges
// (MeV) and their intensities Values (MeV/s).
type Spectrum struct {
	Edges  []float64 `json:"boundaries"`
	Values []float64 `json:"values"`
}

// SortProperty selects the Nuclide field Interval.SortAscending and
// SortDescending order by.
type SortProperty int

const (
	SortByActivity SortProperty = iota
	SortByMass
	SortByDose
	SortByAtoms
	SortByHeat
)

// Interval is one irradiation or cooling step's sample totals, gamma
// Spectrum, and full Nuclide inventory.
type Interval struct {
	IrradiationTime float64   `json:"irradiation_time"`
	CoolingTime     float64   `json:"cooling_time"`
	Flux            float64   `json:"flux"`
	Atoms           float64   `json:"total_atoms"`
	Activity        float64   `json:"total_activity"`
	AlphaActivity   float64   `json:"alpha_activity"`
	BetaActivity    float64   `json:"beta_activity"`
	GammaActivity   float64   `json:"gamma_activity"`
	Mass            float64   `json:"total_mass"`
	Heat            float64   `json:"total_heat"`
	AlphaHeat       float64   `json:"alpha_heat"`
	BetaHeat        float64   `json:"beta_heat"`
	GammaHeat       float64   `json:"gamma_heat"`
	Ingestion       float64   `json:"ingestion_dose"`
	Inhalation      float64   `json:"inhalation_dose"`
	Dose            Dose      `json:"dose_rate"`
	Spectrum        Spectrum  `json:"gamma_spectrum"`
	Nuclides        []Nuclide `json:"nuclides"`
}

// UnmarshalJSON converts the total_mass field from kilograms to grams
// after the standard decode, matching Nuclide.Mass's units.
func (iv *Interval) UnmarshalJSON(data []byte) error {
	type alias Interval
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	a.Mass *= 1.0e3
	*iv = Interval(a)
	return nil
}

// NuclideNames returns the sorted, deduplicated names of every nuclide.
func (iv *Interval) NuclideNames() []string {
	names := make([]string, len(iv.Nuclides))
	for i, n := range iv.Nuclides {
		names[i] = n.Name()
	}
	return sortedUnique(names)
}

// ElementNames returns the sorted, deduplicated element symbols present.
func (iv *Interval) ElementNames() []string {
	names := make([]string, len(iv.Nuclides))
	for i, n := range iv.Nuclides {
		element := n.Element
		if len(element) > 0 {
			element = strings.ToUpper(element[:1]) + strings.ToLower(element[1:])
		}
		names[i] = element
	}
	return sortedUnique(names)
}

// FilterByStability returns the nuclides matching the requested Stability.
func (iv *Interval) FilterByStability(s Stability) []Nuclide {
	if s == StabilityAny {
		return iv.Nuclides
	}
	var out []Nuclide
	for _, n := range iv.Nuclides {
		if (s == StabilityStable) == (n.HalfLife == 0) {
			out = append(out, n)
		}
	}
	return out
}

// FindNuclide returns the first nuclide whose name starts with target
// (case-insensitive), or nil if none match.
func (iv *Interval) FindNuclide(target string) *Nuclide {
	needle := strings.ToLower(target)
	for i := range iv.Nuclides {
		if strings.HasPrefix(strings.ToLower(iv.Nuclides[i].Name()), needle) {
			return &iv.Nuclides[i]
		}
	}
	return nil
}

// Filter returns every nuclide satisfying predicate.
func (iv *Interval) Filter(predicate func(*Nuclide) bool) []Nuclide {
	var out []Nuclide
	for i := range iv.Nuclides {
		if predicate(&iv.Nuclides[i]) {
			out = append(out, iv.Nuclides[i])
		}
	}
	return out
}

// SortAscending reorders Nuclides in place by the given property.
func (iv *Interval) SortAscending(property SortProperty) {
	sort.Slice(iv.Nuclides, func(i, j int) bool {
		return propertyValue(iv.Nuclides[i], property) < propertyValue(iv.Nuclides[j], property)
	})
}

// SortDescending reorders Nuclides in place, largest first.
func (iv *Interval) SortDescending(property SortProperty) {
	iv.SortAscending(property)
	for i, j := 0, len(iv.Nuclides)-1; i < j; i, j = i+1, j-1 {
		iv.Nuclides[i], iv.Nuclides[j] = iv.Nuclides[j], iv.Nuclides[i]
	}
}

func propertyValue(n Nuclide, property SortProperty) float64 {
	switch property {
	case SortByMass:
		return n.Mass
	case SortByDose:
		return n.Dose
	case SortByAtoms:
		return n.Atoms
	case SortByHeat:
		return n.Heat
	default:
		return n.Activity
	}
}

// ApplyNormalisation scales every flux-dependent field, including every
// nuclide's, by norm.
func (iv *Interval) ApplyNormalisation(norm float64) {
	iv.Flux *= norm
	iv.Dose.Rate *= norm
	iv.Ingestion *= norm
	iv.Inhalation *= norm
	iv.Heat *= norm
	iv.AlphaHeat *= norm
	iv.BetaHeat *= norm
	iv.GammaHeat *= norm
	iv.Activity *= norm
	iv.AlphaActivity *= norm
	iv.BetaActivity *= norm
	iv.GammaActivity *= norm
	for i := range iv.Nuclides {
		iv.Nuclides[i].ApplyNormalisation(norm)
	}
}

func sortedUnique(values []string) []string {
	sort.Strings(values)
	out := values[:0:0]
	for i, v := range values {
		if i == 0 || v != values[i-1] {
			out = append(out, v)
		}
	}
	return out
}
