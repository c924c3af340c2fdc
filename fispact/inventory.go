package fispact

import (
	"encoding/json"
	"os"
)

// RunData is the run metadata FISPACT-II stamps on every inventory file.
type RunData struct {
	RunName  string `json:"run_name"`
	FluxName string `json:"flux_name"`
	Timestamp string `json:"timestamp"`
}

// Inventory is the full deserialised contents of a FISPACT-II JSON
// results file: run metadata plus every calculation Interval.
type Inventory struct {
	Intervals []Interval `json:"inventory_data"`
	RunData   RunData    `json:"run_data"`
}

// ReadJSON parses a FISPACT-II JSON inventory file at path.
func ReadJSON(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var inv Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// ActivityList returns each Interval's total activity (Bq), in order.
func (inv *Inventory) ActivityList() []float64 {
	return mapIntervals(inv.Intervals, func(iv Interval) float64 { return iv.Activity })
}

// SpecificActivityList returns each Interval's activity/mass (Bq/g).
func (inv *Inventory) SpecificActivityList() []float64 {
	return mapIntervals(inv.Intervals, func(iv Interval) float64 { return iv.Activity / iv.Mass })
}

// DoseList returns each Interval's total Dose.
func (inv *Inventory) DoseList() []Dose {
	out := make([]Dose, len(inv.Intervals))
	for i, iv := range inv.Intervals {
		out[i] = iv.Dose
	}
	return out
}

// MassList returns each Interval's total sample mass (g).
func (inv *Inventory) MassList() []float64 {
	return mapIntervals(inv.Intervals, func(iv Interval) float64 { return iv.Mass })
}

// TotalTimes returns each Interval's irradiation+cooling time (s).
func (inv *Inventory) TotalTimes() []float64 {
	return mapIntervals(inv.Intervals, func(iv Interval) float64 {
		return iv.IrradiationTime + iv.CoolingTime
	})
}

// Nuclides flattens every interval's nuclide list into one slice.
func (inv *Inventory) Nuclides() []Nuclide {
	var out []Nuclide
	for _, iv := range inv.Intervals {
		out = append(out, iv.Nuclides...)
	}
	return out
}

// ElementNames returns the sorted, deduplicated element symbols present
// anywhere in the inventory.
func (inv *Inventory) ElementNames() []string {
	var names []string
	for _, iv := range inv.Intervals {
		names = append(names, iv.ElementNames()...)
	}
	return sortedUnique(names)
}

// NuclideNames returns the sorted, deduplicated nuclide names present
// anywhere in the inventory.
func (inv *Inventory) NuclideNames() []string {
	var names []string
	for _, iv := range inv.Intervals {
		names = append(names, iv.NuclideNames()...)
	}
	return sortedUnique(names)
}

// NuclideTransient is left unimplemented, matching the original
// tooling's own todo!() stub.
func (inv *Inventory) NuclideTransient() error { return ErrNotImplemented }

// NearestInterval is left unimplemented, matching the original
// tooling's own todo!() stub.
func (inv *Inventory) NearestInterval() error { return ErrNotImplemented }

// NormaliseFlux is left unimplemented at the Inventory level, matching
// the original tooling's own todo!() stub; per-interval normalisation is
// available via Interval.ApplyNormalisation.
func (inv *Inventory) NormaliseFlux() error { return ErrNotImplemented }

func mapIntervals(intervals []Interval, f func(Interval) float64) []float64 {
	out := make([]float64, len(intervals))
	for i, iv := range intervals {
		out[i] = f(iv)
	}
	return out
}
