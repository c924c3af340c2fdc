package fispact

import (
	"strconv"
	"strings"
)

// Stability filters Interval.Nuclides by decay behaviour.
type Stability int

const (
	// StabilityAny applies no filtering.
	StabilityAny Stability = iota
	// StabilityStable keeps only zero-halflife nuclides.
	StabilityStable
	// StabilityUnstable keeps only nonzero-halflife nuclides.
	StabilityUnstable
)

// Nuclide is a single isotope's contribution to an Interval's sample.
type Nuclide struct {
	Element       string  `json:"element"`
	Isotope       uint32  `json:"isotope"`
	State         string  `json:"state"`
	HalfLife      float64 `json:"half_life"`
	Zai           uint32  `json:"zai"`
	Atoms         float64 `json:"atoms"`
	Mass          float64 `json:"grams"`
	Activity      float64 `json:"activity"`
	AlphaActivity float64 `json:"alpha_activity"`
	BetaActivity  float64 `json:"beta_activity"`
	GammaActivity float64 `json:"gamma_activity"`
	Heat          float64 `json:"heat"`
	AlphaHeat     float64 `json:"alpha_heat"`
	BetaHeat      float64 `json:"beta_heat"`
	GammaHeat     float64 `json:"gamma_heat"`
	Dose          float64 `json:"dose"`
	Ingestion     float64 `json:"ingestion"`
	Inhalation    float64 `json:"inhalation"`
}

// Name formats the nuclide identity as e.g. "Co60m".
func (n *Nuclide) Name() string {
	element := n.Element
	if len(element) > 0 {
		element = strings.ToUpper(element[:1]) + strings.ToLower(element[1:])
	}
	return element + strconv.Itoa(int(n.Isotope)) + n.State
}

// ApplyNormalisation scales every flux-dependent field by norm.
func (n *Nuclide) ApplyNormalisation(norm float64) {
	n.Dose *= norm
	n.Ingestion *= norm
	n.Inhalation *= norm
	n.Heat *= norm
	n.AlphaHeat *= norm
	n.BetaHeat *= norm
	n.GammaHeat *= norm
	n.Activity *= norm
	n.AlphaActivity *= norm
	n.BetaActivity *= norm
	n.GammaActivity *= norm
}
