package mesh

import (
	"fmt"
	"strings"
)

// Particle is a closed enumeration of the MCNP particle designators a
// mesh tally can be scored for. The zero value, Unknown, is returned by
// every lenient conversion that cannot otherwise classify its input.
//
// One entry intentionally reproduces an observed anomaly rather than
// correcting it: designator "29" ("w", "xi_plus", the "positive cascade;
// positive xi baryon" name) resolves to XiBaryon, not a distinct
// "PosXiBaryon" variant. See the Open Question decision in DESIGN.md.
type Particle uint8

const (
	Unknown Particle = iota
	Neutron
	Photon
	Electron
	NegMuon
	PosMuon
	ElectronNeutrino
	MuonNeutrino
	Proton
	LambdaBaryon
	PosSigmaBaryon
	NegSigmaBaryon
	Cascade0
	NegCascade
	Sigma0
	AntiNeutron
	AntiLambda
	PosPion
	NeutPion
	PosKaon
	KaonShort
	KaonLong
	AntiProton
	AntiNegMuonNeutrino
	AntiMuonNeutrino
	AntiElectronNeutrino
	Deuteron
	Triton
	Helion
	XiBaryon // id 29 — see package doc; deliberately not "PosXiBaryon"
	Alpha
	NegPion
	NegKaon
	OmegaBaryon
	AntiOmegaBaryon
	AntiCascade0
	AntiSigma0
	HeavyIon
)

type particleMeta struct {
	id     uint8
	symbol string
	tag    string
	name   string
}

var particleTable = map[Particle]particleMeta{
	Unknown:              {0, "", "unknown", "unknown"},
	Neutron:               {1, "n", "neutron", "neutron"},
	Photon:                 {2, "p", "photon", "photon"},
	Electron:               {3, "e", "electron", "electron"},
	NegMuon:                {4, "|", "negmuon", "negative muon"},
	PosMuon:                {5, "+m", "posmuon", "positive muon"},
	ElectronNeutrino:       {6, "u", "electron_neutrino", "electron neutrino"},
	MuonNeutrino:           {7, "v", "muon_neutrino", "muon neutrino"},
	Proton:                 {8, "h", "proton", "proton"},
	LambdaBaryon:           {9, "l", "lambda_baryon", "lambda baryon"},
	PosSigmaBaryon:         {10, "+s", "pos_sigma_baryon", "positive sigma baryon"},
	NegSigmaBaryon:         {11, "-s", "neg_sigma_baryon", "negative sigma baryon"},
	Cascade0:               {12, "z", "cascade_zero", "cascade zero; neutral xi baryon"},
	NegCascade:             {13, "xm", "neg_cascade", "negative cascade; negative xi baryon"},
	Sigma0:                 {14, "0s", "sigma_zero", "neutral sigma baryon"},
	AntiNeutron:            {15, "an", "antineutron", "antineutron"},
	AntiLambda:             {16, "al", "anti_lambda", "antilambda baryon"},
	PosPion:                {17, "/", "pos_pion", "positive pion"},
	NeutPion:               {18, "z0", "neut_pion", "neutral pion"},
	PosKaon:                {19, "k", "pos_kaon", "positive kaon"},
	KaonShort:              {20, "k1", "kaon_short", "short-lived neutral kaon"},
	KaonLong:               {21, "k2", "kaon_long", "long-lived neutral kaon"},
	AntiProton:             {22, "ap", "antiproton", "antiproton"},
	AntiNegMuonNeutrino:    {23, "anm", "anti_neg_muon_neutrino", "antiparticle negative muon neutrino"},
	AntiMuonNeutrino:       {24, "av", "anti_muon_neutrino", "antiparticle muon neutrino"},
	AntiElectronNeutrino:   {25, "au", "anti_electron_neutrino", "antiparticle electron neutrino"},
	Deuteron:               {26, "d", "deuteron", "deuteron"},
	Triton:                 {27, "t", "triton", "triton"},
	Helion:                 {28, "s", "helion", "helium-3 nucleus"},
	XiBaryon:               {29, "w", "xi_plus", "positive cascade; positive xi baryon"},
	Alpha:                  {30, "a", "alpha", "alpha particle"},
	NegPion:                {31, "*", "neg_pion", "negative pion"},
	NegKaon:                {32, "-k", "neg_kaon", "negative kaon"},
	OmegaBaryon:            {33, "om", "omega_baryon", "negative omega baryon"},
	AntiOmegaBaryon:        {34, "aom", "anti_omega_baryon", "positive antiomega baryon"},
	AntiCascade0:           {35, "az", "anti_cascade_zero", "antiparticle neutral xi baryon"},
	AntiSigma0:             {36, "as", "anti_sigma_zero", "antiparticle neutral sigma baryon"},
	HeavyIon:               {37, "#", "heavy_ion", "generic heavy ion"},
}

// ID returns p's MCNP numeric designator.
func (p Particle) ID() uint8 {
	return particleTable[p].id
}

// Symbol returns p's single-field MCNP card symbol.
func (p Particle) Symbol() string {
	return particleTable[p].symbol
}

// String renders p's full descriptive name, as meshtal headers do.
func (p Particle) String() string {
	return particleTable[p].name
}

// FromID converts a numeric MCNP designator to a Particle, falling back
// to Unknown for any id this table does not recognise.
func FromID(id uint8) Particle {
	for p, meta := range particleTable {
		if meta.id == id {
			return p
		}
	}
	return Unknown
}

// FromDesignator converts a case-insensitive designator — a numeric id, a
// symbol, a meshtal tag, or a full name — to a Particle. It never fails:
// unrecognised input resolves to Unknown, matching the reader's lenient
// parsing of the "<particle> mesh tally." header line.
func FromDesignator(s string) Particle {
	needle := strings.ToLower(strings.TrimSpace(s))
	for p, meta := range particleTable {
		if strings.ToLower(meta.symbol) == needle ||
			strings.ToLower(meta.tag) == needle ||
			strings.ToLower(meta.name) == needle {
			return p
		}
	}
	// numeric fallback, e.g. "29"
	var id int
	if n, err := fmt.Sscanf(needle, "%d", &id); err == nil && n == 1 {
		return FromID(uint8(id))
	}
	return Unknown
}

// TryFromDesignator is the strict form of FromDesignator: input that does
// not resolve to a known particle returns ErrUnknownParticle instead of
// Unknown.
func TryFromDesignator(s string) (Particle, error) {
	p := FromDesignator(s)
	if p == Unknown {
		return Unknown, fmt.Errorf("%w: %q", ErrUnknownParticle, s)
	}
	return p, nil
}
