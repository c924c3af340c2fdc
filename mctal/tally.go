package mctal

import "github.com/repositony/ntools-go/mesh"

// TallyKind identifies the type of detector tally, taken directly from
// the MCTAL "TALLY <id> <i> <j> <k>" header line, where j is the kind.
type TallyKind uint8

const (
	TallyNone TallyKind = iota
	TallyPoint
	TallyRing
	TallyPinhole
	TallyTransmittedRectangular
	TallyTransmittedCylindrical
)

// Modifier is the tally modifier applied on the input card (*F.. or +F..),
// taken from the "k" field of the same header line.
type Modifier uint8

const (
	ModifierNone Modifier = iota
	ModifierStar
	ModifierPlus
)

// BinKind distinguishes a plain bin list from one carrying a synthetic
// total or cumulative bin, signalled by a modifier letter following the
// bin's single-character token (e.g. "et" for energy-with-total).
type BinKind uint8

const (
	BinKindNone BinKind = iota
	BinKindTotal
	BinKindCumulative
)

// BinFlag indicates whether a bin's listed values are upper bounds or
// discrete plotting points.
type BinFlag uint8

const (
	BinFlagUpperBound BinFlag = iota
	BinFlagDiscrete
)

// BinData holds one of a tally's labelled bin records: region, flagged,
// user, segment, multiplier, cosine, energy, or time bins.
type BinData struct {
	Token   byte
	Number  int
	Kind    BinKind
	Flag    BinFlag
	Unbound bool
	Values  []float64
}

// TallyResult is a single value/relative-error pair, the unit MCTAL
// results are always written as.
type TallyResult struct {
	Value float64
	Error float64
}

// AbsoluteError returns Value*Error.
func (r TallyResult) AbsoluteError() float64 { return r.Value * r.Error }

// RelativeError returns Error, named for symmetry with AbsoluteError.
func (r TallyResult) RelativeError() float64 { return r.Error }

// TfcResult is one row of the tally fluctuation chart: particle count,
// mean, relative error, and figure of merit at a given nps checkpoint.
type TfcResult struct {
	Nps   uint64
	Value float64
	Error float64
	Fom   float64
}

// AbsoluteError returns Value*Error.
func (r TfcResult) AbsoluteError() float64 { return r.Value * r.Error }

// RelativeError returns Error.
func (r TfcResult) RelativeError() float64 { return r.Error }

// Tfc is the tally fluctuation chart: how the tally's mean, error, and
// figure of merit evolved with increasing particle histories.
type Tfc struct {
	NRecords         uint32
	NFlaggedBins     uint32
	NRegionBins      uint32
	NUserBins        uint32
	NSegmentBins     uint32
	NMultiplierBins  uint32
	NCosineBins      uint32
	NEnergyBins      uint32
	NTimeBins        uint32
	Results          []TfcResult
}

// Tally is a standard MCNP F tally: a cell, surface, or detector flux,
// current, or energy-deposition result, with every associated bin axis
// and the full tally fluctuation chart.
type Tally struct {
	ID       uint32
	Particles []mesh.Particle
	Kind     TallyKind
	Modifier Modifier
	Comment  string

	RegionBins     BinData
	FlaggedBins    BinData
	UserBins       BinData
	MultiplierBins BinData
	SegmentBins    BinData
	CosineBins     BinData
	EnergyBins     BinData
	TimeBins       BinData

	Results []TallyResult
	Tfc     Tfc
}

// NExpectedResults multiplies every nonzero bin count together, matching
// the MCTAL convention that a count of 0 still implies exactly one bin.
func (t *Tally) NExpectedResults() int {
	counts := []int{
		t.RegionBins.Number, t.FlaggedBins.Number, t.UserBins.Number,
		t.SegmentBins.Number, t.MultiplierBins.Number, t.CosineBins.Number,
		t.EnergyBins.Number, t.TimeBins.Number,
	}
	product := 1
	for _, c := range counts {
		if c > 0 {
			product *= c
		}
	}
	return product
}

// FindResult returns the slice of results for the given region (cell,
// surface, or detector number), or nil if region is not present.
func (t *Tally) FindResult(region float64) []TallyResult {
	for idx, r := range t.RegionBins.Values {
		if r == region {
			return t.chunk(idx)
		}
	}
	return nil
}

func (t *Tally) chunk(idx int) []TallyResult {
	if t.RegionBins.Number == 0 || len(t.Results) == 0 {
		return nil
	}
	n := len(t.Results) / t.RegionBins.Number
	start := idx * n
	end := start + n
	if start < 0 || end > len(t.Results) {
		return nil
	}
	return t.Results[start:end]
}
