package mctal

import "fmt"

// Kcode holds the results of a MCNP criticality (KCODE) run: keff
// estimators for every settled cycle, as recorded when a MCTAL file is
// written for a KCODE problem.
type Kcode struct {
	RecordedCycles    uint32
	SettleCycles      uint32
	VariablesProvided uint32
	Results           []KcodeResult
}

// KcodeResult is the set of keff quantities reported for a single cycle.
type KcodeResult struct {
	Collision        float64
	Absorption       float64
	TrackLength      float64
	LifetimeCollision  float64
	LifetimeAbsorption float64

	AvCollision       float64
	AvCollisionSigma  float64
	AvAbsorption      float64
	AvAbsorptionSigma float64
	AvTrackLength     float64
	AvTrackLengthSigma float64

	AvColAbsTrk      float64
	AvColAbsTrkSigma float64

	AvColAbsTrkByCycle      float64
	AvColAbsTrkByCycleSigma float64

	AvLifetime      float64
	AvLifetimeSigma float64

	NHistories float64
	Fom        float64
}

// NewKcodeResult builds a KcodeResult from the flat 18 or 19 value list
// MCTAL writes per cycle; the 19th value (figure of merit) is only
// present when PRDMP's mct option is set to 1.
func NewKcodeResult(values []float64) (KcodeResult, error) {
	if len(values) != 18 && len(values) != 19 {
		return KcodeResult{}, fmt.Errorf("%w: expected 18-19, found %d", ErrUnexpectedKcodeValues, len(values))
	}
	r := KcodeResult{
		Collision:               values[0],
		Absorption:              values[1],
		TrackLength:             values[2],
		LifetimeCollision:       values[3],
		LifetimeAbsorption:      values[4],
		AvCollision:             values[5],
		AvCollisionSigma:        values[6],
		AvAbsorption:            values[7],
		AvAbsorptionSigma:       values[8],
		AvTrackLength:           values[9],
		AvTrackLengthSigma:      values[10],
		AvColAbsTrk:             values[11],
		AvColAbsTrkSigma:        values[12],
		AvColAbsTrkByCycle:      values[13],
		AvColAbsTrkByCycleSigma: values[14],
		AvLifetime:              values[15],
		AvLifetimeSigma:         values[16],
		NHistories:              values[17],
	}
	if len(values) > 18 {
		r.Fom = values[18]
	}
	return r, nil
}

// ToSlice returns every field in the same order NewKcodeResult expects,
// including the trailing figure-of-merit value (0 if not recorded).
func (r KcodeResult) ToSlice() []float64 {
	return []float64{
		r.Collision, r.Absorption, r.TrackLength,
		r.LifetimeCollision, r.LifetimeAbsorption,
		r.AvCollision, r.AvCollisionSigma,
		r.AvAbsorption, r.AvAbsorptionSigma,
		r.AvTrackLength, r.AvTrackLengthSigma,
		r.AvColAbsTrk, r.AvColAbsTrkSigma,
		r.AvColAbsTrkByCycle, r.AvColAbsTrkByCycleSigma,
		r.AvLifetime, r.AvLifetimeSigma,
		r.NHistories, r.Fom,
	}
}
