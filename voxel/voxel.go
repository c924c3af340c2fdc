package voxel

import (
	"fmt"
	"math"

	"github.com/repositony/ntools-go/internal/ntlog"
)

// Voxel is one cell of a mesh tally: a dense ordinal index, a tallied
// scalar result, and a relative uncertainty in [0,1].
type Voxel struct {
	Index  int
	Result float64
	Error  float64 // relative
}

// New constructs a Voxel, clamping a negative result to zero with a
// warning (external readers occasionally emit these) and rejecting a
// negative error outright.
func New(index int, result, relError float64) (Voxel, error) {
	if relError < 0 {
		return Voxel{}, fmt.Errorf("voxel.New: %w", ErrNegativeError)
	}
	if result < 0 {
		ntlog.Warnf("voxel %d: negative result %g coerced to 0", index, result)
		result = 0
	}
	return Voxel{Index: index, Result: result, Error: relError}, nil
}

// AbsoluteError returns |Result| * Error.
func (v Voxel) AbsoluteError() float64 {
	return math.Abs(v.Result) * v.Error
}

func relErrorFromAbsolute(result, absError float64) float64 {
	if result == 0 {
		return 0
	}
	return absError / math.Abs(result)
}

// Add combines v and other, propagating absolute uncertainty in
// quadrature and renormalising to a relative figure. The result keeps
// v's Index.
func (v Voxel) Add(other Voxel) Voxel {
	result := v.Result + other.Result
	sigma := math.Hypot(v.AbsoluteError(), other.AbsoluteError())
	return Voxel{Index: v.Index, Result: result, Error: relErrorFromAbsolute(result, sigma)}
}

// Sub mirrors Add for subtraction.
func (v Voxel) Sub(other Voxel) Voxel {
	result := v.Result - other.Result
	sigma := math.Hypot(v.AbsoluteError(), other.AbsoluteError())
	return Voxel{Index: v.Index, Result: result, Error: relErrorFromAbsolute(result, sigma)}
}

// Mul combines v and other, propagating relative uncertainty in
// quadrature directly. The result keeps v's Index.
func (v Voxel) Mul(other Voxel) Voxel {
	return Voxel{
		Index:  v.Index,
		Result: v.Result * other.Result,
		Error:  math.Hypot(v.Error, other.Error),
	}
}

// Div mirrors Mul for division.
func (v Voxel) Div(other Voxel) Voxel {
	return Voxel{
		Index:  v.Index,
		Result: v.Result / other.Result,
		Error:  math.Hypot(v.Error, other.Error),
	}
}

// AddInPlace mutates v in place with the result of v.Add(other).
func (v *Voxel) AddInPlace(other Voxel) { *v = v.Add(other) }

// SubInPlace mutates v in place with the result of v.Sub(other).
func (v *Voxel) SubInPlace(other Voxel) { *v = v.Sub(other) }

// MulInPlace mutates v in place with the result of v.Mul(other).
func (v *Voxel) MulInPlace(other Voxel) { *v = v.Mul(other) }

// DivInPlace mutates v in place with the result of v.Div(other).
func (v *Voxel) DivInPlace(other Voxel) { *v = v.Div(other) }

// AddScalar, SubScalar, MulScalar, and DivScalar treat the scalar as
// exact (zero error), which is equivalent to Add/Sub/Mul/Div against a
// Voxel{Result: s, Error: 0}.
func (v Voxel) AddScalar(s float64) Voxel { return v.Add(Voxel{Result: s}) }
func (v Voxel) SubScalar(s float64) Voxel { return v.Sub(Voxel{Result: s}) }
func (v Voxel) MulScalar(s float64) Voxel { return v.Mul(Voxel{Result: s}) }
func (v Voxel) DivScalar(s float64) Voxel { return v.Div(Voxel{Result: s}) }

// AddScalarInPlace, SubScalarInPlace, MulScalarInPlace, and
// DivScalarInPlace mirror AddInPlace/SubInPlace/MulInPlace/DivInPlace
// against an exact scalar.
func (v *Voxel) AddScalarInPlace(s float64) { *v = v.AddScalar(s) }
func (v *Voxel) SubScalarInPlace(s float64) { *v = v.SubScalar(s) }
func (v *Voxel) MulScalarInPlace(s float64) { *v = v.MulScalar(s) }
func (v *Voxel) DivScalarInPlace(s float64) { *v = v.DivScalar(s) }

// Powf raises Result to the given power, scaling the absolute
// uncertainty by n before renormalising back to a relative figure. The
// result keeps v's Index.
func (v Voxel) Powf(n float64) Voxel {
	result := math.Pow(v.Result, n)
	absScaled := v.AbsoluteError() * n
	return Voxel{Index: v.Index, Result: result, Error: relErrorFromAbsolute(result, absScaled)}
}

// PowfInPlace mutates v in place with the result of v.Powf(n).
func (v *Voxel) PowfInPlace(n float64) { *v = v.Powf(n) }
