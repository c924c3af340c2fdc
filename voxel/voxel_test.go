package voxel_test

import (
	"math"
	"testing"

	"github.com/repositony/ntools-go/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClampsNegativeResult(t *testing.T) {
	v, err := voxel.New(0, -5, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v.Result)
}

func TestNewRejectsNegativeError(t *testing.T) {
	_, err := voxel.New(0, 1, -0.1)
	assert.ErrorIs(t, err, voxel.ErrNegativeError)
}

func TestAddPropagatesAbsoluteErrorInQuadrature(t *testing.T) {
	a, err := voxel.New(0, 10, 0.1)
	require.NoError(t, err)
	b, err := voxel.New(1, 10, 0.2)
	require.NoError(t, err)

	sum := a.Add(b)
	wantAbs := math.Hypot(a.AbsoluteError(), b.AbsoluteError())
	assert.InDelta(t, wantAbs, sum.AbsoluteError(), 1e-9)
	assert.Equal(t, a.Index, sum.Index)
}

func TestMulPropagatesRelativeErrorInQuadrature(t *testing.T) {
	a, _ := voxel.New(0, 2, 0.1)
	b, _ := voxel.New(1, 3, 0.2)

	prod := a.Mul(b)
	assert.Equal(t, 6.0, prod.Result)
	assert.InDelta(t, math.Hypot(0.1, 0.2), prod.Error, 1e-12)
}

func TestPowf(t *testing.T) {
	v, _ := voxel.New(3, 4, 0.1)
	got := v.Powf(0.5)
	assert.InDelta(t, 2.0, got.Result, 1e-12)
	assert.Equal(t, 3, got.Index)
}

func TestInPlaceOperatorsMatchValueReturningForms(t *testing.T) {
	a, _ := voxel.New(0, 10, 0.1)
	b, _ := voxel.New(1, 4, 0.2)

	want := a.Add(b)
	got := a
	got.AddInPlace(b)
	assert.Equal(t, want, got)

	want = a.Sub(b)
	got = a
	got.SubInPlace(b)
	assert.Equal(t, want, got)

	want = a.Mul(b)
	got = a
	got.MulInPlace(b)
	assert.Equal(t, want, got)

	want = a.Div(b)
	got = a
	got.DivInPlace(b)
	assert.Equal(t, want, got)

	want = a.AddScalar(2)
	got = a
	got.AddScalarInPlace(2)
	assert.Equal(t, want, got)

	want = a.Powf(0.5)
	got = a
	got.PowfInPlace(0.5)
	assert.Equal(t, want, got)
}

func TestGroupTotalVsValue(t *testing.T) {
	assert.True(t, voxel.Total.IsTotal())
	_, ok := voxel.Total.Value()
	assert.False(t, ok)

	g := voxel.ValueGroup(14.1)
	assert.False(t, g.IsTotal())
	v, ok := g.Value()
	assert.True(t, ok)
	assert.Equal(t, 14.1, v)
}
