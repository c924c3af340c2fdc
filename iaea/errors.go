package iaea

import "errors"

// ErrCouldNotInferRadType is returned when a RadType symbol is not one
// of the six the IAEA API recognises.
var ErrCouldNotInferRadType = errors.New("iaea: could not infer radiation type")

// ErrFailedParseNuclide is returned when a nuclide string does not match
// <element>[-][isotope][m<state>].
var ErrFailedParseNuclide = errors.New("iaea: failed to parse nuclide")

// ErrInvalidNuclideQuery is returned when QueryName is called on a
// Nuclide with no isotope number (an element-only request).
var ErrInvalidNuclideQuery = errors.New("iaea: nuclide query requires an isotope number")

// ErrUnexpectedStatus is returned when the IAEA API responds with a
// non-200 status code.
var ErrUnexpectedStatus = errors.New("iaea: unexpected response status")
