package fispact

import "errors"

// ErrUnrecognisedDoseKind is returned when a dose_rate "type" field is
// neither "contact" nor "point source".
var ErrUnrecognisedDoseKind = errors.New("fispact: dose rate type not recognised")

// ErrNotImplemented marks the handful of Inventory operations the
// original tooling left as a todo!() stub rather than implementing.
var ErrNotImplemented = errors.New("fispact: not implemented")
