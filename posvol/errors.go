package posvol

import "errors"

// ErrUnexpectedByteLength is returned when a Fortran unformatted record's
// bookend length markers do not match what the header dimensions predict.
var ErrUnexpectedByteLength = errors.New("posvol: unexpected byte length")
