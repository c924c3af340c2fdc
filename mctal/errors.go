package mctal

import "errors"

// ErrEndOfFile is returned when a read is attempted past the last line
// of the file while a block is still expected.
var ErrEndOfFile = errors.New("mctal: unexpected end of file")

// ErrNoTallyInitialised is returned when block data (bins, comment,
// values) arrives before any "tally" line has started a new Tally.
var ErrNoTallyInitialised = errors.New("mctal: no tally block initialised")

// ErrNoTmeshInitialised mirrors ErrNoTallyInitialised for Tmesh blocks.
var ErrNoTmeshInitialised = errors.New("mctal: no tmesh block initialised")

// ErrUnexpectedToken is returned when a keyword line does not match any
// recognised block or bin-data token.
var ErrUnexpectedToken = errors.New("mctal: unexpected token")

// ErrUnexpectedLength is returned when a parsed list does not have the
// length its preceding count field declared.
var ErrUnexpectedLength = errors.New("mctal: unexpected list length")

// ErrUnexpectedKcodeValues is returned when a KCODE cycle record is not
// 18 or 19 values long.
var ErrUnexpectedKcodeValues = errors.New("mctal: unexpected number of kcode values")
