// Package iaea queries decay data from the IAEA "Live Chart of
// Nuclides" API, or loads data previously fetched and cached to disk.
//
// The IAEA returns CSV for every "decay_rads" request; FetchNuclideRecords
// decodes that into a RecordSet, one Record per emission line, each
// carrying the common decay fields plus a radiation-type-specific
// SpecialData payload decoded for the record's radiation type (gamma,
// alpha, beta-, beta+, electron or X-ray).
//
// See https://www-nds.iaea.org/relnsd/vcharthtml/api_v0_guide.html.
package iaea
