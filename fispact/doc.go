// Package fispact reads FISPACT-II inventory JSON output.
//
// An Inventory holds RunData metadata and a list of Intervals, one per
// irradiation or cooling step. An Interval describes the sample totals,
// a gamma Spectrum histogram, and every Nuclide present.
//
// A few fields diverge from the raw JSON keys for ergonomics: every
// mass is normalised to grams regardless of the unit FISPACT-II wrote
// ("total_mass" arrives in kg), "total_*" keys are shortened (e.g.
// "total_activity" becomes Activity), and the dose_rate dictionary
// collapses into a single Dose value carrying its DoseKind.
package fispact
