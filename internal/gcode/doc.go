// Package gcode extracts structured print metadata from slicer output.
//
// Slicers embed job metadata (estimated print time, per-filament material,
// colour, length and weight, layer height, infill, nozzle, printer model) as
// comment lines in the G-code they emit, using vendor-specific conventions.
// This package applies a prioritized, best-effort pattern set over those
// comments and reconciles the results into a single PrintMetadata record.
//
// Input is either raw G-code text or a zip-compatible manufacturing archive
// (3MF-style) that embeds a per-plate G-code entry. Extraction is a pure
// function over the supplied bytes: no I/O, no state between calls, and the
// same bytes always produce a structurally identical record. The only fatal
// errors are ErrNoGcodeEntry and ErrArchiveCorrupt, both specific to archive
// inputs; any individual field that cannot be recovered is simply absent or
// defaulted, never an error.
package gcode
