package gcode

import "errors"

// Fatal extraction errors. Only archive-typed inputs can fail; everything
// else degrades into absent fields.
var (
	// ErrNoGcodeEntry is returned when an archive opened fine but contains no
	// embedded G-code entry at any of the conventional locations.
	ErrNoGcodeEntry = errors.New("archive contains no gcode entry")

	// ErrArchiveCorrupt is returned when the archive could not be opened or
	// an entry could not be decompressed. Distinct from ErrNoGcodeEntry so
	// callers can tell "bad file" from "nothing to extract".
	ErrArchiveCorrupt = errors.New("archive could not be read")
)
