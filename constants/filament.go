package constants

// Filament defaults used when the slicer output does not report a value.
const (
	// UnknownMaterial is the material type reported when no filament_type
	// comment was found for a slot.
	UnknownMaterial = "Unknown"

	// DefaultFilamentColor is a neutral gray used when no colour was reported.
	DefaultFilamentColor = "#808080"

	// DefaultFilamentDiameter is the filament diameter in millimetres assumed
	// when deriving weight from length. 1.75 mm is the dominant consumer size.
	DefaultFilamentDiameter = 1.75

	// DefaultFilamentDensity is a generic PLA-like density in g/cm³ used when
	// deriving weight from length. This is an approximation, not a measured
	// value; derived weights are estimates.
	DefaultFilamentDensity = 1.24
)
