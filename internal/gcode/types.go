package gcode

// FilamentRecord describes one material slot used by a print job. A record is
// only emitted when at least a length or a weight was parsed or derived for
// the slot; material type and colour fall back to defaults.
type FilamentRecord struct {
	// MaterialType is the filament material, e.g. "PLA". "Unknown" when the
	// slicer did not report one for this slot.
	MaterialType string `json:"material_type"`
	// Color is a hex or named colour. Defaults to a neutral gray.
	Color string `json:"color"`
	// Length is the formatted filament length with unit suffix ("1200.00mm"),
	// or empty when unknown.
	Length string `json:"length,omitempty"`
	// Weight is the formatted filament weight with unit suffix ("2.98g"), or
	// empty when unknown. Weights derived from length via the generic density
	// approximation are estimates.
	Weight string `json:"weight,omitempty"`
}

// PrintSettings holds slicing parameters. Fields are nil when the slicer
// output did not carry them, so callers can tell "unknown" from "empty".
type PrintSettings struct {
	LayerHeight     *string `json:"layer_height,omitempty"`
	Infill          *string `json:"infill,omitempty"`
	NozzleDiameter  *string `json:"nozzle_diameter,omitempty"`
	PrinterModel    *string `json:"printer_model,omitempty"`
	PrimaryMaterial *string `json:"primary_material,omitempty"`
}

// PrintMetadata is the aggregate extraction result. It is constructed once
// per extraction call and not mutated afterwards.
type PrintMetadata struct {
	// PrintDuration is the canonical formatted duration ("1h 2m"), nil when
	// no duration could be recovered from content or filename.
	PrintDuration *string `json:"print_duration,omitempty"`
	// Filaments lists material slots in first-detected field order.
	Filaments []FilamentRecord `json:"filaments"`
	// TotalFilamentWeight is the summed weight across filaments, formatted
	// with unit suffix; when no per-slot weight parsed as a number but a raw
	// weight string existed, that raw string is passed through instead.
	TotalFilamentWeight *string `json:"total_filament_weight,omitempty"`
	// SourceFilePath echoes the caller-supplied path. Opaque to this package
	// apart from the filename duration fallback.
	SourceFilePath *string `json:"source_file_path,omitempty"`
	Settings       PrintSettings `json:"settings"`
}
