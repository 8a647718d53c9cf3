package gcode

import (
	"log/slog"
	"strconv"
)

// Extractor turns slicer output into a PrintMetadata record. It holds no
// state between calls; independent extractions are safe to run in parallel.
type Extractor struct {
	// Archive reads entries out of manufacturing-archive buffers. Defaults to
	// ZipReader; tests inject synthetic readers.
	Archive ArchiveReader
	logger  *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		Archive: ZipReader{},
		logger:  logger,
	}
}

// Extract parses raw control text. It never fails: a file with no
// recognizable metadata yields a valid, mostly-empty record.
func (e *Extractor) Extract(content, sourcePath string) *PrintMetadata {
	lines := boundedLines(content)
	raw := matchFields(lines)

	filaments, totalWeight := buildFilaments(&raw)

	var duration *string
	switch {
	case raw.duration != "":
		if cleaned := cleanRawDuration(raw.duration); cleaned != "" {
			duration = &cleaned
		}
	case raw.timeSeconds != "":
		if secs, err := strconv.Atoi(raw.timeSeconds); err == nil {
			d := formatSeconds(secs)
			duration = &d
		}
	}
	if duration == nil {
		if d := durationFromFilename(sourcePath); d != "" {
			duration = &d
		}
	}

	meta := &PrintMetadata{
		PrintDuration:       duration,
		Filaments:           filaments,
		TotalFilamentWeight: totalWeight,
		Settings: PrintSettings{
			LayerHeight:    optional(raw.layerHeight),
			Infill:         optional(raw.infill),
			NozzleDiameter: optional(raw.nozzle),
			PrinterModel:   optional(raw.printerModel),
		},
	}
	if len(filaments) > 0 {
		primary := filaments[0].MaterialType
		meta.Settings.PrimaryMaterial = &primary
	}
	if sourcePath != "" {
		p := sourcePath
		meta.SourceFilePath = &p
	}

	e.logger.Debug("gcode.extract",
		"scanned_lines", len(lines),
		"filaments", len(filaments),
		"duration_found", duration != nil,
	)
	return meta
}

// ExtractArchive unpacks a manufacturing archive, locates the embedded plate
// G-code and extracts from it. ErrNoGcodeEntry and ErrArchiveCorrupt are the
// only failure modes.
func (e *Extractor) ExtractArchive(data []byte, sourcePath string) (*PrintMetadata, error) {
	text, err := extractGcodeFromArchive(e.Archive, data)
	if err != nil {
		return nil, err
	}
	return e.Extract(text, sourcePath), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
