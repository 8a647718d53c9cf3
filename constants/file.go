package constants

import "strings"

// FileTypes holds the allowed file types for the format field in ExtractJob.
var FileTypes = []string{"GCODE", "ARCHIVE"}

// AllowedExtensions holds the default allowed file extensions for model ingestion.
var AllowedExtensions = map[string]struct{}{
	"gcode": {},
	"gco":   {},
	"g":     {},
	"3mf":   {},
}

// ArchiveExtensions holds extensions that denote a compressed manufacturing
// archive rather than plain control text.
var ArchiveExtensions = map[string]struct{}{
	"3mf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsArchiveExt reports whether the (already normalized) extension denotes an archive.
func IsArchiveExt(ext string) bool {
	_, ok := ArchiveExtensions[NormalizeExt(ext)]
	return ok
}
