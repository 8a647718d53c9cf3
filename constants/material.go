package constants

import (
	"strings"
)

type Material string

const (
	PLA     Material = "PLA"
	PETG    Material = "PETG"
	ABS     Material = "ABS"
	ASA     Material = "ASA"
	TPU     Material = "TPU"
	PC      Material = "PC"
	Nylon   Material = "Nylon"
	PVA     Material = "PVA"
	HIPS    Material = "HIPS"
	Unknown Material = Material(UnknownMaterial)
)

var allMaterials = []Material{
	PLA,
	PETG,
	ABS,
	ASA,
	TPU,
	PC,
	Nylon,
	PVA,
	HIPS,
	Unknown,
}

func MaterialsAsStringSlice() []string {
	result := make([]string, len(allMaterials))
	for i, m := range allMaterials {
		result[i] = string(m)
	}
	return result
}

// CanonicalizeMaterial maps a slicer-reported material string to its
// canonical form. Slicers disagree on casing and use vendor aliases
// ("PLA+", "PolyCarbonate", "PA-CF"). Unrecognized values are returned
// unchanged so nothing reported by the slicer is lost.
func CanonicalizeMaterial(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return UnknownMaterial, false
	}

	normalized := strings.ToLower(trimmed)

	// vendor aliases
	synonyms := map[string]Material{
		"pla+":          PLA,
		"pla-cf":        PLA,
		"petg-cf":       PETG,
		"abs+":          ABS,
		"polycarbonate": PC,
		"pa":            Nylon,
		"pa-cf":         Nylon,
		"nylon":         Nylon,
		"flex":          TPU,
		"tpu95a":        TPU,
	}

	if m, ok := synonyms[normalized]; ok {
		return string(m), true
	}

	for _, m := range allMaterials {
		if normalized == strings.ToLower(string(m)) {
			return string(m), true
		}
	}

	return trimmed, false
}
