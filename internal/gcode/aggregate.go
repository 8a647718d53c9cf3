package gcode

import (
	"fmt"
	"math"
	"strconv"

	"github.com/printshelf/printshelf/constants"
)

// deriveWeightGrams estimates the weight of a filament length via its
// cylinder volume: pi * (d/2)^2 * length, with the generic diameter and
// density defaults from constants. The result is an approximation, not a
// measured value.
func deriveWeightGrams(lengthMM float64) float64 {
	radius := constants.DefaultFilamentDiameter / 2
	volumeMM3 := math.Pi * radius * radius * lengthMM
	volumeCM3 := volumeMM3 / 1000
	return volumeCM3 * constants.DefaultFilamentDensity
}

// buildFilaments reconciles the raw per-field lists (possibly of unequal
// length) into ordered FilamentRecords and the aggregate weight. At least one
// slot is always considered so single-material jobs without list syntax still
// produce a record when any weight or length was found.
func buildFilaments(raw *rawFields) ([]FilamentRecord, *string) {
	n := len(raw.weights)
	if len(raw.lengths) > n {
		n = len(raw.lengths)
	}
	if len(raw.types) > n {
		n = len(raw.types)
	}
	if n == 0 {
		n = 1
	}

	records := make([]FilamentRecord, 0, n)
	var (
		totalGrams float64
		rawWeight  string // first non-numeric weight string, total fallback
	)
	for i := 0; i < n; i++ {
		rec := FilamentRecord{
			MaterialType: constants.UnknownMaterial,
			Color:        constants.DefaultFilamentColor,
		}
		if i < len(raw.types) {
			rec.MaterialType, _ = constants.CanonicalizeMaterial(raw.types[i])
		}
		if i < len(raw.colors) {
			rec.Color = raw.colors[i]
		}

		var lengthMM float64
		var hasLength, lengthNumeric bool
		if i < len(raw.lengths) {
			hasLength = true
			if v, err := strconv.ParseFloat(raw.lengths[i], 64); err == nil {
				lengthMM, lengthNumeric = v, true
				rec.Length = fmt.Sprintf("%.2fmm", v)
			} else {
				rec.Length = raw.lengths[i] + "mm"
			}
		}

		hasWeight := i < len(raw.weights)
		switch {
		case hasWeight:
			if grams, err := strconv.ParseFloat(raw.weights[i], 64); err == nil {
				rec.Weight = fmt.Sprintf("%.2fg", grams)
				totalGrams += grams
			} else {
				// Present but non-numeric: keep as-is, excluded from the sum.
				rec.Weight = raw.weights[i]
				if rawWeight == "" {
					rawWeight = raw.weights[i]
				}
			}
		case lengthNumeric:
			grams := deriveWeightGrams(lengthMM)
			rec.Weight = fmt.Sprintf("%.2fg", grams)
			totalGrams += grams
		}

		// A slot with neither weight nor length is dropped, never emitted.
		if !hasWeight && !hasLength {
			continue
		}
		records = append(records, rec)
	}

	var total *string
	switch {
	case totalGrams > 0:
		t := fmt.Sprintf("%.2fg", totalGrams)
		total = &t
	case rawWeight != "":
		// Every weight string failed numeric parsing; report the raw value
		// rather than a fabricated "0g".
		total = &rawWeight
	}
	return records, total
}
