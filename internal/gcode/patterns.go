package gcode

import (
	"regexp"
	"strconv"
	"strings"
)

// rawFields accumulates the first-match value for every recognized field.
// List-valued fields keep the raw per-slot strings; reconciliation into
// FilamentRecords happens in the aggregator.
type rawFields struct {
	duration    string // descriptive-comment dialect, free text
	timeSeconds string // compact ";TIME:<secs>" dialect

	weights []string
	lengths []string
	types   []string
	colors  []string

	layerHeight  string
	infill       string
	nozzle       string
	printerModel string
}

type fieldKey int

const (
	fieldDuration fieldKey = iota
	fieldTimeSeconds
	fieldWeights
	fieldLengths
	fieldTypes
	fieldColors
	fieldLayerHeight
	fieldInfill
	fieldNozzle
	fieldPrinterModel
	fieldCount
)

// fieldPattern is one row of the dialect table: a regexp over a comment line
// plus the extractor applied to its submatches. The table is ordered; within
// one field the earlier row wins (e.g. the millimetre length dialect beats
// the compact metre dialect).
type fieldPattern struct {
	key   fieldKey
	re    *regexp.Regexp
	apply func(m []string, out *rawFields) bool
}

// The duration pattern anchors on the full "estimated/build/printing time"
// label so that timing-related settings (minimum layer time, time elapsed
// markers) can never be mistaken for the estimated total. The value capture
// stops at ';' because some slicers chain several summaries on one line.
var patternTable = []fieldPattern{
	{
		key: fieldDuration,
		re:  regexp.MustCompile(`(?i)^;\s*(?:estimated printing time(?:\s*\([^)]*\))?|total estimated time|model printing time|build time)\s*[:=]\s*([^;]+)`),
		apply: func(m []string, out *rawFields) bool {
			out.duration = strings.TrimSpace(m[1])
			return true
		},
	},
	{
		key: fieldTimeSeconds,
		re:  regexp.MustCompile(`(?i)^;\s*TIME\s*:\s*(\d+)\s*$`),
		apply: func(m []string, out *rawFields) bool {
			out.timeSeconds = m[1]
			return true
		},
	},
	{
		key: fieldWeights,
		re:  regexp.MustCompile(`(?i)^;\s*(?:total filament weight \[g\]|total filament used \[g\]|filament used \[g\])\s*[:=]\s*(.+)$`),
		apply: func(m []string, out *rawFields) bool {
			out.weights = splitList(m[1])
			return len(out.weights) > 0
		},
	},
	{
		key: fieldLengths,
		re:  regexp.MustCompile(`(?i)^;\s*(?:total filament length \[mm\]|filament used \[mm\])\s*[:=]\s*(.+)$`),
		apply: func(m []string, out *rawFields) bool {
			out.lengths = splitList(m[1])
			return len(out.lengths) > 0
		},
	},
	{
		// Compact alternate length dialect, metres. Normalized to millimetres
		// here so every downstream consumer sees one unit.
		key: fieldLengths,
		re:  regexp.MustCompile(`(?i)^;\s*filament used\s*:\s*([0-9.]+)\s*m\s*$`),
		apply: func(m []string, out *rawFields) bool {
			metres, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return false
			}
			out.lengths = []string{strconv.FormatFloat(metres*1000, 'f', 2, 64)}
			return true
		},
	},
	{
		key: fieldTypes,
		re:  regexp.MustCompile(`(?i)^;\s*filament[_ ]type\s*[:=]\s*(.+)$`),
		apply: func(m []string, out *rawFields) bool {
			out.types = splitList(m[1])
			return len(out.types) > 0
		},
	},
	{
		key: fieldColors,
		re:  regexp.MustCompile(`(?i)^;\s*filament[_ ]colou?r\s*[:=]\s*(.+)$`),
		apply: func(m []string, out *rawFields) bool {
			out.colors = splitList(m[1])
			return len(out.colors) > 0
		},
	},
	{
		key: fieldLayerHeight,
		re:  regexp.MustCompile(`(?i)^;\s*layer[_ ]height\s*[:=]\s*([0-9.]+)`),
		apply: func(m []string, out *rawFields) bool {
			out.layerHeight = m[1]
			return true
		},
	},
	{
		key: fieldInfill,
		re:  regexp.MustCompile(`(?i)^;\s*(?:sparse_infill_density|fill_density|infill_density|infill)\s*[:=]\s*([0-9.]+\s*%?)`),
		apply: func(m []string, out *rawFields) bool {
			out.infill = strings.ReplaceAll(strings.TrimSpace(m[1]), " ", "")
			return true
		},
	},
	{
		key: fieldNozzle,
		re:  regexp.MustCompile(`(?i)^;\s*nozzle_diameter\s*[:=]\s*([0-9.]+)`),
		apply: func(m []string, out *rawFields) bool {
			out.nozzle = m[1]
			return true
		},
	},
	{
		key: fieldPrinterModel,
		re:  regexp.MustCompile(`(?i)^;\s*printer_model\s*[:=]\s*(.+)$`),
		apply: func(m []string, out *rawFields) bool {
			out.printerModel = strings.TrimSpace(m[1])
			return true
		},
	},
}

// matchFields scans the bounded line sequence against the dialect table.
// For each field the first matching line wins; later restatements are
// ignored. Non-comment lines are skipped without inspection, since toolpath
// instructions can coincidentally contain matching substrings.
func matchFields(lines []string) rawFields {
	var out rawFields
	seen := make(map[fieldKey]bool, fieldCount)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, ";") {
			continue
		}
		for i := range patternTable {
			p := &patternTable[i]
			if seen[p.key] {
				continue
			}
			m := p.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if p.apply(m, &out) {
				seen[p.key] = true
			}
		}
		if len(seen) == int(fieldCount) {
			break
		}
	}
	return out
}

// splitList splits a per-filament value list: semicolon-delimited when a
// semicolon is present, comma-delimited otherwise. Entries are trimmed and
// empties removed.
func splitList(v string) []string {
	sep := ","
	if strings.Contains(v, ";") {
		sep = ";"
	}
	var out []string
	for _, part := range strings.Split(v, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
