package gcode

import (
	"fmt"
	"strings"
)

// formatSeconds converts a seconds count into the canonical duration form.
// Zero (or negative) normalizes to the literal "0m" marker. When hours are
// present, leftover seconds round the minute count up so a nonzero remainder
// is never dropped; when hours are absent, minutes and seconds are shown
// when nonzero.
func formatSeconds(total int) string {
	if total <= 0 {
		return "0m"
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		if seconds > 0 {
			minutes++
		}
		if minutes == 60 {
			hours++
			minutes = 0
		}
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if minutes > 0 && seconds > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%ds", seconds)
}

var durationCleaner = strings.NewReplacer("_", " ", ",", " ", `"`, "")

// cleanRawDuration applies light cleanup to a pre-formatted duration string
// from the descriptive-comment dialect: strip delimiter punctuation, collapse
// whitespace, trim. The value is assumed to already be close to canonical.
func cleanRawDuration(s string) string {
	s = durationCleaner.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
