package gcode

import "strings"

// Bounded scan policy. Slicers can emit tens of thousands of lines of
// toolpath; the metadata comments cluster at the very start (global headers)
// or the very end (the authoritative summary block after the toolpath).
const (
	maxScanLines = 20000
	headLines    = 500
	tailLines    = 19500
)

// boundedLines yields the line sequence the matcher scans. Files at or below
// maxScanLines are scanned in full; larger files are reduced to the first
// headLines plus the last tailLines. This is a documented best-effort
// heuristic: a summary block sitting outside the scanned window on an
// unusually structured file is missed, and the affected fields simply come
// back absent.
func boundedLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) <= maxScanLines {
		return lines
	}
	out := make([]string, 0, headLines+tailLines)
	out = append(out, lines[:headLines]...)
	out = append(out, lines[len(lines)-tailLines:]...)
	return out
}
