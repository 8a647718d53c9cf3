package gcode

import (
	"path/filepath"
	"regexp"
	"strings"
)

// A duration-shaped substring: an hour group optionally followed by a minute
// group, or a minute group optionally followed by a second group.
var filenameDurationRe = regexp.MustCompile(`(?i)\d+h(?:\d+m)?|\d+m(?:\d+s)?`)

// durationFromFilename recovers a duration that is plausibly already encoded
// in the filename ("vase_2h30m.gcode" -> "2h30m"). It never fabricates a
// value: no duration-shaped substring means an empty result.
func durationFromFilename(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	return strings.ToLower(filenameDurationRe.FindString(base))
}
