package gcode

import "testing"

func TestDurationFromFilename(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"hours and minutes", "uploads/vase_2h30m.gcode", "2h30m"},
		{"hours only", "benchy_3h.gcode", "3h"},
		{"minutes only", "part_45m.gcode", "45m"},
		{"minutes and seconds", "calib_10m30s.gcode", "10m30s"},
		{"uppercase is lowered", "TOWER_2H15M.GCODE", "2h15m"},
		{"no duration shape", "benchy.gcode", ""},
		{"empty path", "", ""},
		{"directory part ignored", "2h_models/benchy.gcode", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := durationFromFilename(tt.path); got != tt.want {
				t.Errorf("durationFromFilename(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
