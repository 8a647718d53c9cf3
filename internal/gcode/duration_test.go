package gcode

import "testing"

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name string
		secs int
		want string
	}{
		{"zero", 0, "0m"},
		{"negative", -5, "0m"},
		{"seconds only", 45, "45s"},
		{"whole minutes", 120, "2m"},
		{"minutes and seconds", 125, "2m 5s"},
		{"whole hour", 3600, "1h 0m"},
		{"leftover seconds round the minute up", 3661, "1h 2m"},
		{"rounded minute carries into the hour", 7199, "2h 0m"},
		{"long job", 93600, "26h 0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSeconds(tt.secs); got != tt.want {
				t.Errorf("formatSeconds(%d) = %q, want %q", tt.secs, got, tt.want)
			}
		})
	}
}

func TestCleanRawDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2h 30m 15s", "2h 30m 15s"},
		{"  1h  5m ", "1h 5m"},
		{"2_hours_3_minutes", "2 hours 3 minutes"},
		{`"45m"`, "45m"},
		{"1d 2h 3m", "1d 2h 3m"},
	}
	for _, tt := range tests {
		if got := cleanRawDuration(tt.in); got != tt.want {
			t.Errorf("cleanRawDuration(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
