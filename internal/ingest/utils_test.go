package ingest

import "testing"

func TestAllowedExt(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{"gcode", true},
		{".GCODE", true},
		{"3mf", true},
		{"gco", true},
		{"stl", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := AllowedExt(tt.ext); got != tt.want {
			t.Errorf("AllowedExt(%q) = %v, want %v", tt.ext, got, tt.want)
		}
	}
}

func TestIsHidden(t *testing.T) {
	if !IsHidden("/models/.cache") {
		t.Error("dotfile should be hidden")
	}
	if IsHidden("/models/benchy.gcode") {
		t.Error("regular file should not be hidden")
	}
}
