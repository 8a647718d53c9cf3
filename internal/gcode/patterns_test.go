package gcode

import (
	"reflect"
	"testing"
)

func TestMatchFields_FirstMatchWins(t *testing.T) {
	raw := matchFields([]string{
		"; estimated printing time (normal mode) = 2h 30m 15s",
		"; estimated printing time (normal mode) = 9h 9m 9s",
		"; layer_height = 0.2",
		"; layer_height = 0.3",
	})
	if raw.duration != "2h 30m 15s" {
		t.Errorf("duration = %q, want the first occurrence", raw.duration)
	}
	if raw.layerHeight != "0.2" {
		t.Errorf("layerHeight = %q, want the first occurrence", raw.layerHeight)
	}
}

func TestMatchFields_MinimumLayerTimeIsNotTheEstimate(t *testing.T) {
	raw := matchFields([]string{
		"; minimum layer time = 8",
		"; slowdown_below_layer_time = 20",
		";TIME_ELAPSED:142.5",
		"; estimated printing time (normal mode) = 1h 4m",
	})
	if raw.duration != "1h 4m" {
		t.Fatalf("duration = %q, want the genuine estimate, never a timing setting", raw.duration)
	}
	if raw.timeSeconds != "" {
		t.Errorf("timeSeconds = %q, TIME_ELAPSED must not match", raw.timeSeconds)
	}
}

func TestMatchFields_NonCommentLinesAreSkipped(t *testing.T) {
	raw := matchFields([]string{
		"M117 estimated printing time = 5h 0m",
		"G1 X10 ; filament_type = ABS",
		"; filament_type = PLA",
	})
	if raw.duration != "" {
		t.Errorf("duration = %q, machine instructions must not be inspected", raw.duration)
	}
	if !reflect.DeepEqual(raw.types, []string{"PLA"}) {
		t.Errorf("types = %v, want [PLA]", raw.types)
	}
}

func TestMatchFields_DialectForms(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		check func(t *testing.T, raw rawFields)
	}{
		{
			name:  "compact TIME dialect",
			lines: []string{";TIME:3960"},
			check: func(t *testing.T, raw rawFields) {
				if raw.timeSeconds != "3960" {
					t.Errorf("timeSeconds = %q", raw.timeSeconds)
				}
			},
		},
		{
			name:  "chained summary stops at semicolon",
			lines: []string{"; model printing time: 1h 2m 3s; total estimated time: 1h 10m"},
			check: func(t *testing.T, raw rawFields) {
				if raw.duration != "1h 2m 3s" {
					t.Errorf("duration = %q, want 1h 2m 3s", raw.duration)
				}
			},
		},
		{
			name:  "build time phrasing",
			lines: []string{";   Build time: 2 hours 3 minutes"},
			check: func(t *testing.T, raw rawFields) {
				if raw.duration != "2 hours 3 minutes" {
					t.Errorf("duration = %q", raw.duration)
				}
			},
		},
		{
			name:  "semicolon-delimited filament lists",
			lines: []string{"; filament_type = PLA;PETG", "; filament_colour = #FF0000;#00FF00"},
			check: func(t *testing.T, raw rawFields) {
				if !reflect.DeepEqual(raw.types, []string{"PLA", "PETG"}) {
					t.Errorf("types = %v", raw.types)
				}
				if !reflect.DeepEqual(raw.colors, []string{"#FF0000", "#00FF00"}) {
					t.Errorf("colors = %v", raw.colors)
				}
			},
		},
		{
			name:  "comma-delimited weight list",
			lines: []string{"; total filament weight [g] : 24.50, 3.04"},
			check: func(t *testing.T, raw rawFields) {
				if !reflect.DeepEqual(raw.weights, []string{"24.50", "3.04"}) {
					t.Errorf("weights = %v", raw.weights)
				}
			},
		},
		{
			name:  "metre length normalized to millimetres",
			lines: []string{";Filament used: 1.2m"},
			check: func(t *testing.T, raw rawFields) {
				if !reflect.DeepEqual(raw.lengths, []string{"1200.00"}) {
					t.Errorf("lengths = %v, want [1200.00]", raw.lengths)
				}
			},
		},
		{
			name: "millimetre dialect outranks metre dialect",
			lines: []string{
				"; filament used [mm] = 850.3",
				";Filament used: 1.2m",
			},
			check: func(t *testing.T, raw rawFields) {
				if !reflect.DeepEqual(raw.lengths, []string{"850.3"}) {
					t.Errorf("lengths = %v, want [850.3]", raw.lengths)
				}
			},
		},
		{
			name: "settings block",
			lines: []string{
				"; layer_height = 0.2",
				"; fill_density = 15%",
				"; nozzle_diameter = 0.4,0.4",
				"; printer_model = MK4",
			},
			check: func(t *testing.T, raw rawFields) {
				if raw.layerHeight != "0.2" || raw.infill != "15%" || raw.nozzle != "0.4" || raw.printerModel != "MK4" {
					t.Errorf("settings = %q %q %q %q", raw.layerHeight, raw.infill, raw.nozzle, raw.printerModel)
				}
			},
		},
		{
			name:  "bambu style colon settings",
			lines: []string{"; sparse_infill_density: 10", ";Layer height: 0.28"},
			check: func(t *testing.T, raw rawFields) {
				if raw.infill != "10" {
					t.Errorf("infill = %q", raw.infill)
				}
				if raw.layerHeight != "0.28" {
					t.Errorf("layerHeight = %q", raw.layerHeight)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, matchFields(tt.lines))
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"PLA;PETG", []string{"PLA", "PETG"}},
		{"PLA, PETG", []string{"PLA", "PETG"}},
		{" PLA ; ; PETG ", []string{"PLA", "PETG"}},
		{"single", []string{"single"}},
		{"a,b;c", []string{"a,b", "c"}}, // semicolon wins when both present
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
