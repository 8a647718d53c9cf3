package gcode

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const prusaSample = `; generated by PrusaSlicer 2.7.0
M73 P0 R154
G1 X10 Y10 E0.5
; filament used [mm] = 1000.0
; filament used [g] = 2.98
; filament_type = PLA
; estimated printing time (normal mode) = 2h 33m 41s
; layer_height = 0.2
; fill_density = 15%
; nozzle_diameter = 0.4
; printer_model = MK4
`

const bambuSample = `; model printing time: 1h 2m 3s; total estimated time: 1h 10m 2s
G1 X50 Y50
; total filament length [mm] : 8200.10,412.00
; total filament weight [g] : 24.50,3.04
; filament_type: PLA;PETG
; filament_colour: #00AE42;#FFFFFF
; sparse_infill_density: 10
; printer_model: X1 Carbon
`

const curaSample = `;FLAVOR:Marlin
;TIME:3960
;Filament used: 1.2m
;Layer height: 0.28
G1 X1 Y1
`

func TestExtract_PrusaDialect(t *testing.T) {
	meta := NewExtractor(nil).Extract(prusaSample, "benchy.gcode")

	if meta.PrintDuration == nil || *meta.PrintDuration != "2h 33m 41s" {
		t.Errorf("duration = %v", meta.PrintDuration)
	}
	if len(meta.Filaments) != 1 {
		t.Fatalf("filaments = %d, want 1", len(meta.Filaments))
	}
	f := meta.Filaments[0]
	if f.MaterialType != "PLA" || f.Length != "1000.00mm" || f.Weight != "2.98g" {
		t.Errorf("filament = %+v", f)
	}
	if meta.TotalFilamentWeight == nil || *meta.TotalFilamentWeight != "2.98g" {
		t.Errorf("total = %v", meta.TotalFilamentWeight)
	}
	s := meta.Settings
	if s.LayerHeight == nil || *s.LayerHeight != "0.2" {
		t.Errorf("layer height = %v", s.LayerHeight)
	}
	if s.Infill == nil || *s.Infill != "15%" {
		t.Errorf("infill = %v", s.Infill)
	}
	if s.NozzleDiameter == nil || *s.NozzleDiameter != "0.4" {
		t.Errorf("nozzle = %v", s.NozzleDiameter)
	}
	if s.PrinterModel == nil || *s.PrinterModel != "MK4" {
		t.Errorf("printer = %v", s.PrinterModel)
	}
	if s.PrimaryMaterial == nil || *s.PrimaryMaterial != "PLA" {
		t.Errorf("primary material = %v", s.PrimaryMaterial)
	}
}

func TestExtract_BambuDialect(t *testing.T) {
	meta := NewExtractor(nil).Extract(bambuSample, "")

	if meta.PrintDuration == nil || *meta.PrintDuration != "1h 2m 3s" {
		t.Errorf("duration = %v, want the model printing time value", meta.PrintDuration)
	}
	if len(meta.Filaments) != 2 {
		t.Fatalf("filaments = %d, want 2", len(meta.Filaments))
	}
	want := []FilamentRecord{
		{MaterialType: "PLA", Color: "#00AE42", Length: "8200.10mm", Weight: "24.50g"},
		{MaterialType: "PETG", Color: "#FFFFFF", Length: "412.00mm", Weight: "3.04g"},
	}
	if !reflect.DeepEqual(meta.Filaments, want) {
		t.Errorf("filaments = %+v", meta.Filaments)
	}
	if meta.TotalFilamentWeight == nil || *meta.TotalFilamentWeight != "27.54g" {
		t.Errorf("total = %v, want 27.54g", meta.TotalFilamentWeight)
	}
	if meta.SourceFilePath != nil {
		t.Errorf("source path = %v, want nil when not supplied", meta.SourceFilePath)
	}
}

func TestExtract_CuraDialect(t *testing.T) {
	meta := NewExtractor(nil).Extract(curaSample, "")

	if meta.PrintDuration == nil || *meta.PrintDuration != "1h 6m" {
		t.Errorf("duration = %v, want 1h 6m from TIME:3960", meta.PrintDuration)
	}
	if len(meta.Filaments) != 1 {
		t.Fatalf("filaments = %d, want 1", len(meta.Filaments))
	}
	f := meta.Filaments[0]
	if f.Length != "1200.00mm" {
		t.Errorf("length = %q, want 1200.00mm after metre normalization", f.Length)
	}
	if f.MaterialType != "Unknown" || f.Color != "#808080" {
		t.Errorf("defaults not applied: %+v", f)
	}
	if f.Weight == "" {
		t.Error("weight should be derived from length")
	}
}

func TestExtract_NoMetadataStillReturnsRecord(t *testing.T) {
	meta := NewExtractor(nil).Extract("G28\nG1 X0 Y0\n", "")
	if meta == nil {
		t.Fatal("extraction must not fail on unrecognizable input")
	}
	if meta.PrintDuration != nil || len(meta.Filaments) != 0 || meta.TotalFilamentWeight != nil {
		t.Errorf("expected a mostly-empty record, got %+v", meta)
	}
	if meta.Settings.PrimaryMaterial != nil {
		t.Errorf("primary material = %v, want nil", meta.Settings.PrimaryMaterial)
	}
}

func TestExtract_FilenameFallbackOnlyWhenContentHasNoDuration(t *testing.T) {
	meta := NewExtractor(nil).Extract("G28\n", "vase_2h30m.gcode")
	if meta.PrintDuration == nil || *meta.PrintDuration != "2h30m" {
		t.Errorf("duration = %v, want 2h30m from filename", meta.PrintDuration)
	}

	// Content wins over the filename when both are available.
	meta = NewExtractor(nil).Extract(";TIME:60\n", "vase_2h30m.gcode")
	if meta.PrintDuration == nil || *meta.PrintDuration != "1m" {
		t.Errorf("duration = %v, want 1m from content", meta.PrintDuration)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	e := NewExtractor(nil)
	a := e.Extract(bambuSample, "plate.gcode")
	b := e.Extract(bambuSample, "plate.gcode")
	if !reflect.DeepEqual(a, b) {
		t.Error("re-running extraction on the same bytes must yield an identical record")
	}
}

func TestExtractArchive_EndToEnd(t *testing.T) {
	data := buildZip(t, [][2]string{
		{"3D/model.model", "<model/>"},
		{"Metadata/plate_1.gcode", prusaSample},
		{"Metadata/plate_2.gcode", curaSample},
	})
	meta, err := NewExtractor(nil).ExtractArchive(data, "boat.3mf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.PrintDuration == nil || *meta.PrintDuration != "2h 33m 41s" {
		t.Errorf("duration = %v, want the first plate's value", meta.PrintDuration)
	}
	if meta.SourceFilePath == nil || *meta.SourceFilePath != "boat.3mf" {
		t.Errorf("source path = %v", meta.SourceFilePath)
	}
}

func TestExtractArchive_Errors(t *testing.T) {
	e := NewExtractor(nil)

	if _, err := e.ExtractArchive([]byte("garbage"), ""); !errors.Is(err, ErrArchiveCorrupt) {
		t.Errorf("corrupt input: got %v", err)
	}

	empty := buildZip(t, [][2]string{{"Metadata/thumbnail.png", "png"}})
	if _, err := e.ExtractArchive(empty, ""); !errors.Is(err, ErrNoGcodeEntry) {
		t.Errorf("no entry: got %v", err)
	}
}

func TestExtract_LargeInputIsBounded(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("; estimated printing time (normal mode) = 45m\n")
	for i := 0; i < 100000; i++ {
		sb.WriteString("G1 X1 Y1 E0.01\n")
	}
	meta := NewExtractor(nil).Extract(sb.String(), "")
	if meta.PrintDuration == nil || *meta.PrintDuration != "45m" {
		t.Errorf("header inside prefix window not matched: %v", meta.PrintDuration)
	}
}
