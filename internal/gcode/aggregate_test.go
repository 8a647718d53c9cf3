package gcode

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestDeriveWeightGrams(t *testing.T) {
	// 1000 mm of 1.75 mm filament at 1.24 g/cm³ is about 2.98 g.
	got := deriveWeightGrams(1000)
	if math.Abs(got-2.98) > 0.01 {
		t.Errorf("deriveWeightGrams(1000) = %.4f, want ~2.98", got)
	}
}

func TestBuildFilaments_UnequalLists(t *testing.T) {
	raw := rawFields{
		weights: []string{"12.5", "3.1"},
		types:   []string{"PLA"},
	}
	records, total := buildFilaments(&raw)

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].MaterialType != "PLA" {
		t.Errorf("first type = %q, want PLA", records[0].MaterialType)
	}
	if records[1].MaterialType != "Unknown" {
		t.Errorf("second type = %q, want Unknown default", records[1].MaterialType)
	}
	for i, r := range records {
		if r.Color != "#808080" {
			t.Errorf("record %d colour = %q, want neutral default", i, r.Color)
		}
	}
	if total == nil || *total != "15.60g" {
		t.Errorf("total = %v, want 15.60g", total)
	}
}

func TestBuildFilaments_WeightDerivedFromLength(t *testing.T) {
	raw := rawFields{lengths: []string{"1000"}}
	records, total := buildFilaments(&raw)

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Length != "1000.00mm" {
		t.Errorf("length = %q, want 1000.00mm", records[0].Length)
	}
	grams, err := strconv.ParseFloat(strings.TrimSuffix(records[0].Weight, "g"), 64)
	if err != nil {
		t.Fatalf("derived weight %q not numeric: %v", records[0].Weight, err)
	}
	if math.Abs(grams-2.98) > 0.01 {
		t.Errorf("derived weight = %.4f g, want ~2.98", grams)
	}
	if total == nil {
		t.Error("total should include the derived weight")
	}
}

func TestBuildFilaments_SlotWithoutWeightOrLengthIsDropped(t *testing.T) {
	raw := rawFields{types: []string{"PLA", "PETG"}}
	records, total := buildFilaments(&raw)

	if len(records) != 0 {
		t.Fatalf("got %d records, want 0 (type alone is not a filament)", len(records))
	}
	if total != nil {
		t.Errorf("total = %v, want nil", *total)
	}
}

func TestBuildFilaments_NoListsAtAll(t *testing.T) {
	raw := rawFields{}
	records, total := buildFilaments(&raw)
	if len(records) != 0 || total != nil {
		t.Errorf("empty input produced records=%d total=%v", len(records), total)
	}
}

func TestBuildFilaments_RawWeightFallbackWhenNothingIsNumeric(t *testing.T) {
	raw := rawFields{weights: []string{"approx. twelve grams"}}
	records, total := buildFilaments(&raw)

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Weight != "approx. twelve grams" {
		t.Errorf("weight = %q, want the raw string", records[0].Weight)
	}
	if total == nil || *total != "approx. twelve grams" {
		t.Errorf("total = %v, want the raw string, never a fabricated 0g", total)
	}
}

func TestBuildFilaments_MixedNumericAndRawWeights(t *testing.T) {
	raw := rawFields{weights: []string{"10.0", "n/a"}}
	_, total := buildFilaments(&raw)
	if total == nil || *total != "10.00g" {
		t.Errorf("total = %v, want 10.00g (non-numeric slot excluded from the sum)", total)
	}
}
