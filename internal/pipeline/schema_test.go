package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/printshelf/printshelf/internal/gcode"
)

func TestMetadataSchema_AcceptsExtractorOutput(t *testing.T) {
	samples := []string{
		"G28\n", // no metadata at all
		"; filament used [g] = 3.6\n; filament_type = PLA\n; estimated printing time (normal mode) = 1h 4m\n",
		";TIME:125\n;Filament used: 1.2m\n",
	}
	schema := BuildMetadataJSONSchema()
	e := gcode.NewExtractor(nil)
	for _, sample := range samples {
		meta := e.Extract(sample, "part_2h.gcode")
		payload, err := json.Marshal(meta)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if err := ValidateJSONAgainstSchema(schema, payload); err != nil {
			t.Errorf("extractor output rejected by its own schema: %v\npayload: %s", err, payload)
		}
	}
}

func TestMetadataSchema_RejectsUnknownKeys(t *testing.T) {
	doc := []byte(`{"filaments": [], "settings": {}, "surprise": 1}`)
	if err := ValidateJSONAgainstSchema(BuildMetadataJSONSchema(), doc); err == nil {
		t.Error("unknown top-level key should fail validation")
	}
}

func TestMetadataSchema_RejectsMalformedFilament(t *testing.T) {
	doc := []byte(`{"filaments": [{"color": "#808080"}], "settings": {}}`)
	if err := ValidateJSONAgainstSchema(BuildMetadataJSONSchema(), doc); err == nil {
		t.Error("filament without material_type should fail validation")
	}
}
