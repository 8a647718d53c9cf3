package pipeline

// BuildMetadataJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the persisted PrintMetadata document. It is enforced
// locally before any row is written, so a drifting serialization shape fails
// loudly instead of landing half-broken in the catalog.
func BuildMetadataJSONSchema() map[string]any {
	filament := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"material_type": map[string]any{"type": "string", "minLength": 1},
			"color":         map[string]any{"type": "string", "minLength": 1},
			"length":        map[string]any{"type": "string"},
			"weight":        map[string]any{"type": "string"},
		},
		"required": []string{"material_type", "color"},
	}

	settings := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"layer_height":     map[string]any{"type": "string"},
			"infill":           map[string]any{"type": "string"},
			"nozzle_diameter":  map[string]any{"type": "string"},
			"printer_model":    map[string]any{"type": "string"},
			"primary_material": map[string]any{"type": "string"},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"print_duration":        map[string]any{"type": "string", "minLength": 1},
			"filaments":             map[string]any{"type": "array", "items": filament},
			"total_filament_weight": map[string]any{"type": "string", "minLength": 1},
			"source_file_path":      map[string]any{"type": "string"},
			"settings":              settings,
		},
		"required": []string{"filaments", "settings"},
	}
}
