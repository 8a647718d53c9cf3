package server

import (
	v1 "github.com/printshelf/printshelf/gen/proto/printshelf/v1"
	"github.com/printshelf/printshelf/internal/gcode"
)

func metadataToProto(meta *gcode.PrintMetadata) *v1.PrintMetadata {
	if meta == nil {
		return nil
	}
	out := &v1.PrintMetadata{
		PrintDuration:       deref(meta.PrintDuration),
		TotalFilamentWeight: deref(meta.TotalFilamentWeight),
		SourceFilePath:      deref(meta.SourceFilePath),
		Settings: &v1.PrintSettings{
			LayerHeight:     deref(meta.Settings.LayerHeight),
			Infill:          deref(meta.Settings.Infill),
			NozzleDiameter:  deref(meta.Settings.NozzleDiameter),
			PrinterModel:    deref(meta.Settings.PrinterModel),
			PrimaryMaterial: deref(meta.Settings.PrimaryMaterial),
		},
	}
	for _, f := range meta.Filaments {
		out.Filaments = append(out.Filaments, &v1.FilamentRecord{
			MaterialType: f.MaterialType,
			Color:        f.Color,
			Length:       f.Length,
			Weight:       f.Weight,
		})
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
