package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/printshelf/printshelf/internal/gcode"
	"github.com/printshelf/printshelf/internal/repository"
)

// Service is a tiny façade over the catalog repositories that produces XLSX
// bytes for exports.
type Service struct {
	metaRepo repository.MetadataRepository
	logger   *slog.Logger
}

func NewService(metaRepo repository.MetadataRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{metaRepo: metaRepo, logger: logger}
}

// ExportCatalogXLSX returns an XLSX workbook (as bytes) listing every model
// file with its extracted print metadata, one row per file, upload order.
func (s *Service) ExportCatalogXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	rows, err := s.metaRepo.ListCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Print Catalog"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"File",
		"Print Duration",
		"Materials",
		"Total Weight",
		"Layer Height",
		"Infill",
		"Nozzle",
		"Printer",
		"Uploaded",
		"Source Path",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowN := 2
	for _, r := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowN)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.File.Filename)
		write(9, r.File.UploadedAt.Format("2006-01-02"))
		write(10, r.File.SourcePath)

		if r.Meta != nil {
			write(2, deref(r.Meta.PrintDuration))
			write(3, materialSummary(r.Meta.MetadataJSON))
			write(4, deref(r.Meta.TotalWeight))
			write(5, deref(r.Meta.LayerHeight))
			write(6, deref(r.Meta.Infill))
			write(7, deref(r.Meta.NozzleDiameter))
			write(8, deref(r.Meta.PrinterModel))
		}
		rowN++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 32) // filename
	_ = f.SetColWidth(sheet, "B", "B", 16) // duration
	_ = f.SetColWidth(sheet, "C", "C", 28) // materials
	_ = f.SetColWidth(sheet, "D", "H", 14) // weight + settings
	_ = f.SetColWidth(sheet, "I", "I", 12) // uploaded
	_ = f.SetColWidth(sheet, "J", "J", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// materialSummary renders the per-filament list as "PLA #00AE42 (24.50g)"
// joined with commas. Falls back to empty on undecodable JSON.
func materialSummary(metadataJSON string) string {
	var meta gcode.PrintMetadata
	if err := json.Unmarshal([]byte(metadataJSON), &meta); err != nil {
		return ""
	}
	parts := make([]string, 0, len(meta.Filaments))
	for _, fil := range meta.Filaments {
		p := fil.MaterialType + " " + fil.Color
		if fil.Weight != "" {
			p += " (" + fil.Weight + ")"
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, ", ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
