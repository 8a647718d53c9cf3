package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/printshelf/printshelf/constants"
	"github.com/printshelf/printshelf/internal/gcode"
	"github.com/printshelf/printshelf/internal/repository"
)

// ExtractStage runs metadata extraction for one ingested file and persists
// the result. Field-level absence never fails the stage; only unreadable
// files and fatal archive errors do, and those are recorded on the row.
type ExtractStage struct {
	FilesRepo repository.ModelFileRepository
	MetaRepo  repository.MetadataRepository
	Extractor *gcode.Extractor
	Logger    *slog.Logger

	schema map[string]any
}

func NewExtractStage(
	files repository.ModelFileRepository,
	meta repository.MetadataRepository,
	ex *gcode.Extractor,
	logger *slog.Logger,
) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{
		FilesRepo: files,
		MetaRepo:  meta,
		Extractor: ex,
		Logger:    logger,
		schema:    BuildMetadataJSONSchema(),
	}
}

// Run extracts metadata for fileID and upserts the catalog row.
func (s *ExtractStage) Run(ctx context.Context, fileID uuid.UUID) (*gcode.PrintMetadata, error) {
	file, err := s.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("load file: %w", err)
	}

	s.Logger.Info("extract.start", "file_id", file.ID, "path", file.SourcePath, "ext", file.FileExt)

	data, err := os.ReadFile(file.SourcePath)
	if err != nil {
		s.failRow(ctx, fileID, fmt.Sprintf("read source: %v", err))
		return nil, fmt.Errorf("read source: %w", err)
	}

	var meta *gcode.PrintMetadata
	if constants.IsArchiveExt(file.FileExt) {
		meta, err = s.Extractor.ExtractArchive(data, file.SourcePath)
		if err != nil {
			s.failRow(ctx, fileID, err.Error())
			return nil, fmt.Errorf("extract archive: %w", err)
		}
	} else {
		meta = s.Extractor.Extract(string(data), file.SourcePath)
	}

	payload, err := json.Marshal(meta)
	if err != nil {
		s.failRow(ctx, fileID, fmt.Sprintf("encode metadata: %v", err))
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	if err := ValidateJSONAgainstSchema(s.schema, payload); err != nil {
		s.failRow(ctx, fileID, fmt.Sprintf("metadata shape: %v", err))
		return nil, fmt.Errorf("validate metadata: %w", err)
	}

	row := &repository.MetadataRow{
		FileID:          fileID,
		Status:          string(constants.JobStatusExtractOK),
		PrintDuration:   meta.PrintDuration,
		TotalWeight:     meta.TotalFilamentWeight,
		LayerHeight:     meta.Settings.LayerHeight,
		Infill:          meta.Settings.Infill,
		NozzleDiameter:  meta.Settings.NozzleDiameter,
		PrinterModel:    meta.Settings.PrinterModel,
		PrimaryMaterial: meta.Settings.PrimaryMaterial,
		MetadataJSON:    string(payload),
		ExtractedAt:     time.Now().UTC(),
	}
	if err := s.MetaRepo.Upsert(ctx, row); err != nil {
		return nil, fmt.Errorf("persist metadata: %w", err)
	}

	s.Logger.Info("extract.ok",
		"file_id", file.ID,
		"filaments", len(meta.Filaments),
		"duration_found", meta.PrintDuration != nil,
	)
	return meta, nil
}

func (s *ExtractStage) failRow(ctx context.Context, fileID uuid.UUID, msg string) {
	row := &repository.MetadataRow{
		FileID:       fileID,
		Status:       string(constants.JobStatusFailed),
		MetadataJSON: "{}",
		Error:        &msg,
		ExtractedAt:  time.Now().UTC(),
	}
	if err := s.MetaRepo.Upsert(ctx, row); err != nil {
		s.Logger.Error("record failure", "file_id", fileID, "error", err)
	}
}
