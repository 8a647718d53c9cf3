package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/printshelf/printshelf/internal/gcode"
)

// Processor orchestrates the per-file pipeline. Extraction is the single
// stage today; thumbnailing or re-slicing would slot in after it.
type Processor struct {
	extract *ExtractStage
	logger  *slog.Logger
}

func NewProcessor(logger *slog.Logger, extract *ExtractStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{extract: extract, logger: logger}
}

func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (*gcode.PrintMetadata, error) {
	meta, err := p.extract.Run(ctx, fileID)
	if err != nil {
		p.logger.Error("pipeline.extract.failed", "file_id", fileID, "error", err)
		return nil, err
	}
	return meta, nil
}
