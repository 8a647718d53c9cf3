package server

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/printshelf/printshelf/gen/proto/printshelf/v1"
	"github.com/printshelf/printshelf/internal/gcode"
)

// ExtractionService exposes one-shot extraction over gRPC. It is stateless:
// nothing is written to the catalog.
type ExtractionService struct {
	v1.UnimplementedExtractionServiceServer
	extractor *gcode.Extractor
	logger    *slog.Logger
}

func NewExtractionService(ex *gcode.Extractor, logger *slog.Logger) *ExtractionService {
	return &ExtractionService{extractor: ex, logger: logger}
}

// Extract implements v1.ExtractionServiceServer
func (s *ExtractionService) Extract(ctx context.Context, req *v1.ExtractRequest) (*v1.ExtractResponse, error) {
	if len(req.GetContent()) == 0 {
		s.logger.Error("extract request missing content")
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	var (
		meta *gcode.PrintMetadata
		err  error
	)
	if req.GetArchive() {
		meta, err = s.extractor.ExtractArchive(req.GetContent(), req.GetSourcePath())
		switch {
		case errors.Is(err, gcode.ErrNoGcodeEntry):
			return nil, status.Error(codes.NotFound, err.Error())
		case errors.Is(err, gcode.ErrArchiveCorrupt):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case err != nil:
			return nil, status.Errorf(codes.Internal, "extract: %v", err)
		}
	} else {
		meta = s.extractor.Extract(string(req.GetContent()), req.GetSourcePath())
	}

	s.logger.Info("extraction completed",
		"bytes", len(req.GetContent()),
		"archive", req.GetArchive(),
		"filaments", len(meta.Filaments),
	)
	return &v1.ExtractResponse{Metadata: metadataToProto(meta)}, nil
}
