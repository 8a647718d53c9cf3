package server

import (
	"context"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/printshelf/printshelf/gen/proto/printshelf/v1"
	"github.com/printshelf/printshelf/internal/export"
)

type ExportService struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportService(svc *export.Service, logger *slog.Logger) *ExportService {
	return &ExportService{svc: svc, logger: logger}
}

// ExportCatalog implements v1.ExportServiceServer
func (s *ExportService) ExportCatalog(ctx context.Context, _ *v1.ExportCatalogRequest) (*v1.ExportCatalogResponse, error) {
	data, err := s.svc.ExportCatalogXLSX(ctx)
	if err != nil {
		s.logger.Error("export failed", "error", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}
	return &v1.ExportCatalogResponse{Xlsx: data}, nil
}
