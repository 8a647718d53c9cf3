package server

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/printshelf/printshelf/gen/proto/printshelf/v1"
	"github.com/printshelf/printshelf/internal/common"
	"github.com/printshelf/printshelf/internal/gcode"
	"github.com/printshelf/printshelf/internal/repository"
)

type CatalogService struct {
	v1.UnimplementedCatalogServiceServer
	filesRepo repository.ModelFileRepository
	metaRepo  repository.MetadataRepository
	logger    *slog.Logger
}

func NewCatalogService(files repository.ModelFileRepository, meta repository.MetadataRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		filesRepo: files,
		metaRepo:  meta,
		logger:    logger,
	}
}

// ListModels implements v1.CatalogServiceServer
func (s *CatalogService) ListModels(ctx context.Context, _ *v1.ListModelsRequest) (*v1.ListModelsResponse, error) {
	rows, err := s.metaRepo.ListCatalog(ctx)
	if err != nil {
		s.logger.Error("list catalog failed", "error", err)
		return nil, status.Errorf(codes.Internal, "list catalog: %v", err)
	}

	resp := &v1.ListModelsResponse{}
	for _, r := range rows {
		resp.Models = append(resp.Models, summaryToProto(r))
	}
	return resp, nil
}

// GetModel implements v1.CatalogServiceServer
func (s *CatalogService) GetModel(ctx context.Context, req *v1.GetModelRequest) (*v1.GetModelResponse, error) {
	id := strings.TrimSpace(req.GetFileId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "file_id is required")
	}
	fileID, err := uuid.Parse(id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "file_id must be a UUID")
	}

	file, err := s.filesRepo.GetByID(ctx, fileID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "model not found")
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "load model: %v", err)
	}

	row := &repository.CatalogRow{File: file}
	meta, err := s.metaRepo.GetByFileID(ctx, fileID)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, status.Errorf(codes.Internal, "load metadata: %v", err)
	}
	row.Meta = meta

	resp := &v1.GetModelResponse{Model: summaryToProto(row)}
	if meta != nil {
		resp.MetadataJson = meta.MetadataJSON
		var decoded gcode.PrintMetadata
		if err := json.Unmarshal([]byte(meta.MetadataJSON), &decoded); err == nil {
			resp.Metadata = metadataToProto(&decoded)
		}
	}
	return resp, nil
}

func summaryToProto(r *repository.CatalogRow) *v1.ModelSummary {
	out := &v1.ModelSummary{
		FileId:     r.File.ID.String(),
		Filename:   r.File.Filename,
		UploadedAt: r.File.UploadedAt.UTC().Format(time.RFC3339),
	}
	if r.Meta != nil {
		out.Status = r.Meta.Status
		out.PrintDuration = deref(r.Meta.PrintDuration)
		out.TotalWeight = deref(r.Meta.TotalWeight)
		out.PrinterModel = deref(r.Meta.PrinterModel)
	}
	return out
}
