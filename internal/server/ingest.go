package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/printshelf/printshelf/gen/proto/printshelf/v1"
	"github.com/printshelf/printshelf/internal/async"
	"github.com/printshelf/printshelf/internal/ingest"
)

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	ingestor ingest.Ingestor
	queue    async.Queue
	logger   *slog.Logger
}

func NewIngestionService(ing ingest.Ingestor, queue async.Queue, logger *slog.Logger) *IngestionService {
	return &IngestionService{
		ingestor: ing,
		queue:    queue,
		logger:   logger,
	}
}

// IngestFile implements v1.IngestionServiceServer
func (s *IngestionService) IngestFile(ctx context.Context, req *v1.IngestFileRequest) (*v1.IngestResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path")
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting file ingest", "path", path)
	r, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "file_id", r.FileID, "deduplicated", r.Deduplicated)

	resp := ingestResultToProto(r)

	if r.Deduplicated && req.GetSkipDuplicates() {
		s.logger.Info("skipping processing (duplicate)", "file_id", r.FileID, "path", r.SourcePath)
		return resp, nil
	}
	if err := s.enqueue(ctx, r); err != nil {
		resp.Error = err.Error()
	}
	return resp, nil
}

func (s *IngestionService) IngestDirectory(ctx context.Context, req *v1.IngestDirectoryRequest) (*v1.IngestDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path")
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	skipHidden := true
	if req.SkipHidden != false {
		skipHidden = req.GetSkipHidden()
	}

	s.logger.Info("starting directory ingest", "root", root, "skip_hidden", skipHidden)
	results, stats, err := s.ingestor.IngestDirectory(ctx, root, skipHidden)
	if err != nil {
		// File errors are already logged in the ingest layer
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed", "scanned", stats.Scanned, "matched", stats.Matched, "succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	resp := &v1.IngestDirectoryResponse{
		Statistics: &v1.IngestDirectoryStats{
			Scanned:      stats.Scanned,
			Matched:      stats.Matched,
			Succeeded:    stats.Succeeded,
			Deduplicated: stats.Deduplicated,
			Failed:       stats.Failed,
		},
	}
	for _, r := range results {
		pr := ingestResultToProto(r)
		if r.Err == "" && r.FileID != "" && !r.Deduplicated {
			if err := s.enqueue(ctx, r); err != nil {
				pr.Error = err.Error()
			}
		}
		resp.Results = append(resp.Results, pr)
	}
	return resp, nil
}

func (s *IngestionService) enqueue(ctx context.Context, r ingest.IngestionResult) error {
	fileUUID, err := uuid.Parse(r.FileID)
	if err != nil {
		s.logger.Error("invalid file_id: cannot enqueue", "file_id", r.FileID, "error", err)
		return status.Error(codes.Internal, "invalid file_id")
	}
	if err := s.queue.Enqueue(ctx, async.Job{
		FileID:      fileUUID,
		SubmittedAt: time.Now(),
	}); err != nil {
		s.logger.Error("enqueue failed for file", "file_id", r.FileID, "err", err)
		return status.Errorf(codes.ResourceExhausted, "enqueue failed: %v", err)
	}
	return nil
}

func ingestResultToProto(r ingest.IngestionResult) *v1.IngestResponse {
	return &v1.IngestResponse{
		FileId:         r.FileID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
}
