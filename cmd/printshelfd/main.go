package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/printshelf/printshelf/gen/proto/printshelf/v1"
	"github.com/printshelf/printshelf/internal/async"
	"github.com/printshelf/printshelf/internal/common"
	"github.com/printshelf/printshelf/internal/export"
	"github.com/printshelf/printshelf/internal/gcode"
	"github.com/printshelf/printshelf/internal/ingest"
	"github.com/printshelf/printshelf/internal/pipeline"
	repo "github.com/printshelf/printshelf/internal/repository"
	svc "github.com/printshelf/printshelf/internal/server"

	"github.com/google/uuid"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time and level attributes, keep message and other variables
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err, "db_url", cfg.Database.DSN)
		os.Exit(1)
	}
	defer db.Close(logger)

	if err := repo.Migrate(ctx, db); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}
	if err := db.HealthCheck(ctx, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	// gRPC server
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	filesRepo := repo.NewModelFileRepository(db, logger)
	metaRepo := repo.NewMetadataRepository(db, logger)

	extractor := gcode.NewExtractor(logger)
	stage := pipeline.NewExtractStage(filesRepo, metaRepo, extractor, logger)
	processor := pipeline.NewProcessor(logger, stage)

	queue := async.NewProcessorQueue(
		async.ProcessorFunc(func(ctx context.Context, fileID uuid.UUID) error {
			_, err := processor.ProcessFile(ctx, fileID)
			return err
		}),
		logger,
		async.WithWorkers(cfg.Worker.Workers),
		async.WithQueueSize(cfg.Worker.QueueSize),
		async.WithProcessTimeout(cfg.Worker.ProcessTimeout),
	)

	v1.RegisterExtractionServiceServer(grpcServer, svc.NewExtractionService(extractor, logger))

	ingestor := ingest.NewFSIngestor(filesRepo, logger)
	v1.RegisterIngestionServiceServer(grpcServer, svc.NewIngestionService(ingestor, queue, logger))

	v1.RegisterCatalogServiceServer(grpcServer, svc.NewCatalogService(filesRepo, metaRepo, logger))

	exporter := export.NewService(metaRepo, logger)
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportService(exporter, logger))

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	// Set the service as serving (empty string means overall server health)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("printshelfd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
