package main

import (
	"context"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/google/uuid"

	"github.com/printshelf/printshelf/internal/common"
	"github.com/printshelf/printshelf/internal/gcode"
	"github.com/printshelf/printshelf/internal/ingest"
	"github.com/printshelf/printshelf/internal/pipeline"
	repo "github.com/printshelf/printshelf/internal/repository"
)

// print-batch walks a directory of slicer output, ingests every matching
// file into the catalog and runs extraction concurrently. Meant for bulk
// backfills where the daemon's queue would be overkill.
func main() {
	root := flag.String("root", "", "directory to ingest")
	workers := flag.Int("workers", 4, "concurrent extraction workers")
	includeHidden := flag.Bool("include-hidden", false, "descend into hidden files and directories")
	flag.Parse()

	zl, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer zl.Sync()
	log := zl.Sugar()

	if *root == "" {
		log.Error("missing -root directory")
		os.Exit(2)
	}
	if *workers < 1 {
		*workers = 1
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Errorw("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Repositories use slog internally; keep their output on stderr.
	slogger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, slogger)
	if err != nil {
		log.Errorw("failed to open database", "error", err, "db_url", cfg.Database.DSN)
		os.Exit(1)
	}
	defer db.Close(slogger)

	if err := repo.Migrate(ctx, db); err != nil {
		log.Errorw("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	filesRepo := repo.NewModelFileRepository(db, slogger)
	metaRepo := repo.NewMetadataRepository(db, slogger)
	ingestor := ingest.NewFSIngestor(filesRepo, slogger)
	stage := pipeline.NewExtractStage(filesRepo, metaRepo, gcode.NewExtractor(slogger), slogger)
	processor := pipeline.NewProcessor(slogger, stage)

	var paths []string
	walkErr := filepath.WalkDir(*root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !*includeHidden && ingest.IsHidden(path) && path != *root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if ingest.AllowedExt(filepath.Ext(path)) {
			paths = append(paths, path)
		}
		return nil
	})
	if walkErr != nil {
		log.Errorw("directory walk failed", "root", *root, "error", walkErr)
		os.Exit(1)
	}
	log.Infow("batch starting", "root", *root, "files", len(paths), "workers", *workers)

	var ingested, deduplicated, failed int

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	results := make(chan string, len(paths))
	for _, path := range paths {
		path := path
		g.Go(func() error {
			r, err := ingestor.IngestPath(gctx, path)
			if err != nil {
				log.Warnw("ingest failed", "path", path, "error", err)
				results <- "failed"
				return nil
			}
			if r.Deduplicated {
				results <- "deduplicated"
				return nil
			}
			fileID, err := uuid.Parse(r.FileID)
			if err != nil {
				log.Warnw("unparseable file id", "path", path, "file_id", r.FileID)
				results <- "failed"
				return nil
			}
			if _, err := processor.ProcessFile(gctx, fileID); err != nil {
				log.Warnw("extraction failed", "path", path, "file_id", r.FileID, "error", err)
				results <- "failed"
				return nil
			}
			log.Infow("file processed", "path", path, "file_id", r.FileID)
			results <- "ingested"
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Errorw("batch aborted", "error", err)
		os.Exit(1)
	}
	close(results)
	for r := range results {
		switch r {
		case "ingested":
			ingested++
		case "deduplicated":
			deduplicated++
		default:
			failed++
		}
	}

	log.Infow("batch finished", "ingested", ingested, "deduplicated", deduplicated, "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}
