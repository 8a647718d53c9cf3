package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/printshelf/printshelf/internal/common"
)

// ModelFile is one ingested slicer-output file.
type ModelFile struct {
	ID          uuid.UUID
	SourcePath  string
	Filename    string
	FileExt     string
	FileSize    int64
	ContentHash string // hex-encoded sha256
	UploadedAt  time.Time
}

// ModelFileRepository stores ingested file rows, deduplicated by content hash.
type ModelFileRepository interface {
	// UpsertByHash inserts the file or returns the existing row with the same
	// content hash. The bool reports deduplication.
	UpsertByHash(ctx context.Context, f *ModelFile) (*ModelFile, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ModelFile, error)
	List(ctx context.Context) ([]*ModelFile, error)
}

type modelFileRepository struct {
	db     *DB
	logger *slog.Logger
}

func NewModelFileRepository(db *DB, logger *slog.Logger) ModelFileRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &modelFileRepository{db: db, logger: logger}
}

const modelFileColumns = `id, source_path, filename, file_ext, file_size, content_hash, uploaded_at`

func scanModelFile(row interface{ Scan(...any) error }) (*ModelFile, error) {
	var (
		f  ModelFile
		id string
	)
	if err := row.Scan(&id, &f.SourcePath, &f.Filename, &f.FileExt, &f.FileSize, &f.ContentHash, &f.UploadedAt); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse file id: %w", err)
	}
	f.ID = parsed
	return &f, nil
}

func (r *modelFileRepository) UpsertByHash(ctx context.Context, f *ModelFile) (*ModelFile, bool, error) {
	existing, err := r.getByHash(ctx, f.ContentHash)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, false, err
	}
	if existing != nil {
		r.logger.Debug("file deduplicated by hash", "file_id", existing.ID, "path", f.SourcePath)
		return existing, true, nil
	}

	f.ID = uuid.New()
	_, err = r.db.SQL.ExecContext(ctx,
		`INSERT INTO model_files (`+modelFileColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		f.ID.String(), f.SourcePath, f.Filename, f.FileExt, f.FileSize, f.ContentHash, f.UploadedAt,
	)
	if err != nil {
		r.logger.Error("insert model file failed", "path", f.SourcePath, "error", err)
		return nil, false, common.WrapError(err, "insert model file")
	}
	return f, false, nil
}

func (r *modelFileRepository) getByHash(ctx context.Context, hashHex string) (*ModelFile, error) {
	row := r.db.SQL.QueryRowContext(ctx,
		`SELECT `+modelFileColumns+` FROM model_files WHERE content_hash = $1`, hashHex)
	f, err := scanModelFile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	return f, err
}

func (r *modelFileRepository) GetByID(ctx context.Context, id uuid.UUID) (*ModelFile, error) {
	row := r.db.SQL.QueryRowContext(ctx,
		`SELECT `+modelFileColumns+` FROM model_files WHERE id = $1`, id.String())
	f, err := scanModelFile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	return f, err
}

func (r *modelFileRepository) List(ctx context.Context) ([]*ModelFile, error) {
	rows, err := r.db.SQL.QueryContext(ctx,
		`SELECT `+modelFileColumns+` FROM model_files ORDER BY uploaded_at`)
	if err != nil {
		return nil, common.WrapError(err, "list model files")
	}
	defer rows.Close()

	var out []*ModelFile
	for rows.Next() {
		f, err := scanModelFile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
