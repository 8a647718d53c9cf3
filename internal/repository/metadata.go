package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/printshelf/printshelf/internal/common"
)

// MetadataRow is the stored extraction result for one model file: the full
// metadata JSON plus denormalized headline columns for listing and export.
type MetadataRow struct {
	ID              uuid.UUID
	FileID          uuid.UUID
	Status          string
	PrintDuration   *string
	TotalWeight     *string
	LayerHeight     *string
	Infill          *string
	NozzleDiameter  *string
	PrinterModel    *string
	PrimaryMaterial *string
	MetadataJSON    string
	Error           *string
	ExtractedAt     time.Time
}

// CatalogRow joins a model file with its extraction result (nil when the file
// has not been processed yet).
type CatalogRow struct {
	File *ModelFile
	Meta *MetadataRow
}

type MetadataRepository interface {
	// Upsert replaces the metadata row for the file.
	Upsert(ctx context.Context, row *MetadataRow) error
	GetByFileID(ctx context.Context, fileID uuid.UUID) (*MetadataRow, error)
	// ListCatalog returns every file with its metadata, upload order.
	ListCatalog(ctx context.Context) ([]*CatalogRow, error)
}

type metadataRepository struct {
	db     *DB
	logger *slog.Logger
}

func NewMetadataRepository(db *DB, logger *slog.Logger) MetadataRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &metadataRepository{db: db, logger: logger}
}

func (r *metadataRepository) Upsert(ctx context.Context, row *MetadataRow) error {
	tx, err := r.db.SQL.BeginTx(ctx, nil)
	if err != nil {
		return common.WrapError(err, "begin upsert metadata")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM print_metadata WHERE file_id = $1`, row.FileID.String()); err != nil {
		return common.WrapError(err, "clear previous metadata")
	}

	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO print_metadata
			(id, file_id, status, print_duration, total_weight, layer_height,
			 infill, nozzle_diameter, printer_model, primary_material,
			 metadata_json, error, extracted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		row.ID.String(), row.FileID.String(), row.Status,
		row.PrintDuration, row.TotalWeight, row.LayerHeight,
		row.Infill, row.NozzleDiameter, row.PrinterModel, row.PrimaryMaterial,
		row.MetadataJSON, row.Error, row.ExtractedAt,
	)
	if err != nil {
		r.logger.Error("insert metadata failed", "file_id", row.FileID, "error", err)
		return common.WrapError(err, "insert metadata")
	}
	return tx.Commit()
}

const metadataColumns = `id, file_id, status, print_duration, total_weight, layer_height,
	infill, nozzle_diameter, printer_model, primary_material, metadata_json, error, extracted_at`

func scanMetadata(row interface{ Scan(...any) error }) (*MetadataRow, error) {
	var (
		m          MetadataRow
		id, fileID string
	)
	err := row.Scan(&id, &fileID, &m.Status, &m.PrintDuration, &m.TotalWeight,
		&m.LayerHeight, &m.Infill, &m.NozzleDiameter, &m.PrinterModel,
		&m.PrimaryMaterial, &m.MetadataJSON, &m.Error, &m.ExtractedAt)
	if err != nil {
		return nil, err
	}
	if m.ID, err = uuid.Parse(id); err != nil {
		return nil, err
	}
	if m.FileID, err = uuid.Parse(fileID); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *metadataRepository) GetByFileID(ctx context.Context, fileID uuid.UUID) (*MetadataRow, error) {
	row := r.db.SQL.QueryRowContext(ctx,
		`SELECT `+metadataColumns+` FROM print_metadata WHERE file_id = $1`, fileID.String())
	m, err := scanMetadata(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	return m, err
}

func (r *metadataRepository) ListCatalog(ctx context.Context) ([]*CatalogRow, error) {
	files, err := NewModelFileRepository(r.db, r.logger).List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*CatalogRow, 0, len(files))
	for _, f := range files {
		meta, err := r.GetByFileID(ctx, f.ID)
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		out = append(out, &CatalogRow{File: f, Meta: meta})
	}
	return out, nil
}
