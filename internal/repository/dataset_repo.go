package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dehydrate_monitor/internal/models"
)

type DatasetSQLite struct {
	db *sql.DB
}

func NewDatasetSQLite(db *sql.DB) *DatasetSQLite {
	return &DatasetSQLite{db: db}
}

const (
	datasetInfoRowID = 1

	upsertDatasetInfoSQL = `
		INSERT INTO dataset_info (id, source, total_rows, dropped_rows, loaded, error_kind, error, loaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source=excluded.source,
			total_rows=excluded.total_rows,
			dropped_rows=excluded.dropped_rows,
			loaded=excluded.loaded,
			error_kind=excluded.error_kind,
			error=excluded.error,
			loaded_at=excluded.loaded_at
	`

	selectDatasetInfoSQL = `
		SELECT id, source, total_rows, dropped_rows, loaded, error_kind, error, loaded_at
		FROM dataset_info WHERE id=?
	`
)

// nullIfEmpty keeps optional text columns NULL instead of "".
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Save upserts the dataset_info row (id always 1).
func (r *DatasetSQLite) Save(ctx context.Context, info models.DatasetInfo) error {
	ts := info.LoadedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	_, err := r.db.ExecContext(ctx, upsertDatasetInfoSQL,
		datasetInfoRowID,
		info.Source,
		info.TotalRows,
		info.Dropped,
		info.Loaded,
		nullIfEmpty(info.ErrorKind),
		nullIfEmpty(info.Error),
		ts,
	)
	if err != nil {
		return fmt.Errorf("save dataset info: %w", err)
	}
	return nil
}

// Load fetches the dataset_info row. A zero value (ID 0) means nothing was recorded yet.
func (r *DatasetSQLite) Load(ctx context.Context) (models.DatasetInfo, error) {
	row := r.db.QueryRowContext(ctx, selectDatasetInfoSQL, datasetInfoRowID)

	var (
		info      models.DatasetInfo
		errorKind sql.NullString
		errText   sql.NullString
	)
	if err := row.Scan(
		&info.ID,
		&info.Source,
		&info.TotalRows,
		&info.Dropped,
		&info.Loaded,
		&errorKind,
		&errText,
		&info.LoadedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DatasetInfo{}, nil
		}
		return models.DatasetInfo{}, fmt.Errorf("load dataset info: %w", err)
	}
	info.ErrorKind = errorKind.String
	info.Error = errText.String
	info.LoadedAt = info.LoadedAt.UTC()
	return info, nil
}
