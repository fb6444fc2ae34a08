package repository

import (
	"context"
	"database/sql"
	"time"

	"dehydrate_monitor/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// DatasetRepo stores the single dataset load summary of the session.
type DatasetRepo interface {
	Save(ctx context.Context, info models.DatasetInfo) error
	Load(ctx context.Context) (models.DatasetInfo, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.PlaybackEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.PlaybackEvent, error)
}

type Repository struct {
	DatasetRepo DatasetRepo
	EventRepo   EventRepo
	Auth        Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		DatasetRepo: NewDatasetSQLite(db),
		EventRepo:   NewEventSQLite(db),
		Auth:        NewUserRepository(db),
	}
}
