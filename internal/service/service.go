package service

import (
	"context"
	"time"

	"dehydrate_monitor/internal/logger"
	"dehydrate_monitor/internal/models"
	"dehydrate_monitor/internal/repository"
)

type Authorization interface {
	EnsureUser(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Playback exposes the state machine commands. Commands never fail; an
// inapplicable command leaves the state unchanged.
type Playback interface {
	Play(ctx context.Context)
	Pause(ctx context.Context)
	Toggle(ctx context.Context)
	Reset(ctx context.Context)
	Fail(ctx context.Context, err error)
	Close()
}

// Monitoring exposes the read model rendered by the dashboard.
type Monitoring interface {
	Snapshot(ctx context.Context) models.PlaybackSnapshot
}

// Dataset exposes the load summary and the loaded rows.
type Dataset interface {
	Record(ctx context.Context, info models.DatasetInfo) error
	Info(ctx context.Context) (models.DatasetInfo, error)
	Readings(ctx context.Context, offset, limit int) (ReadingsPage, error)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.PlaybackEvent, error)
}

type Service struct {
	Playback
	Monitoring
	EventLog
	Dataset
	Authorization
}

// Options carries what the services need beyond the repositories.
type Options struct {
	Readings []models.SensorReading
	Interval time.Duration
	Auth     AuthOptions
	Log      *logger.Logger
}

// NewService wires the repository layer into concrete services. The playback
// controller is shared by Playback and Monitoring.
func NewService(repos *repository.Repository, opts Options) *Service {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	player := NewPlaybackService(opts.Readings, opts.Interval, repos.EventRepo, log)
	return &Service{
		Playback:      player,
		Monitoring:    player,
		EventLog:      NewEventLogService(repos.EventRepo),
		Dataset:       NewDatasetService(repos.DatasetRepo, repos.EventRepo, opts.Readings, log),
		Authorization: NewAuthService(repos.Auth, opts.Auth),
	}
}
