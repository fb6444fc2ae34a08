package service

import (
	"context"
	"fmt"
	"time"

	"dehydrate_monitor/internal/logger"
	"dehydrate_monitor/internal/models"
	"dehydrate_monitor/internal/repository"
)

// DatasetService exposes the startup load summary and pages through the loaded rows.
type DatasetService struct {
	repo     repository.DatasetRepo
	events   eventRecorder
	readings []models.SensorReading
}

func NewDatasetService(repo repository.DatasetRepo, eventRepo repository.EventRepo, readings []models.SensorReading, log *logger.Logger) *DatasetService {
	return &DatasetService{
		repo:     repo,
		events:   eventRecorder{repo: eventRepo, log: log},
		readings: readings,
	}
}

// Record stores the load summary and logs DATASET_LOADED or DATASET_FAILED.
func (s *DatasetService) Record(ctx context.Context, info models.DatasetInfo) error {
	info.ID = 1
	if info.LoadedAt.IsZero() {
		info.LoadedAt = time.Now().UTC()
	}
	if err := s.repo.Save(ctx, info); err != nil {
		return err
	}

	meta := map[string]any{"source": info.Source, "total_rows": info.TotalRows, "dropped_rows": info.Dropped}
	if info.Loaded {
		s.events.record(ctx, newEvent(models.EventDatasetLoaded,
			fmt.Sprintf("Loaded %d readings", info.TotalRows), meta))
		return nil
	}
	meta["error_kind"] = info.ErrorKind
	s.events.record(ctx, newEvent(models.EventDatasetFailed, info.Error, meta))
	return nil
}

// Info returns the stored load summary, or a "not loaded" baseline when none was recorded.
func (s *DatasetService) Info(ctx context.Context) (models.DatasetInfo, error) {
	info, err := s.repo.Load(ctx)
	if err != nil {
		return models.DatasetInfo{}, err
	}
	if info.ID == 0 {
		return models.DatasetInfo{TotalRows: len(s.readings), Loaded: false}, nil
	}
	info.LoadedAt = toUTC(info.LoadedAt)
	return info, nil
}

// Readings returns rows [offset, offset+limit). A zero limit means DefaultPageLimit.
func (s *DatasetService) Readings(ctx context.Context, offset, limit int) (ReadingsPage, error) {
	if offset < 0 || limit < 0 || limit > MaxPageLimit {
		return ReadingsPage{}, ErrInvalidPage
	}
	if limit == 0 {
		limit = DefaultPageLimit
	}

	total := len(s.readings)
	start := min(offset, total)
	end := min(start+limit, total)

	items := make([]models.SensorReading, end-start)
	copy(items, s.readings[start:end])
	return ReadingsPage{Offset: offset, Limit: limit, Total: total, Items: items}, nil
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
