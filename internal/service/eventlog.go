package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"dehydrate_monitor/internal/logger"
	"dehydrate_monitor/internal/models"
	"dehydrate_monitor/internal/repository"

	"github.com/google/uuid"
)

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

var (
	errInvalidTimeRange = errors.New("invalid time range: From must be <= To")
)

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeEventType trims spaces and uppercases the event type filter.
func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f LogFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}

	eventType := normalizeEventType(f.Type)
	return from, to, eventType, nil
}

func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.PlaybackEvent, error) {
	from, to, typ, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, from, to, typ)
}

// IsValidationError reports whether err was caused by a bad filter or page request.
func IsValidationError(err error) bool {
	return errors.Is(err, errInvalidTimeRange) || errors.Is(err, ErrInvalidPage)
}

func newEvent(typ, description string, metadata map[string]any) models.PlaybackEvent {
	return models.PlaybackEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: description,
		Metadata:    metadata,
	}
}

// eventRecorder appends events on behalf of services whose commands never fail.
// Append errors are logged and dropped.
type eventRecorder struct {
	repo repository.EventRepo
	log  *logger.Logger
}

func (r eventRecorder) record(ctx context.Context, events ...models.PlaybackEvent) {
	if r.repo == nil {
		return
	}
	for _, e := range events {
		if err := r.repo.Append(ctx, e); err != nil {
			r.log.Errorw("append_event_failed", "type", e.Type, "event_id", e.EventID, "error", err)
		}
	}
}
