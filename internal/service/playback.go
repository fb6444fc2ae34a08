package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dehydrate_monitor/internal/dataset"
	"dehydrate_monitor/internal/logger"
	"dehydrate_monitor/internal/models"
	"dehydrate_monitor/internal/repository"
)

const DefaultInterval = time.Second

// PlaybackService replays the loaded dataset one row per interval.
//
// All state lives behind mu. The timer goroutine is owned through stopTimer and gen:
// every start and stop bumps gen, and a tick carrying an older gen is dropped, so
// nothing mutates state after pause, reset or completion.
//
// Events are appended under recMu, which is taken before mu is released. The log
// therefore sees transitions in the order they were applied. Lock order is mu, recMu.
type PlaybackService struct {
	mu       sync.Mutex
	recMu    sync.Mutex
	readings []models.SensorReading
	interval time.Duration
	events   eventRecorder
	log      *logger.Logger

	status    models.PlaybackStatus
	index     int
	alert     models.Alert
	updatedAt time.Time

	stopTimer context.CancelFunc
	gen       uint64
}

// NewPlaybackService returns an idle controller positioned on the first row.
// A non-positive interval falls back to DefaultInterval.
func NewPlaybackService(readings []models.SensorReading, interval time.Duration, eventRepo repository.EventRepo, log *logger.Logger) *PlaybackService {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	return &PlaybackService{
		readings:  readings,
		interval:  interval,
		events:    eventRecorder{repo: eventRepo, log: log},
		log:       log,
		status:    models.StatusIdle,
		updatedAt: time.Now().UTC(),
	}
}

// Play starts playback from Idle or Paused. It does nothing on an empty dataset,
// while already playing, or once finished.
func (s *PlaybackService) Play(ctx context.Context) {
	s.mu.Lock()
	s.commitLocked(ctx, s.playLocked(ctx))
}

// Pause stops the timer and keeps the current row on display.
func (s *PlaybackService) Pause(ctx context.Context) {
	s.mu.Lock()
	s.commitLocked(ctx, s.pauseLocked())
}

// Toggle pauses while playing and plays otherwise.
func (s *PlaybackService) Toggle(ctx context.Context) {
	s.mu.Lock()
	var evs []models.PlaybackEvent
	if s.status == models.StatusPlaying {
		evs = s.pauseLocked()
	} else {
		evs = s.playLocked(ctx)
	}
	s.commitLocked(ctx, evs)
}

// Reset rewinds to the first row in Idle and clears the alert. After a load
// failure the session stays empty, so Play remains a no-op.
func (s *PlaybackService) Reset(ctx context.Context) {
	s.mu.Lock()
	s.stopTimerLocked()
	s.status = models.StatusIdle
	s.index = 0
	s.alert = models.Alert{}
	s.touchLocked()
	s.commitLocked(ctx, []models.PlaybackEvent{s.eventLocked(models.EventReset, "Playback reset", nil)})
}

// Fail puts the session into the load failed state: no rows and an error alert
// that stays until the next reset.
func (s *PlaybackService) Fail(ctx context.Context, err error) {
	s.mu.Lock()
	s.stopTimerLocked()
	s.readings = nil
	s.status = models.StatusIdle
	s.index = 0
	s.alert = models.Alert{Message: loadFailureMessage(err), Severity: models.SeverityError}
	s.touchLocked()
	s.mu.Unlock()

	s.log.Errorw("dataset_unavailable", "error_kind", dataset.KindName(err), "error", err)
}

// Snapshot returns a copy of the current read model.
func (s *PlaybackService) Snapshot(ctx context.Context) models.PlaybackSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Close stops the timer. Used on shutdown.
func (s *PlaybackService) Close() {
	s.mu.Lock()
	s.stopTimerLocked()
	s.mu.Unlock()
}

func (s *PlaybackService) playLocked(ctx context.Context) []models.PlaybackEvent {
	if len(s.readings) == 0 {
		return nil
	}
	if s.status != models.StatusIdle && s.status != models.StatusPaused {
		return nil
	}
	s.status = models.StatusPlaying
	s.touchLocked()
	s.startTimerLocked(ctx)
	return []models.PlaybackEvent{s.eventLocked(models.EventPlay, "Playback started", nil)}
}

func (s *PlaybackService) pauseLocked() []models.PlaybackEvent {
	if s.status != models.StatusPlaying {
		return nil
	}
	s.stopTimerLocked()
	s.status = models.StatusPaused
	s.touchLocked()
	return []models.PlaybackEvent{s.eventLocked(models.EventPause, "Playback paused", nil)}
}

// tick advances one row, or finishes on the last one. It reports whether the
// timer should keep running.
func (s *PlaybackService) tick(ctx context.Context, gen uint64) bool {
	s.mu.Lock()
	if gen != s.gen || s.status != models.StatusPlaying {
		s.mu.Unlock()
		return false
	}

	var evs []models.PlaybackEvent
	if next := s.index + 1; next < len(s.readings) {
		prev := s.alert
		s.index = next
		s.alert = EvaluateAlert(&s.readings[next])
		if s.alert.Active() && s.alert != prev {
			evs = append(evs, s.eventLocked(models.EventAlert, s.alert.Message,
				map[string]any{"severity": s.alert.Severity}))
		}
	} else {
		s.stopTimerLocked()
		s.status = models.StatusFinished
		s.alert = completionAlert()
		evs = append(evs, s.eventLocked(models.EventFinished, completionMessage, nil))
	}
	s.touchLocked()
	playing := s.status == models.StatusPlaying

	// The finishing tick cancels its own timer context.
	s.commitLocked(context.WithoutCancel(ctx), evs)
	return playing
}

func (s *PlaybackService) run(ctx context.Context, gen uint64) {
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if !s.tick(ctx, gen) {
				return
			}
		}
	}
}

func (s *PlaybackService) startTimerLocked(ctx context.Context) {
	s.stopTimerLocked()
	timerCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.stopTimer = cancel
	go s.run(timerCtx, s.gen)
}

func (s *PlaybackService) stopTimerLocked() {
	if s.stopTimer != nil {
		s.stopTimer()
		s.stopTimer = nil
	}
	s.gen++
}

// commitLocked releases mu and appends evs in transition order.
func (s *PlaybackService) commitLocked(ctx context.Context, evs []models.PlaybackEvent) {
	if len(evs) == 0 {
		s.mu.Unlock()
		return
	}
	s.recMu.Lock()
	s.mu.Unlock()
	defer s.recMu.Unlock()
	s.events.record(ctx, evs...)
}

func (s *PlaybackService) touchLocked() {
	s.updatedAt = time.Now().UTC()
}

func (s *PlaybackService) eventLocked(typ, description string, extra map[string]any) models.PlaybackEvent {
	meta := map[string]any{"index": s.index, "status": s.status}
	for k, v := range extra {
		meta[k] = v
	}
	return newEvent(typ, description, meta)
}

func (s *PlaybackService) snapshotLocked() models.PlaybackSnapshot {
	snap := models.PlaybackSnapshot{
		Status:    s.status,
		IsPlaying: s.status == models.StatusPlaying,
		Total:     len(s.readings),
		Alert:     s.alert,
		UpdatedAt: s.updatedAt,
		ImageURL:  LoadingImageURL,
	}
	if len(s.readings) == 0 {
		return snap
	}
	idx := s.index
	r := s.readings[idx]
	snap.Index = &idx
	snap.Reading = &r
	snap.Bucket = Classify(&r)
	snap.ImageURL = ImageURL(r.ProduceType, snap.Bucket)
	return snap
}

func loadFailureMessage(err error) string {
	if errors.Is(err, dataset.ErrParseFailed) {
		return parseFailedMessage
	}
	var le *dataset.LoadError
	if errors.As(err, &le) && le.StatusCode != 0 {
		return fmt.Sprintf("Failed to load sensor data (HTTP %d). Ensure the dataset source is reachable.", le.StatusCode)
	}
	return "Failed to load sensor data. Ensure the dataset source is reachable."
}
