package models

import "time"

// Event types written to the playback log.
const (
	EventPlay          = "PLAY"
	EventPause         = "PAUSE"
	EventReset         = "RESET"
	EventFinished      = "FINISHED"
	EventAlert         = "ALERT"
	EventDatasetLoaded = "DATASET_LOADED"
	EventDatasetFailed = "DATASET_FAILED"
)

// PlaybackEvent is a single log entry.
type PlaybackEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // PLAY | PAUSE | RESET | FINISHED | ALERT | DATASET_*
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
