package models

import "time"

// PlaybackStatus is the state of the playback state machine.
type PlaybackStatus string

const (
	StatusIdle     PlaybackStatus = "idle"
	StatusPlaying  PlaybackStatus = "playing"
	StatusPaused   PlaybackStatus = "paused"
	StatusFinished PlaybackStatus = "finished"
)

// Bucket is the visual state label derived from a reading.
type Bucket string

const (
	BucketFresh         Bucket = "fresh"
	BucketPartiallyDry  Bucket = "partially_dry"
	BucketFullyDry      Bucket = "fully_dry"
	BucketMold          Bucket = "mold"
	BucketDiscoloration Bucket = "discoloration"
)

// Severity of an alert banner. The zero value means no alert.
type Severity string

const (
	SeverityNone    Severity = ""
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Alert is the banner shown above the dashboard. An empty Message clears it.
type Alert struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity,omitempty"`
}

// Active reports whether the alert should be displayed.
func (a Alert) Active() bool { return a.Message != "" }

// PlaybackSnapshot is the read model consumed by the rendering layer.
type PlaybackSnapshot struct {
	Status    PlaybackStatus `json:"status"`
	Index     *int           `json:"index"` // nil when the dataset is empty
	IsPlaying bool           `json:"is_playing"`
	Total     int            `json:"total"`
	Reading   *SensorReading `json:"reading,omitempty"`
	Bucket    Bucket         `json:"bucket,omitempty"`
	ImageURL  string         `json:"image_url"`
	Alert     Alert          `json:"alert"`
	UpdatedAt time.Time      `json:"updated_at"`
}
