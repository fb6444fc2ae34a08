package service

import (
	"errors"
	"time"

	"dehydrate_monitor/internal/models"
)

// Paging limits for the reading listing.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 500
)

var ErrInvalidPage = errors.New("invalid page: offset must be >= 0 and limit between 0 and 500")

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "PLAY", "PAUSE", "RESET", "FINISHED", "ALERT", "DATASET_LOADED", "DATASET_FAILED"
}

// ReadingsPage is one window of the loaded dataset.
type ReadingsPage struct {
	Offset int                    `json:"offset"`
	Limit  int                    `json:"limit"`
	Total  int                    `json:"total"`
	Items  []models.SensorReading `json:"items"`
}
