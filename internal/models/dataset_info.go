package models

import "time"

// DatasetInfo summarizes the dataset load performed at startup.
type DatasetInfo struct {
	ID        int       `json:"-"`
	Source    string    `json:"source"`
	TotalRows int       `json:"total_rows"`
	Dropped   int       `json:"dropped_rows"` // rows without a timestamp
	Loaded    bool      `json:"loaded"`
	ErrorKind string    `json:"error_kind,omitempty"` // FETCH_FAILED | PARSE_FAILED
	Error     string    `json:"error,omitempty"`
	LoadedAt  time.Time `json:"loaded_at"`
}
