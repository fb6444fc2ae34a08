package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"dehydrate_monitor/internal/models"
)

// CSV header columns. Order in the file is free.
const (
	colTimestamp   = "Timestamp"
	colProduceType = "Produce_Type"
	colTemperature = "Temperature_C"
	colHumidity    = "Humidity_PCT"
	colPressure    = "Pressure_hPa"
	colDryness     = "Dryness_PCT"
	colAnomaly     = "Anomaly_Flag"
)

var requiredColumns = []string{
	colTimestamp, colProduceType, colTemperature, colHumidity, colPressure, colDryness, colAnomaly,
}

const defaultFetchTimeout = 15 * time.Second

// Summary reports row counts for a successful load.
type Summary struct {
	Total   int `json:"total"`   // rows kept
	Dropped int `json:"dropped"` // rows discarded for a missing timestamp
}

// Loader fetches and parses the replay dataset.
type Loader struct {
	client *http.Client
}

// NewLoader returns a loader; a nil client gets one with a default timeout.
func NewLoader(client *http.Client) *Loader {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	return &Loader{client: client}
}

// Load reads source (http(s) URL or file path) and parses it.
// On failure the returned slice is always nil.
func (l *Loader) Load(ctx context.Context, source string) ([]models.SensorReading, Summary, error) {
	rc, err := l.open(ctx, source)
	if err != nil {
		return nil, Summary{}, err
	}
	defer func() { _ = rc.Close() }()
	return Parse(rc)
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !isURL(source) {
		f, err := os.Open(source)
		if err != nil {
			return nil, fetchError(0, fmt.Errorf("open %q: %w", source, err))
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fetchError(0, fmt.Errorf("build request for %q: %w", source, err))
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fetchError(0, fmt.Errorf("get %q: %w", source, err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.CopyN(io.Discard, resp.Body, 512)
		_ = resp.Body.Close()
		return nil, fetchError(resp.StatusCode, nil)
	}
	return resp.Body, nil
}

func isURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Parse decodes a CSV stream with a header row into readings.
// Rows with an empty Timestamp are dropped; any other malformed row fails the whole parse.
func Parse(r io.Reader) ([]models.SensorReading, Summary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, Summary{}, parseError("missing header row")
		}
		return nil, Summary{}, &LoadError{Kind: ErrParseFailed, Diagnostic: "read header: " + err.Error(), Err: err}
	}

	headerMap := make(map[string]int, len(headers))
	for i, h := range headers {
		headerMap[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := headerMap[col]; !ok {
			return nil, Summary{}, parseError("missing required column %q", col)
		}
	}

	var (
		out     []models.SensorReading
		summary Summary
		line    = 1
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, Summary{}, &LoadError{Kind: ErrParseFailed, Diagnostic: fmt.Sprintf("line %d: %v", line, err), Err: err}
		}

		get := func(col string) string {
			if idx := headerMap[col]; idx < len(record) {
				return strings.TrimSpace(record[idx])
			}
			return ""
		}

		if get(colTimestamp) == "" {
			summary.Dropped++
			continue
		}
		reading, err := parseRecord(get)
		if err != nil {
			return nil, Summary{}, parseError("line %d: %v", line, err)
		}
		out = append(out, reading)
	}

	summary.Total = len(out)
	return out, summary, nil
}

func parseRecord(get func(string) string) (models.SensorReading, error) {
	produce := models.ProduceType(get(colProduceType))
	if !produce.Valid() {
		return models.SensorReading{}, fmt.Errorf("unknown produce type %q", produce)
	}

	var (
		r = models.SensorReading{Timestamp: get(colTimestamp), ProduceType: produce}
		err error
	)
	if r.TemperatureC, err = parseNumber(colTemperature, get(colTemperature)); err != nil {
		return models.SensorReading{}, err
	}
	if r.HumidityPct, err = parseNumber(colHumidity, get(colHumidity)); err != nil {
		return models.SensorReading{}, err
	}
	if r.PressureHPa, err = parseNumber(colPressure, get(colPressure)); err != nil {
		return models.SensorReading{}, err
	}
	if r.DrynessPct, err = parseNumber(colDryness, get(colDryness)); err != nil {
		return models.SensorReading{}, err
	}
	if r.AnomalyFlag, err = parseFlag(get(colAnomaly)); err != nil {
		return models.SensorReading{}, err
	}
	return r, nil
}

func parseNumber(col, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s: invalid number %q", col, s)
	}
	return v, nil
}

// parseFlag accepts 0/1 (also as floats) and true/false. An empty cell is an error.
func parseFlag(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && (v == 0 || v == 1) {
		return v == 1, nil
	}
	return false, fmt.Errorf("%s: invalid flag %q", colAnomaly, s)
}
