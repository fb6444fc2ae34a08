package handlers

import (
	"context"
	"net/http"
	"time"

	"dehydrate_monitor/internal/models"
	"dehydrate_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	ensureID      int
	ensureErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastGenUsername string
	lastGenPassword string
	lastParseToken  string
}

func (m *mockAuth) EnsureUser(ctx context.Context, username, password string) (int, error) {
	return m.ensureID, m.ensureErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockPlayback struct {
	calls []string
}

func (m *mockPlayback) Play(ctx context.Context)   { m.calls = append(m.calls, "play") }
func (m *mockPlayback) Pause(ctx context.Context)  { m.calls = append(m.calls, "pause") }
func (m *mockPlayback) Toggle(ctx context.Context) { m.calls = append(m.calls, "toggle") }
func (m *mockPlayback) Reset(ctx context.Context)  { m.calls = append(m.calls, "reset") }
func (m *mockPlayback) Fail(ctx context.Context, err error) {
	m.calls = append(m.calls, "fail")
}
func (m *mockPlayback) Close() {}

type mockMonitoring struct {
	snap models.PlaybackSnapshot
}

func (m *mockMonitoring) Snapshot(ctx context.Context) models.PlaybackSnapshot {
	return m.snap
}

type mockDataset struct {
	info       models.DatasetInfo
	infoErr    error
	page       service.ReadingsPage
	pageErr    error
	lastOffset int
	lastLimit  int
}

func (m *mockDataset) Record(ctx context.Context, info models.DatasetInfo) error {
	m.info = info
	return nil
}
func (m *mockDataset) Info(ctx context.Context) (models.DatasetInfo, error) {
	return m.info, m.infoErr
}
func (m *mockDataset) Readings(ctx context.Context, offset, limit int) (service.ReadingsPage, error) {
	m.lastOffset = offset
	m.lastLimit = limit
	return m.page, m.pageErr
}

type mockEventLog struct {
	resp     []models.PlaybackEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.PlaybackEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, Options{AuthEnabled: true})
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func snapshotAt(index int, status models.PlaybackStatus) models.PlaybackSnapshot {
	idx := index
	return models.PlaybackSnapshot{
		Status:    status,
		Index:     &idx,
		IsPlaying: status == models.StatusPlaying,
		Total:     40,
		Reading: &models.SensorReading{
			Timestamp:    "2024-05-01 09:00:00",
			ProduceType:  models.ProduceTomato,
			TemperatureC: 61.26,
			HumidityPct:  55.04,
			PressureHPa:  1012.3,
			DrynessPct:   35.55,
		},
		Bucket:   models.BucketPartiallyDry,
		ImageURL: service.ImageURL(models.ProduceTomato, models.BucketPartiallyDry),
	}
}
