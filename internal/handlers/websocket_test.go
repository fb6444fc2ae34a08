package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"dehydrate_monitor/internal/models"
	"dehydrate_monitor/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil, Options{})

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", 1 * time.Second},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=20s", 1 * time.Second},
		{"interval_ms_too_large", "/ws?interval_ms=20000", 1 * time.Second},
		{"interval_invalid_string", "/ws?interval=bogus", 1 * time.Second},
		{"interval_ms_invalid", "/ws?interval_ms=NaN", 1 * time.Second},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

// steppingMonitoring advances the snapshot index on every read.
type steppingMonitoring struct {
	mu    sync.Mutex
	reads int
}

func (m *steppingMonitoring) Snapshot(ctx context.Context) models.PlaybackSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := snapshotAt(m.reads, models.StatusPlaying)
	m.reads++
	return snap
}

type envelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func dialSnapshots(t *testing.T, s *service.Service, intervalMS string) *websocket.Conn {
	t.Helper()
	r := gin.New()
	h := NewHandler(s, nil, Options{})
	r.GET("/ws", h.wsConnect)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	q := u.Query()
	q.Set("interval_ms", intervalMS)
	u.RawQuery = q.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) models.PlaybackSnapshot {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read: %v", err)
	}
	if env.Type != "snapshot" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var snap models.PlaybackSnapshot
	if err := json.Unmarshal(env.Data, &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	return snap
}

func TestWebSocket_SnapshotStream_InitialAndPeriodic(t *testing.T) {
	mon := &mockMonitoring{snap: snapshotAt(3, models.StatusPlaying)}
	conn := dialSnapshots(t, &service.Service{Monitoring: mon}, "20")

	snap := readSnapshot(t, conn)
	if snap.Index == nil || *snap.Index != 3 || !snap.IsPlaying {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.Reading == nil || snap.Reading.ProduceType != models.ProduceTomato {
		t.Fatalf("reading missing: %+v", snap)
	}
	if snap.Bucket != models.BucketPartiallyDry {
		t.Fatalf("unexpected bucket %q", snap.Bucket)
	}

	// A subsequent tick
	snap = readSnapshot(t, conn)
	if snap.Status != models.StatusPlaying {
		t.Fatalf("unexpected second snapshot: %+v", snap)
	}
}

func TestWebSocket_FollowsPlayback(t *testing.T) {
	mon := &steppingMonitoring{}
	conn := dialSnapshots(t, &service.Service{Monitoring: mon}, "10")

	first := readSnapshot(t, conn)
	second := readSnapshot(t, conn)
	if first.Index == nil || second.Index == nil || *second.Index <= *first.Index {
		t.Fatalf("expected advancing index, got %v then %v", first.Index, second.Index)
	}
}

func TestWebSocket_OpenWithoutTokenWhenAuthEnabled(t *testing.T) {
	mon := &mockMonitoring{snap: snapshotAt(1, models.StatusPaused)}
	srv := httptest.NewServer(newTestRouter(&service.Service{Authorization: &mockAuth{}, Monitoring: mon}))
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	if snap := readSnapshot(t, conn); snap.Status != models.StatusPaused {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}
