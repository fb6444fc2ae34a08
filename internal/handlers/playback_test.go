package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dehydrate_monitor/internal/models"
	"dehydrate_monitor/internal/service"
)

func TestPlaybackHandlers_Commands(t *testing.T) {
	cases := []struct {
		path       string
		wantStatus string
	}{
		{path: "/api/v1/playback/play", wantStatus: statusPlay},
		{path: "/api/v1/playback/pause", wantStatus: statusPause},
		{path: "/api/v1/playback/toggle", wantStatus: statusToggle},
		{path: "/api/v1/playback/reset", wantStatus: statusReset},
	}

	for _, tc := range cases {
		t.Run(tc.wantStatus, func(t *testing.T) {
			pb := &mockPlayback{}
			mon := &mockMonitoring{snap: snapshotAt(5, models.StatusPlaying)}
			r := newTestRouter(&service.Service{
				Authorization: &mockAuth{parseID: 7},
				Playback:      pb,
				Monitoring:    mon,
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tc.path, nil)
			for k, vv := range authHeader("valid") {
				for _, v := range vv {
					req.Header.Add(k, v)
				}
			}
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
			}
			if len(pb.calls) != 1 || pb.calls[0] != tc.wantStatus {
				t.Fatalf("expected one %q call, got %v", tc.wantStatus, pb.calls)
			}

			var resp struct {
				Status string                  `json:"status"`
				State  models.PlaybackSnapshot `json:"state"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.Status != tc.wantStatus {
				t.Fatalf("expected status %q, got %q", tc.wantStatus, resp.Status)
			}
			if resp.State.Index == nil || *resp.State.Index != 5 {
				t.Fatalf("state missing/invalid in response: %+v", resp.State)
			}
		})
	}
}

func TestPlaybackHandlers_RequireAuth(t *testing.T) {
	pb := &mockPlayback{}
	r := newTestRouter(&service.Service{
		Authorization: &mockAuth{},
		Playback:      pb,
		Monitoring:    &mockMonitoring{},
	})

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/playback/play"},
		{http.MethodGet, "/api/v1/playback/state"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without auth, got %d", tc.method, tc.path, w.Code)
		}
	}
	if len(pb.calls) != 0 {
		t.Fatalf("commands must not run without auth, got %v", pb.calls)
	}
}

func TestPlaybackHandlers_AuthDisabled(t *testing.T) {
	pb := &mockPlayback{}
	h := NewHandler(&service.Service{Playback: pb, Monitoring: &mockMonitoring{}}, nil, Options{})
	r := h.InitRoutes()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/playback/toggle", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with auth disabled, got %d", w.Code)
	}
	if len(pb.calls) != 1 {
		t.Fatalf("expected toggle call, got %v", pb.calls)
	}
}

func TestPlaybackHandlers_GetState(t *testing.T) {
	snap := snapshotAt(0, models.StatusIdle)
	snap.Alert = models.Alert{Message: "Humidity is high, ensure proper ventilation.", Severity: models.SeverityWarning}
	r := newTestRouter(&service.Service{
		Authorization: &mockAuth{parseID: 1},
		Monitoring:    &mockMonitoring{snap: snap},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/playback/state", nil)
	req.Header.Set("Authorization", "Bearer valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("state status=%d, body=%s", w.Code, w.Body.String())
	}
	var got models.PlaybackSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	if got.Status != models.StatusIdle || got.Alert != snap.Alert || got.ImageURL != snap.ImageURL {
		t.Fatalf("unexpected state: %+v", got)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
}
