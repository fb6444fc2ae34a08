package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dehydrate_monitor/internal/models"
	"dehydrate_monitor/internal/service"
)

func renderDashboard(t *testing.T, snap models.PlaybackSnapshot, opts Options) string {
	t.Helper()
	h := NewHandler(&service.Service{Monitoring: &mockMonitoring{snap: snap}}, nil, opts)
	r := h.InitRoutes()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard status=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	return w.Body.String()
}

func TestDashboard_RendersReadingToOneDecimal(t *testing.T) {
	snap := snapshotAt(4, models.StatusPlaying)
	snap.Alert = models.Alert{Message: "Anomaly Detected! Potential issue with Tomato Slices drying.", Severity: models.SeverityError}
	body := renderDashboard(t, snap, Options{})

	for _, want := range []string{
		"Tomato Slices",
		`<span id="temp">61.3</span>`,
		`<span id="humidity">55.0</span>`,
		`<span id="pressure">1012.3</span>`,
		`<span id="dryness">35.5</span>`,
		"alert-error",
		"Anomaly Detected! Potential issue with Tomato Slices drying.",
		"Pause Simulation",
		"Partially+Dry+Tomato",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("dashboard missing %q", want)
		}
	}
	if strings.Contains(body, `id="signin"`) {
		t.Fatalf("sign-in form should be hidden when auth is disabled")
	}
}

func TestDashboard_EmptyDataset(t *testing.T) {
	snap := models.PlaybackSnapshot{
		Status:   models.StatusIdle,
		ImageURL: service.LoadingImageURL,
		Alert:    models.Alert{Message: "Failed to parse sensor data. Check CSV format.", Severity: models.SeverityError},
	}
	body := renderDashboard(t, snap, Options{AuthEnabled: true})

	for _, want := range []string{"Waiting for sensor data...", "Select Produce", "Start Simulation", "Loading+Image", `id="signin"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("dashboard missing %q", want)
		}
	}
}

func TestDashboard_NoAlertHidden(t *testing.T) {
	body := renderDashboard(t, snapshotAt(0, models.StatusIdle), Options{})
	if !strings.Contains(body, `class="alert alert-info hidden"`) {
		t.Fatalf("expected hidden alert banner")
	}
}
