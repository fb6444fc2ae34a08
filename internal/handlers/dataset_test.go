package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dehydrate_monitor/internal/models"
	"dehydrate_monitor/internal/service"
)

func doAuthed(t *testing.T, s *service.Service, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := newTestRouter(s)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer valid")
	r.ServeHTTP(w, req)
	return w
}

func TestDatasetHandlers_Info(t *testing.T) {
	ds := &mockDataset{info: models.DatasetInfo{Source: "data/simulated_tomato_drying_data.csv", TotalRows: 40, Dropped: 1, Loaded: true}}
	w := doAuthed(t, &service.Service{Authorization: &mockAuth{parseID: 1}, Dataset: ds}, "/api/v1/dataset")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var got models.DatasetInfo
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Loaded || got.TotalRows != 40 || got.Dropped != 1 {
		t.Fatalf("unexpected info: %+v", got)
	}
}

func TestDatasetHandlers_InfoError(t *testing.T) {
	ds := &mockDataset{infoErr: errors.New("db down")}
	w := doAuthed(t, &service.Service{Authorization: &mockAuth{parseID: 1}, Dataset: ds}, "/api/v1/dataset")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestDatasetHandlers_Readings(t *testing.T) {
	page := service.ReadingsPage{
		Offset: 10,
		Limit:  2,
		Total:  40,
		Items:  []models.SensorReading{{Timestamp: "a"}, {Timestamp: "b"}},
	}

	cases := []struct {
		name       string
		query      string
		pageErr    error
		wantCode   int
		wantOffset int
		wantLimit  int
	}{
		{name: "explicit window", query: "?offset=10&limit=2", wantCode: http.StatusOK, wantOffset: 10, wantLimit: 2},
		{name: "defaults", query: "", wantCode: http.StatusOK, wantOffset: 0, wantLimit: 0},
		{name: "bad offset", query: "?offset=x", wantCode: http.StatusBadRequest},
		{name: "bad limit", query: "?limit=1.5", wantCode: http.StatusBadRequest},
		{name: "service rejects page", query: "?limit=9999", pageErr: service.ErrInvalidPage, wantCode: http.StatusBadRequest, wantLimit: 9999},
		{name: "service failure", query: "", pageErr: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds := &mockDataset{page: page, pageErr: tc.pageErr}
			w := doAuthed(t, &service.Service{Authorization: &mockAuth{parseID: 1}, Dataset: ds}, "/api/v1/dataset/readings"+tc.query)
			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}
			if tc.wantCode == http.StatusBadRequest && tc.pageErr == nil {
				return
			}
			if ds.lastOffset != tc.wantOffset || ds.lastLimit != tc.wantLimit {
				t.Fatalf("forwarded offset=%d limit=%d", ds.lastOffset, ds.lastLimit)
			}
			if tc.wantCode != http.StatusOK {
				return
			}
			var got service.ReadingsPage
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Total != 40 || len(got.Items) != 2 {
				t.Fatalf("unexpected page: %+v", got)
			}
		})
	}
}
