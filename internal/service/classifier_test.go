package service

import (
	"strings"
	"testing"

	"dehydrate_monitor/internal/models"
)

func reading(p models.ProduceType, dryness float64, anomaly bool) *models.SensorReading {
	return &models.SensorReading{
		Timestamp:   "2024-05-01 08:00:00",
		ProduceType: p,
		DrynessPct:  dryness,
		AnomalyFlag: anomaly,
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   *models.SensorReading
		want models.Bucket
	}{
		{name: "nil reading is fresh", in: nil, want: models.BucketFresh},
		{name: "zero dryness", in: reading(models.ProduceTomato, 0, false), want: models.BucketFresh},
		{name: "just below partially dry", in: reading(models.ProduceTomato, 29.9, false), want: models.BucketFresh},
		{name: "partially dry lower bound", in: reading(models.ProduceTomato, 30, false), want: models.BucketPartiallyDry},
		{name: "just below fully dry", in: reading(models.ProduceOnion, 69.9, false), want: models.BucketPartiallyDry},
		{name: "fully dry lower bound", in: reading(models.ProduceOnion, 70, false), want: models.BucketFullyDry},
		{name: "above hundred", in: reading(models.ProduceHabanero, 120, false), want: models.BucketFullyDry},
		{name: "negative dryness", in: reading(models.ProduceHabanero, -5, false), want: models.BucketFresh},
		{name: "tomato anomaly", in: reading(models.ProduceTomato, 90, true), want: models.BucketMold},
		{name: "habanero anomaly", in: reading(models.ProduceHabanero, 10, true), want: models.BucketDiscoloration},
		{name: "onion anomaly", in: reading(models.ProduceOnion, 50, true), want: models.BucketMold},
		{name: "unknown produce anomaly falls through", in: reading("Apple Rings", 50, true), want: models.BucketPartiallyDry},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tc.in); got != tc.want {
				t.Fatalf("Classify() = %q; want %q", got, tc.want)
			}
		})
	}
}

func TestClassify_Pure(t *testing.T) {
	t.Parallel()

	r := reading(models.ProduceHabanero, 45, false)
	before := *r
	first := Classify(r)
	for i := 0; i < 10; i++ {
		if got := Classify(r); got != first {
			t.Fatalf("call %d: got %q, first %q", i, got, first)
		}
	}
	if *r != before {
		t.Fatalf("reading mutated: %+v", *r)
	}
}

func TestImageURL_TableComplete(t *testing.T) {
	t.Parallel()

	buckets := []models.Bucket{
		models.BucketFresh, models.BucketPartiallyDry, models.BucketFullyDry,
		models.BucketMold, models.BucketDiscoloration,
	}
	seen := map[string]bool{}
	for _, p := range models.KnownProduce {
		for _, b := range buckets {
			u := ImageURL(p, b)
			if u == ErrorImageURL || !strings.HasPrefix(u, "https://placehold.co/") {
				t.Fatalf("ImageURL(%q, %q) = %q", p, b, u)
			}
			if seen[u] {
				t.Fatalf("duplicate image %q", u)
			}
			seen[u] = true
		}
	}
}

func TestImageURL_UnknownFallsBack(t *testing.T) {
	t.Parallel()

	if got := ImageURL("Apple Rings", models.BucketFresh); got != ErrorImageURL {
		t.Fatalf("unknown produce: got %q", got)
	}
	if got := ImageURL(models.ProduceTomato, "burnt"); got != ErrorImageURL {
		t.Fatalf("unknown bucket: got %q", got)
	}
}

func TestImageFor(t *testing.T) {
	t.Parallel()

	if got, want := ImageFor(nil), ImageURL(models.ProduceTomato, models.BucketFresh); got != want {
		t.Fatalf("nil reading: got %q want %q", got, want)
	}
	got := ImageFor(reading(models.ProduceHabanero, 10, true))
	if !strings.Contains(got, "Discolored+Habanero") {
		t.Fatalf("habanero anomaly: got %q", got)
	}
}
