package services

import (
	"testing"
	"time"
	"warranty-app/config"
)

func TestComputeWindow(t *testing.T) {
	config.AppLocation = time.UTC

	activated := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	start, end := ComputeWindow(activated, 1095)

	if !start.Equal(activated) {
		t.Fatalf("start = %v, want %v", start, activated)
	}
	want := time.Date(2028, 3, 9, 14, 30, 0, 0, time.UTC)
	if !end.Equal(want) {
		t.Fatalf("end = %v, want %v", end, want)
	}
}

func TestComputeWindowNormalizesZone(t *testing.T) {
	shanghai, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	config.AppLocation = shanghai

	// Same instant expressed in UTC; the window must not shift.
	activated := time.Date(2025, 3, 10, 6, 30, 0, 0, time.UTC)
	start, end := ComputeWindow(activated, 30)

	if start.Location() != shanghai {
		t.Fatalf("start location = %v, want %v", start.Location(), shanghai)
	}
	if !start.Equal(activated) {
		t.Fatalf("normalization changed the instant: %v vs %v", start, activated)
	}
	if got := end.Sub(start); got != 30*24*time.Hour {
		t.Fatalf("window length = %v, want 720h", got)
	}

	config.AppLocation = time.UTC
}

func TestUnderWarrantyEndOnly(t *testing.T) {
	config.AppLocation = time.UTC

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 365)

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"inside window", start.AddDate(0, 6, 0), true},
		{"exactly at end", end, true},
		{"after end", end.Add(time.Second), false},
		{"before start still covered", start.Add(-time.Hour), true},
	}
	for _, tc := range cases {
		if got := UnderWarranty(tc.now, &start, &end); got != tc.want {
			t.Errorf("%s: UnderWarranty = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestUnderWarrantyNilWindow(t *testing.T) {
	now := time.Now()
	end := now.AddDate(1, 0, 0)

	if UnderWarranty(now, nil, nil) {
		t.Fatal("nil window reported as covered")
	}
	if UnderWarranty(now, nil, &end) {
		t.Fatal("nil start reported as covered")
	}
	if UnderWarranty(now, &end, nil) {
		t.Fatal("nil end reported as covered")
	}
}

func TestActiveAtStrictInterval(t *testing.T) {
	config.AppLocation = time.UTC

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 365)

	if ActiveAt(start.Add(-time.Second), &start, &end) {
		t.Fatal("instant before start reported active")
	}
	if !ActiveAt(start, &start, &end) {
		t.Fatal("start boundary not active")
	}
	if !ActiveAt(end, &start, &end) {
		t.Fatal("end boundary not active")
	}
	if ActiveAt(end.Add(time.Second), &start, &end) {
		t.Fatal("instant after end reported active")
	}
}

func TestParseClientTime(t *testing.T) {
	shanghai, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	config.AppLocation = shanghai
	defer func() { config.AppLocation = time.UTC }()

	// Naive date is read as midnight in the reference zone.
	got, err := ParseClientTime("2025-03-10")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, shanghai)
	if !got.Equal(want) {
		t.Fatalf("date parsed as %v, want %v", got, want)
	}

	// Naive datetime likewise.
	got, err = ParseClientTime("2025-03-10 08:15:00")
	if err != nil {
		t.Fatalf("parse datetime: %v", err)
	}
	want = time.Date(2025, 3, 10, 8, 15, 0, 0, shanghai)
	if !got.Equal(want) {
		t.Fatalf("datetime parsed as %v, want %v", got, want)
	}

	// RFC3339 keeps its own offset, normalized into the reference zone.
	got, err = ParseClientTime("2025-03-10T00:00:00Z")
	if err != nil {
		t.Fatalf("parse rfc3339: %v", err)
	}
	if !got.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("rfc3339 instant shifted: %v", got)
	}
	if got.Location() != shanghai {
		t.Fatalf("rfc3339 not normalized: %v", got.Location())
	}

	if _, err := ParseClientTime("not-a-date"); err == nil {
		t.Fatal("expected error for garbage input")
	}
}

func TestComputeWindowIdempotentNormalization(t *testing.T) {
	config.AppLocation = time.UTC

	activated := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s1, e1 := ComputeWindow(activated, 730)
	s2, e2 := ComputeWindow(s1, 730)

	if !s1.Equal(s2) || !e1.Equal(e2) {
		t.Fatalf("recomputing from a normalized start moved the window: (%v,%v) vs (%v,%v)", s1, e1, s2, e2)
	}
}
