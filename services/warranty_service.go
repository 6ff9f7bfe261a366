package services

import (
	"time"
	"warranty-app/config"
)

// Warranty calculator. Pure read side: nothing here touches the database or
// mutates a product; the repository persists what ComputeWindow returns.

func location() *time.Location {
	if config.AppLocation != nil {
		return config.AppLocation
	}
	return time.UTC
}

// Normalize brings an instant into the reference timezone. Zoneless client
// timestamps must be parsed with ParseClientTime so they are read as
// wall-clock time in that zone, never compared raw against zone-aware ones.
func Normalize(t time.Time) time.Time {
	return t.In(location())
}

// ParseClientTime parses a timestamp supplied by a client. Accepts RFC3339
// (zone-aware) or "2006-01-02 15:04:05" / "2006-01-02" (naive, interpreted
// in the reference zone).
func ParseClientTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Normalize(t), nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", s, location()); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, location())
}

// ComputeWindow derives the warranty window from the activation instant and
// the product type's warranty period. Calendar days, not business days.
func ComputeWindow(activatedAt time.Time, warrantyDays int) (time.Time, time.Time) {
	start := Normalize(activatedAt)
	end := start.AddDate(0, 0, warrantyDays)
	return start, end
}

// UnderWarranty reports coverage the way the registry answers it: the window
// exists and now has not passed its end. The start bound is deliberately not
// checked; use ActiveAt when a not-yet-started window must be excluded.
func UnderWarranty(now time.Time, start, end *time.Time) bool {
	if start == nil || end == nil {
		return false
	}
	return !Normalize(now).After(Normalize(*end))
}

// ActiveAt is the strict interval check: start <= now <= end.
func ActiveAt(now time.Time, start, end *time.Time) bool {
	if start == nil || end == nil {
		return false
	}
	n := Normalize(now)
	return !n.Before(Normalize(*start)) && !n.After(Normalize(*end))
}
