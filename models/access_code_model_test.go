package models

import (
	"testing"
	"time"
)

func TestAccessCodeIsValid(t *testing.T) {
	created := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name         string
		isActive     bool
		validityDays int
		now          time.Time
		want         bool
	}{
		{"inactive code is never valid", false, -1, created, false},
		{"inactive code invalid even within window", false, 30, created.AddDate(0, 0, 1), false},
		{"unbounded code valid immediately", true, -1, created, true},
		{"unbounded code valid years later", true, -1, created.AddDate(5, 0, 0), true},
		{"bounded code valid before expiry", true, 30, created.AddDate(0, 0, 29), true},
		{"bounded code invalid at expiry instant", true, 30, created.AddDate(0, 0, 30), false},
		{"bounded code invalid after expiry", true, 30, created.AddDate(0, 0, 31), false},
		{"one-day code valid same day", true, 1, created.Add(12 * time.Hour), true},
		{"one-day code expired next day", true, 1, created.AddDate(0, 0, 1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code := AccessCode{
				Code:         "GUEST-CODE",
				IsActive:     tc.isActive,
				ValidityDays: tc.validityDays,
			}
			code.CreatedAt = created
			if got := code.IsValid(tc.now); got != tc.want {
				t.Errorf("IsValid(%s) = %v, want %v", tc.now.Format(time.RFC3339), got, tc.want)
			}
		})
	}
}
