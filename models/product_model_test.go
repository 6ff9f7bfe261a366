package models

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from int
		to   int
		want bool
	}{
		{"generated to shipped", StatusGenerated, StatusShipped, true},
		{"generated to activated skips shipping", StatusGenerated, StatusActivated, false},
		{"shipped to activated", StatusShipped, StatusActivated, true},
		{"shipped back to generated", StatusShipped, StatusGenerated, false},
		{"activated to in_repair", StatusActivated, StatusInRepair, true},
		{"in_repair back to activated", StatusInRepair, StatusActivated, true},
		{"generated to scrapped", StatusGenerated, StatusScrapped, true},
		{"shipped to scrapped", StatusShipped, StatusScrapped, true},
		{"activated to scrapped", StatusActivated, StatusScrapped, true},
		{"in_repair to scrapped", StatusInRepair, StatusScrapped, true},
		{"scrapped is terminal", StatusScrapped, StatusGenerated, false},
		{"scrapped stays scrapped", StatusScrapped, StatusScrapped, false},
		{"unknown status", 99, StatusShipped, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("%s: CanTransition(%d, %d) = %v, want %v", tc.name, tc.from, tc.to, got, tc.want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	if got := StatusLabel(StatusInRepair); got != "in_repair" {
		t.Fatalf("StatusLabel = %q, want %q", got, "in_repair")
	}
	if got := StatusLabel(42); got != "unknown" {
		t.Fatalf("StatusLabel for bogus status = %q, want %q", got, "unknown")
	}
}
