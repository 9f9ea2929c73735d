package core

import (
	"testing"
	"time"
)

func TestExpandDayMonthPadsAndAppendsYear(t *testing.T) {
	cases := map[string]string{
		"5/3":    "05.03.2026",
		"26/3":   "26.03.2026",
		"26.3":   "26.03.2026",
		"31-12":  "31.12.2026",
		" 5/3 ":  "05.03.2026",
		"05/03":  "05.03.2026",
	}
	for in, want := range cases {
		if got := ExpandDayMonth(in, 2026); got != want {
			t.Fatalf("ExpandDayMonth(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExpandDayMonthIdempotentOnFullDates(t *testing.T) {
	if got := ExpandDayMonth("05.03.2024", 2026); got != "05.03.2024" {
		t.Fatalf("already-expanded date changed: %q", got)
	}
}

func TestExpandDayMonthPassesThroughFreeText(t *testing.T) {
	for _, in := range []string{"", "tbd", "26/3 CZ", "2024-03-05"} {
		if got := ExpandDayMonth(in, 2026); got != in {
			t.Fatalf("ExpandDayMonth(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestFormatToday(t *testing.T) {
	d := time.Date(2026, time.August, 9, 12, 0, 0, 0, time.UTC)
	if got := FormatToday(d); got != "09/08/2026" {
		t.Fatalf("FormatToday = %q", got)
	}
}
