package engine

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, ok := ParseDate(s)
	if !ok {
		panic("bad test date " + s)
	}
	return t
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"2024-01-15", true},
		{"2024/01/15", true},
		{"2024.01.15", true},
		{"2024-01-15 18:30:00", true},
		{"2024-01-15T18:30:00Z", true},
		{"not-a-date", false},
		{"", false},
		{"2024-13-99", false},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.in)
		if ok != tt.ok {
			t.Fatalf("ParseDate(%q) ok=%v want=%v", tt.in, ok, tt.ok)
		}
		if ok && (got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0) {
			t.Fatalf("ParseDate(%q) = %v, want midnight", tt.in, got)
		}
	}
}

func TestOverlapDays(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       int
	}{
		{"identical", "2024-01-01", "2024-01-30", "2024-01-01", "2024-01-30", 30},
		{"partial", "2024-01-01", "2024-01-30", "2024-01-10", "2024-01-19", 10},
		{"single day", "2024-01-15", "2024-01-15", "2024-01-01", "2024-01-31", 1},
		{"touching edge", "2024-01-01", "2024-01-10", "2024-01-10", "2024-01-20", 1},
		{"disjoint", "2024-01-01", "2024-01-10", "2024-02-01", "2024-02-10", 0},
		{"contained", "2024-01-05", "2024-01-07", "2024-01-01", "2024-01-31", 3},
	}
	for _, tt := range tests {
		got := OverlapDays(day(tt.aStart), day(tt.aEnd), day(tt.bStart), day(tt.bEnd))
		if got != tt.want {
			t.Fatalf("%s: OverlapDays = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestOverlapDaysIgnoresTimeOfDay(t *testing.T) {
	aStart := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	aEnd := time.Date(2024, 1, 3, 0, 1, 0, 0, time.UTC)
	got := OverlapDays(aStart, aEnd, aStart, aEnd)
	if got != 3 {
		t.Fatalf("OverlapDays = %d, want 3", got)
	}
}

func TestResolveWindow(t *testing.T) {
	now := day("2024-06-15")

	w, err := ResolveWindow(WindowSpec{Kind: WindowMonth, Year: 2024, Month: 2}, now)
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	if !w.Start.Equal(day("2024-02-01")) || !w.End.Equal(day("2024-02-29")) {
		t.Fatalf("month window = %v..%v", w.Start, w.End)
	}

	w, err = ResolveWindow(WindowSpec{Kind: WindowYear, Year: 2024}, now)
	if err != nil {
		t.Fatalf("year: %v", err)
	}
	if !w.Start.Equal(day("2024-01-01")) || !w.End.Equal(day("2024-12-31")) {
		t.Fatalf("year window = %v..%v", w.Start, w.End)
	}

	// ISO week 1 of 2024 runs Mon Jan 1 through Sun Jan 7.
	w, err = ResolveWindow(WindowSpec{Kind: WindowWeek, Year: 2024, Week: 1}, now)
	if err != nil {
		t.Fatalf("week: %v", err)
	}
	if !w.Start.Equal(day("2024-01-01")) || !w.End.Equal(day("2024-01-07")) {
		t.Fatalf("week window = %v..%v", w.Start, w.End)
	}

	w, err = ResolveWindow(WindowSpec{Kind: WindowAll}, now)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if !w.Start.IsZero() || !w.End.Equal(now) {
		t.Fatalf("all window = %v..%v", w.Start, w.End)
	}
	if !w.Contains(day("1999-01-01")) {
		t.Fatalf("unbounded window should contain any past day")
	}

	w, err = ResolveWindow(WindowSpec{Kind: WindowCustom, Start: "2024-01-10", End: "2024-01-19"}, now)
	if err != nil {
		t.Fatalf("custom: %v", err)
	}
	if !w.Contains(day("2024-01-10")) || !w.Contains(day("2024-01-19")) || w.Contains(day("2024-01-20")) {
		t.Fatalf("custom window bounds wrong")
	}
}

func TestResolveWindowRejectsBadInput(t *testing.T) {
	now := day("2024-06-15")
	specs := []WindowSpec{
		{Kind: "quarter"},
		{Kind: WindowMonth, Year: 2024, Month: 13},
		{Kind: WindowWeek, Year: 2024, Week: 0},
		{Kind: WindowCustom, Start: "nope", End: "2024-01-19"},
		{Kind: WindowCustom, Start: "2024-01-19", End: "2024-01-10"},
	}
	for _, spec := range specs {
		if _, err := ResolveWindow(spec, now); err == nil {
			t.Fatalf("ResolveWindow(%+v) expected error", spec)
		}
	}
}
