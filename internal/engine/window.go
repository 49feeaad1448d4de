package engine

import (
	"fmt"
	"strings"
	"time"
)

// Window kinds accepted by ResolveWindow.
const (
	WindowMonth  = "month"
	WindowYear   = "year"
	WindowWeek   = "week"
	WindowAll    = "all"
	WindowCustom = "custom"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate parses an operator-entered date. The boolean reports success;
// on success the result is normalized to midnight UTC so day arithmetic is
// immune to time-of-day noise.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dayUTC(t), true
		}
	}
	return time.Time{}, false
}

func dayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Window is a concrete, inclusive reporting period in whole days. An
// unbounded window has a zero Start.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether a midnight-normalized day falls inside the window.
func (w Window) Contains(day time.Time) bool {
	if !w.Start.IsZero() && day.Before(w.Start) {
		return false
	}
	return !day.After(w.End)
}

// WindowSpec is the caller-facing period selector before resolution.
type WindowSpec struct {
	Kind  string
	Year  int
	Month int
	Week  int
	Start string
	End   string
}

// ResolveWindow turns a period selector into concrete start/end days.
// Month and year windows cover the full calendar unit, week windows follow
// ISO 8601 (Monday through Sunday), and "all" is open at the start and
// closed at today.
func ResolveWindow(spec WindowSpec, now time.Time) (Window, error) {
	switch spec.Kind {
	case WindowMonth:
		if spec.Year <= 0 || spec.Month < 1 || spec.Month > 12 {
			return Window{}, fmt.Errorf("invalid month window %d-%d", spec.Year, spec.Month)
		}
		start := time.Date(spec.Year, time.Month(spec.Month), 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: start, End: start.AddDate(0, 1, -1)}, nil
	case WindowYear:
		if spec.Year <= 0 {
			return Window{}, fmt.Errorf("invalid year window %d", spec.Year)
		}
		start := time.Date(spec.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: start, End: time.Date(spec.Year, time.December, 31, 0, 0, 0, 0, time.UTC)}, nil
	case WindowWeek:
		if spec.Year <= 0 || spec.Week < 1 || spec.Week > 53 {
			return Window{}, fmt.Errorf("invalid week window %d-W%d", spec.Year, spec.Week)
		}
		start := isoWeekStart(spec.Year, spec.Week)
		return Window{Start: start, End: start.AddDate(0, 0, 6)}, nil
	case WindowAll:
		return Window{End: dayUTC(now)}, nil
	case WindowCustom:
		start, ok := ParseDate(spec.Start)
		if !ok {
			return Window{}, fmt.Errorf("invalid window start %q", spec.Start)
		}
		end, ok := ParseDate(spec.End)
		if !ok {
			return Window{}, fmt.Errorf("invalid window end %q", spec.End)
		}
		if end.Before(start) {
			return Window{}, fmt.Errorf("window end %q before start %q", spec.End, spec.Start)
		}
		return Window{Start: start, End: end}, nil
	default:
		return Window{}, fmt.Errorf("unknown window kind %q", spec.Kind)
	}
}

// isoWeekStart returns the Monday of the given ISO week. January 4 is
// always inside week 1.
func isoWeekStart(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := jan4.AddDate(0, 0, 1-weekday)
	return monday.AddDate(0, 0, (week-1)*7)
}

// OverlapDays returns the inclusive day count shared by [aStart, aEnd] and
// [bStart, bEnd], zero when they do not intersect. Inputs are normalized to
// midnight before subtraction to avoid off-by-one from time-of-day parts.
// A zero start means "since forever" and a zero end means "empty".
func OverlapDays(aStart, aEnd, bStart, bEnd time.Time) int {
	if aEnd.IsZero() || bEnd.IsZero() {
		return 0
	}
	start := dayUTC(aStart)
	if b := dayUTC(bStart); b.After(start) {
		start = b
	}
	end := dayUTC(aEnd)
	if b := dayUTC(bEnd); b.Before(end) {
		end = b
	}
	if start.After(end) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
