// Package daterange turns a sequence of calendar day picks into a normalized
// date interval, the per-day markers a calendar renders from, and the label
// shown to the user. Everything here is a pure function over domain types.
package daterange

import (
	"fmt"
	"time"

	"github.com/plannit/tripkit/internal/domain"
)

// labelFormat is the per-boundary layout used by FormatLabel.
const labelFormat = "Jan 2, 2006"

// Day normalizes t to its calendar day: midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SelectDay applies one day pick to the current interval and returns the
// resulting interval. The inputs are never mutated.
//
// The selection cycles in three taps: the first tap sets the start, the
// second sets the end (or re-anchors the start when the pick is earlier),
// and a tap on a fully resolved interval begins a new one.
func SelectDay(current domain.DateInterval, picked time.Time) domain.DateInterval {
	day := Day(picked)

	switch {
	case current.Start == nil:
		return domain.DateInterval{Start: &day}
	case current.End == nil:
		if day.Before(*current.Start) {
			start := *current.Start
			return domain.DateInterval{Start: &day, End: &start}
		}
		start := *current.Start
		return domain.DateInterval{Start: &start, End: &day}
	default:
		return domain.DateInterval{Start: &day}
	}
}

// Marked derives the calendar markers for the interval: one entry per day
// from start to end inclusive, boundaries tagged, days strictly between
// tagged as in-range. A single-boundary interval marks just that day and an
// empty interval yields an empty map.
func Marked(interval domain.DateInterval) domain.MarkedDates {
	marks := domain.MarkedDates{}
	if interval.Start == nil {
		return marks
	}
	if interval.End == nil {
		marks[interval.Start.Format(domain.DayKeyFormat)] = domain.DayMark{Selected: true, RangeStart: true, RangeEnd: true}
		return marks
	}

	for d := *interval.Start; !d.After(*interval.End); d = d.AddDate(0, 0, 1) {
		mark := domain.DayMark{Selected: true}
		if d.Equal(*interval.Start) {
			mark.RangeStart = true
		}
		if d.Equal(*interval.End) {
			mark.RangeEnd = true
		}
		if !mark.RangeStart && !mark.RangeEnd {
			mark.InRange = true
		}
		marks[d.Format(domain.DayKeyFormat)] = mark
	}
	return marks
}

// FormatLabel renders the selected range as "start to end", both endpoints
// spelled out in full. This string is the only confirmation of the selection
// the user sees, so it never truncates a boundary. Returns "" while either
// boundary is missing.
func FormatLabel(interval domain.DateInterval) string {
	if !interval.Resolved() {
		return ""
	}
	return fmt.Sprintf("%s to %s", interval.Start.Format(labelFormat), interval.End.Format(labelFormat))
}
