package domain

import "time"

// DayKeyFormat is the layout for MarkedDates keys, one key per calendar day.
const DayKeyFormat = "2006-01-02"

// DateInterval is a possibly-incomplete calendar date range.
// Invariant: when both boundaries are present, Start <= End. The only code
// that builds non-empty intervals is daterange.SelectDay, which maintains
// the invariant by re-anchoring earlier picks.
type DateInterval struct {
	Start *time.Time
	End   *time.Time
}

// Resolved reports whether both boundaries are present.
func (i DateInterval) Resolved() bool {
	return i.Start != nil && i.End != nil
}

// Days returns the number of calendar days covered by a resolved interval,
// boundaries included. Zero when the interval is not resolved.
func (i DateInterval) Days() int {
	if !i.Resolved() {
		return 0
	}
	return int(i.End.Sub(*i.Start)/(24*time.Hour)) + 1
}

// DayMark describes how a single calendar day is rendered.
type DayMark struct {
	Selected   bool
	RangeStart bool
	RangeEnd   bool
	InRange    bool
}

// MarkedDates maps DayKeyFormat date strings to their markers. It is derived
// from a DateInterval and never mutated directly.
type MarkedDates map[string]DayMark
