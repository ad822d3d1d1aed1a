package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/plannit/tripkit/internal/daterange"
	"github.com/plannit/tripkit/internal/domain"
)

// calendar is the month grid shown inside the date-selection modal. It only
// tracks the cursor; the selected interval lives in the wizard (or the
// update form) and arrives as marks at render time.
type calendar struct {
	cursor time.Time
}

func newCalendar() calendar {
	return calendar{cursor: daterange.Day(time.Now())}
}

func (c *calendar) moveDays(days int) {
	c.cursor = c.cursor.AddDate(0, 0, days)
}

func (c *calendar) moveMonths(months int) {
	c.cursor = c.cursor.AddDate(0, months, 0)
}

// view renders the cursor's month with the given selection marks.
func (c calendar) view(marks domain.MarkedDates) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(c.cursor.Format("January 2006")))
	b.WriteString("\n")

	weekdays := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	var header []string
	for _, wd := range weekdays {
		header = append(header, dayMutedStyle.Render(wd))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	first := time.Date(c.cursor.Year(), c.cursor.Month(), 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())

	var week []string
	for i := 0; i < offset; i++ {
		week = append(week, dayStyle.Render(""))
	}
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		week = append(week, c.renderDay(d, marks))
		if len(week) == 7 {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, week...))
			b.WriteString("\n")
			week = nil
		}
	}
	if len(week) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, week...))
		b.WriteString("\n")
	}

	return b.String()
}

func (c calendar) renderDay(d time.Time, marks domain.MarkedDates) string {
	label := d.Format("2")
	if d.Equal(c.cursor) {
		return dayCursorStyle.Render(label)
	}
	mark, ok := marks[d.Format(domain.DayKeyFormat)]
	switch {
	case !ok:
		return dayStyle.Render(label)
	case mark.RangeStart || mark.RangeEnd:
		return dayBoundaryStyle.Render(label)
	default:
		return dayInRangeStyle.Render(label)
	}
}
