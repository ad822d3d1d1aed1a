package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plannit/tripkit/internal/domain"
)

// Hooks for the external test package.

var UserMessage = userMessage

type Calendar = calendar

func NewCalendarAt(cursor time.Time) Calendar { return Calendar{cursor: cursor} }

func (c Calendar) Cursor() time.Time { return c.cursor }

func (c *Calendar) MoveDays(days int) { c.moveDays(days) }

func (c *Calendar) MoveMonths(months int) { c.moveMonths(months) }

func (c Calendar) Render(marks domain.MarkedDates) string { return c.view(marks) }

func NoSession() tea.Msg { return noSessionMsg{} }

func TripCreated(tripID string) tea.Msg { return tripCreatedMsg{tripID} }
