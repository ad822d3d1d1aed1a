package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/plannit/tripkit/internal/daterange"
	"github.com/plannit/tripkit/internal/domain"
)

func (m Model) updateTrip(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.updateOpen {
		return m.updateUpdateModal(msg)
	}

	if m.awaitingRemoveConfirm {
		switch msg.String() {
		case "y", "enter":
			m.awaitingRemoveConfirm = false
			if err := m.coord.RemoveSession(); err != nil {
				m.error = userMessage(err)
				return m, nil
			}
			m.screen = screenWizard
			m.trip = domain.Trip{}
			m.participants = nil
			m.info = "Saved trip removed from this device."
			m.error = ""
			m.destInput.Focus()
		case "n", "esc":
			m.awaitingRemoveConfirm = false
		}
		return m, nil
	}

	switch msg.String() {
	case "u":
		// Only the owner's active session may be updated; guests get the
		// read-only view.
		if m.coord.Session().Role != domain.RoleOwner {
			return m, nil
		}
		m.updateOpen = true
		m.updateCalOpen = false
		m.updateDates = domain.DateInterval{}
		m.updateDest = m.destInput
		m.updateDest.SetValue(m.trip.Destination)
		m.updateDest.CursorEnd()
		m.updateDest.Focus()
		m.error = ""
		return m, nil

	case "x":
		if m.coord.Session().Active() {
			m.awaitingRemoveConfirm = true
		}
		return m, nil

	case "r":
		m.info = ""
		return m, m.loadTripCmd(m.trip.ID)
	}
	return m, nil
}

func (m Model) updateUpdateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.updateCalOpen {
		switch msg.String() {
		case "left", "h":
			m.updateCal.moveDays(-1)
		case "right", "l":
			m.updateCal.moveDays(1)
		case "up", "k":
			m.updateCal.moveDays(-7)
		case "down", "j":
			m.updateCal.moveDays(7)
		case "[", "pgup":
			m.updateCal.moveMonths(-1)
		case "]", "pgdown":
			m.updateCal.moveMonths(1)
		case "enter", " ":
			m.updateDates = daterange.SelectDay(m.updateDates, m.updateCal.cursor)
		case "esc", "ctrl+d":
			m.updateCalOpen = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+d":
		m.updateCalOpen = true
		m.updateCal.cursor = daterange.Day(m.trip.StartsAt)
		if d := m.updateDates.Start; d != nil {
			m.updateCal.cursor = *d
		}
		return m, nil

	case "enter":
		if m.updating {
			return m, nil
		}
		m.updating = true
		m.error = ""
		return m, m.updateTripCmd()

	case "esc":
		m.updateOpen = false
		m.updateCalOpen = false
		m.error = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.updateDest, cmd = m.updateDest.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmAttendance(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.confirmField = (m.confirmField + 1) % 2
		if m.confirmField == 0 {
			m.nameInput.Focus()
			m.guestEmail.Blur()
		} else {
			m.nameInput.Blur()
			m.guestEmail.Focus()
		}
		return m, nil

	case "enter":
		if m.confirming {
			return m, nil
		}
		m.confirming = true
		m.error = ""
		return m, m.confirmAttendanceCmd()
	}

	var cmd tea.Cmd
	if m.confirmField == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.guestEmail, cmd = m.guestEmail.Update(msg)
	}
	return m, cmd
}

// ---- views -----------------------------------------------------------------

func (m Model) viewTrip() string {
	var b strings.Builder

	dates := daterange.FormatLabel(domain.DateInterval{Start: &m.trip.StartsAt, End: &m.trip.EndsAt})
	status := errorStyle.Render("pending confirmation")
	if m.trip.IsConfirmed {
		status = infoStyle.Render("confirmed")
	}

	b.WriteString(titleStyle.Render(m.trip.Destination))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(dates),
		status,
	)))
	b.WriteString("\n\n")

	if m.updateOpen {
		b.WriteString(subtitleStyle.Render("Update trip"))
		b.WriteString("\n")
		if m.updateCalOpen {
			b.WriteString(boxStyle.Render(m.updateCal.view(daterange.Marked(m.updateDates))))
			b.WriteString("\n")
			b.WriteString(helpStyle.Render("arrows move · [/] month · enter pick · esc done"))
		} else {
			b.WriteString(m.updateDest.View())
			b.WriteString("\n")
			label := daterange.FormatLabel(m.updateDates)
			if label == "" {
				label = "Pick the new dates"
			}
			b.WriteString(valueStyle.Render(label))
			b.WriteString("\n\n")
			if m.updating {
				b.WriteString(infoStyle.Render("Updating trip..."))
			} else {
				b.WriteString(helpStyle.Render("ctrl+d pick dates · enter save · esc cancel"))
			}
		}
	} else {
		b.WriteString(labelStyle.Render(fmt.Sprintf("Guests (%d)", len(m.participants))))
		b.WriteString("\n")
		if len(m.participants) == 0 {
			b.WriteString(infoStyle.Render("Nobody has been invited yet."))
			b.WriteString("\n")
		}
		for _, p := range m.participants {
			name := p.Name
			if name == "" {
				name = p.Email
			}
			mark := errorStyle.Render("·")
			if p.IsConfirmed {
				mark = infoStyle.Render("✓")
			}
			b.WriteString(fmt.Sprintf("%s %s\n", mark, valueStyle.Render(name)))
		}
		b.WriteString("\n")
		if m.awaitingRemoveConfirm {
			b.WriteString(infoStyle.Render("Remove this trip from the device? (y/n)"))
		} else if m.coord.Session().Role == domain.RoleOwner {
			b.WriteString(helpStyle.Render("u update · r refresh · x remove from device · ctrl+c quit"))
		} else {
			b.WriteString(helpStyle.Render("r refresh · x remove from device · ctrl+c quit"))
		}
	}

	if m.error != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.error))
	}
	if m.info != "" {
		b.WriteString("\n\n")
		b.WriteString(infoStyle.Render(m.info))
	}
	return b.String()
}

func (m Model) viewConfirmAttendance() string {
	var b strings.Builder

	dates := daterange.FormatLabel(domain.DateInterval{Start: &m.trip.StartsAt, End: &m.trip.EndsAt})

	b.WriteString(titleStyle.Render("Confirm your attendance"))
	b.WriteString("\n\n")
	b.WriteString(valueStyle.Render(fmt.Sprintf("You've been invited to a trip to %s", m.trip.Destination)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(dates))
	b.WriteString("\n\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	b.WriteString(m.guestEmail.View())
	b.WriteString("\n\n")
	if m.confirming {
		b.WriteString(infoStyle.Render("Confirming..."))
	} else {
		b.WriteString(helpStyle.Render("tab switch field · enter confirm · ctrl+c quit"))
	}

	if m.error != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.error))
	}
	return b.String()
}

// View renders the active screen.
func (m Model) View() string {
	var body string
	switch m.screen {
	case screenLoading:
		body = infoStyle.Render("Loading your trip...")
	case screenWizard:
		body = m.viewWizard()
	case screenTrip:
		body = m.viewTrip()
	case screenConfirmAttendance:
		body = m.viewConfirmAttendance()
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}
