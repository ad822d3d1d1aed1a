package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/plannit/tripkit/internal/domain"
	"github.com/plannit/tripkit/internal/wizard"
)

func (m Model) updateWizard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Every control below mutates the wizard, and none of it may run while a
	// creation is in flight.
	if m.wiz.Submitting() {
		return m, nil
	}

	switch m.wiz.Modal() {
	case wizard.ModalCalendar:
		return m.updateCalendarModal(msg)
	case wizard.ModalGuests:
		return m.updateGuestsModal(msg)
	}

	if m.awaitingCreateConfirm {
		switch msg.String() {
		case "y", "enter":
			m.awaitingCreateConfirm = false
			m.wiz.SetSubmitting(true)
			m.info = ""
			m.error = ""
			return m, m.createTripCmd()
		case "n", "esc":
			m.awaitingCreateConfirm = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+d":
		m.wiz.OpenModal(wizard.ModalCalendar)
		if d := m.wiz.Dates().Start; d != nil {
			m.cal.cursor = *d
		}
		return m, nil

	case "ctrl+g":
		if m.wiz.Step() == wizard.StepAddEmails {
			m.wiz.OpenModal(wizard.ModalGuests)
			m.guestCursor = 0
			m.emailInput.Focus()
		}
		return m, nil

	case "enter":
		action, err := m.wiz.Advance()
		if err != nil {
			if !errors.Is(err, domain.ErrInFlight) {
				m.error = userMessage(err)
			}
			return m, nil
		}
		m.error = ""
		switch action {
		case wizard.ActionAdvanced:
			m.destInput.Blur()
		case wizard.ActionRequestCreation:
			m.awaitingCreateConfirm = true
		}
		return m, nil

	case "esc":
		if err := m.wiz.Retreat(); err == nil && m.wiz.Step() == wizard.StepTripDetails {
			m.destInput.Focus()
		}
		return m, nil
	}

	if m.wiz.Step() == wizard.StepTripDetails {
		var cmd tea.Cmd
		m.destInput, cmd = m.destInput.Update(msg)
		m.wiz.SetDestination(m.destInput.Value())
		return m, cmd
	}
	return m, nil
}

func (m Model) updateCalendarModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.cal.moveDays(-1)
	case "right", "l":
		m.cal.moveDays(1)
	case "up", "k":
		m.cal.moveDays(-7)
	case "down", "j":
		m.cal.moveDays(7)
	case "[", "pgup":
		m.cal.moveMonths(-1)
	case "]", "pgdown":
		m.cal.moveMonths(1)
	case "enter", " ":
		m.wiz.SelectDay(m.cal.cursor)
	case "esc", "ctrl+d":
		m.wiz.CloseModal()
	}
	return m, nil
}

func (m Model) updateGuestsModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if err := m.wiz.AddGuest(m.emailInput.Value()); err != nil {
			m.error = userMessage(err)
			return m, nil
		}
		m.error = ""
		m.emailInput.Reset()
		return m, nil

	case "up":
		if m.guestCursor > 0 {
			m.guestCursor--
		}
		return m, nil

	case "down":
		if m.guestCursor < len(m.wiz.Guests())-1 {
			m.guestCursor++
		}
		return m, nil

	case "ctrl+x":
		guests := m.wiz.Guests()
		if m.guestCursor < len(guests) {
			m.wiz.RemoveGuest(guests[m.guestCursor])
			if m.guestCursor > 0 {
				m.guestCursor--
			}
		}
		return m, nil

	case "esc", "ctrl+g":
		m.wiz.CloseModal()
		m.emailInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.emailInput, cmd = m.emailInput.Update(msg)
	return m, cmd
}

// ---- views -----------------------------------------------------------------

func (m Model) viewWizard() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Invite your friends and plan your next trip!"))
	b.WriteString("\n\n")

	switch m.wiz.Modal() {
	case wizard.ModalCalendar:
		b.WriteString(subtitleStyle.Render("Select dates"))
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(m.cal.view(m.wiz.MarkedDates())))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("arrows move · [/] month · enter pick · esc done"))
		return b.String()

	case wizard.ModalGuests:
		b.WriteString(subtitleStyle.Render("Select guests"))
		b.WriteString("\n")
		guests := m.wiz.Guests()
		if len(guests) == 0 {
			b.WriteString(infoStyle.Render("No guests yet."))
			b.WriteString("\n")
		}
		for i, g := range guests {
			marker := "  "
			style := valueStyle
			if i == m.guestCursor {
				marker = "> "
				style = valueStyle.Foreground(colorAccent)
			}
			b.WriteString(style.Render(marker + g))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.emailInput.View())
		b.WriteString("\n")
		if m.error != "" {
			b.WriteString(errorStyle.Render(m.error))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("enter add · up/down select · ctrl+x remove · esc done"))
		return b.String()
	}

	dates := m.wiz.DateLabel()
	if dates == "" {
		dates = "When?"
	}

	switch m.wiz.Step() {
	case wizard.StepTripDetails:
		b.WriteString(labelStyle.Render("Destination"))
		b.WriteString("\n")
		b.WriteString(m.destInput.View())
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("Dates"))
		b.WriteString("\n")
		b.WriteString(valueStyle.Render(dates))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("ctrl+d pick dates · enter continue · ctrl+c quit"))

	case wizard.StepAddEmails:
		b.WriteString(boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			valueStyle.Render(m.wiz.Destination()),
			labelStyle.Render(dates),
		)))
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("Guests (%d)", len(m.wiz.Guests()))))
		b.WriteString("\n")
		for _, g := range m.wiz.Guests() {
			b.WriteString(valueStyle.Render("  " + g))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.awaitingCreateConfirm {
			b.WriteString(infoStyle.Render("Create this trip? (y/n)"))
		} else if m.wiz.Submitting() {
			b.WriteString(infoStyle.Render("Creating trip..."))
		} else {
			b.WriteString(helpStyle.Render("ctrl+g manage guests · enter create trip · esc back"))
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
