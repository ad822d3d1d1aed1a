// Package tui is the terminal front end for the trip session engine. It owns
// no business rules: every decision is delegated to the wizard machine and
// the session coordinator, and this package only renders their state and
// maps key presses to their operations.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plannit/tripkit/internal/domain"
	"github.com/plannit/tripkit/internal/session"
	"github.com/plannit/tripkit/internal/wizard"
)

type screen int

const (
	screenLoading screen = iota
	screenWizard
	screenTrip
	screenConfirmAttendance
)

// opTimeout bounds the coordinator calls issued from the event loop.
const opTimeout = 15 * time.Second

// Model is the root Bubble Tea model.
type Model struct {
	coord  *session.Coordinator
	wiz    *wizard.Machine
	logger *slog.Logger

	screen screen
	width  int
	height int
	error  string
	info   string

	// creation wizard
	destInput             textinput.Model
	emailInput            textinput.Model
	cal                   calendar
	guestCursor           int
	awaitingCreateConfirm bool

	// trip screen
	trip                  domain.Trip
	participants          []domain.Participant
	awaitingRemoveConfirm bool

	// update modal
	updateOpen    bool
	updateCalOpen bool
	updateDest    textinput.Model
	updateDates   domain.DateInterval
	updateCal     calendar
	updating      bool

	// guest attendance confirmation
	inviteTripID string
	nameInput    textinput.Model
	guestEmail   textinput.Model
	confirmField int
	confirming   bool
}

// New builds the root model. When inviteTripID/inviteParticipantID are set
// the app starts in the guest confirmation flow instead of resuming a saved
// session.
func New(coord *session.Coordinator, wiz *wizard.Machine, logger *slog.Logger, inviteTripID, inviteParticipantID string) Model {
	dest := textinput.New()
	dest.Placeholder = "Where's the destination?"
	dest.CharLimit = 120
	dest.Focus()

	email := textinput.New()
	email.Placeholder = "Type guest's email"
	email.CharLimit = 120

	name := textinput.New()
	name.Placeholder = "Your full name"
	name.CharLimit = 120
	name.Focus()

	guestEmail := textinput.New()
	guestEmail.Placeholder = "Your personal email"
	guestEmail.CharLimit = 120

	m := Model{
		coord:        coord,
		wiz:          wiz,
		logger:       logger,
		screen:       screenLoading,
		destInput:    dest,
		emailInput:   email,
		cal:          newCalendar(),
		updateCal:    newCalendar(),
		nameInput:    name,
		guestEmail:   guestEmail,
		inviteTripID: inviteTripID,
	}
	if inviteParticipantID != "" {
		coord.OpenInvite(inviteParticipantID)
	}
	return m
}

// ---- messages --------------------------------------------------------------

type resumedMsg struct{ tripID string }
type noSessionMsg struct{}
type staleSessionMsg struct{}
type tripLoadedMsg struct {
	trip         domain.Trip
	participants []domain.Participant
}
type inviteLoadedMsg struct{ trip domain.Trip }
type tripCreatedMsg struct{ tripID string }
type tripUpdatedMsg struct{}
type attendanceOKMsg struct{}
type errMsg struct{ err error }

// ---- commands --------------------------------------------------------------

func (m Model) resumeCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		tripID, err := m.coord.ResumeSession(ctx)
		switch {
		case errors.Is(err, domain.ErrStaleReference):
			return staleSessionMsg{}
		case err != nil:
			return errMsg{err}
		case tripID == "":
			return noSessionMsg{}
		}
		return resumedMsg{tripID}
	}
}

func (m Model) loadTripCmd(tripID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		trip, err := m.coord.FetchTrip(ctx, tripID)
		if err != nil {
			return errMsg{err}
		}
		participants, err := m.coord.Participants(ctx, tripID)
		if err != nil {
			return errMsg{err}
		}
		return tripLoadedMsg{trip: trip, participants: participants}
	}
}

func (m Model) loadInviteCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		trip, err := m.coord.FetchTrip(ctx, m.inviteTripID)
		if err != nil {
			return errMsg{err}
		}
		return inviteLoadedMsg{trip}
	}
}

func (m Model) createTripCmd() tea.Cmd {
	destination := m.wiz.Destination()
	dates := m.wiz.Dates()
	guests := m.wiz.Guests()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		tripID, err := m.coord.CreateTrip(ctx, destination, dates, guests)
		if err != nil {
			return errMsg{err}
		}
		return tripCreatedMsg{tripID}
	}
}

func (m Model) updateTripCmd() tea.Cmd {
	tripID := m.trip.ID
	destination := m.updateDest.Value()
	dates := m.updateDates
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		if err := m.coord.UpdateTrip(ctx, tripID, destination, dates); err != nil {
			return errMsg{err}
		}
		return tripUpdatedMsg{}
	}
}

func (m Model) confirmAttendanceCmd() tea.Cmd {
	tripID := m.inviteTripID
	participantID := m.coord.Session().PendingParticipantID
	name := m.nameInput.Value()
	email := m.guestEmail.Value()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		if err := m.coord.ConfirmAttendance(ctx, tripID, participantID, name, email); err != nil {
			return errMsg{err}
		}
		return attendanceOKMsg{}
	}
}

// ---- update ----------------------------------------------------------------

// Init starts either the invite flow or the resume-on-launch lookup.
func (m Model) Init() tea.Cmd {
	if m.inviteTripID != "" {
		return m.loadInviteCmd()
	}
	return m.resumeCmd()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenWizard:
			return m.updateWizard(msg)
		case screenTrip:
			return m.updateTrip(msg)
		case screenConfirmAttendance:
			return m.updateConfirmAttendance(msg)
		}
		return m, nil

	case resumedMsg:
		return m, m.loadTripCmd(msg.tripID)

	case noSessionMsg:
		m.screen = screenWizard
		return m, nil

	case staleSessionMsg:
		// The coordinator leaves the stale id in place; clearing it here is
		// the caller's side of that contract.
		if err := m.coord.RemoveSession(); err != nil {
			m.logger.Error("clear stale session", "error", err)
		}
		m.screen = screenWizard
		m.info = "Your saved trip no longer exists. Plan a new one!"
		return m, nil

	case tripLoadedMsg:
		m.trip = msg.trip
		m.participants = msg.participants
		m.screen = screenTrip
		m.updateOpen = false
		m.updateCalOpen = false
		m.updating = false
		m.error = ""
		return m, nil

	case inviteLoadedMsg:
		m.trip = msg.trip
		m.screen = screenConfirmAttendance
		m.error = ""
		return m, nil

	case tripCreatedMsg:
		// The coordinator persisted the id off the event loop; the wizard is
		// this loop's state, so it is reset here, not there.
		m.wiz.Reset()
		m.destInput.Reset()
		m.emailInput.Reset()
		m.awaitingCreateConfirm = false
		m.info = "Trip created successfully!"
		return m, m.loadTripCmd(msg.tripID)

	case tripUpdatedMsg:
		// No cache to trust: re-fetch the record after an update.
		m.info = "Trip updated."
		return m, m.loadTripCmd(m.trip.ID)

	case attendanceOKMsg:
		m.confirming = false
		m.info = "Your attendance has been confirmed!"
		return m, m.loadTripCmd(m.inviteTripID)

	case errMsg:
		m.error = userMessage(msg.err)
		m.logger.Warn("operation failed", "error", msg.err)
		m.wiz.SetSubmitting(false)
		m.awaitingCreateConfirm = false
		m.updating = false
		m.confirming = false
		if m.screen == screenLoading {
			m.screen = screenWizard
		}
		return m, nil
	}

	return m, nil
}

// userMessage translates the engine's error taxonomy into the line shown to
// the user. Validation messages are specific; everything remote is the same
// retryable wording.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrDestinationTooShort):
		return "The destination needs at least 4 characters."
	case errors.Is(err, domain.ErrIncompleteTripDetails):
		return "Fill in the destination and both trip dates to continue."
	case errors.Is(err, domain.ErrInvalidEmail):
		return "That doesn't look like a valid email."
	case errors.Is(err, domain.ErrDuplicateEmail):
		return "That email is already on the guest list."
	case errors.Is(err, domain.ErrInvalidInput):
		return "Fill in your name and a valid email."
	case errors.Is(err, domain.ErrNotFound):
		return "This trip no longer exists."
	case errors.Is(err, domain.ErrRemoteRejected):
		return "The server could not be reached. Try again."
	default:
		return "Something went wrong. Try again."
	}
}
