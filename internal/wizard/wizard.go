// Package wizard drives the two-step trip-creation flow as an explicit state
// machine: guarded step transitions, one active modal at a time, and the
// working destination / dates / guest list the steps edit. The machine never
// touches the network; submission is requested through ActionRequestCreation
// and performed by the session coordinator.
package wizard

import (
	"time"

	"github.com/plannit/tripkit/internal/daterange"
	"github.com/plannit/tripkit/internal/domain"
	"github.com/plannit/tripkit/internal/guestlist"
)

// Step is the wizard's current form step.
type Step int

const (
	StepTripDetails Step = iota + 1
	StepAddEmails
)

// Modal identifies the overlay currently shown, if any. A single value makes
// two modals being open at once unrepresentable.
type Modal int

const (
	ModalNone Modal = iota
	ModalCalendar
	ModalGuests
)

// Action is the outcome of a successful Advance.
type Action int

const (
	// ActionAdvanced means the wizard moved to the next step.
	ActionAdvanced Action = iota
	// ActionRequestCreation means the final step re-validated; the caller
	// should prompt for confirmation and then invoke the coordinator.
	ActionRequestCreation
)

// Machine owns the wizard state. It is not safe for concurrent use; the
// surrounding event loop handles one input at a time.
type Machine struct {
	step        Step
	modal       Modal
	destination string
	dates       domain.DateInterval
	guests      []string
	submitting  bool

	validEmail guestlist.Validator
}

// New returns a Machine at the trip-details step with an empty selection.
func New(validEmail guestlist.Validator) *Machine {
	return &Machine{step: StepTripDetails, validEmail: validEmail}
}

func (m *Machine) Step() Step                 { return m.step }
func (m *Machine) Modal() Modal               { return m.modal }
func (m *Machine) Destination() string        { return m.destination }
func (m *Machine) Dates() domain.DateInterval { return m.dates }
func (m *Machine) Submitting() bool           { return m.submitting }

// Guests returns a copy of the pending invite list in insertion order.
func (m *Machine) Guests() []string {
	out := make([]string, len(m.guests))
	copy(out, m.guests)
	return out
}

// SetDestination replaces the working destination text.
func (m *Machine) SetDestination(destination string) {
	m.destination = destination
}

// SelectDay applies one calendar tap to the working date interval.
func (m *Machine) SelectDay(day time.Time) {
	m.dates = daterange.SelectDay(m.dates, day)
}

// MarkedDates derives the calendar markers for the working interval.
func (m *Machine) MarkedDates() domain.MarkedDates {
	return daterange.Marked(m.dates)
}

// DateLabel is the user-visible "start to end" confirmation of the selected
// range; empty while the interval is unresolved.
func (m *Machine) DateLabel() string {
	return daterange.FormatLabel(m.dates)
}

// AddGuest validates, deduplicates, and appends an email to the invite list.
func (m *Machine) AddGuest(email string) error {
	guests, err := guestlist.Add(m.guests, email, m.validEmail)
	if err != nil {
		return err
	}
	m.guests = guests
	return nil
}

// RemoveGuest drops the email from the invite list; absent emails are a no-op.
func (m *Machine) RemoveGuest(email string) {
	m.guests = guestlist.Remove(m.guests, email)
}

// OpenModal shows the given overlay. Opening the calendar while the guests
// modal is up (or vice versa) implicitly closes the other: mutual exclusion
// is enforced here, not by callers.
func (m *Machine) OpenModal(modal Modal) {
	m.modal = modal
}

// CloseModal dismisses any open overlay.
func (m *Machine) CloseModal() {
	m.modal = ModalNone
}

// SetSubmitting flags an in-flight trip creation. While set, Advance and
// Retreat are rejected with domain.ErrInFlight.
func (m *Machine) SetSubmitting(submitting bool) {
	m.submitting = submitting
}

// Advance runs the trip-details guard and, if it holds, moves from the
// details step to the emails step, or — already on the emails step — asks
// the caller to start trip creation. On a guard violation the step does not
// change and the error says which input is missing.
func (m *Machine) Advance() (Action, error) {
	if m.submitting {
		return ActionAdvanced, domain.ErrInFlight
	}
	if err := domain.ValidateTripDetails(m.destination, m.dates); err != nil {
		return ActionAdvanced, err
	}
	if m.step == StepTripDetails {
		m.step = StepAddEmails
		return ActionAdvanced, nil
	}
	return ActionRequestCreation, nil
}

// Retreat returns from the emails step to the details step. At the details
// step it is a no-op; the wizard is already at its initial step.
func (m *Machine) Retreat() error {
	if m.submitting {
		return domain.ErrInFlight
	}
	if m.step == StepAddEmails {
		m.step = StepTripDetails
	}
	return nil
}

// Reset restores the machine to its initial state. Called after a trip is
// created and when the flow is abandoned.
func (m *Machine) Reset() {
	m.step = StepTripDetails
	m.modal = ModalNone
	m.destination = ""
	m.dates = domain.DateInterval{}
	m.guests = nil
	m.submitting = false
}
