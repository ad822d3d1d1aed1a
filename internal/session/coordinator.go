// Package session owns the "current trip" identity on this device. The
// Coordinator is the only component that calls the remote trip/participant
// API and the only writer of the persisted trip id; every other package sees
// the session through it. Operations validate locally before any network
// call and leave all state untouched when they fail.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/plannit/tripkit/internal/domain"
	"github.com/plannit/tripkit/internal/guestlist"
)

// TripAPI is the remote trip endpoint contract the coordinator depends on.
// Defined here, in the consumer package, so tests can inject a double.
type TripAPI interface {
	Create(ctx context.Context, destination string, startsAt, endsAt time.Time, emails []string) (string, error)
	GetByID(ctx context.Context, tripID string) (domain.Trip, error)
	Update(ctx context.Context, tripID, destination string, startsAt, endsAt time.Time) error
}

// ParticipantAPI is the remote participant endpoint contract.
type ParticipantAPI interface {
	ConfirmByParticipantID(ctx context.Context, participantID, name, email string) error
	ListByTripID(ctx context.Context, tripID string) ([]domain.Participant, error)
}

// TripStore is the persisted single-slot trip id.
type TripStore interface {
	Save(tripID string) error
	Get() (string, error)
	Remove() error
}

// Coordinator reconciles the locally persisted trip id with the remote trip
// record and drives trip creation, update, and the guest attendance
// handshake. The caller runs one operation at a time and disables its
// controls while one is in flight; the session field is still mutex-guarded
// because operations run off the UI event loop, which keeps reading
// Session() to render. The mutex is never held across a network call.
type Coordinator struct {
	trips        TripAPI
	participants ParticipantAPI
	store        TripStore
	validEmail   guestlist.Validator
	logger       *slog.Logger

	mu      sync.Mutex
	session domain.TripSession
}

// New constructs a Coordinator. A nil logger falls back to slog's default.
func New(trips TripAPI, participants ParticipantAPI, store TripStore, validEmail guestlist.Validator, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		trips:        trips,
		participants: participants,
		store:        store,
		validEmail:   validEmail,
		logger:       logger,
	}
}

// Session returns a copy of the current trip session.
func (c *Coordinator) Session() domain.TripSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// OpenInvite records the participant id carried by an invite link, so the
// attendance form can submit it later. It does not touch persisted state.
func (c *Coordinator) OpenInvite(participantID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.PendingParticipantID = participantID
}

// CreateTrip validates the details, creates the trip remotely, and persists
// the returned id as the active session. Local guard violations come back as
// domain.ErrPreconditionFailed and never reach the network; remote failures
// as domain.ErrRemoteRejected.
func (c *Coordinator) CreateTrip(ctx context.Context, destination string, dates domain.DateInterval, guests []string) (string, error) {
	if err := domain.ValidateTripDetails(destination, dates); err != nil {
		return "", fmt.Errorf("session.Coordinator.CreateTrip: %w: %v", domain.ErrPreconditionFailed, err)
	}

	// The resolved interval becomes ISO-8601 timestamps here, at the instant
	// of the call, never earlier.
	tripID, err := c.trips.Create(ctx, strings.TrimSpace(destination), *dates.Start, *dates.End, guests)
	if err != nil {
		return "", fmt.Errorf("session.Coordinator.CreateTrip: %w: %v", domain.ErrRemoteRejected, err)
	}

	if err := c.store.Save(tripID); err != nil {
		// The trip exists remotely but this device failed to attach to it.
		// Leave the session empty; the user can resume via the invite flow.
		return "", fmt.Errorf("session.Coordinator.CreateTrip: persist trip id: %w", err)
	}

	c.setSession(domain.TripSession{ActiveTripID: tripID, Role: domain.RoleOwner})
	c.logger.Info("trip created", "trip_id", tripID)
	return tripID, nil
}

// ResumeSession reads the persisted trip id and confirms the trip still
// exists remotely. Returns "" with no error when nothing is persisted.
// When the remote lookup reports not-found the persisted id is deliberately
// left in place and domain.ErrStaleReference is returned: clearing is the
// caller's job, which keeps this read path free of side effects.
func (c *Coordinator) ResumeSession(ctx context.Context) (string, error) {
	tripID, err := c.store.Get()
	if err != nil {
		return "", fmt.Errorf("session.Coordinator.ResumeSession: %w", err)
	}
	if tripID == "" {
		return "", nil
	}

	trip, err := c.trips.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("session.Coordinator.ResumeSession: trip %s: %w", tripID, domain.ErrStaleReference)
		}
		return "", fmt.Errorf("session.Coordinator.ResumeSession: %w: %v", domain.ErrRemoteRejected, err)
	}

	c.setSession(domain.TripSession{ActiveTripID: trip.ID, Role: domain.RoleOwner})
	c.logger.Info("trip session resumed", "trip_id", trip.ID)
	return trip.ID, nil
}

// UpdateTrip replaces the active trip's destination and dates. The tripID
// must match the active session and the details must pass the creation
// guard; either violation is domain.ErrPreconditionFailed. The coordinator
// does not cache the updated record — callers re-fetch after success.
func (c *Coordinator) UpdateTrip(ctx context.Context, tripID, destination string, dates domain.DateInterval) error {
	if current := c.Session(); !current.Active() || tripID != current.ActiveTripID {
		return fmt.Errorf("session.Coordinator.UpdateTrip: %w: trip %q is not the active session", domain.ErrPreconditionFailed, tripID)
	}
	if err := domain.ValidateTripDetails(destination, dates); err != nil {
		return fmt.Errorf("session.Coordinator.UpdateTrip: %w: %v", domain.ErrPreconditionFailed, err)
	}

	if err := c.trips.Update(ctx, tripID, strings.TrimSpace(destination), *dates.Start, *dates.End); err != nil {
		return fmt.Errorf("session.Coordinator.UpdateTrip: %w: %v", domain.ErrRemoteRejected, err)
	}
	c.logger.Info("trip updated", "trip_id", tripID)
	return nil
}

// ConfirmAttendance completes the guest handshake: it registers name/email
// against the participant record and, on success, persists the trip id so
// this device holds the same local session an owner device would.
func (c *Coordinator) ConfirmAttendance(ctx context.Context, tripID, participantID, name, email string) error {
	if tripID == "" || participantID == "" {
		return fmt.Errorf("session.Coordinator.ConfirmAttendance: %w: missing trip or participant id", domain.ErrPreconditionFailed)
	}
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || !c.validEmail(email) {
		return fmt.Errorf("session.Coordinator.ConfirmAttendance: %w", domain.ErrInvalidInput)
	}

	if err := c.participants.ConfirmByParticipantID(ctx, participantID, name, email); err != nil {
		return fmt.Errorf("session.Coordinator.ConfirmAttendance: %w: %v", domain.ErrRemoteRejected, err)
	}

	if err := c.store.Save(tripID); err != nil {
		return fmt.Errorf("session.Coordinator.ConfirmAttendance: persist trip id: %w", err)
	}

	c.setSession(domain.TripSession{ActiveTripID: tripID, Role: domain.RoleGuest})
	c.logger.Info("attendance confirmed", "trip_id", tripID, "participant_id", participantID)
	return nil
}

// RemoveSession forgets the trip on this device: it clears the persisted id
// and the in-memory session. It never contacts the remote API — server-side
// trip data is untouched.
func (c *Coordinator) RemoveSession() error {
	if err := c.store.Remove(); err != nil {
		return fmt.Errorf("session.Coordinator.RemoveSession: %w", err)
	}
	c.setSession(domain.TripSession{})
	c.logger.Info("trip session removed")
	return nil
}

func (c *Coordinator) setSession(s domain.TripSession) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = s
}

// FetchTrip reads the trip record for display. Not-found passes through as
// domain.ErrNotFound; any other failure is domain.ErrRemoteRejected.
func (c *Coordinator) FetchTrip(ctx context.Context, tripID string) (domain.Trip, error) {
	trip, err := c.trips.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Trip{}, err
		}
		return domain.Trip{}, fmt.Errorf("session.Coordinator.FetchTrip: %w: %v", domain.ErrRemoteRejected, err)
	}
	return trip, nil
}

// Participants lists everyone invited to the trip, for the details screen.
func (c *Coordinator) Participants(ctx context.Context, tripID string) ([]domain.Participant, error) {
	participants, err := c.participants.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("session.Coordinator.Participants: %w: %v", domain.ErrRemoteRejected, err)
	}
	if participants == nil {
		participants = []domain.Participant{}
	}
	return participants, nil
}
