package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannit/tripkit/internal/domain"
	"github.com/plannit/tripkit/internal/session"
	"github.com/plannit/tripkit/internal/validate"
)

// ---- mock collaborators ----------------------------------------------------

// mockTripAPI is a hand-written test double for session.TripAPI.
type mockTripAPI struct {
	create  func(ctx context.Context, destination string, startsAt, endsAt time.Time, emails []string) (string, error)
	getByID func(ctx context.Context, tripID string) (domain.Trip, error)
	update  func(ctx context.Context, tripID, destination string, startsAt, endsAt time.Time) error
}

func (m *mockTripAPI) Create(ctx context.Context, destination string, startsAt, endsAt time.Time, emails []string) (string, error) {
	return m.create(ctx, destination, startsAt, endsAt, emails)
}
func (m *mockTripAPI) GetByID(ctx context.Context, tripID string) (domain.Trip, error) {
	return m.getByID(ctx, tripID)
}
func (m *mockTripAPI) Update(ctx context.Context, tripID, destination string, startsAt, endsAt time.Time) error {
	return m.update(ctx, tripID, destination, startsAt, endsAt)
}

// compile-time check: mockTripAPI must satisfy session.TripAPI.
var _ session.TripAPI = (*mockTripAPI)(nil)

// mockParticipantAPI is a test double for session.ParticipantAPI.
type mockParticipantAPI struct {
	confirm func(ctx context.Context, participantID, name, email string) error
	list    func(ctx context.Context, tripID string) ([]domain.Participant, error)
}

func (m *mockParticipantAPI) ConfirmByParticipantID(ctx context.Context, participantID, name, email string) error {
	return m.confirm(ctx, participantID, name, email)
}
func (m *mockParticipantAPI) ListByTripID(ctx context.Context, tripID string) ([]domain.Participant, error) {
	return m.list(ctx, tripID)
}

var _ session.ParticipantAPI = (*mockParticipantAPI)(nil)

// memStore is an in-memory session.TripStore.
type memStore struct {
	tripID  string
	saveErr error
}

func (s *memStore) Save(tripID string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.tripID = tripID
	return nil
}
func (s *memStore) Get() (string, error) { return s.tripID, nil }
func (s *memStore) Remove() error        { s.tripID = ""; return nil }

var _ session.TripStore = (*memStore)(nil)

// ---- helpers ---------------------------------------------------------------

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func resolvedInterval(start, end time.Time) domain.DateInterval {
	return domain.DateInterval{Start: &start, End: &end}
}

func newCoordinator(trips session.TripAPI, participants session.ParticipantAPI, store session.TripStore) *session.Coordinator {
	return session.New(trips, participants, store, validate.Email, nil)
}

// ---- CreateTrip ------------------------------------------------------------

func TestCreateTrip_OK(t *testing.T) {
	tripID := uuid.NewString()
	store := &memStore{}

	var gotDestination string
	var gotStarts, gotEnds time.Time
	var gotEmails []string
	coord := newCoordinator(
		&mockTripAPI{
			create: func(_ context.Context, destination string, startsAt, endsAt time.Time, emails []string) (string, error) {
				gotDestination, gotStarts, gotEnds, gotEmails = destination, startsAt, endsAt, emails
				return tripID, nil
			},
		},
		&mockParticipantAPI{}, store,
	)

	got, err := coord.CreateTrip(context.Background(), "Paris", resolvedInterval(day(2024, 6, 1), day(2024, 6, 5)), []string{"x@y.com"})

	require.NoError(t, err)
	assert.Equal(t, tripID, got)

	// remote call received the exact values
	assert.Equal(t, "Paris", gotDestination)
	assert.Equal(t, day(2024, 6, 1), gotStarts)
	assert.Equal(t, day(2024, 6, 5), gotEnds)
	assert.Equal(t, []string{"x@y.com"}, gotEmails)

	// persisted id equals the returned id, session is active
	assert.Equal(t, tripID, store.tripID)
	assert.Equal(t, tripID, coord.Session().ActiveTripID)
	assert.Equal(t, domain.RoleOwner, coord.Session().Role)
}

func TestCreateTrip_SessionReadableWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	store := &memStore{}
	coord := newCoordinator(
		&mockTripAPI{
			create: func(context.Context, string, time.Time, time.Time, []string) (string, error) {
				<-release
				return "trip-1", nil
			},
		},
		&mockParticipantAPI{}, store,
	)

	done := make(chan error, 1)
	go func() {
		_, err := coord.CreateTrip(context.Background(), "Paris", resolvedInterval(day(2024, 6, 1), day(2024, 6, 5)), nil)
		done <- err
	}()

	// The render loop keeps reading the session while the call is in flight.
	for i := 0; i < 100; i++ {
		assert.False(t, coord.Session().Active())
	}
	close(release)

	require.NoError(t, <-done)
	assert.Equal(t, "trip-1", coord.Session().ActiveTripID)
}

func TestCreateTrip_PreconditionNeverReachesRemote(t *testing.T) {
	remoteCalled := false
	store := &memStore{}
	coord := newCoordinator(
		&mockTripAPI{
			create: func(context.Context, string, time.Time, time.Time, []string) (string, error) {
				remoteCalled = true
				return "", nil
			},
		},
		&mockParticipantAPI{}, store,
	)

	_, err := coord.CreateTrip(context.Background(), "Paris", domain.DateInterval{}, nil)

	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
	assert.False(t, remoteCalled)
	assert.Empty(t, store.tripID)
	assert.False(t, coord.Session().Active())
}

func TestCreateTrip_RemoteRejected(t *testing.T) {
	store := &memStore{}
	coord := newCoordinator(
		&mockTripAPI{
			create: func(context.Context, string, time.Time, time.Time, []string) (string, error) {
				return "", errors.New("boom")
			},
		},
		&mockParticipantAPI{}, store,
	)

	_, err := coord.CreateTrip(context.Background(), "Paris", resolvedInterval(day(2024, 6, 1), day(2024, 6, 5)), nil)

	assert.ErrorIs(t, err, domain.ErrRemoteRejected)
	// failure leaves every piece of state exactly as before the call
	assert.Empty(t, store.tripID)
	assert.False(t, coord.Session().Active())
}

func TestCreateTrip_PersistFailureLeavesSessionEmpty(t *testing.T) {
	store := &memStore{saveErr: errors.New("disk full")}
	coord := newCoordinator(
		&mockTripAPI{
			create: func(context.Context, string, time.Time, time.Time, []string) (string, error) {
				return uuid.NewString(), nil
			},
		},
		&mockParticipantAPI{}, store,
	)

	_, err := coord.CreateTrip(context.Background(), "Paris", resolvedInterval(day(2024, 6, 1), day(2024, 6, 5)), nil)

	require.Error(t, err)
	assert.False(t, coord.Session().Active())
}

// ---- ResumeSession ---------------------------------------------------------

func TestResumeSession_NothingPersisted(t *testing.T) {
	coord := newCoordinator(&mockTripAPI{}, &mockParticipantAPI{}, &memStore{})

	got, err := coord.ResumeSession(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.False(t, coord.Session().Active())
}

func TestResumeSession_OK(t *testing.T) {
	tripID := uuid.NewString()
	store := &memStore{tripID: tripID}
	coord := newCoordinator(
		&mockTripAPI{
			getByID: func(_ context.Context, id string) (domain.Trip, error) {
				return domain.Trip{ID: id, Destination: "Paris"}, nil
			},
		},
		&mockParticipantAPI{}, store,
	)

	got, err := coord.ResumeSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, tripID, got)
	assert.Equal(t, tripID, coord.Session().ActiveTripID)
}

func TestResumeSession_StaleReferenceLeavesPersistedID(t *testing.T) {
	store := &memStore{tripID: "trip-1"}
	coord := newCoordinator(
		&mockTripAPI{
			getByID: func(context.Context, string) (domain.Trip, error) {
				return domain.Trip{}, domain.ErrNotFound
			},
		},
		&mockParticipantAPI{}, store,
	)

	_, err := coord.ResumeSession(context.Background())

	assert.ErrorIs(t, err, domain.ErrStaleReference)
	// clearing the slot is the caller's job, not the coordinator's
	assert.Equal(t, "trip-1", store.tripID)
	assert.False(t, coord.Session().Active())
}

func TestResumeSession_TransportFailure(t *testing.T) {
	store := &memStore{tripID: "trip-1"}
	coord := newCoordinator(
		&mockTripAPI{
			getByID: func(context.Context, string) (domain.Trip, error) {
				return domain.Trip{}, errors.New("connection refused")
			},
		},
		&mockParticipantAPI{}, store,
	)

	_, err := coord.ResumeSession(context.Background())

	assert.ErrorIs(t, err, domain.ErrRemoteRejected)
	assert.NotErrorIs(t, err, domain.ErrStaleReference)
}

// ---- UpdateTrip ------------------------------------------------------------

func activeCoordinator(t *testing.T, tripID string, trips *mockTripAPI, store *memStore) *session.Coordinator {
	t.Helper()
	store.tripID = tripID
	if trips.getByID == nil {
		trips.getByID = func(_ context.Context, id string) (domain.Trip, error) {
			return domain.Trip{ID: id}, nil
		}
	}
	coord := newCoordinator(trips, &mockParticipantAPI{}, store)
	_, err := coord.ResumeSession(context.Background())
	require.NoError(t, err)
	return coord
}

func TestUpdateTrip_OK(t *testing.T) {
	tripID := uuid.NewString()
	var gotDestination string
	trips := &mockTripAPI{
		update: func(_ context.Context, id, destination string, _, _ time.Time) error {
			assert.Equal(t, tripID, id)
			gotDestination = destination
			return nil
		},
	}
	coord := activeCoordinator(t, tripID, trips, &memStore{})

	err := coord.UpdateTrip(context.Background(), tripID, "Lisbon", resolvedInterval(day(2024, 7, 1), day(2024, 7, 9)))

	require.NoError(t, err)
	assert.Equal(t, "Lisbon", gotDestination)
}

func TestUpdateTrip_NotActiveSession(t *testing.T) {
	remoteCalled := false
	trips := &mockTripAPI{
		update: func(context.Context, string, string, time.Time, time.Time) error {
			remoteCalled = true
			return nil
		},
	}
	coord := activeCoordinator(t, "trip-1", trips, &memStore{})

	err := coord.UpdateTrip(context.Background(), "trip-2", "Lisbon", resolvedInterval(day(2024, 7, 1), day(2024, 7, 9)))

	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
	assert.False(t, remoteCalled)
}

func TestUpdateTrip_UnresolvedDates(t *testing.T) {
	coord := activeCoordinator(t, "trip-1", &mockTripAPI{}, &memStore{})

	start := day(2024, 7, 1)
	err := coord.UpdateTrip(context.Background(), "trip-1", "Lisbon", domain.DateInterval{Start: &start})

	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
}

func TestUpdateTrip_RemoteRejected(t *testing.T) {
	trips := &mockTripAPI{
		update: func(context.Context, string, string, time.Time, time.Time) error {
			return errors.New("boom")
		},
	}
	coord := activeCoordinator(t, "trip-1", trips, &memStore{})

	err := coord.UpdateTrip(context.Background(), "trip-1", "Lisbon", resolvedInterval(day(2024, 7, 1), day(2024, 7, 9)))

	assert.ErrorIs(t, err, domain.ErrRemoteRejected)
}

// ---- ConfirmAttendance -----------------------------------------------------

func TestConfirmAttendance_OK(t *testing.T) {
	tripID := uuid.NewString()
	participantID := uuid.NewString()
	store := &memStore{}

	var gotName, gotEmail string
	coord := newCoordinator(
		&mockTripAPI{},
		&mockParticipantAPI{
			confirm: func(_ context.Context, id, name, email string) error {
				assert.Equal(t, participantID, id)
				gotName, gotEmail = name, email
				return nil
			},
		},
		store,
	)
	coord.OpenInvite(participantID)

	err := coord.ConfirmAttendance(context.Background(), tripID, participantID, "  Ada Lovelace ", "Ada@Example.com")

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", gotName)
	assert.Equal(t, "ada@example.com", gotEmail)

	// the guest device now holds the same local session as an owner device
	assert.Equal(t, tripID, store.tripID)
	assert.Equal(t, tripID, coord.Session().ActiveTripID)
	assert.Equal(t, domain.RoleGuest, coord.Session().Role)
	assert.Empty(t, coord.Session().PendingParticipantID)
}

func TestConfirmAttendance_InvalidInput(t *testing.T) {
	remoteCalled := false
	coord := newCoordinator(
		&mockTripAPI{},
		&mockParticipantAPI{
			confirm: func(context.Context, string, string, string) error {
				remoteCalled = true
				return nil
			},
		},
		&memStore{},
	)

	for name, args := range map[string][2]string{
		"blank name":    {"   ", "ada@example.com"},
		"invalid email": {"Ada", "not-an-email"},
	} {
		err := coord.ConfirmAttendance(context.Background(), "trip-1", "p-1", args[0], args[1])
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
	assert.False(t, remoteCalled)
	assert.False(t, coord.Session().Active())
}

func TestConfirmAttendance_MissingIDs(t *testing.T) {
	coord := newCoordinator(&mockTripAPI{}, &mockParticipantAPI{}, &memStore{})

	err := coord.ConfirmAttendance(context.Background(), "", "p-1", "Ada", "ada@example.com")
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)

	err = coord.ConfirmAttendance(context.Background(), "trip-1", "", "Ada", "ada@example.com")
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
}

func TestConfirmAttendance_RemoteRejected(t *testing.T) {
	store := &memStore{}
	coord := newCoordinator(
		&mockTripAPI{},
		&mockParticipantAPI{
			confirm: func(context.Context, string, string, string) error {
				return errors.New("boom")
			},
		},
		store,
	)

	err := coord.ConfirmAttendance(context.Background(), "trip-1", "p-1", "Ada", "ada@example.com")

	assert.ErrorIs(t, err, domain.ErrRemoteRejected)
	assert.Empty(t, store.tripID)
	assert.False(t, coord.Session().Active())
}

// ---- RemoveSession ---------------------------------------------------------

func TestRemoveSession(t *testing.T) {
	tripID := uuid.NewString()
	coord := activeCoordinator(t, tripID, &mockTripAPI{}, &memStore{})

	require.NoError(t, coord.RemoveSession())

	assert.False(t, coord.Session().Active())

	// removing again is still fine; the operation is local-only
	require.NoError(t, coord.RemoveSession())
}

// ---- FetchTrip / Participants ----------------------------------------------

func TestFetchTrip_PassesThroughNotFound(t *testing.T) {
	coord := newCoordinator(
		&mockTripAPI{
			getByID: func(context.Context, string) (domain.Trip, error) {
				return domain.Trip{}, domain.ErrNotFound
			},
		},
		&mockParticipantAPI{}, &memStore{},
	)

	_, err := coord.FetchTrip(context.Background(), "gone")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrRemoteRejected)
}

func TestParticipants_AlwaysNonNil(t *testing.T) {
	coord := newCoordinator(
		&mockTripAPI{},
		&mockParticipantAPI{
			list: func(context.Context, string) ([]domain.Participant, error) {
				return nil, nil
			},
		},
		&memStore{},
	)

	got, err := coord.Participants(context.Background(), "trip-1")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
