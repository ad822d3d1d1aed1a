package domain

// Role says how this device relates to the active trip.
type Role int

const (
	// RoleOwner is a device that created (or resumed) the trip.
	RoleOwner Role = iota
	// RoleGuest is a device that joined by confirming attendance.
	RoleGuest
)

// TripSession is the local device's notion of "the trip currently being
// viewed or owned". ActiveTripID is the single source of truth joining local
// state to the remote trip record; it is persisted by the coordinator and by
// nobody else. An empty ActiveTripID means no session.
type TripSession struct {
	ActiveTripID string
	Role         Role
	// PendingParticipantID is set while an invited guest is viewing a trip
	// they have not confirmed yet. Cleared on confirmation.
	PendingParticipantID string
}

// Active reports whether a trip session exists on this device.
func (s TripSession) Active() bool {
	return s.ActiveTripID != ""
}
