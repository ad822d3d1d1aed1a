// Package domain contains the core data types and error taxonomy for the
// tripkit client. This package has no dependencies outside the standard
// library and is imported by every other internal package.
package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MinDestinationLen is the minimum trimmed length of a trip destination.
const MinDestinationLen = 4

// Trip is the remote trip record as returned by the trip API.
type Trip struct {
	ID          string
	Destination string
	StartsAt    time.Time
	EndsAt      time.Time
	IsConfirmed bool
}

// Participant is a person invited to a trip.
type Participant struct {
	ID          string
	Name        string
	Email       string
	IsConfirmed bool
}

// ValidateTripDetails enforces the trip-details guard shared by the wizard
// and the coordinator: destination non-empty after trimming, at least
// MinDestinationLen characters, and a fully resolved date interval.
// A too-short destination is reported as ErrDestinationTooShort so the caller
// can word the message precisely; every other violation is
// ErrIncompleteTripDetails.
func ValidateTripDetails(destination string, dates DateInterval) error {
	trimmed := strings.TrimSpace(destination)
	if trimmed == "" || !dates.Resolved() {
		return ErrIncompleteTripDetails
	}
	// Characters, not bytes: a two-rune destination is too short no matter
	// how many bytes it encodes to.
	if utf8.RuneCountInString(trimmed) < MinDestinationLen {
		return fmt.Errorf("%w: need at least %d characters", ErrDestinationTooShort, MinDestinationLen)
	}
	return nil
}
