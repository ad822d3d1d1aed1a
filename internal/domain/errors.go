package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by API clients and the coordinator when the
// requested resource does not exist remotely.
var ErrNotFound = errors.New("not found")

// ErrValidation is the root of the local validation taxonomy. Every error a
// user can fix by editing their input wraps this sentinel, so callers can
// branch once with errors.Is(err, ErrValidation) and render the message.
// Validation errors never reach the network and are never system faults.
var ErrValidation = errors.New("validation error")

// ErrIncompleteTripDetails is reported by the wizard guard when the
// destination or either boundary of the date interval is missing.
var ErrIncompleteTripDetails = fmt.Errorf("%w: incomplete trip details", ErrValidation)

// ErrDestinationTooShort is the sub-case of ErrIncompleteTripDetails reported
// when a destination is present but shorter than MinDestinationLen.
var ErrDestinationTooShort = fmt.Errorf("%w: destination too short", ErrIncompleteTripDetails)

// ErrInvalidEmail is returned by guest-list Add for a candidate that fails
// syntactic email validation.
var ErrInvalidEmail = fmt.Errorf("%w: invalid email", ErrValidation)

// ErrDuplicateEmail is returned by guest-list Add when a case-insensitively
// equal entry is already present.
var ErrDuplicateEmail = fmt.Errorf("%w: email already invited", ErrValidation)

// ErrInvalidInput is returned by attendance confirmation when the guest name
// or email fails validation.
var ErrInvalidInput = fmt.Errorf("%w: invalid input", ErrValidation)

// ErrInFlight is returned by wizard transitions while a submission is in
// flight. Callers surface it as a disabled control, not as a message.
var ErrInFlight = errors.New("operation in flight")

// ErrPreconditionFailed marks a caller-contract violation (e.g. updating a
// trip that is not the active session). It is a hard local failure: the
// remote API is never called and the operation is not retried.
var ErrPreconditionFailed = errors.New("precondition failed")

// ErrRemoteRejected covers every remote failure, transport errors included.
// Surfaced as a retryable message; retry is always user-initiated.
var ErrRemoteRejected = errors.New("remote request rejected")

// ErrStaleReference is returned by ResumeSession when the persisted trip id
// no longer resolves to a remote trip. The coordinator does not clear the
// persisted id itself; that cleanup belongs to the caller.
var ErrStaleReference = errors.New("stale trip reference")
