package tracking

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrEventIsNotConstructed is returned when using an improperly initialized Event.
	ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

	// ErrTimestampNotMonotonic indicates that an appended event's timestamp
	// precedes the latest recorded event for the same tracking number.
	// The history of a parcel is strictly append-only in chronological order.
	ErrTimestampNotMonotonic = errors.New("event timestamp precedes latest recorded event")
)

// Event is a single entry in a parcel's tracking history. Events are
// immutable once created and are never removed from the ledger; the
// history of a tracking number only ever grows, ordered by timestamp.
type Event struct { //nolint:recvcheck //using for validation
	trackingNumber    kernel.UUID
	timestamp         time.Time
	location          string
	statusDescription string
	actorRole         kernel.Role

	guard guard.ConstructorGuard
}

// NewEvent creates a tracking event for a lifecycle transition.
//
// The tracking number, timestamp, location, status description, and actor
// role are all required. The ledger enforces timestamp monotonicity per
// tracking number at append time; the event itself only validates shape.
func NewEvent(
	trackingNumber kernel.UUID,
	timestamp time.Time,
	location string,
	statusDescription string,
	actorRole kernel.Role,
) (Event, error) {
	event := Event{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		event.setTrackingNumber(trackingNumber),
		event.setTimestamp(timestamp),
		event.setLocation(location),
		event.setStatusDescription(statusDescription),
		event.setActorRole(actorRole),
	); err != nil {
		return Event{}, err
	}

	return event, nil
}

// Validate ensures the event was created through the constructor.
func (e Event) Validate() error {
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// TrackingNumber returns the parcel this event belongs to.
func (e Event) TrackingNumber() kernel.UUID {
	return e.trackingNumber
}

// Timestamp returns when the transition happened.
func (e Event) Timestamp() time.Time {
	return e.timestamp
}

// Location returns where the parcel was at the time of the event.
func (e Event) Location() string {
	return e.location
}

// StatusDescription returns the custody status reached by the transition.
func (e Event) StatusDescription() string {
	return e.statusDescription
}

// ActorRole returns the role that triggered the transition.
func (e Event) ActorRole() kernel.Role {
	return e.actorRole
}

func (e *Event) setTrackingNumber(trackingNumber kernel.UUID) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	e.trackingNumber = trackingNumber
	return nil
}

func (e *Event) setTimestamp(timestamp time.Time) error {
	if timestamp.IsZero() {
		return errs.NewValueIsRequiredError("timestamp is required")
	}
	e.timestamp = timestamp
	return nil
}

func (e *Event) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location is required")
	}
	e.location = location
	return nil
}

func (e *Event) setStatusDescription(statusDescription string) error {
	if statusDescription == "" {
		return errs.NewValueIsRequiredError("statusDescription is required")
	}
	e.statusDescription = statusDescription
	return nil
}

func (e *Event) setActorRole(actorRole kernel.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}
	e.actorRole = actorRole
	return nil
}
