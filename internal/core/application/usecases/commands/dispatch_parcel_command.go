package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDispatchParcelCommandIsNotConstructed = errors.New(
	"DispatchParcelCommand must be created via NewDispatchParcelCommand constructor",
)

// DispatchParcelCommand represents a request to send a stored parcel out of
// the warehouse into the sorting stage. The warehouse slot is freed.
type DispatchParcelCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.UUID
	actor          kernel.Role
	occurredAt     time.Time

	guard guard.ConstructorGuard
}

// NewDispatchParcelCommand creates a command to dispatch a parcel to sorting.
// A zero occurredAt means the handler stamps the current time.
func NewDispatchParcelCommand(trackingNumber kernel.UUID, actor kernel.Role,
	occurredAt time.Time,
) (DispatchParcelCommand, error) {
	command := DispatchParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackingNumber(trackingNumber),
		command.setActor(actor),
	); err != nil {
		return DispatchParcelCommand{}, err
	}

	command.occurredAt = occurredAt
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchParcelCommand) Validate() error {
	return c.guard.Validate(ErrDispatchParcelCommandIsNotConstructed)
}

// TrackingNumber returns the parcel to dispatch.
func (c DispatchParcelCommand) TrackingNumber() kernel.UUID {
	return c.trackingNumber
}

// Actor returns the role invoking the transition.
func (c DispatchParcelCommand) Actor() kernel.Role {
	return c.actor
}

// OccurredAt returns the caller-supplied event time, zero when unset.
func (c DispatchParcelCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *DispatchParcelCommand) setTrackingNumber(trackingNumber kernel.UUID) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *DispatchParcelCommand) setActor(actor kernel.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
