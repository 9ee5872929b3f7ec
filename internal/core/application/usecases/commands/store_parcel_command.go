package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrStoreParcelCommandIsNotConstructed = errors.New(
	"StoreParcelCommand must be created via NewStoreParcelCommand constructor",
)

// StoreParcelCommand represents a request to move a parcel from intake into
// the warehouse. The parcel takes a warehouse slot if one is free.
type StoreParcelCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.UUID
	actor          kernel.Role
	occurredAt     time.Time

	guard guard.ConstructorGuard
}

// NewStoreParcelCommand creates a command to store a parcel in the warehouse.
// The actor must be a valid role; authorization against the transition happens
// in the domain. A zero occurredAt means the handler stamps the current time.
func NewStoreParcelCommand(trackingNumber kernel.UUID, actor kernel.Role,
	occurredAt time.Time,
) (StoreParcelCommand, error) {
	command := StoreParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackingNumber(trackingNumber),
		command.setActor(actor),
	); err != nil {
		return StoreParcelCommand{}, err
	}

	command.occurredAt = occurredAt
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StoreParcelCommand) Validate() error {
	return c.guard.Validate(ErrStoreParcelCommandIsNotConstructed)
}

// TrackingNumber returns the parcel to store.
func (c StoreParcelCommand) TrackingNumber() kernel.UUID {
	return c.trackingNumber
}

// Actor returns the role invoking the transition.
func (c StoreParcelCommand) Actor() kernel.Role {
	return c.actor
}

// OccurredAt returns the caller-supplied event time, zero when unset.
func (c StoreParcelCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *StoreParcelCommand) setTrackingNumber(trackingNumber kernel.UUID) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *StoreParcelCommand) setActor(actor kernel.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
