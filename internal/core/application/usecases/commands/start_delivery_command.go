package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand represents a request to load a sorted parcel onto the
// delivery vehicle. The parcel takes a vehicle slot if one is free.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.UUID
	actor          kernel.Role
	occurredAt     time.Time

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a command to put a parcel out for delivery.
// A zero occurredAt means the handler stamps the current time.
func NewStartDeliveryCommand(trackingNumber kernel.UUID, actor kernel.Role,
	occurredAt time.Time,
) (StartDeliveryCommand, error) {
	command := StartDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackingNumber(trackingNumber),
		command.setActor(actor),
	); err != nil {
		return StartDeliveryCommand{}, err
	}

	command.occurredAt = occurredAt
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// TrackingNumber returns the parcel to load.
func (c StartDeliveryCommand) TrackingNumber() kernel.UUID {
	return c.trackingNumber
}

// Actor returns the role invoking the transition.
func (c StartDeliveryCommand) Actor() kernel.Role {
	return c.actor
}

// OccurredAt returns the caller-supplied event time, zero when unset.
func (c StartDeliveryCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *StartDeliveryCommand) setTrackingNumber(trackingNumber kernel.UUID) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *StartDeliveryCommand) setActor(actor kernel.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
