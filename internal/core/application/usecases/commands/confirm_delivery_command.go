package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents a request to confirm a parcel reached its
// destination. The vehicle slot is freed, the parcel enters its terminal
// status, and billing is settled exactly once.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.UUID
	actor          kernel.Role
	occurredAt     time.Time

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm delivery.
// A zero occurredAt means the handler stamps the current time.
func NewConfirmDeliveryCommand(trackingNumber kernel.UUID, actor kernel.Role,
	occurredAt time.Time,
) (ConfirmDeliveryCommand, error) {
	command := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackingNumber(trackingNumber),
		command.setActor(actor),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	command.occurredAt = occurredAt
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// TrackingNumber returns the parcel being delivered.
func (c ConfirmDeliveryCommand) TrackingNumber() kernel.UUID {
	return c.trackingNumber
}

// Actor returns the role invoking the transition.
func (c ConfirmDeliveryCommand) Actor() kernel.Role {
	return c.actor
}

// OccurredAt returns the caller-supplied event time, zero when unset.
func (c ConfirmDeliveryCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *ConfirmDeliveryCommand) setTrackingNumber(trackingNumber kernel.UUID) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *ConfirmDeliveryCommand) setActor(actor kernel.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
