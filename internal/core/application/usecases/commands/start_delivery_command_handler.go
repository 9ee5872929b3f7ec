package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/capacity"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/lock"
)

// StartDeliveryCommandHandler loads a sorted parcel onto the delivery vehicle.
// Admits the parcel into a vehicle slot and advances the status. A full
// vehicle rejects the transition and the parcel stays in transit.
type StartDeliveryCommandHandler struct {
	uowFactory UoWFactory
	parcelLock *lock.KeyedMutex
}

// NewStartDeliveryCommandHandler creates a handler for delivery run operations.
func NewStartDeliveryCommandHandler(uowFactory UoWFactory, parcelLock *lock.KeyedMutex) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
		parcelLock: parcelLock,
	}
}

// Handle processes the delivery start command.
// The vehicle admission, the status change, and the tracking event land in
// one transaction.
func (h StartDeliveryCommandHandler) Handle(ctx context.Context, command StartDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	unlock := h.parcelLock.Lock(command.TrackingNumber().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, command.TrackingNumber())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrParcelNotFound
	}
	if err != nil {
		return err
	}

	// The status transition is checked before any capacity mutation so an
	// out-of-state or unauthorized attempt fails as an invalid transition.
	if err = aggregate.StartDelivery(command.Actor()); err != nil {
		return err
	}

	vehicle, err := uow.ResourceRepository().GetByKind(ctx, capacity.KindVehicle)
	if err != nil {
		return err
	}

	if err = vehicle.Admit(command.TrackingNumber()); err != nil {
		return err
	}

	event, err := tracking.NewEvent(
		command.TrackingNumber(),
		eventTime(command.OccurredAt()),
		vehicle.Name(),
		aggregate.Status().String(),
		command.Actor(),
	)
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.ResourceRepository().Update(ctx, vehicle); err != nil {
		return err
	}

	if err = uow.TrackingLedger().Append(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
