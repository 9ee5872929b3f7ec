package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/capacity"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/lock"
)

// DispatchParcelCommandHandler sends a stored parcel into the sorting stage.
// Releases the warehouse slot and advances the status; between dispatch and
// the delivery run the parcel occupies no capacity resource.
type DispatchParcelCommandHandler struct {
	uowFactory UoWFactory
	parcelLock *lock.KeyedMutex
}

// NewDispatchParcelCommandHandler creates a handler for dispatch operations.
func NewDispatchParcelCommandHandler(uowFactory UoWFactory, parcelLock *lock.KeyedMutex) DispatchParcelCommandHandler {
	return DispatchParcelCommandHandler{
		uowFactory: uowFactory,
		parcelLock: parcelLock,
	}
}

// Handle processes the dispatch command.
// The slot release, the status change, and the tracking event land in one
// transaction; a failed status change keeps the slot occupied.
func (h DispatchParcelCommandHandler) Handle(ctx context.Context, command DispatchParcelCommand) error {
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
	if err = aggregate.Dispatch(command.Actor()); err != nil {
		return err
	}

	warehouse, err := uow.ResourceRepository().GetByKind(ctx, capacity.KindWarehouse)
	if err != nil {
		return err
	}

	if err = warehouse.Release(command.TrackingNumber()); err != nil {
		return err
	}

	event, err := tracking.NewEvent(
		command.TrackingNumber(),
		eventTime(command.OccurredAt()),
		warehouse.Name(),
		aggregate.Status().String(),
		command.Actor(),
	)
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.ResourceRepository().Update(ctx, warehouse); err != nil {
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
