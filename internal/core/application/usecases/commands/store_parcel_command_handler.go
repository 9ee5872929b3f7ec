package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/capacity"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/lock"
)

// ErrParcelNotFound is returned by transition handlers when the tracking
// number does not match any registered parcel.
var ErrParcelNotFound = errors.New("parcel not found")

// StoreParcelCommandHandler moves a parcel from intake into the warehouse.
// Admits the parcel into a warehouse slot, advances the status, and records
// the tracking event within a single transaction. A full warehouse rejects
// the transition and leaves the parcel untouched in Created status.
type StoreParcelCommandHandler struct {
	uowFactory UoWFactory
	parcelLock *lock.KeyedMutex
}

// NewStoreParcelCommandHandler creates a handler for warehouse storage operations.
func NewStoreParcelCommandHandler(uowFactory UoWFactory, parcelLock *lock.KeyedMutex) StoreParcelCommandHandler {
	return StoreParcelCommandHandler{
		uowFactory: uowFactory,
		parcelLock: parcelLock,
	}
}

// Handle processes the storage command.
// Serializes on the tracking number so two concurrent transitions of the same
// parcel cannot interleave, then performs admit + status change + event append
// atomically.
func (h StoreParcelCommandHandler) Handle(ctx context.Context, command StoreParcelCommand) error {
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
	if err = aggregate.MoveToWarehouse(command.Actor()); err != nil {
		return err
	}

	warehouse, err := uow.ResourceRepository().GetByKind(ctx, capacity.KindWarehouse)
	if err != nil {
		return err
	}

	if err = warehouse.Admit(command.TrackingNumber()); err != nil {
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

// eventTime resolves the timestamp for a tracking event: the caller-supplied
// time when given, the current time otherwise.
func eventTime(occurredAt time.Time) time.Time {
	if occurredAt.IsZero() {
		return time.Now()
	}
	return occurredAt
}
