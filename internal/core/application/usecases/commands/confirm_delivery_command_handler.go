package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/capacity"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/lock"
)

// ConfirmDeliveryCommandHandler completes the parcel lifecycle.
// Releases the vehicle slot, moves the parcel to its terminal Delivered
// status, settles billing exactly once, and records the final tracking event,
// all within a single transaction.
//
// A repeated confirmation fails the status transition and never reaches the
// billing ledger, which is how double settlement is prevented.
type ConfirmDeliveryCommandHandler struct {
	uowFactory UoWFactory
	parcelLock *lock.KeyedMutex
	logger     *slog.Logger
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation operations.
func NewConfirmDeliveryCommandHandler(uowFactory UoWFactory, parcelLock *lock.KeyedMutex,
	logger *slog.Logger,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		parcelLock: parcelLock,
		logger:     logger,
	}
}

// Handle processes the delivery confirmation command.
// The vehicle release, the terminal status change, the settlement record, and
// the tracking event land together or not at all.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, command ConfirmDeliveryCommand) error {
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

	// The status transition is checked before any capacity mutation, so a
	// repeated confirmation on a delivered parcel fails as an invalid
	// transition and never reaches the vehicle or the billing ledger.
	if err = aggregate.CompleteDelivery(command.Actor()); err != nil {
		return err
	}

	vehicle, err := uow.ResourceRepository().GetByKind(ctx, capacity.KindVehicle)
	if err != nil {
		return err
	}

	if err = vehicle.Release(command.TrackingNumber()); err != nil {
		return err
	}

	occurredAt := eventTime(command.OccurredAt())

	if err = h.settle(ctx, uow, aggregate, occurredAt); err != nil {
		return err
	}

	event, err := tracking.NewEvent(
		command.TrackingNumber(),
		occurredAt,
		aggregate.TargetAddress(),
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

// settle writes the settlement record for the delivered parcel.
// The ledger enforces at-most-once settlement; a duplicate here means a
// record already exists for a parcel that only now reached Delivered, so the
// existing record wins and the confirmation proceeds.
func (h ConfirmDeliveryCommandHandler) settle(ctx context.Context, uow UoW,
	aggregate *parcel.Parcel, occurredAt time.Time,
) error {
	record, err := billing.NewRecord(
		aggregate.TrackingNumber(),
		aggregate.Customer().ID(),
		aggregate.BillingCost(),
		fmt.Sprintf("settled - method: %s", aggregate.BillingPreference()),
		occurredAt,
	)
	if err != nil {
		return err
	}

	err = uow.BillingLedger().Add(ctx, record)
	if errors.Is(err, billing.ErrDuplicateSettlement) {
		h.logger.WarnContext(ctx, "settlement already recorded, keeping existing record",
			slog.String("tracking_number", aggregate.TrackingNumber().String()))
		return nil
	}

	return err
}
