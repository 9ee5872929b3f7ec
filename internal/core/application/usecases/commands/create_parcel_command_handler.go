package commands

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/domain/services"
)

// intakeLocation labels the tracking event recorded at parcel registration,
// before the parcel occupies any capacity resource.
const intakeLocation = "intake counter"

// CreateParcelCommandHandler handles the business logic for parcel intake.
// Quotes the billing cost through the tariff policy, creates the parcel in
// Created status, and records the first tracking event.
//
// Example:
//
//	handler := NewCreateParcelCommandHandler(uowFactory, tariff)
//	cmd, _ := NewCreateParcelCommand(...)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("parcel intake failed: %w", err)
//	}
//	// Parcel is registered, priced, and awaiting warehouse storage
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	tariff     services.Tariff
}

// NewCreateParcelCommandHandler creates a handler for parcel intake operations.
// Requires a ParcelUoWFactory for transactional persistence and a Tariff for quoting.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory, tariff services.Tariff) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		tariff:     tariff,
	}
}

// Handle processes the parcel intake command.
// The quote is computed before the transaction opens; the parcel and its
// first tracking event are then persisted atomically.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, command CreateParcelCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	// Intake is a customer_service operation.
	if command.Actor() != kernel.RoleCustomerService {
		return fmt.Errorf("%w: role %s cannot register parcels",
			parcel.ErrInvalidTransition, command.Actor())
	}

	billingCost, err := h.tariff.Quote(
		command.Kind(), command.ServiceLevel(), command.WeightKg(), command.SpecialServices())
	if err != nil {
		return err
	}

	customer, err := parcel.NewCustomer(
		command.CustomerID(),
		command.CustomerName(),
		command.CustomerPhone(),
		command.CustomerEmail(),
		command.CustomerType(),
	)
	if err != nil {
		return err
	}

	newParcel, err := parcel.NewParcel(
		command.TrackingNumber(),
		command.SenderName(),
		command.WeightKg(),
		command.Dimensions(),
		command.DeclaredValue(),
		command.Description(),
		command.Kind(),
		command.ServiceLevel(),
		command.SpecialServices(),
		command.DistanceKm(),
		customer,
		command.TargetAddress(),
		command.BillingPreference(),
		billingCost,
	)
	if err != nil {
		return err
	}

	event, err := tracking.NewEvent(
		command.TrackingNumber(),
		time.Now(),
		intakeLocation,
		newParcel.Status().String(),
		command.Actor(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
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
