package parcel

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not created through
// the NewParcel or RestoreParcel factory methods.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel represents a shipment in the system. It is the aggregate root that manages
// the parcel lifecycle from intake through storage and transport to delivery.
//
// Parcel follows these invariants:
//   - The tracking number is assigned at creation and immutable
//   - The billing cost is computed exactly once at intake and no transition may alter it
//   - Exactly one current status at any time; transitions follow the custody workflow
//   - Each transition is authorized for specific actor roles
//   - Can only be created through NewParcel or RestoreParcel
//
// The struct uses private fields to ensure encapsulation; a parcel is a complete,
// fixed-shape record from the moment of creation. Parcels are never deleted:
// the terminal Delivered state is retained for audit and query.
type Parcel struct {
	// trackingNumber is the globally unique identifier assigned at intake
	trackingNumber kernel.UUID

	// senderName is the name of the sending customer as given at intake
	senderName string

	// weightKg is the parcel weight in kilograms (must be positive)
	weightKg float64

	// dimensions is the free-form size description (e.g. "30x20x10")
	dimensions string

	// declaredValue is the customer-declared value (must not be negative)
	declaredValue decimal.Decimal

	// description describes the contents (must not be empty)
	description string

	// kind is the size tier driving the base price
	kind Kind

	// serviceLevel is the delivery speed tier driving the price multiplier
	serviceLevel ServiceLevel

	// specialServices are the optional handling tags
	specialServices []SpecialService

	// distanceKm is the estimated delivery distance (must be positive)
	distanceKm float64

	// billingCost is the quoted price, fixed at intake
	billingCost decimal.Decimal

	// customer is the profile captured at intake
	customer Customer

	// targetAddress is the delivery destination (must not be empty)
	targetAddress string

	// billingPreference is how the customer asked to settle
	billingPreference BillingPreference

	// status is the current custody state
	status Status

	// guard ensures the parcel was created via a constructor
	guard guard.ConstructorGuard
}

// NewParcel creates a new Parcel at intake with validation. This is the only way
// to create a fresh parcel, ensuring all business invariants hold from the start.
//
// The billing cost is computed by the tariff policy before construction and is
// immutable afterwards. The parcel starts in Created status and occupies no
// resources; storage and transport happen through explicit lifecycle transitions.
//
// Returns the new parcel, or a validation error aggregating every invalid input.
func NewParcel(
	trackingNumber kernel.UUID,
	senderName string,
	weightKg float64,
	dimensions string,
	declaredValue decimal.Decimal,
	description string,
	kind Kind,
	serviceLevel ServiceLevel,
	specialServices []SpecialService,
	distanceKm float64,
	customer Customer,
	targetAddress string,
	billingPreference BillingPreference,
	billingCost decimal.Decimal,
) (*Parcel, error) {
	parcel := &Parcel{
		status: StatusCreated,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcel.setTrackingNumber(trackingNumber),
		parcel.setWeightKg(weightKg),
		parcel.setDeclaredValue(declaredValue),
		parcel.setDescription(description),
		parcel.setKind(kind),
		parcel.setServiceLevel(serviceLevel),
		parcel.setSpecialServices(specialServices),
		parcel.setDistanceKm(distanceKm),
		parcel.setCustomer(customer),
		parcel.setTargetAddress(targetAddress),
		parcel.setBillingPreference(billingPreference),
		parcel.setBillingCost(billingCost),
	); err != nil {
		return nil, err
	}

	parcel.senderName = senderName
	parcel.dimensions = dimensions
	return parcel, nil
}

// RestoreParcel reconstructs a Parcel aggregate from persistent storage.
// Unlike NewParcel which always starts in Created status, this constructor
// restores the parcel to its previously persisted custody state.
//
// The restored parcel behaves identically to one created through normal
// domain operations.
func RestoreParcel(
	trackingNumber kernel.UUID,
	senderName string,
	weightKg float64,
	dimensions string,
	declaredValue decimal.Decimal,
	description string,
	kind Kind,
	serviceLevel ServiceLevel,
	specialServices []SpecialService,
	distanceKm float64,
	customer Customer,
	targetAddress string,
	billingPreference BillingPreference,
	billingCost decimal.Decimal,
	status Status,
) (*Parcel, error) {
	parcel, err := NewParcel(
		trackingNumber,
		senderName,
		weightKg,
		dimensions,
		declaredValue,
		description,
		kind,
		serviceLevel,
		specialServices,
		distanceKm,
		customer,
		targetAddress,
		billingPreference,
		billingCost,
	)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	parcel.status = status
	return parcel, nil
}

// Validate ensures the Parcel instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by their tracking numbers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.trackingNumber.IsEqual(other.trackingNumber)
}

// TrackingNumber returns the parcel's globally unique identifier.
func (p *Parcel) TrackingNumber() kernel.UUID {
	return p.trackingNumber
}

// SenderName returns the sending customer's name as recorded at intake.
func (p *Parcel) SenderName() string {
	return p.senderName
}

// WeightKg returns the parcel weight in kilograms.
func (p *Parcel) WeightKg() float64 {
	return p.weightKg
}

// Dimensions returns the free-form size description.
func (p *Parcel) Dimensions() string {
	return p.dimensions
}

// DeclaredValue returns the customer-declared value.
func (p *Parcel) DeclaredValue() decimal.Decimal {
	return p.declaredValue
}

// Description returns the contents description.
func (p *Parcel) Description() string {
	return p.description
}

// Kind returns the size tier.
func (p *Parcel) Kind() Kind {
	return p.kind
}

// ServiceLevel returns the delivery speed tier.
func (p *Parcel) ServiceLevel() ServiceLevel {
	return p.serviceLevel
}

// SpecialServices returns a copy of the handling tags.
func (p *Parcel) SpecialServices() []SpecialService {
	services := make([]SpecialService, len(p.specialServices))
	copy(services, p.specialServices)
	return services
}

// DistanceKm returns the estimated delivery distance.
func (p *Parcel) DistanceKm() float64 {
	return p.distanceKm
}

// BillingCost returns the price quoted at intake.
// No lifecycle transition alters this value.
func (p *Parcel) BillingCost() decimal.Decimal {
	return p.billingCost
}

// Customer returns the customer profile captured at intake.
func (p *Parcel) Customer() Customer {
	return p.customer
}

// TargetAddress returns the delivery destination.
func (p *Parcel) TargetAddress() string {
	return p.targetAddress
}

// BillingPreference returns the requested settlement method.
func (p *Parcel) BillingPreference() BillingPreference {
	return p.billingPreference
}

// Status returns the current custody state of the parcel.
func (p *Parcel) Status() Status {
	return p.status
}

// MoveToWarehouse transitions the parcel from Created to InWarehouse.
//
// Authorized roles: warehouse, customer_service.
// The caller admits the parcel into the warehouse resource before invoking
// this method; on any error the parcel is unchanged.
func (p *Parcel) MoveToWarehouse(actor kernel.Role) error {
	if err := p.authorize(actor, kernel.RoleWarehouse, kernel.RoleCustomerService); err != nil {
		return err
	}

	newStatus, err := p.status.Store()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Dispatch transitions the parcel from InWarehouse to InTransit.
//
// Authorized role: warehouse.
// The parcel leaves storage for the sorting stage; the warehouse slot is
// released by the caller. On any error the parcel is unchanged.
func (p *Parcel) Dispatch(actor kernel.Role) error {
	if err := p.authorize(actor, kernel.RoleWarehouse); err != nil {
		return err
	}

	newStatus, err := p.status.Dispatch()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// StartDelivery transitions the parcel from InTransit to OutForDelivery.
//
// Authorized role: driver.
// The caller admits the parcel into the vehicle resource before invoking
// this method; on any error the parcel is unchanged.
func (p *Parcel) StartDelivery(actor kernel.Role) error {
	if err := p.authorize(actor, kernel.RoleDriver); err != nil {
		return err
	}

	newStatus, err := p.status.StartDelivery()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// CompleteDelivery transitions the parcel from OutForDelivery to Delivered.
//
// Authorized role: driver.
// Delivered is terminal: invoking this method on an already delivered parcel
// fails with ErrInvalidTransition, which is how repeated delivery confirmation
// is rejected before billing is ever attempted.
func (p *Parcel) CompleteDelivery(actor kernel.Role) error {
	if err := p.authorize(actor, kernel.RoleDriver); err != nil {
		return err
	}

	newStatus, err := p.status.Deliver()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// authorize checks the actor against the set of roles allowed for a transition.
// Unauthorized roles fail the same way illegal state transitions do.
func (p *Parcel) authorize(actor kernel.Role, allowed ...kernel.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	for _, role := range allowed {
		if actor == role {
			return nil
		}
	}

	return fmt.Errorf("%w: role %s is not authorized for this transition", ErrInvalidTransition, actor)
}

func (p *Parcel) setTrackingNumber(trackingNumber kernel.UUID) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	p.trackingNumber = trackingNumber
	return nil
}

func (p *Parcel) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg is invalid",
			fmt.Errorf("%v is not greater than 0", weightKg))
	}
	p.weightKg = weightKg
	return nil
}

func (p *Parcel) setDeclaredValue(declaredValue decimal.Decimal) error {
	if declaredValue.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("declaredValue is invalid",
			fmt.Errorf("%s is negative", declaredValue))
	}
	p.declaredValue = declaredValue
	return nil
}

func (p *Parcel) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description is required")
	}
	p.description = description
	return nil
}

func (p *Parcel) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	p.kind = kind
	return nil
}

func (p *Parcel) setServiceLevel(serviceLevel ServiceLevel) error {
	if err := serviceLevel.Validate(); err != nil {
		return err
	}
	p.serviceLevel = serviceLevel
	return nil
}

func (p *Parcel) setSpecialServices(specialServices []SpecialService) error {
	if err := ValidateSpecialServices(specialServices); err != nil {
		return err
	}
	p.specialServices = make([]SpecialService, len(specialServices))
	copy(p.specialServices, specialServices)
	return nil
}

func (p *Parcel) setDistanceKm(distanceKm float64) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm is invalid",
			fmt.Errorf("%v is not greater than 0", distanceKm))
	}
	p.distanceKm = distanceKm
	return nil
}

func (p *Parcel) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	p.customer = customer
	return nil
}

func (p *Parcel) setTargetAddress(targetAddress string) error {
	if targetAddress == "" {
		return errs.NewValueIsRequiredError("targetAddress is required")
	}
	p.targetAddress = targetAddress
	return nil
}

func (p *Parcel) setBillingPreference(billingPreference BillingPreference) error {
	if err := billingPreference.Validate(); err != nil {
		return err
	}
	p.billingPreference = billingPreference
	return nil
}

func (p *Parcel) setBillingCost(billingCost decimal.Decimal) error {
	if billingCost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("billingCost is invalid",
			fmt.Errorf("%s is negative", billingCost))
	}
	p.billingCost = billingCost
	return nil
}
