package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrTargetAddressIsRequired = errors.New("target address is required")
	ErrDescriptionIsRequired   = errors.New("description is required")
	ErrWeightIsInvalid         = errors.New("weight must be greater than 0")
	ErrDistanceIsInvalid       = errors.New("distance must be greater than 0")
	ErrDeclaredValueIsInvalid  = errors.New("declared value must not be negative")
	ErrCustomerNameIsRequired  = errors.New("customer name is required")
)

// CreateParcelCommand represents a request to register a new shipment at intake.
// Carries everything the counter captures: the physical description of the
// parcel, the chosen service options, and the customer profile.
//
// The billing cost is not part of the command; the handler quotes it through
// the tariff policy and fixes it on the parcel at creation.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	trackingNumber    kernel.UUID
	actor             kernel.Role
	senderName        string
	weightKg          float64
	dimensions        string
	declaredValue     decimal.Decimal
	description       string
	kind              parcel.Kind
	serviceLevel      parcel.ServiceLevel
	specialServices   []parcel.SpecialService
	distanceKm        float64
	customerID        kernel.UUID
	customerName      string
	customerPhone     string
	customerEmail     string
	customerType      parcel.CustomerType
	targetAddress     string
	billingPreference parcel.BillingPreference

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new shipment.
// Validates identifiers, measurements, and every enum choice up front so the
// handler never opens a transaction for a request that cannot succeed.
func NewCreateParcelCommand(
	trackingNumber kernel.UUID,
	actor kernel.Role,
	senderName string,
	weightKg float64,
	dimensions string,
	declaredValue decimal.Decimal,
	description string,
	kind parcel.Kind,
	serviceLevel parcel.ServiceLevel,
	specialServices []parcel.SpecialService,
	distanceKm float64,
	customerID kernel.UUID,
	customerName string,
	customerPhone string,
	customerEmail string,
	customerType parcel.CustomerType,
	targetAddress string,
	billingPreference parcel.BillingPreference,
) (CreateParcelCommand, error) {
	command := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackingNumber(trackingNumber),
		command.setActor(actor),
		command.setWeightKg(weightKg),
		command.setDeclaredValue(declaredValue),
		command.setDescription(description),
		command.setKind(kind),
		command.setServiceLevel(serviceLevel),
		command.setSpecialServices(specialServices),
		command.setDistanceKm(distanceKm),
		command.setCustomer(customerID, customerName, customerType),
		command.setTargetAddress(targetAddress),
		command.setBillingPreference(billingPreference),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	command.senderName = senderName
	command.dimensions = dimensions
	command.customerPhone = customerPhone
	command.customerEmail = customerEmail
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// TrackingNumber returns the identifier assigned to the new parcel.
func (c CreateParcelCommand) TrackingNumber() kernel.UUID {
	return c.trackingNumber
}

// Actor returns the role registering the parcel.
func (c CreateParcelCommand) Actor() kernel.Role {
	return c.actor
}

// SenderName returns the sending customer's name as given.
func (c CreateParcelCommand) SenderName() string {
	return c.senderName
}

// WeightKg returns the parcel weight in kilograms.
func (c CreateParcelCommand) WeightKg() float64 {
	return c.weightKg
}

// Dimensions returns the free-form size description.
func (c CreateParcelCommand) Dimensions() string {
	return c.dimensions
}

// DeclaredValue returns the customer-declared value.
func (c CreateParcelCommand) DeclaredValue() decimal.Decimal {
	return c.declaredValue
}

// Description returns the contents description.
func (c CreateParcelCommand) Description() string {
	return c.description
}

// Kind returns the size tier.
func (c CreateParcelCommand) Kind() parcel.Kind {
	return c.kind
}

// ServiceLevel returns the delivery speed tier.
func (c CreateParcelCommand) ServiceLevel() parcel.ServiceLevel {
	return c.serviceLevel
}

// SpecialServices returns a copy of the requested handling tags.
func (c CreateParcelCommand) SpecialServices() []parcel.SpecialService {
	services := make([]parcel.SpecialService, len(c.specialServices))
	copy(services, c.specialServices)
	return services
}

// DistanceKm returns the estimated delivery distance.
func (c CreateParcelCommand) DistanceKm() float64 {
	return c.distanceKm
}

// CustomerID returns the customer's unique identifier.
func (c CreateParcelCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CustomerName returns the customer's name.
func (c CreateParcelCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer's contact phone number.
func (c CreateParcelCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerEmail returns the customer's contact email.
func (c CreateParcelCommand) CustomerEmail() string {
	return c.customerEmail
}

// CustomerType returns the commercial relationship classification.
func (c CreateParcelCommand) CustomerType() parcel.CustomerType {
	return c.customerType
}

// TargetAddress returns the delivery destination.
func (c CreateParcelCommand) TargetAddress() string {
	return c.targetAddress
}

// BillingPreference returns the requested settlement method.
func (c CreateParcelCommand) BillingPreference() parcel.BillingPreference {
	return c.billingPreference
}

func (c *CreateParcelCommand) setTrackingNumber(trackingNumber kernel.UUID) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *CreateParcelCommand) setActor(actor kernel.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateParcelCommand) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return ErrWeightIsInvalid
	}

	c.weightKg = weightKg
	return nil
}

func (c *CreateParcelCommand) setDeclaredValue(declaredValue decimal.Decimal) error {
	if declaredValue.IsNegative() {
		return ErrDeclaredValueIsInvalid
	}

	c.declaredValue = declaredValue
	return nil
}

func (c *CreateParcelCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *CreateParcelCommand) setKind(kind parcel.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreateParcelCommand) setServiceLevel(serviceLevel parcel.ServiceLevel) error {
	if err := serviceLevel.Validate(); err != nil {
		return err
	}

	c.serviceLevel = serviceLevel
	return nil
}

func (c *CreateParcelCommand) setSpecialServices(specialServices []parcel.SpecialService) error {
	if err := parcel.ValidateSpecialServices(specialServices); err != nil {
		return err
	}

	c.specialServices = make([]parcel.SpecialService, len(specialServices))
	copy(c.specialServices, specialServices)
	return nil
}

func (c *CreateParcelCommand) setDistanceKm(distanceKm float64) error {
	if distanceKm <= 0 {
		return ErrDistanceIsInvalid
	}

	c.distanceKm = distanceKm
	return nil
}

func (c *CreateParcelCommand) setCustomer(customerID kernel.UUID, customerName string,
	customerType parcel.CustomerType,
) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}
	if err := customerType.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	c.customerName = customerName
	c.customerType = customerType
	return nil
}

func (c *CreateParcelCommand) setTargetAddress(targetAddress string) error {
	if targetAddress == "" {
		return ErrTargetAddressIsRequired
	}

	c.targetAddress = targetAddress
	return nil
}

func (c *CreateParcelCommand) setBillingPreference(billingPreference parcel.BillingPreference) error {
	if err := billingPreference.Validate(); err != nil {
		return err
	}

	c.billingPreference = billingPreference
	return nil
}
