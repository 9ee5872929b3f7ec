package parcel

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// CustomerType classifies the commercial relationship with the customer.
type CustomerType int

const (
	// CustomerTypeUnknown represents an invalid or undefined customer type.
	CustomerTypeUnknown CustomerType = iota

	// CustomerTypeContract is a contract customer settled monthly.
	CustomerTypeContract

	// CustomerTypeNonContract pays per shipment in cash or by card.
	CustomerTypeNonContract

	// CustomerTypePrepaid pays through a prepaid third-party account.
	CustomerTypePrepaid
)

// getCustomerTypeStrings returns a map of CustomerType values to their string representations.
func getCustomerTypeStrings() map[CustomerType]string {
	return map[CustomerType]string{
		CustomerTypeUnknown:     "unknown",
		CustomerTypeContract:    "contract",
		CustomerTypeNonContract: "non_contract",
		CustomerTypePrepaid:     "prepaid",
	}
}

// CustomerTypeFromString parses a customer type from its wire representation.
func CustomerTypeFromString(s string) (CustomerType, error) {
	for ct, str := range getCustomerTypeStrings() {
		if ct != CustomerTypeUnknown && str == s {
			return ct, nil
		}
	}
	return CustomerTypeUnknown, errs.NewValueIsInvalidErrorWithCause("customerType is invalid",
		fmt.Errorf("%q is not a valid customer type", s))
}

// Validate checks if the CustomerType value is valid.
func (c CustomerType) Validate() error {
	if c == CustomerTypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("customerType is invalid",
			fmt.Errorf("%d is not a valid customer type", c))
	}
	if _, ok := getCustomerTypeStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("customerType is invalid",
			fmt.Errorf("%d is not a valid customer type", c))
	}
	return nil
}

// String returns the wire name of the customer type.
func (c CustomerType) String() string {
	if str, ok := getCustomerTypeStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// Customer is the profile captured at intake and carried on the parcel.
// It is a value object: billing records reference the customer by ID only.
type Customer struct { //nolint:recvcheck //using for validation
	id           kernel.UUID
	name         string
	phone        string
	email        string
	customerType CustomerType

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer profile.
// ID and name are required; phone and email are free-form contact hints
// recorded as given.
func NewCustomer(id kernel.UUID, name, phone, email string, customerType CustomerType) (Customer, error) {
	customer := Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setCustomerType(customerType),
	); err != nil {
		return Customer{}, err
	}

	customer.phone = phone
	customer.email = email
	return customer, nil
}

// Validate ensures the customer was created through the constructor.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's unique identifier.
func (c Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the contact phone number, possibly empty.
func (c Customer) Phone() string {
	return c.phone
}

// Email returns the contact email, possibly empty.
func (c Customer) Email() string {
	return c.email
}

// Type returns the commercial relationship classification.
func (c Customer) Type() CustomerType {
	return c.customerType
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name is required")
	}
	c.name = name
	return nil
}

func (c *Customer) setCustomerType(customerType CustomerType) error {
	if err := customerType.Validate(); err != nil {
		return err
	}
	c.customerType = customerType
	return nil
}
