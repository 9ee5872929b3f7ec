package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Role identifies the kind of actor invoking an operation. Authentication
// happens outside the core; every lifecycle call receives an already
// authenticated role.
//
// Role is a closed enumeration so that adding a new actor kind forces a
// review of every transition authorization rule.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin is the management role with read access to billing overviews.
	RoleAdmin

	// RoleCustomerService accepts parcels at intake and may hand them to the warehouse.
	RoleCustomerService

	// RoleWarehouse manages warehouse storage and dispatches parcels to sorting.
	RoleWarehouse

	// RoleDriver carries parcels on the delivery vehicle and confirms delivery.
	RoleDriver
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:         "unknown",
		RoleAdmin:           "admin",
		RoleCustomerService: "customer_service",
		RoleWarehouse:       "warehouse",
		RoleDriver:          "driver",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:           "admin",
		RoleCustomerService: "customer_service",
		RoleWarehouse:       "warehouse",
		RoleDriver:          "driver",
	}
}

// RoleFromString parses a role from its wire representation.
// Returns an error for unknown role names.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
//
// Valid roles are: admin, customer_service, warehouse, driver.
// RoleUnknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role.
// This method implements the fmt.Stringer interface and is safe
// to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
