package parcel

import (
	"fmt"

	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ServiceLevel is the delivery speed tier chosen at intake.
// Each tier carries a fixed multiplier applied to the kind base price.
type ServiceLevel int

const (
	// ServiceLevelUnknown represents an invalid or undefined service level.
	ServiceLevelUnknown ServiceLevel = iota

	// ServiceLevelOvernight delivers next day, multiplier 2.0.
	ServiceLevelOvernight

	// ServiceLevelTwoDay delivers within two days, multiplier 1.5.
	ServiceLevelTwoDay

	// ServiceLevelStandard is the regular service, multiplier 1.0.
	ServiceLevelStandard

	// ServiceLevelEconomy is the slowest and cheapest tier, multiplier 0.8.
	ServiceLevelEconomy
)

// getServiceLevelStrings returns a map of ServiceLevel values to their string representations.
func getServiceLevelStrings() map[ServiceLevel]string {
	return map[ServiceLevel]string{
		ServiceLevelUnknown:   "unknown",
		ServiceLevelOvernight: "overnight",
		ServiceLevelTwoDay:    "two_day",
		ServiceLevelStandard:  "standard",
		ServiceLevelEconomy:   "economy",
	}
}

// getServiceLevelMultipliers returns the fixed multiplier table.
// These values are policy constants; changing them changes every new quote.
func getServiceLevelMultipliers() map[ServiceLevel]decimal.Decimal {
	return map[ServiceLevel]decimal.Decimal{
		ServiceLevelOvernight: decimal.NewFromFloat(2.0),
		ServiceLevelTwoDay:    decimal.NewFromFloat(1.5),
		ServiceLevelStandard:  decimal.NewFromFloat(1.0),
		ServiceLevelEconomy:   decimal.NewFromFloat(0.8),
	}
}

// ServiceLevelFromString parses a service level from its wire representation.
func ServiceLevelFromString(s string) (ServiceLevel, error) {
	for level, str := range getServiceLevelStrings() {
		if level != ServiceLevelUnknown && str == s {
			return level, nil
		}
	}
	return ServiceLevelUnknown, errs.NewValueIsInvalidErrorWithCause("serviceLevel is invalid",
		fmt.Errorf("%q is not a valid service level", s))
}

// Validate checks if the ServiceLevel value is valid.
func (l ServiceLevel) Validate() error {
	if _, ok := getServiceLevelMultipliers()[l]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("serviceLevel is invalid",
			fmt.Errorf("%d is not a valid service level", l))
	}
	return nil
}

// String returns the wire name of the service level.
func (l ServiceLevel) String() string {
	if str, ok := getServiceLevelStrings()[l]; ok {
		return str
	}
	return "unknown"
}

// Multiplier returns the fixed price multiplier for this service level.
// Returns zero for invalid levels; callers validate first.
func (l ServiceLevel) Multiplier() decimal.Decimal {
	if m, ok := getServiceLevelMultipliers()[l]; ok {
		return m
	}
	return decimal.Zero
}
