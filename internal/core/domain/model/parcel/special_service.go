package parcel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// SpecialService is an optional handling tag attached at intake.
// Each tag adds a fixed surcharge in the tariff formula.
type SpecialService int

const (
	// SpecialServiceUnknown represents an invalid or undefined tag.
	SpecialServiceUnknown SpecialService = iota

	// SpecialServiceHazardous marks dangerous goods handling.
	SpecialServiceHazardous

	// SpecialServiceFragile marks fragile item handling.
	SpecialServiceFragile

	// SpecialServiceInternational marks international shipping requirements.
	SpecialServiceInternational

	// SpecialServiceHighValue marks declared high-value insurance.
	SpecialServiceHighValue
)

// getSpecialServiceStrings returns a map of SpecialService values to their string representations.
func getSpecialServiceStrings() map[SpecialService]string {
	return map[SpecialService]string{
		SpecialServiceUnknown:       "unknown",
		SpecialServiceHazardous:     "hazardous",
		SpecialServiceFragile:       "fragile",
		SpecialServiceInternational: "international",
		SpecialServiceHighValue:     "high_value",
	}
}

// SpecialServiceFromString parses a special service tag from its wire representation.
func SpecialServiceFromString(s string) (SpecialService, error) {
	for svc, str := range getSpecialServiceStrings() {
		if svc != SpecialServiceUnknown && str == s {
			return svc, nil
		}
	}
	return SpecialServiceUnknown, errs.NewValueIsInvalidErrorWithCause("specialService is invalid",
		fmt.Errorf("%q is not a valid special service", s))
}

// Validate checks if the SpecialService value is valid.
func (s SpecialService) Validate() error {
	if s == SpecialServiceUnknown {
		return errs.NewValueIsInvalidErrorWithCause("specialService is invalid",
			fmt.Errorf("%d is not a valid special service", s))
	}
	if _, ok := getSpecialServiceStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("specialService is invalid",
			fmt.Errorf("%d is not a valid special service", s))
	}
	return nil
}

// String returns the wire name of the special service tag.
func (s SpecialService) String() string {
	if str, ok := getSpecialServiceStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateSpecialServices checks every tag in the set and rejects duplicates.
// An empty set is valid; tags are optional.
func ValidateSpecialServices(services []SpecialService) error {
	seen := make(map[SpecialService]struct{}, len(services))
	for _, svc := range services {
		if err := svc.Validate(); err != nil {
			return err
		}
		if _, dup := seen[svc]; dup {
			return errs.NewValueIsInvalidErrorWithCause("specialServices is invalid",
				fmt.Errorf("duplicate tag %s", svc))
		}
		seen[svc] = struct{}{}
	}
	return nil
}
