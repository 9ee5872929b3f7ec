package parcel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// BillingPreference is how the customer asked to settle the shipment.
// Settlement is recorded, not executed; the preference ends up as the
// method note on the billing record.
type BillingPreference int

const (
	// BillingPreferenceUnknown represents an invalid or undefined preference.
	BillingPreferenceUnknown BillingPreference = iota

	// BillingPreferenceMonthly settles on the monthly invoice.
	BillingPreferenceMonthly

	// BillingPreferenceCashOnDelivery settles in cash at the door.
	BillingPreferenceCashOnDelivery

	// BillingPreferencePrepaid was settled up front through a prepaid account.
	BillingPreferencePrepaid
)

// getBillingPreferenceStrings returns a map of BillingPreference values to their string representations.
func getBillingPreferenceStrings() map[BillingPreference]string {
	return map[BillingPreference]string{
		BillingPreferenceUnknown:        "unknown",
		BillingPreferenceMonthly:        "monthly",
		BillingPreferenceCashOnDelivery: "cash_on_delivery",
		BillingPreferencePrepaid:        "prepaid",
	}
}

// BillingPreferenceFromString parses a billing preference from its wire representation.
func BillingPreferenceFromString(s string) (BillingPreference, error) {
	for pref, str := range getBillingPreferenceStrings() {
		if pref != BillingPreferenceUnknown && str == s {
			return pref, nil
		}
	}
	return BillingPreferenceUnknown, errs.NewValueIsInvalidErrorWithCause("billingPreference is invalid",
		fmt.Errorf("%q is not a valid billing preference", s))
}

// Validate checks if the BillingPreference value is valid.
func (p BillingPreference) Validate() error {
	if p == BillingPreferenceUnknown {
		return errs.NewValueIsInvalidErrorWithCause("billingPreference is invalid",
			fmt.Errorf("%d is not a valid billing preference", p))
	}
	if _, ok := getBillingPreferenceStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("billingPreference is invalid",
			fmt.Errorf("%d is not a valid billing preference", p))
	}
	return nil
}

// String returns the wire name of the billing preference.
func (p BillingPreference) String() string {
	if str, ok := getBillingPreferenceStrings()[p]; ok {
		return str
	}
	return "unknown"
}
