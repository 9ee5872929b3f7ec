package parcel

import (
	"fmt"

	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Kind classifies a parcel into one of the four size tiers offered at intake.
// Each tier carries a fixed base price that feeds the tariff formula.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindEnvelope is flat mail, base price 50.
	KindEnvelope

	// KindSmallBox is a small box, base price 100.
	KindSmallBox

	// KindMediumBox is a medium box, base price 200.
	KindMediumBox

	// KindLargeBox is a large box, base price 400.
	KindLargeBox
)

// getKindStrings returns a map of Kind values to their string representations.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:   "unknown",
		KindEnvelope:  "envelope",
		KindSmallBox:  "small_box",
		KindMediumBox: "medium_box",
		KindLargeBox:  "large_box",
	}
}

// getKindBasePrices returns the fixed base price table.
// These values are policy constants; changing them changes every new quote.
func getKindBasePrices() map[Kind]decimal.Decimal {
	return map[Kind]decimal.Decimal{
		KindEnvelope:  decimal.NewFromInt(50),
		KindSmallBox:  decimal.NewFromInt(100),
		KindMediumBox: decimal.NewFromInt(200),
		KindLargeBox:  decimal.NewFromInt(400),
	}
}

// KindFromString parses a kind from its wire representation.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if kind != KindUnknown && str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind is invalid",
		fmt.Errorf("%q is not a valid parcel kind", s))
}

// Validate checks if the Kind value is valid.
func (k Kind) Validate() error {
	if _, ok := getKindBasePrices()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid",
			fmt.Errorf("%d is not a valid parcel kind", k))
	}
	return nil
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// BasePrice returns the fixed base price for this kind.
// Returns zero for invalid kinds; callers validate first.
func (k Kind) BasePrice() decimal.Decimal {
	if price, ok := getKindBasePrices()[k]; ok {
		return price
	}
	return decimal.Zero
}
