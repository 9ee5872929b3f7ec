package services

import (
	"errors"

	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrTariffQuoteFailed is returned when a billing cost cannot be computed
// from the intake parameters.
var ErrTariffQuoteFailed = errors.New("tariff quote failed")

// Tariff computes the billing cost of a shipment at intake. The quote is
// fixed at creation time and does not change as the parcel moves through
// the lifecycle.
type Tariff interface {
	Quote(
		kind parcel.Kind,
		serviceLevel parcel.ServiceLevel,
		weightKg float64,
		specialServices []parcel.SpecialService,
	) (decimal.Decimal, error)
}

var _ Tariff = &DefaultTariff{}

// DefaultTariff prices a shipment as the kind's base price scaled by the
// service level multiplier, plus a per-kilogram weight charge and a flat
// surcharge per special service.
type DefaultTariff struct {
	weightRatePerKg      decimal.Decimal
	specialServiceCharge decimal.Decimal
}

// NewDefaultTariff creates the standard tariff: 15 per kilogram and a flat
// 100 per requested special service.
func NewDefaultTariff() (*DefaultTariff, error) {
	return &DefaultTariff{
		weightRatePerKg:      decimal.NewFromInt(15),
		specialServiceCharge: decimal.NewFromInt(100),
	}, nil
}

// Quote computes the billing cost for the given intake parameters.
func (t *DefaultTariff) Quote(
	kind parcel.Kind,
	serviceLevel parcel.ServiceLevel,
	weightKg float64,
	specialServices []parcel.SpecialService,
) (decimal.Decimal, error) {
	if err := kind.Validate(); err != nil {
		return decimal.Decimal{}, errors.Join(ErrTariffQuoteFailed, err)
	}
	if err := serviceLevel.Validate(); err != nil {
		return decimal.Decimal{}, errors.Join(ErrTariffQuoteFailed, err)
	}
	if weightKg <= 0 {
		return decimal.Decimal{}, errors.Join(ErrTariffQuoteFailed,
			errs.NewValueIsInvalidError("weightKg must be positive"))
	}
	if err := parcel.ValidateSpecialServices(specialServices); err != nil {
		return decimal.Decimal{}, errors.Join(ErrTariffQuoteFailed, err)
	}

	base := kind.BasePrice().Mul(serviceLevel.Multiplier())
	weightCharge := decimal.NewFromFloat(weightKg).Mul(t.weightRatePerKg)
	serviceCharge := t.specialServiceCharge.Mul(decimal.NewFromInt(int64(len(specialServices))))

	return base.Add(weightCharge).Add(serviceCharge), nil
}
