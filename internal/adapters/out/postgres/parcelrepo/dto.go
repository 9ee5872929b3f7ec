// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// This package implements the repository pattern for the parcel domain aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The intake record is flattened into a single row; enum fields are stored by
// their wire names so the read side can return them without decoding.
type ParcelDTO struct {
	TrackingNumber    uuid.UUID       `gorm:"type:uuid;primaryKey;column:tracking_number"`
	SenderName        string          `gorm:"type:varchar(255)"`
	WeightKg          float64         `gorm:"type:numeric;not null"`
	Dimensions        string          `gorm:"type:varchar(255)"`
	DeclaredValue     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description       string          `gorm:"type:varchar(255);not null"`
	Kind              string          `gorm:"type:varchar(32);not null"`
	ServiceLevel      string          `gorm:"type:varchar(32);not null"`
	SpecialServices   string          `gorm:"type:varchar(255)"`
	DistanceKm        float64         `gorm:"type:numeric;not null"`
	BillingCost       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CustomerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerName      string          `gorm:"type:varchar(255);not null"`
	CustomerPhone     string          `gorm:"type:varchar(64)"`
	CustomerEmail     string          `gorm:"type:varchar(255)"`
	CustomerType      string          `gorm:"type:varchar(32);not null"`
	TargetAddress     string          `gorm:"type:varchar(255);not null"`
	BillingPreference string          `gorm:"type:varchar(32);not null"`
	Status            int             `gorm:"type:int;not null;index"`
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
// Special service tags are joined into a single comma-separated column.
func fromDomain(parcel *parcel.Parcel) ParcelDTO {
	services := parcel.SpecialServices()
	names := make([]string, 0, len(services))
	for _, service := range services {
		names = append(names, service.String())
	}

	customer := parcel.Customer()

	return ParcelDTO{
		TrackingNumber:    parcel.TrackingNumber().Bytes(),
		SenderName:        parcel.SenderName(),
		WeightKg:          parcel.WeightKg(),
		Dimensions:        parcel.Dimensions(),
		DeclaredValue:     parcel.DeclaredValue(),
		Description:       parcel.Description(),
		Kind:              parcel.Kind().String(),
		ServiceLevel:      parcel.ServiceLevel().String(),
		SpecialServices:   strings.Join(names, ","),
		DistanceKm:        parcel.DistanceKm(),
		BillingCost:       parcel.BillingCost(),
		CustomerID:        customer.ID().Bytes(),
		CustomerName:      customer.Name(),
		CustomerPhone:     customer.Phone(),
		CustomerEmail:     customer.Email(),
		CustomerType:      customer.Type().String(),
		TargetAddress:     parcel.TargetAddress(),
		BillingPreference: parcel.BillingPreference().String(),
		Status:            int(parcel.Status()),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
// Reconstructs the complete aggregate including its custody status using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	trackingNumber, err := kernel.UUIDFromBytes(dto.TrackingNumber[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	kind, err := parcel.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	serviceLevel, err := parcel.ServiceLevelFromString(dto.ServiceLevel)
	if err != nil {
		return nil, err
	}

	specialServices, err := specialServicesFromColumn(dto.SpecialServices)
	if err != nil {
		return nil, err
	}

	customerType, err := parcel.CustomerTypeFromString(dto.CustomerType)
	if err != nil {
		return nil, err
	}

	customer, err := parcel.NewCustomer(customerID, dto.CustomerName, dto.CustomerPhone, dto.CustomerEmail, customerType)
	if err != nil {
		return nil, err
	}

	billingPreference, err := parcel.BillingPreferenceFromString(dto.BillingPreference)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		trackingNumber,
		dto.SenderName,
		dto.WeightKg,
		dto.Dimensions,
		dto.DeclaredValue,
		dto.Description,
		kind,
		serviceLevel,
		specialServices,
		dto.DistanceKm,
		customer,
		dto.TargetAddress,
		billingPreference,
		dto.BillingCost,
		parcel.Status(dto.Status),
	)
}

// specialServicesFromColumn decodes the comma-joined column into domain tags.
// An empty column means no tags were requested at intake.
func specialServicesFromColumn(joined string) ([]parcel.SpecialService, error) {
	if joined == "" {
		return []parcel.SpecialService{}, nil
	}

	names := strings.Split(joined, ",")
	services := make([]parcel.SpecialService, 0, len(names))
	for _, name := range names {
		service, err := parcel.SpecialServiceFromString(name)
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}

	return services, nil
}
