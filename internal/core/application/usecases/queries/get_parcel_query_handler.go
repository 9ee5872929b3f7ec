package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetParcelQueryHandler reads a single parcel record from the database.
// Reads bypass the domain model: the handler scans the row straight into the
// response struct without rebuilding the aggregate.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for single-parcel lookups.
// Requires a GORM database connection for query execution.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ErrObjectNotFound when no parcel matches the tracking number.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (GetParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_number,
			sender_name,
			weight_kg,
			dimensions,
			declared_value,
			description,
			kind,
			service_level,
			special_services,
			distance_km,
			billing_cost,
			customer_id,
			customer_name,
			customer_phone,
			customer_email,
			customer_type,
			target_address,
			billing_preference,
			status
		FROM parcels
		WHERE tracking_number = ?
	`, query.TrackingNumber().String()).Row()

	var resp GetParcelQueryResponse
	var trackingNumber, customerID uuid.UUID
	var specialServices string
	var declaredValue, billingCost decimal.Decimal
	var status int

	err := row.Scan(
		&trackingNumber,
		&resp.SenderName,
		&resp.WeightKg,
		&resp.Dimensions,
		&declaredValue,
		&resp.Description,
		&resp.Kind,
		&resp.ServiceLevel,
		&specialServices,
		&resp.DistanceKm,
		&billingCost,
		&customerID,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&resp.CustomerEmail,
		&resp.CustomerType,
		&resp.TargetAddress,
		&resp.BillingPreference,
		&status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetParcelQueryResponse{}, errs.NewObjectNotFoundError("trackingNumber", query.TrackingNumber())
	}
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	if resp.TrackingNumber, err = kernel.UUIDFromBytes(trackingNumber[:]); err != nil {
		return GetParcelQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetParcelQueryResponse{}, err
	}

	resp.DeclaredValue = declaredValue
	resp.BillingCost = billingCost
	resp.SpecialServices = splitSpecialServices(specialServices)
	resp.Status = parcel.Status(status).String()

	return resp, nil
}

// splitSpecialServices decodes the comma-joined column into wire names.
// An empty column means no tags were requested.
func splitSpecialServices(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, ",")
}
