// Package http exposes the parcel lifecycle over a REST API.
// Handlers translate between HTTP and the application use cases; all business
// rules live behind the command and query handlers.
package http

import (
	"errors"
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/capacity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler    commands.CreateParcelCommandHandler
	storeParcelHandler     commands.StoreParcelCommandHandler
	dispatchParcelHandler  commands.DispatchParcelCommandHandler
	startDeliveryHandler   commands.StartDeliveryCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler

	// Query handlers
	getParcelHandler          queries.GetParcelQueryHandler
	getTrackingHistoryHandler queries.GetTrackingHistoryQueryHandler
	listBillingRecordsHandler queries.ListBillingRecordsQueryHandler
	getOccupancyHandler       queries.GetOccupancyQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	storeParcelHandler commands.StoreParcelCommandHandler,
	dispatchParcelHandler commands.DispatchParcelCommandHandler,
	startDeliveryHandler commands.StartDeliveryCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	getParcelHandler queries.GetParcelQueryHandler,
	getTrackingHistoryHandler queries.GetTrackingHistoryQueryHandler,
	listBillingRecordsHandler queries.ListBillingRecordsQueryHandler,
	getOccupancyHandler queries.GetOccupancyQueryHandler,
) *Server {
	return &Server{
		createParcelHandler:       createParcelHandler,
		storeParcelHandler:        storeParcelHandler,
		dispatchParcelHandler:     dispatchParcelHandler,
		startDeliveryHandler:      startDeliveryHandler,
		confirmDeliveryHandler:    confirmDeliveryHandler,
		getParcelHandler:          getParcelHandler,
		getTrackingHistoryHandler: getTrackingHistoryHandler,
		listBillingRecordsHandler: listBillingRecordsHandler,
		getOccupancyHandler:       getOccupancyHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels/:trackingNumber", s.GetParcel)
	api.GET("/parcels/:trackingNumber/history", s.GetTrackingHistory)
	api.POST("/parcels/:trackingNumber/store", s.StoreParcel)
	api.POST("/parcels/:trackingNumber/dispatch", s.DispatchParcel)
	api.POST("/parcels/:trackingNumber/start-delivery", s.StartDelivery)
	api.POST("/parcels/:trackingNumber/confirm-delivery", s.ConfirmDelivery)
	api.GET("/billing/records", s.ListBillingRecords)
	api.GET("/occupancy", s.GetOccupancy)
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewParcelRequest is the intake payload.
type NewParcelRequest struct {
	Actor             string   `json:"actor"`
	SenderName        string   `json:"sender_name"`
	WeightKg          float64  `json:"weight_kg"`
	Dimensions        string   `json:"dimensions"`
	DeclaredValue     string   `json:"declared_value"`
	Description       string   `json:"description"`
	Kind              string   `json:"kind"`
	ServiceLevel      string   `json:"service_level"`
	SpecialServices   []string `json:"special_services"`
	DistanceKm        float64  `json:"distance_km"`
	CustomerID        string   `json:"customer_id"`
	CustomerName      string   `json:"customer_name"`
	CustomerPhone     string   `json:"customer_phone"`
	CustomerEmail     string   `json:"customer_email"`
	CustomerType      string   `json:"customer_type"`
	TargetAddress     string   `json:"target_address"`
	BillingPreference string   `json:"billing_preference"`
}

// NewParcelResponse acknowledges intake with the assigned tracking number.
type NewParcelResponse struct {
	TrackingNumber string `json:"tracking_number"`
}

// TransitionRequest carries the actor performing a lifecycle transition.
type TransitionRequest struct {
	Actor string `json:"actor"`
}

// ParcelResponse is the read model of a single parcel.
type ParcelResponse struct {
	TrackingNumber    string   `json:"tracking_number"`
	SenderName        string   `json:"sender_name"`
	WeightKg          float64  `json:"weight_kg"`
	Dimensions        string   `json:"dimensions"`
	DeclaredValue     string   `json:"declared_value"`
	Description       string   `json:"description"`
	Kind              string   `json:"kind"`
	ServiceLevel      string   `json:"service_level"`
	SpecialServices   []string `json:"special_services"`
	DistanceKm        float64  `json:"distance_km"`
	BillingCost       string   `json:"billing_cost"`
	CustomerID        string   `json:"customer_id"`
	CustomerName      string   `json:"customer_name"`
	CustomerPhone     string   `json:"customer_phone"`
	CustomerEmail     string   `json:"customer_email"`
	CustomerType      string   `json:"customer_type"`
	TargetAddress     string   `json:"target_address"`
	BillingPreference string   `json:"billing_preference"`
	Status            string   `json:"status"`
}

// TrackingEventResponse is one entry of a parcel's history.
type TrackingEventResponse struct {
	TrackingNumber    string    `json:"tracking_number"`
	Timestamp         time.Time `json:"timestamp"`
	Location          string    `json:"location"`
	StatusDescription string    `json:"status_description"`
	ActorRole         string    `json:"actor_role"`
}

// BillingRecordResponse is one settlement entry of the billing overview.
type BillingRecordResponse struct {
	TrackingNumber string    `json:"tracking_number"`
	CustomerID     string    `json:"customer_id"`
	Amount         string    `json:"amount"`
	Method         string    `json:"method"`
	Timestamp      time.Time `json:"timestamp"`
}

// OccupancyResponse is the slot usage of one resource.
type OccupancyResponse struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Occupied int    `json:"occupied"`
	Capacity int    `json:"capacity"`
}

// CreateParcel handles POST /api/v1/parcels - registers a new shipment.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var req NewParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	declaredValue, err := decimal.NewFromString(req.DeclaredValue)
	if err != nil {
		return badRequest(ctx, "Invalid declared value: "+err.Error())
	}

	kind, err := parcel.KindFromString(req.Kind)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	serviceLevel, err := parcel.ServiceLevelFromString(req.ServiceLevel)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	specialServices := make([]parcel.SpecialService, 0, len(req.SpecialServices))
	for _, name := range req.SpecialServices {
		service, svcErr := parcel.SpecialServiceFromString(name)
		if svcErr != nil {
			return badRequest(ctx, svcErr.Error())
		}
		specialServices = append(specialServices, service)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	customerType, err := parcel.CustomerTypeFromString(req.CustomerType)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	billingPreference, err := parcel.BillingPreferenceFromString(req.BillingPreference)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	actor, err := kernel.RoleFromString(req.Actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	trackingNumber := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(
		trackingNumber,
		actor,
		req.SenderName,
		req.WeightKg,
		req.Dimensions,
		declaredValue,
		req.Description,
		kind,
		serviceLevel,
		specialServices,
		req.DistanceKm,
		customerID,
		req.CustomerName,
		req.CustomerPhone,
		req.CustomerEmail,
		customerType,
		req.TargetAddress,
		billingPreference,
	)
	if err != nil {
		return badRequest(ctx, "Invalid parcel data: "+err.Error())
	}

	if err = s.createParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, NewParcelResponse{
		TrackingNumber: trackingNumber.String(),
	})
}

// StoreParcel handles POST /api/v1/parcels/:trackingNumber/store - moves the
// parcel into warehouse storage.
func (s *Server) StoreParcel(ctx echo.Context) error {
	trackingNumber, actor, err := s.bindTransition(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewStoreParcelCommand(trackingNumber, actor, time.Now())
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.storeParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchParcel handles POST /api/v1/parcels/:trackingNumber/dispatch - sends
// the parcel from the warehouse to sorting.
func (s *Server) DispatchParcel(ctx echo.Context) error {
	trackingNumber, actor, err := s.bindTransition(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDispatchParcelCommand(trackingNumber, actor, time.Now())
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.dispatchParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartDelivery handles POST /api/v1/parcels/:trackingNumber/start-delivery -
// loads the parcel onto the delivery vehicle.
func (s *Server) StartDelivery(ctx echo.Context) error {
	trackingNumber, actor, err := s.bindTransition(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewStartDeliveryCommand(trackingNumber, actor, time.Now())
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/parcels/:trackingNumber/confirm-delivery -
// records delivery and settles billing.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	trackingNumber, actor, err := s.bindTransition(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewConfirmDeliveryCommand(trackingNumber, actor, time.Now())
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetParcel handles GET /api/v1/parcels/:trackingNumber - retrieves one parcel.
func (s *Server) GetParcel(ctx echo.Context) error {
	trackingNumber, err := kernel.UUIDFromString(ctx.Param("trackingNumber"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking number: "+err.Error())
	}

	query, err := queries.NewGetParcelQuery(trackingNumber)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ParcelResponse{
		TrackingNumber:    result.TrackingNumber.String(),
		SenderName:        result.SenderName,
		WeightKg:          result.WeightKg,
		Dimensions:        result.Dimensions,
		DeclaredValue:     result.DeclaredValue.String(),
		Description:       result.Description,
		Kind:              result.Kind,
		ServiceLevel:      result.ServiceLevel,
		SpecialServices:   result.SpecialServices,
		DistanceKm:        result.DistanceKm,
		BillingCost:       result.BillingCost.String(),
		CustomerID:        result.CustomerID.String(),
		CustomerName:      result.CustomerName,
		CustomerPhone:     result.CustomerPhone,
		CustomerEmail:     result.CustomerEmail,
		CustomerType:      result.CustomerType,
		TargetAddress:     result.TargetAddress,
		BillingPreference: result.BillingPreference,
		Status:            result.Status,
	})
}

// GetTrackingHistory handles GET /api/v1/parcels/:trackingNumber/history -
// retrieves the parcel's event history, oldest first.
func (s *Server) GetTrackingHistory(ctx echo.Context) error {
	trackingNumber, err := kernel.UUIDFromString(ctx.Param("trackingNumber"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking number: "+err.Error())
	}

	query, err := queries.NewGetTrackingHistoryQuery(trackingNumber)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	events, err := s.getTrackingHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]TrackingEventResponse, len(events))
	for i, event := range events {
		response[i] = TrackingEventResponse{
			TrackingNumber:    event.TrackingNumber.String(),
			Timestamp:         event.Timestamp,
			Location:          event.Location,
			StatusDescription: event.StatusDescription,
			ActorRole:         event.ActorRole,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListBillingRecords handles GET /api/v1/billing/records - retrieves settlement
// records, optionally filtered by the customer_id query parameter.
func (s *Server) ListBillingRecords(ctx echo.Context) error {
	var query queries.ListBillingRecordsQuery

	if customerParam := ctx.QueryParam("customer_id"); customerParam != "" {
		customerID, err := kernel.UUIDFromString(customerParam)
		if err != nil {
			return badRequest(ctx, "Invalid customer id: "+err.Error())
		}

		filtered, err := queries.NewListBillingRecordsQueryForCustomer(customerID)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		query = filtered
	} else {
		query = queries.NewListBillingRecordsQuery()
	}

	records, err := s.listBillingRecordsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]BillingRecordResponse, len(records))
	for i, record := range records {
		response[i] = BillingRecordResponse{
			TrackingNumber: record.TrackingNumber.String(),
			CustomerID:     record.CustomerID.String(),
			Amount:         record.Amount.String(),
			Method:         record.Method,
			Timestamp:      record.Timestamp,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOccupancy handles GET /api/v1/occupancy - retrieves current slot usage of
// every warehouse and vehicle.
func (s *Server) GetOccupancy(ctx echo.Context) error {
	query := queries.NewGetOccupancyQuery()

	resources, err := s.getOccupancyHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OccupancyResponse, len(resources))
	for i, resource := range resources {
		response[i] = OccupancyResponse{
			Kind:     resource.Kind,
			Name:     resource.Name,
			Occupied: resource.Occupied,
			Capacity: resource.Capacity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// bindTransition extracts the tracking number and actor of a lifecycle transition request.
func (s *Server) bindTransition(ctx echo.Context) (kernel.UUID, kernel.Role, error) {
	trackingNumber, err := kernel.UUIDFromString(ctx.Param("trackingNumber"))
	if err != nil {
		return kernel.UUID{}, kernel.RoleUnknown, err
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.RoleUnknown, err
	}

	actor, err := kernel.RoleFromString(req.Actor)
	if err != nil {
		return kernel.UUID{}, kernel.RoleUnknown, err
	}

	return trackingNumber, actor, nil
}

// writeError maps domain and application errors to HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrParcelNotFound) || errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, err)
	case errors.Is(err, parcel.ErrInvalidTransition),
		errors.Is(err, capacity.ErrCapacityExceeded),
		errors.Is(err, capacity.ErrAlreadyAdmitted),
		errors.Is(err, capacity.ErrNotAdmitted),
		errors.Is(err, billing.ErrDuplicateSettlement):
		return jsonError(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrValueIsInvalid) || errors.Is(err, errs.ErrValueIsRequired):
		return jsonError(ctx, http.StatusBadRequest, err)
	default:
		return jsonError(ctx, http.StatusInternalServerError, err)
	}
}

func jsonError(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
