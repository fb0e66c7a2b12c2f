package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"courierdispatch/internal/core/application/ledger"
	"courierdispatch/internal/core/application/usecases/commands"
	"courierdispatch/internal/core/application/usecases/queries"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/parcel"
	"courierdispatch/internal/core/domain/model/rider"
	"courierdispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers groups the use cases the HTTP interface dispatches to.
type Handlers struct {
	// Command handlers
	CreateParcel   commands.CreateParcelCommandHandler
	AssignRider    commands.AssignRiderCommandHandler
	UpdateStatus   commands.UpdateParcelStatusCommandHandler
	DeleteParcel   commands.DeleteParcelCommandHandler
	CreateCheckout commands.CreateCheckoutSessionCommandHandler
	ReconcilePay   commands.ReconcilePaymentCommandHandler
	RegisterUser   commands.RegisterUserCommandHandler
	ChangeUserRole commands.ChangeUserRoleCommandHandler
	RegisterRider  commands.RegisterRiderCommandHandler
	ReviewRider    commands.ReviewRiderCommandHandler

	TrackingLedger *ledger.Ledger

	// Query handlers
	GetParcel        queries.GetParcelQueryHandler
	ListParcels      queries.ListParcelsQueryHandler
	RiderWorkload    queries.GetRiderWorkloadQueryHandler
	StatusStats      queries.GetDeliveryStatusStatsQueryHandler
	ListRiders       queries.ListRidersQueryHandler
	DeliveriesPerDay queries.GetRiderDeliveriesPerDayQueryHandler
	ListPayments     queries.ListPaymentsQueryHandler
	SearchUsers      queries.SearchUsersQueryHandler
	UserRole         queries.GetUserRoleQueryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{h: handlers, logger: logger.With("component", "http")}
}

// CreateParcel handles POST /parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var req CreateParcelRequest
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateParcelCommand(parcel.Details{
		Name:   req.ParcelName,
		Type:   req.ParcelType,
		Weight: req.ParcelWeight,
		Sender: parcel.Party{
			Name:     req.SenderName,
			Email:    string(req.SenderEmail),
			Phone:    req.SenderPhone,
			Region:   req.SenderRegion,
			District: req.SenderDistrict,
			Address:  req.SenderAddress,
		},
		Receiver: parcel.Party{
			Name:     req.ReceiverName,
			Email:    req.ReceiverEmail,
			Phone:    req.ReceiverPhone,
			Region:   req.ReceiverRegion,
			District: req.ReceiverDistrict,
			Address:  req.ReceiverAddress,
		},
		Cost: req.Cost,
	})
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	res, err := s.h.CreateParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusCreated, CreateParcelResponse{
		InsertedID: res.ParcelID.String(),
		TrackingID: res.TrackingID.String(),
	})
}

// ListParcels handles GET /parcels.
func (s *Server) ListParcels(ctx echo.Context) error {
	var email, status string
	if err := bindQuery(ctx, "email", &email); err != nil {
		return err
	}
	if err := bindQuery(ctx, "deliveryStatus", &status); err != nil {
		return err
	}

	query, err := queries.NewListParcelsQuery(email, status)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	views, err := s.h.ListParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, toParcelResponses(views))
}

// GetParcel handles GET /parcels/:id.
func (s *Server) GetParcel(ctx echo.Context) error {
	id, err := bindUUIDPath(ctx, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetParcelQuery(id)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	view, err := s.h.GetParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, toParcelResponse(view))
}

// AssignRider handles PATCH /parcels/:id.
func (s *Server) AssignRider(ctx echo.Context) error {
	id, err := bindUUIDPath(ctx, "id")
	if err != nil {
		return err
	}
	var req AssignRiderRequest
	if err := s.bind(ctx, &req); err != nil {
		return err
	}
	riderID, err := kernel.UUIDFromBytes(req.RiderID[:])
	if err != nil {
		return writeError(ctx, s.logger, errs.NewValueIsInvalidErrorWithCause("riderId", err))
	}

	cmd, err := commands.NewAssignRiderCommand(id, riderID, req.RiderName, req.RiderEmail, req.TrackingID)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	res, err := s.h.AssignRider.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, transitionResponse(res.ParcelUpdated, res.RiderUpdated, res.Ledger.EntryID, res.Ledger.Err))
}

// UpdateParcelStatus handles PATCH /parcels/:id/status.
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	id, err := bindUUIDPath(ctx, "id")
	if err != nil {
		return err
	}
	var req UpdateParcelStatusRequest
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	var riderID *kernel.UUID
	if req.RiderID != nil {
		rid, err := kernel.UUIDFromBytes(req.RiderID[:])
		if err != nil {
			return writeError(ctx, s.logger, errs.NewValueIsInvalidErrorWithCause("riderId", err))
		}
		riderID = &rid
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(id, req.DeliveryStatus, riderID, req.TrackingID)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	res, err := s.h.UpdateStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, transitionResponse(res.ParcelUpdated, res.RiderUpdated, res.Ledger.EntryID, res.Ledger.Err))
}

// DeleteParcel handles DELETE /parcels/:id. Tracking history is kept.
func (s *Server) DeleteParcel(ctx echo.Context) error {
	id, err := bindUUIDPath(ctx, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteParcelCommand(id)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	if err := s.h.DeleteParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, map[string]int{"deletedCount": 1})
}

// DeliveryStatusStats handles GET /parcels/delivery-status/stats.
func (s *Server) DeliveryStatusStats(ctx echo.Context) error {
	stats, err := s.h.StatusStats.Handle(ctx.Request().Context(), queries.NewGetDeliveryStatusStatsQuery())
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	out := make([]StatusCountResponse, len(stats))
	for i, st := range stats {
		out[i] = StatusCountResponse{Status: st.Status, Count: st.Count}
	}
	return ctx.JSON(http.StatusOK, out)
}

// RiderParcels handles GET /parcels/riders.
func (s *Server) RiderParcels(ctx echo.Context) error {
	var riderEmail, status string
	if err := bindQuery(ctx, "riderEmail", &riderEmail); err != nil {
		return err
	}
	if err := bindQuery(ctx, "deliveryStatus", &status); err != nil {
		return err
	}
	return s.riderWorkload(ctx, riderEmail, status)
}

func (s *Server) riderWorkload(ctx echo.Context, riderEmail, status string) error {
	query, err := queries.NewGetRiderWorkloadQuery(riderEmail, status)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	views, err := s.h.RiderWorkload.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, toParcelResponses(views))
}

// Riders handles GET /riders. With riderEmail it answers the rider's workload,
// otherwise the filtered rider list.
func (s *Server) Riders(ctx echo.Context) error {
	var riderEmail, deliveryStatus, status, district, worksStatus string
	for name, dst := range map[string]*string{
		"riderEmail":     &riderEmail,
		"deliveryStatus": &deliveryStatus,
		"status":         &status,
		"district":       &district,
		"worksStatus":    &worksStatus,
	} {
		if err := bindQuery(ctx, name, dst); err != nil {
			return err
		}
	}

	if riderEmail != "" {
		return s.riderWorkload(ctx, riderEmail, deliveryStatus)
	}

	query, err := queries.NewListRidersQuery(status, worksStatus, district)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	views, err := s.h.ListRiders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	out := make([]RiderResponse, len(views))
	for i, v := range views {
		out[i] = toRiderResponse(v)
	}
	return ctx.JSON(http.StatusOK, out)
}

// RegisterRider handles POST /riders.
func (s *Server) RegisterRider(ctx echo.Context) error {
	var req RegisterRiderRequest
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterRiderCommand(rider.Profile{
		Name:             req.Name,
		Email:            string(req.Email),
		Phone:            req.Phone,
		Region:           req.Region,
		Districts:        req.Districts,
		NID:              req.NID,
		BikeBrand:        req.BikeBrand,
		BikeRegistration: req.BikeRegistration,
	})
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	id, err := s.h.RegisterRider.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusCreated, InsertedResponse{InsertedID: id.String()})
}

// ReviewRider handles PATCH /riders/:id. Admin only.
func (s *Server) ReviewRider(ctx echo.Context) error {
	id, err := bindUUIDPath(ctx, "id")
	if err != nil {
		return err
	}
	var req ReviewRiderRequest
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewReviewRiderCommand(id, req.Status, req.Email)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	res, err := s.h.ReviewRider.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, ReviewRiderResponse{RiderUpdated: res.RiderUpdated, UserPromoted: res.UserPromoted})
}

// RiderDeliveriesPerDay handles GET /riders/delivery-per-day.
func (s *Server) RiderDeliveriesPerDay(ctx echo.Context) error {
	var email string
	if err := bindQuery(ctx, "email", &email); err != nil {
		return err
	}

	query, err := queries.NewGetRiderDeliveriesPerDayQuery(email)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	days, err := s.h.DeliveriesPerDay.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	out := make([]DeliveriesPerDayResponse, len(days))
	for i, d := range days {
		out[i] = DeliveriesPerDayResponse{Date: d.Date, Count: d.Count}
	}
	return ctx.JSON(http.StatusOK, out)
}

// CreateCheckoutSession handles POST /payment-checkout-session.
func (s *Server) CreateCheckoutSession(ctx echo.Context) error {
	var req CheckoutSessionRequest
	if err := s.bind(ctx, &req); err != nil {
		return err
	}
	parcelID, err := kernel.UUIDFromBytes(req.ParcelID[:])
	if err != nil {
		return writeError(ctx, s.logger, errs.NewValueIsInvalidErrorWithCause("parcelId", err))
	}

	cmd, err := commands.NewCreateCheckoutSessionCommand(parcelID)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	res, err := s.h.CreateCheckout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, CheckoutSessionResponse{URL: res.URL})
}

// ConfirmPayment handles PATCH /payment-success.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	var sessionID string
	if err := runtime.BindQueryParameter("form", true, true, "session_id", ctx.QueryParams(), &sessionID); err != nil {
		return badRequestError("Invalid format for parameter session_id: " + err.Error())
	}

	cmd, err := commands.NewReconcilePaymentCommand(sessionID)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	res, err := s.h.ReconcilePay.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, reconcileResponse(res))
}

// ListPayments handles GET /payments. Callers may only filter by their own email.
func (s *Server) ListPayments(ctx echo.Context) error {
	var email string
	if err := bindQuery(ctx, "email", &email); err != nil {
		return err
	}

	query := queries.NewListPaymentsQuery(email)
	if query.CustomerEmail() != "" {
		identity, ok := IdentityFrom(ctx)
		if !ok || identity.Email != query.CustomerEmail() {
			return forbidden(ctx)
		}
	}

	views, err := s.h.ListPayments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	out := make([]PaymentResponse, len(views))
	for i, v := range views {
		out[i] = toPaymentResponse(v)
	}
	return ctx.JSON(http.StatusOK, out)
}

// TrackingLogs handles GET /trackings/:trackingId/logs.
func (s *Server) TrackingLogs(ctx echo.Context) error {
	var trackingID string
	err := runtime.BindStyledParameterWithOptions("simple", "trackingId", ctx.Param("trackingId"), &trackingID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return badRequestError("Invalid format for parameter trackingId: " + err.Error())
	}

	id, err := kernel.TrackingIDFromString(trackingID)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	entries, err := s.h.TrackingLedger.History(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	out := make([]TrackingLogResponse, len(entries))
	for i, e := range entries {
		out[i] = TrackingLogResponse{
			TrackingID: e.TrackingID().String(),
			Status:     e.Status(),
			Details:    e.Details(),
			CreatedAt:  e.CreatedAt(),
		}
	}
	return ctx.JSON(http.StatusOK, out)
}

// RegisterUser handles POST /users. An existing email is answered with
// "user exist" and nothing is written.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req RegisterUserRequest
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(string(req.Email), req.DisplayName, req.PhotoURL)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	res, err := s.h.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	if !res.Created {
		return ctx.JSON(http.StatusOK, MessageResponse{Message: "user exist"})
	}
	return ctx.JSON(http.StatusCreated, InsertedResponse{InsertedID: res.UserID.String()})
}

// SearchUsers handles GET /users.
func (s *Server) SearchUsers(ctx echo.Context) error {
	var text string
	if err := bindQuery(ctx, "searchText", &text); err != nil {
		return err
	}

	views, err := s.h.SearchUsers.Handle(ctx.Request().Context(), queries.NewSearchUsersQuery(text))
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	out := make([]UserResponse, len(views))
	for i, v := range views {
		out[i] = UserResponse{
			ID:          v.ID.String(),
			Email:       v.Email,
			DisplayName: v.DisplayName,
			PhotoURL:    v.PhotoURL,
			Role:        v.Role,
			CreatedAt:   v.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, out)
}

// UserRole handles GET /users/:userKey/role where the key is an email.
func (s *Server) UserRole(ctx echo.Context) error {
	query, err := queries.NewGetUserRoleQuery(ctx.Param("userKey"))
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	role, err := s.h.UserRole.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, RoleResponse{Role: role.String()})
}

// ChangeUserRole handles PATCH /users/:userKey/role where the key is a user id. Admin only.
func (s *Server) ChangeUserRole(ctx echo.Context) error {
	id, err := bindUUIDPath(ctx, "userKey")
	if err != nil {
		return err
	}
	var req ChangeRoleRequest
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewChangeUserRoleCommand(id, req.Role)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	if err := s.h.ChangeUserRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, RoleResponse{Role: req.Role})
}

// bind decodes and validates the request body.
func (s *Server) bind(ctx echo.Context, dst any) error {
	if err := ctx.Bind(dst); err != nil {
		return badRequestError("Invalid request body")
	}
	if err := ctx.Validate(dst); err != nil {
		return badRequestError("Invalid request body: " + err.Error())
	}
	return nil
}

// bindQuery binds an optional query parameter. dst is left untouched when the
// parameter is absent.
func bindQuery(ctx echo.Context, name string, dst *string) error {
	var value *string
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &value); err != nil {
		return badRequestError(fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	if value != nil {
		*dst = *value
	}
	return nil
}

func bindUUIDPath(ctx echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, badRequestError(fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return kernel.UUIDFromBytes(id[:])
}

func transitionResponse(parcelUpdated, riderUpdated bool, entryID uint64, ledgerErr error) TransitionResponse {
	resp := TransitionResponse{
		ParcelUpdated:   parcelUpdated,
		RiderUpdated:    riderUpdated,
		TrackingEntryID: entryID,
	}
	if ledgerErr != nil {
		resp.TrackingError = "tracking entry not recorded"
	}
	return resp
}
