package http

import (
	"log/slog"
	"net/http"

	"courierdispatch/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter mounts every route of the dispatch API on a fresh echo instance.
func NewRouter(server *Server, auth *Authenticator, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := api.Load()
	if err != nil {
		return nil, err
	}
	validate, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = HTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	g := e.Group("", validate)

	g.GET("/parcels", server.ListParcels)
	g.POST("/parcels", server.CreateParcel)
	g.GET("/parcels/delivery-status/stats", server.DeliveryStatusStats)
	g.GET("/parcels/riders", server.RiderParcels)
	g.GET("/parcels/:id", server.GetParcel)
	g.PATCH("/parcels/:id", server.AssignRider)
	g.DELETE("/parcels/:id", server.DeleteParcel)
	g.PATCH("/parcels/:id/status", server.UpdateParcelStatus)

	g.GET("/riders", server.Riders)
	g.POST("/riders", server.RegisterRider)
	g.GET("/riders/delivery-per-day", server.RiderDeliveriesPerDay)
	g.PATCH("/riders/:id", server.ReviewRider, auth.Authenticate, auth.RequireAdmin)

	g.POST("/payment-checkout-session", server.CreateCheckoutSession)
	g.PATCH("/payment-success", server.ConfirmPayment)
	g.GET("/payments", server.ListPayments, auth.Authenticate)

	g.GET("/trackings/:trackingId/logs", server.TrackingLogs)

	g.GET("/users", server.SearchUsers, auth.Authenticate)
	g.POST("/users", server.RegisterUser)
	g.GET("/users/:userKey/role", server.UserRole)
	g.PATCH("/users/:userKey/role", server.ChangeUserRole, auth.Authenticate, auth.RequireAdmin)

	return e, nil
}
