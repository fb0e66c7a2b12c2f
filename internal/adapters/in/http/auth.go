package http

import (
	"net/http"
	"strings"

	"courierdispatch/internal/core/application/usecases/queries"
	"courierdispatch/internal/core/domain/model/user"
	"courierdispatch/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// Authenticator guards routes with a bearer credential and, for admin routes,
// the caller's stored role.
type Authenticator struct {
	verifier ports.IdentityVerifier
	roles    queries.GetUserRoleQueryHandler
}

func NewAuthenticator(verifier ports.IdentityVerifier, roles queries.GetUserRoleQueryHandler) *Authenticator {
	return &Authenticator{verifier: verifier, roles: roles}
}

// Authenticate rejects requests without a verifiable bearer token.
func (a *Authenticator) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return unauthorized(ctx)
		}

		identity, err := a.verifier.Verify(ctx.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			return unauthorized(ctx)
		}

		ctx.Set(identityKey, identity)
		return next(ctx)
	}
}

// RequireAdmin must run after Authenticate.
func (a *Authenticator) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		identity, ok := IdentityFrom(ctx)
		if !ok {
			return unauthorized(ctx)
		}

		query, err := queries.NewGetUserRoleQuery(identity.Email)
		if err != nil {
			return forbidden(ctx)
		}
		role, err := a.roles.Handle(ctx.Request().Context(), query)
		if err != nil {
			return err
		}
		if role != user.RoleAdmin {
			return forbidden(ctx)
		}
		return next(ctx)
	}
}

// IdentityFrom returns the identity stored by Authenticate.
func IdentityFrom(ctx echo.Context) (ports.Identity, bool) {
	identity, ok := ctx.Get(identityKey).(ports.Identity)
	return identity, ok
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, MessageResponse{Message: "unauthorized access"})
}

func forbidden(ctx echo.Context) error {
	return ctx.JSON(http.StatusForbidden, MessageResponse{Message: "forbidden access"})
}
