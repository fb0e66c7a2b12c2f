package queries

import (
	"context"
	"errors"

	"courierdispatch/internal/core/domain/model/user"
	"courierdispatch/internal/pkg/errs"
	"courierdispatch/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetUserRoleQueryIsNotConstructed = errors.New(
		"GetUserRoleQuery must be created via NewGetUserRoleQuery constructor",
	)
)

// GetUserRoleQuery resolves the role of the user with the given email. Unknown
// emails resolve to the plain user role.
type GetUserRoleQuery struct {
	email string
	guard guard.ConstructorGuard
}

func NewGetUserRoleQuery(email string) (GetUserRoleQuery, error) {
	email = user.NormalizeEmail(email)
	if email == "" {
		return GetUserRoleQuery{}, errs.NewValueIsRequiredError("email")
	}
	return GetUserRoleQuery{email: email, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetUserRoleQueryIsNotConstructed)
}

type GetUserRoleQueryHandler struct {
	db *gorm.DB
}

func NewGetUserRoleQueryHandler(db *gorm.DB) GetUserRoleQueryHandler {
	return GetUserRoleQueryHandler{db: db}
}

func (h GetUserRoleQueryHandler) Handle(ctx context.Context, query GetUserRoleQuery) (user.Role, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var roles []string
	err := h.db.WithContext(ctx).
		Table("users").
		Where("email = ?", query.email).
		Limit(1).
		Pluck("role", &roles).Error
	if err != nil {
		return "", err
	}
	if len(roles) == 0 || roles[0] == "" {
		return user.RoleUser, nil
	}

	return user.ParseRole(roles[0])
}
